package service

import (
	"context"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

// SeedDemoData загружает демонстрационные данные при пустой базе.
// Возвращает false, если данные уже существуют.
func (s *Service) SeedDemoData(ctx context.Context) (bool, error) {
	count, err := s.repo.CountCatalogs(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	catalogs := []*model.Catalog{
		{Name: "Зброя", Image: "https://images.unsplash.com/photo-1617619667494-6b3f51ce58a7?w=400", IsVisible: true},
		{Name: "Амуніція", Image: "https://images.pexels.com/photos/6092074/pexels-photo-6092074.jpeg?w=400", IsVisible: true},
		{Name: "Тренування", Image: "https://images.unsplash.com/photo-1619760563678-02e23d15f69f?w=400", IsVisible: true},
		{Name: "Аксесуари", Image: "https://images.pexels.com/photos/5202416/pexels-photo-5202416.jpeg?w=400", IsVisible: true},
	}
	for _, c := range catalogs {
		if _, err := s.CreateCatalog(ctx, c); err != nil {
			return false, err
		}
	}

	products := []*model.Product{
		{
			CatalogID:       catalogs[0].ID,
			Name:            "Пістолет Glock 17",
			Description:     "Напівавтоматичний пістолет калібру 9мм. Ідеальний для тренувань та спортивної стрільби.",
			PriceUAH:        25000,
			DiscountPercent: 10,
			Quantity:        5,
			Weight:          "625г",
			Color:           "Чорний",
			MainImage:       "https://images.unsplash.com/photo-1595590424283-b8f17842773f?w=400",
			IsVisible:       true,
		},
		{
			CatalogID:   catalogs[1].ID,
			Name:        "Набір патронів 9мм (50 шт)",
			Description: "Високоякісні патрони калібру 9x19мм для тренувальної стрільби.",
			PriceUAH:    800,
			Quantity:    100,
			MainImage:   "https://images.unsplash.com/photo-1610165540008-bf28446d5cb8?w=400",
			IsVisible:   true,
		},
		{
			CatalogID:       catalogs[3].ID,
			Name:            "Захисні навушники",
			Description:     "Професійні захисні навушники для стрільби з активним шумоподавленням.",
			PriceUAH:        1500,
			DiscountPercent: 15,
			Quantity:        20,
			Color:           "Зелений",
			MainImage:       "https://images.pexels.com/photos/9170201/pexels-photo-9170201.jpeg?w=400",
			IsVisible:       true,
		},
	}
	for _, p := range products {
		if _, err := s.CreateProduct(ctx, p); err != nil {
			return false, err
		}
	}

	services := []*model.Service{
		{
			CatalogID:              catalogs[2].ID,
			Name:                   "Індивідуальне тренування",
			Description:            "Персональне тренування з професійним інструктором. Включає інструктаж з безпеки та техніки стрільби.",
			PriceUAH:               500,
			IsVisible:              true,
			HasTimeSelection:       true,
			HasDurationSelection:   true,
			HasMasterSelection:     true,
			PriceDependsOnDuration: true,
		},
		{
			CatalogID:          catalogs[2].ID,
			Name:               "Групове заняття",
			Description:        "Групове заняття для 3-5 осіб з інструктором. Базовий курс стрільби.",
			PriceUAH:           300,
			IsVisible:          true,
			HasTimeSelection:   true,
			HasMasterSelection: true,
		},
		{
			CatalogID:              catalogs[2].ID,
			Name:                   "Оренда доріжки",
			Description:            "Оренда стрілецької доріжки на годину. Включає базове обладнання безпеки.",
			PriceUAH:               200,
			IsVisible:              true,
			HasTimeSelection:       true,
			HasDurationSelection:   true,
			PriceDependsOnDuration: true,
		},
	}
	for _, svc := range services {
		if _, err := s.CreateRangeService(ctx, svc); err != nil {
			return false, err
		}
	}

	masters := []*model.Master{
		{
			FullName:    "Олександр Петренко",
			Position:    "Головний інструктор",
			Description: "15 років досвіду. Чемпіон України з практичної стрільби.",
			IsActive:    true,
			ServiceIDs:  []string{services[0].ID, services[1].ID},
		},
		{
			FullName:    "Марія Коваленко",
			Position:    "Інструктор",
			Description: "Спеціалізація на навчанні початківців. 7 років досвіду.",
			IsActive:    true,
			ServiceIDs:  []string{services[0].ID, services[1].ID},
		},
	}
	for _, m := range masters {
		if _, err := s.CreateMaster(ctx, m); err != nil {
			return false, err
		}
	}

	rules := []*model.LoyaltyRule{
		{MinTotalAmount: 0, BonusPoints: 0, DiscountPercent: 0},
		{MinTotalAmount: 5000, BonusPoints: 50, DiscountPercent: 3},
		{MinTotalAmount: 15000, BonusPoints: 100, DiscountPercent: 5},
		{MinTotalAmount: 50000, BonusPoints: 200, DiscountPercent: 10},
	}
	for _, r := range rules {
		if _, err := s.CreateLoyaltyRule(ctx, r); err != nil {
			return false, err
		}
	}

	return true, nil
}
