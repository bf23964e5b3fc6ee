package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/okhrimenko/rangemart-system/internal/model"
)

// CreateCatalog присваивает каталогу идентификатор и сохраняет его.
func (s *Service) CreateCatalog(ctx context.Context, c *model.Catalog) (*model.Catalog, error) {
	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.repo.CreateCatalog(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetCatalog возвращает каталог по идентификатору.
func (s *Service) GetCatalog(ctx context.Context, id string) (*model.Catalog, error) {
	return s.repo.GetCatalog(ctx, id)
}

// ListCatalogs возвращает каталоги.
func (s *Service) ListCatalogs(ctx context.Context, visibleOnly bool) ([]model.Catalog, error) {
	return s.repo.ListCatalogs(ctx, visibleOnly)
}

// UpdateCatalog применяет частичное обновление каталога.
func (s *Service) UpdateCatalog(ctx context.Context, id string, upd model.CatalogUpdate) (*model.Catalog, error) {
	c, err := s.repo.GetCatalog(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Image != nil {
		c.Image = *upd.Image
	}
	if upd.IsVisible != nil {
		c.IsVisible = *upd.IsVisible
	}
	c.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateCatalog(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCatalog удаляет каталог.
func (s *Service) DeleteCatalog(ctx context.Context, id string) error {
	return s.repo.DeleteCatalog(ctx, id)
}

// CreateProduct проверяет существование родительского каталога и сохраняет товар.
func (s *Service) CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	if _, err := s.repo.GetCatalog(ctx, p.CatalogID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.AdditionalImages == nil {
		p.AdditionalImages = []string{}
	}

	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProduct возвращает товар по идентификатору.
func (s *Service) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

// ListProducts возвращает товары с фильтрами по каталогу и видимости.
func (s *Service) ListProducts(ctx context.Context, catalogID string, visibleOnly bool) ([]model.Product, error) {
	return s.repo.ListProducts(ctx, catalogID, visibleOnly)
}

// UpdateProduct применяет частичное обновление товара.
func (s *Service) UpdateProduct(ctx context.Context, id string, upd model.ProductUpdate) (*model.Product, error) {
	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.CatalogID != nil {
		p.CatalogID = *upd.CatalogID
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.PriceUAH != nil {
		p.PriceUAH = *upd.PriceUAH
	}
	if upd.DiscountPercent != nil {
		p.DiscountPercent = *upd.DiscountPercent
	}
	if upd.Quantity != nil {
		p.Quantity = *upd.Quantity
	}
	if upd.Weight != nil {
		p.Weight = *upd.Weight
	}
	if upd.Color != nil {
		p.Color = *upd.Color
	}
	if upd.IsVisible != nil {
		p.IsVisible = *upd.IsVisible
	}
	if upd.MainImage != nil {
		p.MainImage = *upd.MainImage
	}
	if upd.AdditionalImages != nil {
		p.AdditionalImages = *upd.AdditionalImages
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProduct удаляет товар.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.DeleteProduct(ctx, id)
}

// CreateRangeService проверяет существование родительского каталога и сохраняет услугу.
func (s *Service) CreateRangeService(ctx context.Context, svc *model.Service) (*model.Service, error) {
	if _, err := s.repo.GetCatalog(ctx, svc.CatalogID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	svc.ID = uuid.NewString()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	if err := s.repo.CreateService(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// GetRangeService возвращает услугу по идентификатору.
func (s *Service) GetRangeService(ctx context.Context, id string) (*model.Service, error) {
	return s.repo.GetService(ctx, id)
}

// ListRangeServices возвращает услуги с фильтрами по каталогу и видимости.
func (s *Service) ListRangeServices(ctx context.Context, catalogID string, visibleOnly bool) ([]model.Service, error) {
	return s.repo.ListServices(ctx, catalogID, visibleOnly)
}

// UpdateRangeService применяет частичное обновление услуги.
func (s *Service) UpdateRangeService(ctx context.Context, id string, upd model.ServiceUpdate) (*model.Service, error) {
	svc, err := s.repo.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.CatalogID != nil {
		svc.CatalogID = *upd.CatalogID
	}
	if upd.Name != nil {
		svc.Name = *upd.Name
	}
	if upd.Description != nil {
		svc.Description = *upd.Description
	}
	if upd.PriceUAH != nil {
		svc.PriceUAH = *upd.PriceUAH
	}
	if upd.IsVisible != nil {
		svc.IsVisible = *upd.IsVisible
	}
	if upd.HasTimeSelection != nil {
		svc.HasTimeSelection = *upd.HasTimeSelection
	}
	if upd.HasDurationSelection != nil {
		svc.HasDurationSelection = *upd.HasDurationSelection
	}
	if upd.HasMasterSelection != nil {
		svc.HasMasterSelection = *upd.HasMasterSelection
	}
	if upd.PriceDependsOnDuration != nil {
		svc.PriceDependsOnDuration = *upd.PriceDependsOnDuration
	}
	svc.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateService(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// DeleteRangeService удаляет услугу.
func (s *Service) DeleteRangeService(ctx context.Context, id string) error {
	return s.repo.DeleteService(ctx, id)
}

// CreateMaster сохраняет нового инструктора.
func (s *Service) CreateMaster(ctx context.Context, m *model.Master) (*model.Master, error) {
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now().UTC()
	if m.ServiceIDs == nil {
		m.ServiceIDs = []string{}
	}

	if err := s.repo.CreateMaster(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// GetMaster возвращает инструктора по идентификатору.
func (s *Service) GetMaster(ctx context.Context, id string) (*model.Master, error) {
	return s.repo.GetMaster(ctx, id)
}

// ListMasters возвращает инструкторов.
func (s *Service) ListMasters(ctx context.Context, activeOnly bool) ([]model.Master, error) {
	return s.repo.ListMasters(ctx, activeOnly)
}

// ListMastersByService возвращает активных инструкторов услуги.
func (s *Service) ListMastersByService(ctx context.Context, serviceID string) ([]model.Master, error) {
	return s.repo.ListMastersByService(ctx, serviceID)
}

// UpdateMaster применяет частичное обновление инструктора.
func (s *Service) UpdateMaster(ctx context.Context, id string, upd model.MasterUpdate) (*model.Master, error) {
	m, err := s.repo.GetMaster(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.FullName != nil {
		m.FullName = *upd.FullName
	}
	if upd.Position != nil {
		m.Position = *upd.Position
	}
	if upd.Description != nil {
		m.Description = *upd.Description
	}
	if upd.IsActive != nil {
		m.IsActive = *upd.IsActive
	}

	if err := s.repo.UpdateMaster(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteMaster удаляет инструктора.
func (s *Service) DeleteMaster(ctx context.Context, id string) error {
	return s.repo.DeleteMaster(ctx, id)
}

// LinkMasterService закрепляет услугу за инструктором, проверяя существование обоих.
func (s *Service) LinkMasterService(ctx context.Context, masterID, serviceID string) error {
	if _, err := s.repo.GetMaster(ctx, masterID); err != nil {
		return err
	}
	if _, err := s.repo.GetService(ctx, serviceID); err != nil {
		return err
	}
	return s.repo.LinkMasterService(ctx, masterID, serviceID)
}

// UnlinkMasterService снимает услугу с инструктора.
func (s *Service) UnlinkMasterService(ctx context.Context, masterID, serviceID string) error {
	return s.repo.UnlinkMasterService(ctx, masterID, serviceID)
}
