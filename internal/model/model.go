// Package model содержит доменные сущности сервиса rangemart.
package model

import "time"

// Catalog представляет каталог товаров или услуг.
type Catalog struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	IsVisible bool      `json:"is_visible"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product представляет товар в каталоге.
type Product struct {
	ID               string    `json:"id"`
	CatalogID        string    `json:"catalog_id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	PriceUAH         float64   `json:"price_uah"`
	DiscountPercent  float64   `json:"discount_percent"`
	Quantity         int       `json:"quantity"`
	Weight           string    `json:"weight,omitempty"`
	Color            string    `json:"color,omitempty"`
	IsVisible        bool      `json:"is_visible"`
	MainImage        string    `json:"main_image"`
	AdditionalImages []string  `json:"additional_images"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Service представляет услугу тира: тренировку, аренду дорожки и т.п.
type Service struct {
	ID                     string    `json:"id"`
	CatalogID              string    `json:"catalog_id"`
	Name                   string    `json:"name"`
	Description            string    `json:"description"`
	PriceUAH               float64   `json:"price_uah"`
	IsVisible              bool      `json:"is_visible"`
	HasTimeSelection       bool      `json:"has_time_selection"`
	HasDurationSelection   bool      `json:"has_duration_selection"`
	HasMasterSelection     bool      `json:"has_master_selection"`
	PriceDependsOnDuration bool      `json:"price_depends_on_duration"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// Master представляет инструктора, закрепляемого за услугами.
type Master struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Position    string    `json:"position"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	ServiceIDs  []string  `json:"service_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

// User представляет клиента с накопительной картой лояльности.
// QRMD5 вычисляется один раз при регистрации и никогда не пересчитывается,
// даже если имя клиента впоследствии изменится.
type User struct {
	ID                string    `json:"id"`
	Phone             string    `json:"phone"`
	FullName          string    `json:"full_name"`
	RegistrationDate  time.Time `json:"registration_date"`
	TotalOrdersCount  int       `json:"total_orders_count"`
	TotalOrdersAmount float64   `json:"total_orders_amount"`
	BonusPoints       int       `json:"bonus_points"`
	DiscountPercent   float64   `json:"discount_percent"`
	QRMD5             string    `json:"qr_md5"`
}

// ItemType описывает тип позиции корзины или заказа.
type ItemType string

const (
	ItemTypeProduct ItemType = "product"
	ItemTypeService ItemType = "service"
)

// CartItem представляет позицию корзины. Цена и скидка фиксируются
// в момент добавления и не перечитываются из каталога.
type CartItem struct {
	ID              string   `json:"id"`
	Type            ItemType `json:"type"`
	ItemID          string   `json:"item_id"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	DiscountPercent float64  `json:"discount_percent"`
	Quantity        int      `json:"quantity"`
	Image           string   `json:"image,omitempty"`
	Duration        *int     `json:"duration,omitempty"`
	MasterName      string   `json:"master_name,omitempty"`
	DateTime        string   `json:"date_time,omitempty"`
}

// Cart представляет корзину клиента. У клиента не более одной корзины.
type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// OrderStatus описывает статус обработки заказа.
type OrderStatus string

// OrderStatusPending — начальный статус каждого нового заказа.
const OrderStatusPending OrderStatus = "pending"

// OrderItem представляет позицию заказа со снимком цены на момент оформления.
type OrderItem struct {
	Type                ItemType `json:"type"`
	ItemID              string   `json:"item_id"`
	Name                string   `json:"name"`
	BasePrice           float64  `json:"base_price"`
	ItemDiscountPercent float64  `json:"item_discount_percent"`
	Quantity            int      `json:"quantity"`
	Duration            *int     `json:"duration,omitempty"`
	MasterName          string   `json:"master_name,omitempty"`
	DateTime            string   `json:"date_time,omitempty"`
	TotalAmount         float64  `json:"total_amount"`
}

// Order представляет оформленный заказ. После создания меняется только статус.
type Order struct {
	ID                string      `json:"id"`
	UserID            string      `json:"user_id"`
	Items             []OrderItem `json:"items"`
	TotalAmount       float64     `json:"total_amount"`
	DiscountPercent   float64     `json:"discount_percent"`
	BonusPointsEarned int         `json:"bonus_points_earned"`
	Status            OrderStatus `json:"status"`
	CreatedAt         time.Time   `json:"created_at"`
}

// LoyaltyRule описывает ступень программы лояльности: порог накоплений,
// разовое начисление бонусов и процент скидки.
type LoyaltyRule struct {
	ID              string  `json:"id"`
	MinTotalAmount  float64 `json:"min_total_amount"`
	BonusPoints     int     `json:"bonus_points"`
	DiscountPercent float64 `json:"discount_percent"`
}

// Settings содержит административные настройки сервиса.
type Settings struct {
	TelegramBotToken string `json:"telegram_bot_token"`
	TelegramChatID   string `json:"telegram_chat_id"`
	DefaultLanguage  string `json:"default_language"`
	AdminPhone1      string `json:"admin_phone1"`
	AdminPhone2      string `json:"admin_phone2"`
	AdminPhone3      string `json:"admin_phone3"`
}

// DefaultSettings возвращает настройки, создаваемые при первом обращении.
func DefaultSettings() *Settings {
	return &Settings{DefaultLanguage: "uk"}
}

// AdminPhones возвращает непустые телефоны администраторов.
func (s *Settings) AdminPhones() []string {
	var phones []string
	for _, p := range []string{s.AdminPhone1, s.AdminPhone2, s.AdminPhone3} {
		if p != "" {
			phones = append(phones, p)
		}
	}
	return phones
}

// IsAdmin проверяет, принадлежит ли телефон одному из администраторов.
func (s *Settings) IsAdmin(phone string) bool {
	if phone == "" {
		return false
	}
	for _, p := range s.AdminPhones() {
		if p == phone {
			return true
		}
	}
	return false
}
