package model

// Частичные обновления сущностей: nil-поле означает «не менять».

// CatalogUpdate описывает частичное обновление каталога.
type CatalogUpdate struct {
	Name      *string `json:"name"`
	Image     *string `json:"image"`
	IsVisible *bool   `json:"is_visible"`
}

// ProductUpdate описывает частичное обновление товара.
type ProductUpdate struct {
	CatalogID        *string   `json:"catalog_id"`
	Name             *string   `json:"name"`
	Description      *string   `json:"description"`
	PriceUAH         *float64  `json:"price_uah"`
	DiscountPercent  *float64  `json:"discount_percent"`
	Quantity         *int      `json:"quantity"`
	Weight           *string   `json:"weight"`
	Color            *string   `json:"color"`
	IsVisible        *bool     `json:"is_visible"`
	MainImage        *string   `json:"main_image"`
	AdditionalImages *[]string `json:"additional_images"`
}

// ServiceUpdate описывает частичное обновление услуги.
type ServiceUpdate struct {
	CatalogID              *string  `json:"catalog_id"`
	Name                   *string  `json:"name"`
	Description            *string  `json:"description"`
	PriceUAH               *float64 `json:"price_uah"`
	IsVisible              *bool    `json:"is_visible"`
	HasTimeSelection       *bool    `json:"has_time_selection"`
	HasDurationSelection   *bool    `json:"has_duration_selection"`
	HasMasterSelection     *bool    `json:"has_master_selection"`
	PriceDependsOnDuration *bool    `json:"price_depends_on_duration"`
}

// MasterUpdate описывает частичное обновление инструктора.
type MasterUpdate struct {
	FullName    *string `json:"full_name"`
	Position    *string `json:"position"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// SettingsUpdate описывает частичное обновление настроек.
type SettingsUpdate struct {
	TelegramBotToken *string `json:"telegram_bot_token"`
	TelegramChatID   *string `json:"telegram_chat_id"`
	DefaultLanguage  *string `json:"default_language"`
	AdminPhone1      *string `json:"admin_phone1"`
	AdminPhone2      *string `json:"admin_phone2"`
	AdminPhone3      *string `json:"admin_phone3"`
}
