package model

import (
	"time"

	"github.com/google/uuid"
)

// NewCart создаёт пустую корзину для указанного клиента.
func NewCart(userID string) *Cart {
	return &Cart{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     []CartItem{},
		UpdatedAt: time.Now().UTC(),
	}
}

// AddItem добавляет позицию в корзину. Если позиция с той же парой
// (type, item_id) уже есть, увеличивает её количество; иначе добавляет
// новую позицию со сгенерированным идентификатором.
func (c *Cart) AddItem(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ItemID == item.ItemID && c.Items[i].Type == item.Type {
			c.Items[i].Quantity += item.Quantity
			c.touch()
			return
		}
	}

	item.ID = uuid.NewString()
	c.Items = append(c.Items, item)
	c.touch()
}

// SetQuantity устанавливает количество позиции по её идентификатору.
// Количество меньше либо равное нулю удаляет позицию.
func (c *Cart) SetQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(itemID)
		return
	}

	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items[i].Quantity = quantity
			break
		}
	}
	c.touch()
}

// RemoveItem удаляет позицию по идентификатору. Отсутствие позиции не ошибка.
func (c *Cart) RemoveItem(itemID string) {
	filtered := c.Items[:0]
	for _, it := range c.Items {
		if it.ID != itemID {
			filtered = append(filtered, it)
		}
	}
	c.Items = filtered
	c.touch()
}

// Clear удаляет все позиции, сохраняя идентификатор корзины.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.touch()
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now().UTC()
}
