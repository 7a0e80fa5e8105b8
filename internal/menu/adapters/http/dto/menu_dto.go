// Package dto содержит объекты передачи данных для HTTP-слоя.
package dto

import (
	"bytes"
	"encoding/json"

	"restomenu/internal/menu/app"
)

// FlexString принимает из JSON как строку, так и число, сохраняя
// исходный текст. Цена в запросах API может приходить в обоих видах.
type FlexString string

// UnmarshalJSON реализует json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(data)
	return nil
}

// MenuItemRequest - тело запроса на создание или обновление позиции меню.
// Нулевые указатели отличают отсутствующие поля от пустых.
type MenuItemRequest struct {
	Name        *string     `json:"name"`
	Category    *string     `json:"category"`
	Price       *FlexString `json:"price"`
	Description *string     `json:"description"`
}

// ToInput преобразует тело запроса во входные данные валидатора.
func (r *MenuItemRequest) ToInput() app.MenuItemInput {
	in := app.MenuItemInput{
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
	}
	if r.Price != nil {
		price := string(*r.Price)
		in.Price = &price
	}
	return in
}
