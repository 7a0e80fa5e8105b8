package app

import (
	"math"
	"strconv"
	"strings"

	"restomenu/internal/menu/domain/entities"
)

// Сообщения об ошибках валидации, видимые пользователю. Формулировка
// "positive number" исторически означает "неотрицательное число":
// нулевая цена проходит валидацию.
const (
	MsgNameRequired = "Name is required."
	MsgInvalidPrice = "Price must be a positive number."
)

// MenuItemInput - сырой набор полей позиции меню из формы или JSON.
// Нулевой указатель означает, что поле отсутствовало в запросе.
type MenuItemInput struct {
	Name        *string
	Category    *string
	Price       *string
	Description *string
}

// ValidateMenuItem превращает сырой набор полей в нормализованный набор
// изменений либо в список ошибок по полям. В полном режиме (создание,
// полная замена) имя и цена обязательны; в частичном режиме (patch)
// проверяются только присутствующие поля. Накапливаются все ошибки,
// а не только первая.
func ValidateMenuItem(in MenuItemInput, partial bool) (entities.MenuItemChange, []string) {
	var change entities.MenuItemChange
	var errs []string

	if !partial || in.Name != nil {
		name := ""
		if in.Name != nil {
			name = strings.TrimSpace(*in.Name)
		}
		if name == "" {
			errs = append(errs, MsgNameRequired)
		} else {
			change.Name = &name
		}
	}

	if !partial || in.Price != nil {
		price, ok := parsePrice(in.Price)
		if !ok {
			errs = append(errs, MsgInvalidPrice)
		} else {
			change.Price = &price
		}
	}

	if in.Category != nil {
		// Нераспознанная категория молча сбрасывается в пустую строку,
		// а не отклоняется.
		category := ""
		if entities.IsValidCategory(*in.Category) {
			category = *in.Category
		}
		change.Category = &category
	}

	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		change.Description = &description
	}

	return change, errs
}

// parsePrice приводит текстовую цену к неотрицательному конечному числу.
func parsePrice(raw *string) (float64, bool) {
	if raw == nil {
		return 0, false
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0, false
	}
	return price, true
}
