package app

import (
	"math"
	"strconv"
	"strings"

	"restomenu/internal/menu/domain/entities"
)

// CategoryAll - значение параметра category, означающее отсутствие ограничения.
const CategoryAll = "all"

// FilterParams - свободные параметры запроса выборки позиций меню,
// как они приходят в строке запроса.
type FilterParams struct {
	Name     string
	Category string
	MinPrice string
	MaxPrice string
}

// BuildFilter превращает параметры запроса в структурное описание фильтра.
// Отсутствующие параметры не накладывают ограничений. Имя - подстрока без
// учета регистра; категория - точное совпадение, кроме сентинела "all".
// Нечисловая граница цены приводится к NaN - фильтру, не совпадающему
// ни с одной записью.
func BuildFilter(params FilterParams) entities.MenuFilter {
	filter := entities.MenuFilter{
		Name: strings.TrimSpace(params.Name),
	}

	if params.Category != "" && params.Category != CategoryAll {
		filter.Category = params.Category
	}

	if params.MinPrice != "" {
		min := coerceBound(params.MinPrice)
		filter.MinPrice = &min
	}
	if params.MaxPrice != "" {
		max := coerceBound(params.MaxPrice)
		filter.MaxPrice = &max
	}

	return filter
}

// coerceBound приводит текстовую границу цены к числу; нечисловой текст
// дает NaN.
func coerceBound(raw string) float64 {
	bound, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return math.NaN()
	}
	return bound
}
