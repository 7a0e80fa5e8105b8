package pages

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"restomenu/internal/menu/adapters/http/middleware"
	"restomenu/internal/menu/app"
	"restomenu/internal/menu/domain/entities"
	"restomenu/pkg/logger"
)

// Константы для логирования.
const (
	LogPageCreate = "page handler: create"
	LogPageUpdate = "page handler: update"
	LogPageDelete = "page handler: delete"
	LogPageRead   = "page handler: read"
)

// Сообщения, видимые пользователю на страницах меню.
const (
	errNameAndPriceRequired = "Name and price are required."
	errSelectedNotFound     = "Selected item not found."
	errItemNotFound         = "Menu item not found."
	errCreateFailed         = "An error occurred while creating the menu item."
	errUpdateFailed         = "An error occurred while updating the menu item."
	errDeleteFailed         = "An error occurred while deleting the menu item."
	errLoadingItems         = "An error occurred while loading menu items."
	errSearchFailed         = "An error occurred while searching data"

	successItemCreated = "Menu item created successfully!"
	successItemUpdated = "Menu item updated successfully!"
	successItemDeleted = "Menu item deleted successfully."
)

// menuFormData - поля формы позиции меню, возвращаемые на страницу при
// ошибке, чтобы пользователь не терял введенное.
type menuFormData struct {
	Name        string
	Category    string
	Price       string
	Description string
}

func readMenuForm(ctx fiber.Ctx) menuFormData {
	return menuFormData{
		Name:        ctx.FormValue("name"),
		Category:    ctx.FormValue("category"),
		Price:       ctx.FormValue("price"),
		Description: ctx.FormValue("description"),
	}
}

// toInput превращает поля формы во входные данные валидатора. Форма
// всегда присылает все четыре поля, поэтому все указатели заполнены.
func (f menuFormData) toInput() app.MenuItemInput {
	return app.MenuItemInput{
		Name:        &f.Name,
		Category:    &f.Category,
		Price:       &f.Price,
		Description: &f.Description,
	}
}

func (h *Handler) createPageModel(ctx fiber.Ctx, form menuFormData, errMsg, successMsg any) fiber.Map {
	session := middleware.CurrentSession(ctx)
	return fiber.Map{
		"username":   session.Username,
		"error":      errMsg,
		"success":    successMsg,
		"formData":   form,
		"categories": entities.Categories,
	}
}

// CreatePage показывает форму создания позиции меню.
func (h *Handler) CreatePage(ctx fiber.Ctx) error {
	return render(ctx, "create", h.createPageModel(ctx, menuFormData{}, nil, nil))
}

// Create обрабатывает отправку формы создания.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogPageCreate)

	form := readMenuForm(ctx)

	if msg := validateMenuForm(form); msg != "" {
		return render(ctx, "create", h.createPageModel(ctx, form, msg, nil))
	}

	_, validationErrs, err := h.menuUseCase.Create(requestCtx, form.toInput())
	if err != nil {
		log.Error(requestCtx, errCreateFailed, zap.Error(err))
		return render(ctx, "create", h.createPageModel(ctx, form, errCreateFailed, nil))
	}
	if len(validationErrs) > 0 {
		return render(ctx, "create", h.createPageModel(ctx, form, validationErrs[0], nil))
	}

	return render(ctx, "create", h.createPageModel(ctx, menuFormData{}, nil, successItemCreated))
}

// validateMenuForm проверяет, что оба обязательных поля формы заполнены.
// Разбор цены происходит дальше, в общем валидаторе.
func validateMenuForm(form menuFormData) string {
	if form.Name == "" || form.Price == "" {
		return errNameAndPriceRequired
	}
	return ""
}

func (h *Handler) updatePageModel(ctx fiber.Ctx, items []*entities.MenuItem, selected *entities.MenuItem, form menuFormData, errMsg, successMsg any) fiber.Map {
	session := middleware.CurrentSession(ctx)
	return fiber.Map{
		"username":     session.Username,
		"items":        items,
		"selectedItem": selected,
		"formData":     form,
		"error":        errMsg,
		"success":      successMsg,
	}
}

func (h *Handler) listAll(ctx context.Context) []*entities.MenuItem {
	items, err := h.menuUseCase.List(ctx, app.FilterParams{})
	if err != nil {
		logger.Log(ctx).Error(ctx, errLoadingItems, zap.Error(err))
		return nil
	}
	return items
}

// UpdatePage показывает список позиций и форму редактирования выбранной.
func (h *Handler) UpdatePage(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogPageUpdate)

	items, err := h.menuUseCase.List(requestCtx, app.FilterParams{})
	if err != nil {
		log.Error(requestCtx, errLoadingItems, zap.Error(err))
		return render(ctx, "update", h.updatePageModel(ctx, nil, nil, menuFormData{}, errLoadingItems, nil))
	}

	var selected *entities.MenuItem
	if id := ctx.Query("id"); id != "" {
		selected, err = h.menuUseCase.Get(requestCtx, id)
		if err != nil {
			if errors.Is(err, entities.ErrMenuItemNotFound) {
				return render(ctx, "update", h.updatePageModel(ctx, items, nil, menuFormData{}, errSelectedNotFound, nil))
			}
			log.Error(requestCtx, errLoadingItems, zap.Error(err))
			return render(ctx, "update", h.updatePageModel(ctx, items, nil, menuFormData{}, errLoadingItems, nil))
		}
	}

	return render(ctx, "update", h.updatePageModel(ctx, items, selected, menuFormData{}, nil, nil))
}

// Update обрабатывает отправку формы редактирования.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogPageUpdate)

	id := ctx.Params("id")
	form := readMenuForm(ctx)

	if msg := validateMenuForm(form); msg != "" {
		items := h.listAll(requestCtx)
		selected, _ := h.menuUseCase.Get(requestCtx, id)
		return render(ctx, "update", h.updatePageModel(ctx, items, selected, form, msg, nil))
	}

	updated, validationErrs, err := h.menuUseCase.Update(requestCtx, id, form.toInput(), false)
	if err != nil {
		if errors.Is(err, entities.ErrMenuItemNotFound) {
			items := h.listAll(requestCtx)
			return render(ctx, "update", h.updatePageModel(ctx, items, nil, menuFormData{}, errItemNotFound, nil))
		}
		log.Error(requestCtx, errUpdateFailed, zap.Error(err))
		items := h.listAll(requestCtx)
		selected, _ := h.menuUseCase.Get(requestCtx, id)
		return render(ctx, "update", h.updatePageModel(ctx, items, selected, form, errUpdateFailed, nil))
	}
	if len(validationErrs) > 0 {
		items := h.listAll(requestCtx)
		selected, _ := h.menuUseCase.Get(requestCtx, id)
		return render(ctx, "update", h.updatePageModel(ctx, items, selected, form, validationErrs[0], nil))
	}

	items := h.listAll(requestCtx)
	return render(ctx, "update", h.updatePageModel(ctx, items, updated, menuFormData{}, nil, successItemUpdated))
}

// Delete обрабатывает удаление позиции со страницы редактирования.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogPageDelete)

	err := h.menuUseCase.Delete(requestCtx, ctx.Params("id"))
	items := h.listAll(requestCtx)

	if err != nil {
		if errors.Is(err, entities.ErrMenuItemNotFound) {
			return render(ctx, "update", h.updatePageModel(ctx, items, nil, menuFormData{}, errItemNotFound, nil))
		}
		log.Error(requestCtx, errDeleteFailed, zap.Error(err))
		return render(ctx, "update", h.updatePageModel(ctx, items, nil, menuFormData{}, errDeleteFailed, nil))
	}

	return render(ctx, "update", h.updatePageModel(ctx, items, nil, menuFormData{}, nil, successItemDeleted))
}

// Read показывает страницу поиска по меню.
func (h *Handler) Read(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogPageRead)

	session := middleware.CurrentSession(ctx)
	params := app.FilterParams{
		Name:     ctx.Query("name"),
		Category: ctx.Query("category", app.CategoryAll),
		MinPrice: ctx.Query("minPrice"),
		MaxPrice: ctx.Query("maxPrice"),
	}
	search := fiber.Map{
		"name":     params.Name,
		"category": params.Category,
		"minPrice": params.MinPrice,
		"maxPrice": params.MaxPrice,
	}

	results, err := h.menuUseCase.List(requestCtx, params)
	if err != nil {
		log.Error(requestCtx, errSearchFailed, zap.Error(err))
		return render(ctx, "read", fiber.Map{
			"username":   session.Username,
			"results":    []*entities.MenuItem{},
			"categories": []string{},
			"search":     search,
			"error":      errSearchFailed,
		})
	}

	categories, err := h.menuUseCase.Categories(requestCtx)
	if err != nil {
		log.Error(requestCtx, errSearchFailed, zap.Error(err))
		categories = []string{}
	}

	return render(ctx, "read", fiber.Map{
		"username":   session.Username,
		"results":    results,
		"categories": categories,
		"search":     search,
		"error":      nil,
	})
}
