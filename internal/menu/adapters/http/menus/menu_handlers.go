// Package menus содержит HTTP обработчики JSON API позиций меню.
package menus

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"restomenu/internal/menu/adapters/http/dto"
	"restomenu/internal/menu/app"
	"restomenu/internal/menu/domain/entities"
	"restomenu/pkg/logger"
)

// Константы для логирования и сообщений API.
const (
	LogHandlerList   = "menu handler: list"
	LogHandlerGet    = "menu handler: get"
	LogHandlerCreate = "menu handler: create"
	LogHandlerUpdate = "menu handler: update"
	LogHandlerPatch  = "menu handler: patch"
	LogHandlerDelete = "menu handler: delete"

	ErrorInvalidRequest = "invalid request"

	MsgItemCreated = "Menu item created."
	MsgItemUpdated = "Menu item updated."
	MsgItemDeleted = "Menu item deleted."

	ErrItemNotFound  = "Menu item not found."
	ErrFetchingItems = "Failed to fetch menu items."
	ErrFetchingItem  = "Failed to fetch the menu item."
	ErrCreatingItem  = "Failed to create menu item."
	ErrUpdatingItem  = "Failed to update menu item."
	ErrDeletingItem  = "Failed to delete menu item."
)

// Вспомогательная функция для отправки JSON-ошибки.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Handler содержит HTTP обработчики JSON API меню.
type Handler struct {
	menuUseCase *app.MenuUseCase
}

// NewHandler создает новый экземпляр обработчика API меню.
func NewHandler(menuUseCase *app.MenuUseCase) *Handler {
	return &Handler{menuUseCase: menuUseCase}
}

// List возвращает позиции меню, удовлетворяющие параметрам запроса.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerList)

	items, err := h.menuUseCase.List(requestCtx, app.FilterParams{
		Name:     ctx.Query("name"),
		Category: ctx.Query("category"),
		MinPrice: ctx.Query("minPrice"),
		MaxPrice: ctx.Query("maxPrice"),
	})
	if err != nil {
		log.Error(requestCtx, ErrFetchingItems, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrFetchingItems)
	}

	if err := ctx.JSON(fiber.Map{"data": items, "count": len(items)}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Get возвращает одну позицию меню по идентификатору.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGet)

	item, err := h.menuUseCase.Get(requestCtx, ctx.Params("id"))
	if err != nil {
		if errors.Is(err, entities.ErrMenuItemNotFound) {
			return sendErrorResponse(ctx, http.StatusNotFound, ErrItemNotFound)
		}
		log.Error(requestCtx, ErrFetchingItem, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrFetchingItem)
	}

	if err := ctx.JSON(fiber.Map{"data": item}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Create создает новую позицию меню.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	var req dto.MenuItemRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	item, validationErrs, err := h.menuUseCase.Create(requestCtx, req.ToInput())
	if err != nil {
		log.Error(requestCtx, ErrCreatingItem, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrCreatingItem)
	}
	if len(validationErrs) > 0 {
		if err := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{"errors": validationErrs}); err != nil {
			return fmt.Errorf("sending response: %w", err)
		}
		return nil
	}

	if err := ctx.Status(http.StatusCreated).JSON(fiber.Map{"message": MsgItemCreated, "data": item}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Update выполняет полную замену полей позиции меню.
func (h *Handler) Update(ctx fiber.Ctx) error {
	return h.update(ctx, false, LogHandlerUpdate)
}

// Patch обновляет только присутствующие в запросе поля.
func (h *Handler) Patch(ctx fiber.Ctx) error {
	return h.update(ctx, true, LogHandlerPatch)
}

func (h *Handler) update(ctx fiber.Ctx, partial bool, logMsg string) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, logMsg)

	var req dto.MenuItemRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	item, validationErrs, err := h.menuUseCase.Update(requestCtx, ctx.Params("id"), req.ToInput(), partial)
	if err != nil {
		if errors.Is(err, entities.ErrMenuItemNotFound) {
			return sendErrorResponse(ctx, http.StatusNotFound, ErrItemNotFound)
		}
		log.Error(requestCtx, ErrUpdatingItem, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrUpdatingItem)
	}
	if len(validationErrs) > 0 {
		if err := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{"errors": validationErrs}); err != nil {
			return fmt.Errorf("sending response: %w", err)
		}
		return nil
	}

	if err := ctx.JSON(fiber.Map{"message": MsgItemUpdated, "data": item}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Delete удаляет позицию меню по идентификатору.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDelete)

	if err := h.menuUseCase.Delete(requestCtx, ctx.Params("id")); err != nil {
		if errors.Is(err, entities.ErrMenuItemNotFound) {
			return sendErrorResponse(ctx, http.StatusNotFound, ErrItemNotFound)
		}
		log.Error(requestCtx, ErrDeletingItem, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrDeletingItem)
	}

	if err := ctx.JSON(fiber.Map{"message": MsgItemDeleted}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
