package handler

import (
	"github.com/gofiber/fiber/v2"

	"gestione-turni/internal/middleware"
	"gestione-turni/internal/service/notification"
	"gestione-turni/internal/service/swap"
)

type NotificationHandler struct {
	notifService notification.Service
	swapService  swap.Service
}

func NewNotificationHandler(notifService notification.Service, swapService swap.Service) *NotificationHandler {
	return &NotificationHandler{
		notifService: notifService,
		swapService:  swapService,
	}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	unreadOnly := c.Query("unread_only") == "true"
	params := getPaginationParams(c)

	result, err := h.notifService.List(c.Context(), unreadOnly, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *NotificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	count, err := h.notifService.GetUnreadCount(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count": count,
	})
}

// Respond settles a pending swap request. The decision arrives as
// {"response": "approved"} or {"response": "rejected"}.
func (h *NotificationHandler) Respond(c *fiber.Ctx) error {
	var input struct {
		Response string `json:"response"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, notifs, err := h.swapService.Respond(c.Context(), c.Params("id"), swap.Decision(input.Response))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"shift":         updated,
		"notifications": notifs,
	})
}

// MarkRead flips the read flag on every notification whose id appears in the
// request body. Unknown ids are skipped instead of failing the batch.
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	var input struct {
		IDs []string `json:"ids"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	touched, err := h.notifService.MarkRead(c.Context(), input.IDs)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"updated": touched,
	})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.notifService.MarkAllRead(c.Context()); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	if err := h.notifService.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
