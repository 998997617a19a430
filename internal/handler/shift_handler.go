package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"gestione-turni/internal/domain"
	"gestione-turni/internal/middleware"
	"gestione-turni/internal/service/conflict"
	"gestione-turni/internal/service/shift"
	"gestione-turni/internal/service/swap"
)

type ShiftHandler struct {
	shiftService    shift.Service
	conflictService conflict.Service
	swapService     swap.Service
}

func NewShiftHandler(shiftService shift.Service, conflictService conflict.Service, swapService swap.Service) *ShiftHandler {
	return &ShiftHandler{
		shiftService:    shiftService,
		conflictService: conflictService,
		swapService:     swapService,
	}
}

func (h *ShiftHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateShiftInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.shiftService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ShiftHandler) List(c *fiber.Ctx) error {
	shifts, err := h.shiftService.List(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(shifts)
}

func (h *ShiftHandler) Get(c *fiber.Ctx) error {
	found, err := h.shiftService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *ShiftHandler) Update(c *fiber.Ctx) error {
	var input domain.UpdateShiftInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.shiftService.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *ShiftHandler) Delete(c *fiber.Ctx) error {
	if err := h.shiftService.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

// CheckConflict runs the overlap detector against a candidate shift without
// persisting anything. Clients call it while the shift form is still open.
func (h *ShiftHandler) CheckConflict(c *fiber.Ctx) error {
	var candidate conflict.Candidate
	if err := c.BodyParser(&candidate); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.conflictService.Check(c.Context(), candidate)
	if err != nil {
		if errors.Is(err, conflict.ErrMalformedCandidate) {
			return middleware.BadRequest("workerId, date, startTime and endTime are required")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ShiftHandler) ProposeSwap(c *fiber.Ctx) error {
	var input struct {
		TargetWorkerID string `json:"targetWorkerId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.TargetWorkerID == "" {
		return middleware.BadRequest("targetWorkerId is required")
	}

	updated, notif, err := h.swapService.Propose(c.Context(), c.Params("id"), input.TargetWorkerID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"shift":        updated,
		"notification": notif,
	})
}
