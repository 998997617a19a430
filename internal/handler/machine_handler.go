package handler

import (
	"github.com/gofiber/fiber/v2"

	"gestione-turni/internal/domain"
	"gestione-turni/internal/middleware"
	"gestione-turni/internal/service/machine"
)

type MachineHandler struct {
	machineService machine.Service
}

func NewMachineHandler(machineService machine.Service) *MachineHandler {
	return &MachineHandler{machineService: machineService}
}

func (h *MachineHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateMachineInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.machineService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *MachineHandler) List(c *fiber.Ctx) error {
	machines, err := h.machineService.List(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(machines)
}

func (h *MachineHandler) Get(c *fiber.Ctx) error {
	found, err := h.machineService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *MachineHandler) Update(c *fiber.Ctx) error {
	var input domain.UpdateMachineInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.machineService.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *MachineHandler) Delete(c *fiber.Ctx) error {
	if err := h.machineService.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
