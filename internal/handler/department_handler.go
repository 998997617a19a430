package handler

import (
	"github.com/gofiber/fiber/v2"

	"gestione-turni/internal/domain"
	"gestione-turni/internal/middleware"
	"gestione-turni/internal/service/department"
)

type DepartmentHandler struct {
	departmentService department.Service
}

func NewDepartmentHandler(departmentService department.Service) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateDepartmentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.departmentService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	departments, err := h.departmentService.List(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(departments)
}

func (h *DepartmentHandler) Get(c *fiber.Ctx) error {
	found, err := h.departmentService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
	var input domain.UpdateDepartmentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.departmentService.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.departmentService.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
