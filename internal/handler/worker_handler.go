package handler

import (
	"github.com/gofiber/fiber/v2"

	"gestione-turni/internal/domain"
	"gestione-turni/internal/middleware"
	"gestione-turni/internal/service/worker"
)

type WorkerHandler struct {
	workerService worker.Service
}

func NewWorkerHandler(workerService worker.Service) *WorkerHandler {
	return &WorkerHandler{workerService: workerService}
}

func (h *WorkerHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateWorkerInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.workerService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *WorkerHandler) List(c *fiber.Ctx) error {
	workers, err := h.workerService.List(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(workers)
}

func (h *WorkerHandler) Get(c *fiber.Ctx) error {
	found, err := h.workerService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *WorkerHandler) Update(c *fiber.Ctx) error {
	var input domain.UpdateWorkerInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.workerService.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *WorkerHandler) Delete(c *fiber.Ctx) error {
	if err := h.workerService.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *WorkerHandler) UploadAvatar(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("File is required")
	}

	if file.Size > 5*1024*1024 {
		return middleware.BadRequest("File size must be less than 5MB")
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	fileReader, err := file.Open()
	if err != nil {
		return middleware.BadRequest("Failed to read file")
	}
	defer fileReader.Close()

	updated, err := h.workerService.UploadAvatar(c.Context(), c.Params("id"), file.Filename, mimeType, file.Size, fileReader)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}
