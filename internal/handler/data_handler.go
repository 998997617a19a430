package handler

import (
	"github.com/gofiber/fiber/v2"

	"gestione-turni/internal/service/export"
)

type DataHandler struct {
	exportService export.Service
}

func NewDataHandler(exportService export.Service) *DataHandler {
	return &DataHandler{exportService: exportService}
}

// GetDocument returns the whole board in one payload so clients can hydrate
// their local state with a single request.
func (h *DataHandler) GetDocument(c *fiber.Ctx) error {
	doc, err := h.exportService.Document(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(doc)
}
