package handler

import (
	"encoding/base64"
	"log"

	"github.com/gofiber/fiber/v2"

	"candidate-tracker/internal/importer"
	"candidate-tracker/internal/media"
	"candidate-tracker/internal/middleware"
	"candidate-tracker/internal/store"
)

type ImportHandler struct {
	store    *store.Store
	uploader *media.Uploader
}

func NewImportHandler(st *store.Store, uploader *media.Uploader) *ImportHandler {
	return &ImportHandler{store: st, uploader: uploader}
}

type importRequest struct {
	Rows     []importer.Row `json:"rows"`
	FileName string         `json:"file_name"`
	File     string         `json:"file"`
}

func (h *ImportHandler) ImportCandidates(c *fiber.Ctx) error {
	var req importRequest
	if err := c.BodyParser(&req); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if len(req.Rows) == 0 {
		return middleware.BadRequest("No rows to import")
	}

	inputs, rowErrs, err := importer.ParseCandidates(req.Rows)
	if err != nil {
		return err
	}

	result, err := h.store.BulkAddCandidates(c.Context(), inputs)
	if err != nil {
		return err
	}
	result.FailedCount += len(rowErrs)
	result.Errors = append(rowErrs, result.Errors...)

	h.archiveSource(c, req)
	return c.JSON(result)
}

func (h *ImportHandler) ImportSavedCandidates(c *fiber.Ctx) error {
	var req importRequest
	if err := c.BodyParser(&req); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if len(req.Rows) == 0 {
		return middleware.BadRequest("No rows to import")
	}

	inputs, rowErrs, err := importer.ParseSavedCandidates(req.Rows)
	if err != nil {
		return err
	}

	result, err := h.store.BulkAddSavedCandidates(c.Context(), inputs)
	if err != nil {
		return err
	}
	result.FailedCount += len(rowErrs)
	result.Errors = append(rowErrs, result.Errors...)

	h.archiveSource(c, req)
	return c.JSON(result)
}

// archiveSource keeps a copy of the uploaded spreadsheet for auditing.
// Failures are logged and never fail the import itself.
func (h *ImportHandler) archiveSource(c *fiber.Ctx, req importRequest) {
	if h.uploader == nil || req.File == "" {
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.File)
	if err != nil {
		log.Printf("Failed to decode import file %s: %v", req.FileName, err)
		return
	}

	if _, err := h.uploader.SaveImportFile(c.Context(), req.FileName, data); err != nil {
		log.Printf("Failed to archive import file %s: %v", req.FileName, err)
	}
}
