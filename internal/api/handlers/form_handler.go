package handlers

import (
	"errors"
	"fmt"

	"college-hub/internal/dto"
	"college-hub/internal/models"
	"college-hub/internal/repository"
	"college-hub/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type FormHandler struct {
	recordRepo    *repository.RecordRepository
	exportService *service.ExportService
	logger        *zap.Logger
}

func NewFormHandler(recordRepo *repository.RecordRepository, exportService *service.ExportService, logger *zap.Logger) *FormHandler {
	return &FormHandler{
		recordRepo:    recordRepo,
		exportService: exportService,
		logger:        logger,
	}
}

// submissionCategory routes a form_type value to its store category.
// Anything unrecognized lands in the contact store.
func submissionCategory(formType string) models.FormCategory {
	switch formType {
	case "admission":
		return models.CategoryAdmission
	case "registration":
		return models.CategoryRegistration
	default:
		return models.CategoryContact
	}
}

// SubmitForm godoc
// @Summary Accept a public contact or admission form
// @Tags forms
// @Accept json
// @Produce json
// @Success 200 {object} dto.SubmitStatusResponse
// @Router /api/submit-form [post]
func (h *FormHandler) SubmitForm(c *fiber.Ctx) error {
	var record models.Record
	if err := c.BodyParser(&record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request body",
		})
	}

	formType, _ := record["form_type"].(string)
	category := models.CategoryContact
	if formType == "admission" {
		category = models.CategoryAdmission
	}

	if err := h.recordRepo.Append(category, record); err != nil {
		h.logger.Error("Failed to store submission", zap.Error(err), zap.String("category", string(category)))
		// Public caller: keep the failure generic.
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// RegisterEvent godoc
// @Summary Accept a public event registration
// @Tags forms
// @Accept json
// @Produce json
// @Success 200 {object} dto.SubmitStatusResponse
// @Router /api/register-event [post]
func (h *FormHandler) RegisterEvent(c *fiber.Ctx) error {
	var record models.Record
	if err := c.BodyParser(&record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request body",
		})
	}

	if err := h.recordRepo.Append(models.CategoryRegistration, record); err != nil {
		h.logger.Error("Failed to store registration", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// ListSubmissions godoc
// @Summary List records of one category
// @Tags forms
// @Produce json
// @Param type query string false "contact, admission or registration" default(contact)
// @Security Bearer
// @Success 200 {array} models.Record
// @Router /api/submissions [get]
func (h *FormHandler) ListSubmissions(c *fiber.Ctx) error {
	category := submissionCategory(c.Query("type", "contact"))

	records, err := h.recordRepo.List(category)
	if err != nil {
		h.logger.Error("Failed to list submissions", zap.Error(err), zap.String("category", string(category)))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	return c.JSON(records)
}

// UpdateStatus godoc
// @Summary Update the review status of a record
// @Tags forms
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.SubmitStatusResponse
// @Failure 404 {object} dto.SubmitStatusResponse
// @Router /api/submissions/status [post]
func (h *FormHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil || req.Index == nil || req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "index and status are required",
		})
	}

	category := models.CategoryContact
	if req.FormType == "admission" {
		category = models.CategoryAdmission
	}

	if err := h.recordRepo.UpdateStatus(category, *req.Index, req.Status); err != nil {
		return h.storeError(c, err, category)
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// DeleteSubmission godoc
// @Summary Delete a record
// @Description Deletes despite the POST verb; kept for dashboard compatibility
// @Tags forms
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.SubmitStatusResponse
// @Failure 404 {object} dto.SubmitStatusResponse
// @Router /api/submissions [post]
func (h *FormHandler) DeleteSubmission(c *fiber.Ctx) error {
	var req dto.DeleteSubmissionRequest
	if err := c.BodyParser(&req); err != nil || req.Index == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "index is required",
		})
	}

	category := submissionCategory(req.FormType)

	if err := h.recordRepo.Delete(category, *req.Index); err != nil {
		return h.storeError(c, err, category)
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// ExportCSV godoc
// @Summary Export a category as CSV
// @Tags forms
// @Produce text/csv
// @Param category path string true "admissions, registrations or contact"
// @Security Bearer
// @Router /api/export/{category} [get]
func (h *FormHandler) ExportCSV(c *fiber.Ctx) error {
	category := c.Params("category")

	data, err := h.exportService.CSV(category)
	if err != nil {
		return h.exportError(c, err, category)
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s.csv", category))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(data)
}

// ExportXLSX godoc
// @Summary Export a category as a spreadsheet
// @Tags forms
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param category path string true "admissions, registrations or contact"
// @Security Bearer
// @Router /api/export/{category}/xlsx [get]
func (h *FormHandler) ExportXLSX(c *fiber.Ctx) error {
	category := c.Params("category")

	data, err := h.exportService.XLSX(category)
	if err != nil {
		return h.exportError(c, err, category)
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s.xlsx", category))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(data)
}

func (h *FormHandler) storeError(c *fiber.Ctx, err error, category models.FormCategory) error {
	if errors.Is(err, repository.ErrIndexOutOfRange) || errors.Is(err, repository.ErrUnknownCategory) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status": "error",
		})
	}
	h.logger.Error("Record store failure", zap.Error(err), zap.String("category", string(category)))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status":  "error",
		"message": err.Error(),
	})
}

func (h *FormHandler) exportError(c *fiber.Ctx, err error, category string) error {
	if errors.Is(err, service.ErrNoData) {
		return c.Status(fiber.StatusNotFound).SendString("No data")
	}
	h.logger.Error("Export failed", zap.Error(err), zap.String("category", category))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status":  "error",
		"message": err.Error(),
	})
}
