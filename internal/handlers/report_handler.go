package handlers

import (
	"errors"
	"log/slog"

	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/voiceforher/report-intake/internal/caller"
	"github.com/voiceforher/report-intake/internal/dto"
	"github.com/voiceforher/report-intake/internal/middleware"
	"github.com/voiceforher/report-intake/internal/services"
)

const missingFieldsMessage = "All fields (age, location, ethnic_group, type_of_abuse, description) are required."

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// SubmitReport handles POST /reports
func (h *ReportHandler) SubmitReport(c *fiber.Ctx) error {
	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	report, err := h.reportService.Submit(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: missingFieldsMessage,
			})
		}
		return storeFailure(c, "submit_report", err, "Error submitting the report")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateReportResponse{ID: report.ID})
}

// ListReports handles GET /reports
func (h *ReportHandler) ListReports(c *fiber.Ctx) error {
	reports, err := h.reportService.List(c.UserContext())
	if err != nil {
		return storeFailure(c, "list_reports", err, "Error retrieving reports")
	}

	if who, err := caller.FromCtx(c); err == nil {
		slog.Info("reports listed", "subject", who.Subject, "count", len(reports))
	}

	return c.JSON(dto.NewReportResponses(reports))
}

// ReportSummary handles GET /reports-summary
func (h *ReportHandler) ReportSummary(c *fiber.Ctx) error {
	summary, err := h.reportService.Summarize(c.UserContext())
	if err != nil {
		return storeFailure(c, "summarize_reports", err, "Error retrieving report summary")
	}
	return c.JSON(summary)
}

// storeFailure logs the full error server-side and answers with a generic 500.
func storeFailure(c *fiber.Ctx, action string, err error, message string) error {
	slog.Error("report store operation failed",
		"action", action,
		"method", c.Method(),
		"path", c.Path(),
		"trace_id", middleware.RequestID(c),
		"error", err.Error(),
	)
	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}
