package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/voiceforher/report-intake/internal/dto"
	"github.com/voiceforher/report-intake/internal/models"
	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("all fields (age, location, ethnic_group, type_of_abuse, description) are required")
	ErrStore      = errors.New("report store failure")
)

// ReportService validates submissions and maps the three report operations
// onto single queries against the reports table.
type ReportService struct {
	db                 *gorm.DB
	includeDescription bool
}

func NewReportService(db *gorm.DB, includeDescription bool) *ReportService {
	return &ReportService{db: db, includeDescription: includeDescription}
}

// IncludesDescription reports whether List returns the description column.
func (s *ReportService) IncludesDescription() bool {
	return s.includeDescription
}

// Submit stores a report and returns it with its assigned id.
func (s *ReportService) Submit(ctx context.Context, req *dto.CreateReportRequest) (*models.Report, error) {
	if err := ValidateReport(req); err != nil {
		return nil, err
	}

	report := models.Report{
		Age:         req.Age,
		Location:    req.Location,
		EthnicGroup: req.EthnicGroup,
		TypeOfAbuse: req.TypeOfAbuse,
		Description: req.Description,
	}
	if err := s.db.WithContext(ctx).Create(&report).Error; err != nil {
		return nil, fmt.Errorf("%w: insert report: %v", ErrStore, err)
	}
	return &report, nil
}

// List returns every report in insertion order.
func (s *ReportService) List(ctx context.Context) ([]models.Report, error) {
	reports := make([]models.Report, 0)
	err := s.db.WithContext(ctx).
		Scopes(listColumns(s.includeDescription), insertionOrder).
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list reports: %v", ErrStore, err)
	}
	return reports, nil
}

// Summarize counts reports per ethnic group.
func (s *ReportService) Summarize(ctx context.Context) ([]models.ReportSummary, error) {
	summary := make([]models.ReportSummary, 0)
	err := s.db.WithContext(ctx).
		Model(&models.Report{}).
		Select("ethnic_group, COUNT(*) AS count").
		Group("ethnic_group").
		Scan(&summary).Error
	if err != nil {
		return nil, fmt.Errorf("%w: summarize reports: %v", ErrStore, err)
	}
	return summary, nil
}
