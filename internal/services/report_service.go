package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dias221467/Animal_Rescue/internal/metrics"
	"github.com/Dias221467/Animal_Rescue/internal/models"
	"github.com/Dias221467/Animal_Rescue/internal/repository"
	"github.com/Dias221467/Animal_Rescue/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultNearbyRadius = 5000.0
	MaxNearbyRadius     = 50000.0
	nearbyLimit         = 100
)

// UpdateOutcome tells whether a report survived a status update.
type UpdateOutcome int

const (
	// ReportActive means the report is still stored and StatusUpdate.Report holds it.
	ReportActive UpdateOutcome = iota
	// ReportCompleted means the report was completed and removed.
	ReportCompleted
)

// StatusUpdate is the result of UpdateStatus. Report is nil when Outcome is ReportCompleted.
type StatusUpdate struct {
	Outcome UpdateOutcome
	Report  *models.Report
}

// Completed reports whether the update removed the report.
func (u StatusUpdate) Completed() bool {
	return u.Outcome == ReportCompleted
}

// ReportService owns the report lifecycle: pending, claimed (in-progress), completed (deleted).
type ReportService struct {
	repo          ReportStore
	notifications *NotificationService
}

// NewReportService creates a new instance of ReportService.
func NewReportService(repo ReportStore, notifications *NotificationService) *ReportService {
	return &ReportService{
		repo:          repo,
		notifications: notifications,
	}
}

// SubmitReport stores a new pending report and then notifies every registered NGO.
// Notification failures never fail the submission; they are visible in the returned FanOutResult.
func (s *ReportService) SubmitReport(ctx context.Context, photo, description string, location models.Location) (*models.Report, FanOutResult, error) {
	photo = strings.TrimSpace(photo)
	description = strings.TrimSpace(description)

	if photo == "" {
		return nil, nil, fmt.Errorf("%w: photo is required", ErrValidation)
	}
	if description == "" {
		return nil, nil, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if len(location.Coordinates) != 2 {
		return nil, nil, fmt.Errorf("%w: %w: coordinates must be [longitude, latitude]", ErrValidation, models.ErrInvalidLocation)
	}
	location, err := models.NewLocation(location.Longitude(), location.Latitude())
	if err != nil {
		logger.Log.WithError(err).Warn("Rejected report with invalid location")
		return nil, nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	report, err := s.repo.CreateReport(ctx, &models.Report{
		Photo:       photo,
		Description: description,
		Location:    location,
		Status:      models.ReportStatusPending,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	metrics.ReportTransitions.WithLabelValues(models.ReportStatusPending).Inc()

	result, err := s.notifications.FanOut(ctx, ReportCreated())
	if err != nil {
		logger.Log.WithError(err).WithField("report_id", report.ID.Hex()).
			Error("Report stored but NGO notification fan-out failed")
	} else if failed := result.Failed(); len(failed) > 0 {
		logger.Log.WithFields(map[string]interface{}{
			"report_id": report.ID.Hex(),
			"failed":    len(failed),
			"written":   result.Written(),
		}).Warn("Report stored with partial notification fan-out")
	}

	logger.Log.WithField("report_id", report.ID.Hex()).Info("Report submitted")
	return report, result, nil
}

// UpdateStatus drives the report state machine on behalf of the acting NGO.
//
// Moving to in-progress stamps the actor as the assignee; a later claim by another NGO
// overwrites it. Moving to completed deletes the report, from any state. Any other valid
// status only changes the status field. No notifications are emitted here.
func (s *ReportService) UpdateStatus(ctx context.Context, reportID, status string, actor models.NGOSummary) (StatusUpdate, error) {
	if !models.ValidReportStatus(status) {
		return StatusUpdate{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	id, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return StatusUpdate{}, fmt.Errorf("%w: report %s", ErrNotFound, reportID)
	}

	log := logger.Log.WithFields(map[string]interface{}{
		"report_id": reportID,
		"status":    status,
		"ngo_id":    actor.ID.Hex(),
	})

	switch status {
	case models.ReportStatusCompleted:
		if err := s.repo.DeleteReport(ctx, id); err != nil {
			return StatusUpdate{}, translateStoreError(err, reportID)
		}
		metrics.ReportTransitions.WithLabelValues(status).Inc()
		log.Info("Report completed and removed")
		return StatusUpdate{Outcome: ReportCompleted}, nil

	case models.ReportStatusInProgress:
		report, err := s.repo.ClaimReport(ctx, id, actor.ID, actor.Name)
		if err != nil {
			return StatusUpdate{}, translateStoreError(err, reportID)
		}
		metrics.ReportTransitions.WithLabelValues(status).Inc()
		log.Info("Report claimed")
		return StatusUpdate{Outcome: ReportActive, Report: report}, nil

	default:
		// The assignment fields are left as they are, so a claimed report moved back to
		// pending still names its last claimant. Dashboards key on status, not on the assignee.
		report, err := s.repo.SetStatus(ctx, id, status)
		if err != nil {
			return StatusUpdate{}, translateStoreError(err, reportID)
		}
		metrics.ReportTransitions.WithLabelValues(status).Inc()
		log.Info("Report status updated")
		return StatusUpdate{Outcome: ReportActive, Report: report}, nil
	}
}

// GetReport returns one stored report.
func (s *ReportService) GetReport(ctx context.Context, reportID string) (*models.Report, error) {
	id, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return nil, fmt.Errorf("%w: report %s", ErrNotFound, reportID)
	}

	report, err := s.repo.GetReportByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, reportID)
	}
	return report, nil
}

// ListReports returns all stored reports, most recent first.
func (s *ReportService) ListReports(ctx context.Context) ([]models.Report, error) {
	reports, err := s.repo.ListReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	logger.Log.WithField("count", len(reports)).Info("Reports listed")
	return reports, nil
}

// ListNearby returns stored reports within radius metres of the point, nearest first.
// A non-positive radius means DefaultNearbyRadius.
func (s *ReportService) ListNearby(ctx context.Context, point models.Location, radius float64) ([]models.Report, error) {
	if radius <= 0 {
		radius = DefaultNearbyRadius
	}
	if radius > MaxNearbyRadius {
		return nil, fmt.Errorf("%w: radius must not exceed %.0f metres", ErrValidation, MaxNearbyRadius)
	}

	reports, err := s.repo.ListNearby(ctx, point, radius, nearbyLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return reports, nil
}

// CountByStatus returns the number of stored reports per status.
func (s *ReportService) CountByStatus(ctx context.Context) (map[string]int64, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return counts, nil
}

func translateStoreError(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: report %s", ErrNotFound, id)
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
