package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dias221467/Animal_Rescue/internal/models"
	"github.com/Dias221467/Animal_Rescue/internal/repository"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplicationService takes adoption and volunteer applications and tells the target NGO.
type ApplicationService struct {
	repo          ApplicationStore
	notifications *NotificationService
}

func NewApplicationService(repo ApplicationStore, notifications *NotificationService) *ApplicationService {
	return &ApplicationService{
		repo:          repo,
		notifications: notifications,
	}
}

// SubmitAdoption stores the application and writes one adoption notification for its NGO.
func (s *ApplicationService) SubmitAdoption(ctx context.Context, app *models.AdoptionApplication) (*models.AdoptionApplication, error) {
	app.PetName = strings.TrimSpace(app.PetName)
	if app.NGOID.IsZero() {
		return nil, fmt.Errorf("%w: ngoId is required", ErrValidation)
	}
	if app.PetID.IsZero() {
		return nil, fmt.Errorf("%w: petId is required", ErrValidation)
	}
	app.Status = models.ApplicationStatusPending

	created, err := s.repo.CreateAdoption(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	s.notify(ctx, AdoptionSubmitted(created.PetName, created.NGOID))

	logrus.WithFields(logrus.Fields{
		"applicationID": created.ID.Hex(),
		"ngoID":         created.NGOID.Hex(),
	}).Info("Adoption application submitted")
	return created, nil
}

// SubmitVolunteer stores the application and writes one volunteer notification for its NGO.
func (s *ApplicationService) SubmitVolunteer(ctx context.Context, v *models.Volunteer) (*models.Volunteer, error) {
	v.FullName = strings.TrimSpace(v.FullName)
	if v.NGOID.IsZero() {
		return nil, fmt.Errorf("%w: ngoId is required", ErrValidation)
	}
	v.Status = models.ApplicationStatusPending

	created, err := s.repo.CreateVolunteer(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	s.notify(ctx, VolunteerSubmitted(created.FullName, created.NGOID))

	logrus.WithFields(logrus.Fields{
		"volunteerID": created.ID.Hex(),
		"ngoID":       created.NGOID.Hex(),
	}).Info("Volunteer application submitted")
	return created, nil
}

// GetAdoptions returns the adoption applications sent to an NGO.
func (s *ApplicationService) GetAdoptions(ctx context.Context, ngoID primitive.ObjectID) ([]models.AdoptionApplication, error) {
	apps, err := s.repo.GetAdoptionsByNGO(ctx, ngoID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return apps, nil
}

// GetVolunteers returns the volunteer applications sent to an NGO.
func (s *ApplicationService) GetVolunteers(ctx context.Context, ngoID primitive.ObjectID) ([]models.Volunteer, error) {
	volunteers, err := s.repo.GetVolunteersByNGO(ctx, ngoID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return volunteers, nil
}

// UpdateAdoptionStatus approves, rejects or resets an adoption application owned by the NGO.
func (s *ApplicationService) UpdateAdoptionStatus(ctx context.Context, appID string, ngoID primitive.ObjectID, status string) (*models.AdoptionApplication, error) {
	id, err := parseApplicationUpdate(appID, status)
	if err != nil {
		return nil, err
	}

	app, err := s.repo.UpdateAdoptionStatus(ctx, id, ngoID, status)
	if err != nil {
		return nil, translateApplicationError(err, appID)
	}

	logrus.WithFields(logrus.Fields{
		"applicationID": appID,
		"ngoID":         ngoID.Hex(),
		"status":        status,
	}).Info("Adoption application status updated")
	return app, nil
}

// UpdateVolunteerStatus approves, rejects or resets a volunteer application owned by the NGO.
func (s *ApplicationService) UpdateVolunteerStatus(ctx context.Context, volunteerID string, ngoID primitive.ObjectID, status string) (*models.Volunteer, error) {
	id, err := parseApplicationUpdate(volunteerID, status)
	if err != nil {
		return nil, err
	}

	v, err := s.repo.UpdateVolunteerStatus(ctx, id, ngoID, status)
	if err != nil {
		return nil, translateApplicationError(err, volunteerID)
	}

	logrus.WithFields(logrus.Fields{
		"volunteerID": volunteerID,
		"ngoID":       ngoID.Hex(),
		"status":      status,
	}).Info("Volunteer application status updated")
	return v, nil
}

func parseApplicationUpdate(rawID, status string) (primitive.ObjectID, error) {
	if !models.ValidApplicationStatus(status) {
		return primitive.NilObjectID, fmt.Errorf("%w: unknown application status %q", ErrValidation, status)
	}
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: application %s", ErrNotFound, rawID)
	}
	return id, nil
}

func translateApplicationError(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: application %s", ErrNotFound, id)
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}

// notify never fails the submission; a lost notification is logged by the fan-out itself.
func (s *ApplicationService) notify(ctx context.Context, ev Event) {
	if _, err := s.notifications.FanOut(ctx, ev); err != nil {
		logrus.WithError(err).WithField("type", ev.Type).Warn("Application notification not written")
	}
}
