package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dias221467/Animal_Rescue/internal/metrics"
	"github.com/Dias221467/Animal_Rescue/internal/models"
	"github.com/Dias221467/Animal_Rescue/internal/repository"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

const reportCreatedMessage = "New animal rescue report submitted"

// Event is something NGOs should hear about. A nil Target addresses every NGO in the directory.
type Event struct {
	Type    string
	Message string
	Target  *primitive.ObjectID
}

// ReportCreated addresses every registered NGO.
func ReportCreated() Event {
	return Event{Type: models.NotificationTypeReport, Message: reportCreatedMessage}
}

// AdoptionSubmitted addresses the NGO the application was sent to. The id is not checked
// against the directory.
func AdoptionSubmitted(petName string, ngoID primitive.ObjectID) Event {
	return Event{
		Type:    models.NotificationTypeAdoption,
		Message: fmt.Sprintf("New adoption application for %s", petName),
		Target:  &ngoID,
	}
}

// VolunteerSubmitted addresses the NGO the volunteer applied to.
func VolunteerSubmitted(fullName string, ngoID primitive.ObjectID) Event {
	return Event{
		Type:    models.NotificationTypeVolunteer,
		Message: fmt.Sprintf("New volunteer application from %s", fullName),
		Target:  &ngoID,
	}
}

// Delivery is the outcome of writing one recipient's notification.
type Delivery struct {
	NGOID          primitive.ObjectID
	NotificationID primitive.ObjectID
	Err            error
}

// FanOutResult holds one Delivery per recipient, in no particular order.
type FanOutResult []Delivery

// Written counts the notifications that were persisted.
func (r FanOutResult) Written() int {
	n := 0
	for _, d := range r {
		if d.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the deliveries whose write failed.
func (r FanOutResult) Failed() []Delivery {
	var failed []Delivery
	for _, d := range r {
		if d.Err != nil {
			failed = append(failed, d)
		}
	}
	return failed
}

// NotificationService fans events out into per-NGO notifications and serves them back to NGOs.
type NotificationService struct {
	repo      NotificationStore
	directory NGODirectory
	workers   int
}

func NewNotificationService(repo NotificationStore, directory NGODirectory, workers int) *NotificationService {
	if workers < 1 {
		workers = 1
	}
	return &NotificationService{
		repo:      repo,
		directory: directory,
		workers:   workers,
	}
}

// FanOut writes one notification per recipient of the event. Broadcast events read the
// directory once, so NGOs registered afterwards are not included. Each write is independent:
// failures are reported in the result and never undo other writes. The returned error is
// non-nil only when the audience could not be resolved.
func (s *NotificationService) FanOut(ctx context.Context, ev Event) (FanOutResult, error) {
	recipients, err := s.audience(ctx, ev)
	if err != nil {
		return nil, err
	}

	results := make(FanOutResult, len(recipients))
	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, ngoID := range recipients {
		i, ngoID := i, ngoID
		g.Go(func() error {
			results[i] = s.deliver(ctx, ev, ngoID)
			return nil
		})
	}
	_ = g.Wait()

	logrus.WithFields(logrus.Fields{
		"type":       ev.Type,
		"recipients": len(results),
		"written":    results.Written(),
	}).Info("Notification fan-out finished")
	return results, nil
}

func (s *NotificationService) audience(ctx context.Context, ev Event) ([]primitive.ObjectID, error) {
	if ev.Target != nil {
		return []primitive.ObjectID{*ev.Target}, nil
	}

	ngos, err := s.directory.ListAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to read NGO directory for fan-out")
		return nil, fmt.Errorf("%w: list ngos: %v", ErrStorage, err)
	}

	ids := make([]primitive.ObjectID, 0, len(ngos))
	for _, ngo := range ngos {
		ids = append(ids, ngo.ID)
	}
	return ids, nil
}

func (s *NotificationService) deliver(ctx context.Context, ev Event, ngoID primitive.ObjectID) Delivery {
	target := ngoID
	notif := &models.Notification{
		Type:    ev.Type,
		Message: ev.Message,
		NGOID:   &target,
		Read:    false,
	}

	if err := s.repo.CreateNotification(ctx, notif); err != nil {
		metrics.NotificationFailures.WithLabelValues(ev.Type).Inc()
		logrus.WithError(err).WithFields(logrus.Fields{
			"ngoID": ngoID.Hex(),
			"type":  ev.Type,
		}).Warn("Failed to write notification")
		return Delivery{NGOID: ngoID, Err: err}
	}

	metrics.NotificationsWritten.WithLabelValues(ev.Type).Inc()
	return Delivery{NGOID: ngoID, NotificationID: notif.ID}
}

// GetNGONotifications returns the notifications addressed to an NGO, newest first.
func (s *NotificationService) GetNGONotifications(ctx context.Context, ngoID primitive.ObjectID, unreadOnly bool) ([]models.Notification, error) {
	notifications, err := s.repo.GetNGONotifications(ctx, ngoID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return notifications, nil
}

// MarkNotificationAsRead sets the read flag on a notification owned by the NGO.
func (s *NotificationService) MarkNotificationAsRead(ctx context.Context, notifID, ngoID primitive.ObjectID) error {
	err := s.repo.MarkAsRead(ctx, notifID, ngoID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: notification %s", ErrNotFound, notifID.Hex())
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}
