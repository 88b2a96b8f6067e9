package services

import (
	"context"

	"github.com/Dias221467/Animal_Rescue/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportStore is the persistence the report lifecycle needs. *repository.ReportRepository implements it.
type ReportStore interface {
	CreateReport(ctx context.Context, report *models.Report) (*models.Report, error)
	GetReportByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error)
	ListReports(ctx context.Context) ([]models.Report, error)
	ListNearby(ctx context.Context, point models.Location, maxMeters float64, limit int64) ([]models.Report, error)
	ClaimReport(ctx context.Context, id, ngoID primitive.ObjectID, ngoName string) (*models.Report, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Report, error)
	DeleteReport(ctx context.Context, id primitive.ObjectID) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

// NotificationStore persists notifications. *repository.NotificationRepository implements it.
type NotificationStore interface {
	CreateNotification(ctx context.Context, notif *models.Notification) error
	GetNGONotifications(ctx context.Context, ngoID primitive.ObjectID, unreadOnly bool) ([]models.Notification, error)
	MarkAsRead(ctx context.Context, id, ngoID primitive.ObjectID) error
}

// NGODirectory is read access to registered NGOs.
type NGODirectory interface {
	ListAll(ctx context.Context) ([]models.NGOSummary, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.NGOSummary, error)
}

// NGOStore is the account storage behind NGO registration and login.
type NGOStore interface {
	NGODirectory
	CreateNGO(ctx context.Context, ngo *models.NGO) (*models.NGO, error)
	GetNGOByEmail(ctx context.Context, email string) (*models.NGO, error)
	GetNGOByID(ctx context.Context, id primitive.ObjectID) (*models.NGO, error)
	UpdateNGO(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.NGO, error)
}

// ApplicationStore persists adoption and volunteer applications.
type ApplicationStore interface {
	CreateAdoption(ctx context.Context, app *models.AdoptionApplication) (*models.AdoptionApplication, error)
	CreateVolunteer(ctx context.Context, v *models.Volunteer) (*models.Volunteer, error)
	GetAdoptionsByNGO(ctx context.Context, ngoID primitive.ObjectID) ([]models.AdoptionApplication, error)
	GetVolunteersByNGO(ctx context.Context, ngoID primitive.ObjectID) ([]models.Volunteer, error)
	UpdateAdoptionStatus(ctx context.Context, id, ngoID primitive.ObjectID, status string) (*models.AdoptionApplication, error)
	UpdateVolunteerStatus(ctx context.Context, id, ngoID primitive.ObjectID, status string) (*models.Volunteer, error)
}

// AnimalStore persists the adoption catalog. *repository.AnimalRepository implements it.
type AnimalStore interface {
	CreateAnimal(ctx context.Context, animal *models.Animal) (*models.Animal, error)
	GetAnimalsByNGO(ctx context.Context, ngoID primitive.ObjectID) ([]models.Animal, error)
	ListAvailable(ctx context.Context) ([]models.AnimalListing, error)
	DeleteAnimal(ctx context.Context, id, ngoID primitive.ObjectID) (*models.Animal, error)
}
