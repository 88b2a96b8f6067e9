package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dias221467/Animal_Rescue/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ApplicationRepository stores adoption and volunteer applications.
type ApplicationRepository struct {
	adoptions  *mongo.Collection
	volunteers *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{
		adoptions:  db.Collection("adoption_applications"),
		volunteers: db.Collection("volunteers"),
	}
}

func (r *ApplicationRepository) CreateAdoption(ctx context.Context, app *models.AdoptionApplication) (*models.AdoptionApplication, error) {
	app.CreatedAt = time.Now()
	if app.Status == "" {
		app.Status = models.ApplicationStatusPending
	}

	result, err := r.adoptions.InsertOne(ctx, app)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert adoption application")
		return nil, fmt.Errorf("failed to insert adoption application: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		app.ID = id
	}
	return app, nil
}

func (r *ApplicationRepository) CreateVolunteer(ctx context.Context, v *models.Volunteer) (*models.Volunteer, error) {
	v.CreatedAt = time.Now()
	if v.Status == "" {
		v.Status = models.ApplicationStatusPending
	}

	result, err := r.volunteers.InsertOne(ctx, v)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert volunteer application")
		return nil, fmt.Errorf("failed to insert volunteer: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		v.ID = id
	}
	return v, nil
}

// GetAdoptionsByNGO returns adoption applications for an NGO, newest first
func (r *ApplicationRepository) GetAdoptionsByNGO(ctx context.Context, ngoID primitive.ObjectID) ([]models.AdoptionApplication, error) {
	cursor, err := r.adoptions.Find(ctx, bson.M{"ngo_id": ngoID}, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch adoption applications: %w", err)
	}
	defer cursor.Close(ctx)

	apps := []models.AdoptionApplication{}
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, fmt.Errorf("failed to decode adoption applications: %w", err)
	}
	return apps, nil
}

// GetVolunteersByNGO returns volunteer applications for an NGO, newest first
func (r *ApplicationRepository) GetVolunteersByNGO(ctx context.Context, ngoID primitive.ObjectID) ([]models.Volunteer, error) {
	cursor, err := r.volunteers.Find(ctx, bson.M{"ngo_id": ngoID}, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteers: %w", err)
	}
	defer cursor.Close(ctx)

	volunteers := []models.Volunteer{}
	if err := cursor.All(ctx, &volunteers); err != nil {
		return nil, fmt.Errorf("failed to decode volunteers: %w", err)
	}
	return volunteers, nil
}

// UpdateAdoptionStatus sets the status of an adoption application owned by the NGO.
func (r *ApplicationRepository) UpdateAdoptionStatus(ctx context.Context, id, ngoID primitive.ObjectID, status string) (*models.AdoptionApplication, error) {
	var app models.AdoptionApplication
	if err := r.setStatus(ctx, r.adoptions, id, ngoID, status, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// UpdateVolunteerStatus sets the status of a volunteer application owned by the NGO.
func (r *ApplicationRepository) UpdateVolunteerStatus(ctx context.Context, id, ngoID primitive.ObjectID, status string) (*models.Volunteer, error) {
	var v models.Volunteer
	if err := r.setStatus(ctx, r.volunteers, id, ngoID, status, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// setStatus matches on both _id and ngo_id, so another NGO's application is reported as not found.
func (r *ApplicationRepository) setStatus(ctx context.Context, coll *mongo.Collection, id, ngoID primitive.ObjectID, status string, out interface{}) error {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "ngo_id": ngoID},
		bson.M{"$set": bson.M{"status": status}},
		opts,
	).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		logrus.WithError(err).WithField("applicationID", id.Hex()).Error("Failed to update application status")
		return fmt.Errorf("failed to update application status: %w", err)
	}
	return nil
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}
