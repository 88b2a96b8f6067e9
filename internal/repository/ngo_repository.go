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

// ErrDuplicateEmail is returned when an NGO registers with an e-mail already in use.
var ErrDuplicateEmail = errors.New("email already registered")

// NGORepository handles NGO accounts and serves as the NGO directory.
type NGORepository struct {
	collection *mongo.Collection
}

// NewNGORepository creates a new instance of NGORepository.
func NewNGORepository(db *mongo.Database) *NGORepository {
	return &NGORepository{
		collection: db.Collection("ngos"),
	}
}

// CreateNGO inserts a new NGO account.
func (r *NGORepository) CreateNGO(ctx context.Context, ngo *models.NGO) (*models.NGO, error) {
	ngo.CreatedAt = time.Now()
	ngo.UpdatedAt = ngo.CreatedAt

	result, err := r.collection.InsertOne(ctx, ngo)
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		logrus.WithError(err).Error("Failed to insert NGO into database")
		return nil, fmt.Errorf("failed to insert ngo: %w", err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("failed to cast inserted ID")
	}
	ngo.ID = insertedID

	logrus.WithField("ngoID", ngo.ID.Hex()).Info("NGO inserted successfully")
	return ngo, nil
}

// GetNGOByEmail retrieves an NGO by e-mail.
func (r *NGORepository) GetNGOByEmail(ctx context.Context, email string) (*models.NGO, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// GetNGOByID retrieves an NGO by its ID.
func (r *NGORepository) GetNGOByID(ctx context.Context, id primitive.ObjectID) (*models.NGO, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// UpdateNGO applies the given field changes and returns the stored NGO.
func (r *NGORepository) UpdateNGO(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.NGO, error) {
	fields["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var ngo models.NGO
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&ngo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ngoID": id.Hex(),
			"error": err,
		}).Error("Failed to update NGO")
		return nil, fmt.Errorf("failed to update ngo: %w", err)
	}
	return &ngo, nil
}

// ListAll returns the id and name of every registered NGO.
func (r *NGORepository) ListAll(ctx context.Context) ([]models.NGOSummary, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1, "name": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ngos: %w", err)
	}
	defer cursor.Close(ctx)

	ngos := []models.NGOSummary{}
	if err := cursor.All(ctx, &ngos); err != nil {
		return nil, fmt.Errorf("failed to decode ngos: %w", err)
	}
	return ngos, nil
}

// Get returns the directory entry for one NGO.
func (r *NGORepository) Get(ctx context.Context, id primitive.ObjectID) (*models.NGOSummary, error) {
	ngo, err := r.GetNGOByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.NGOSummary{ID: ngo.ID, Name: ngo.Name}, nil
}

func (r *NGORepository) findOne(ctx context.Context, filter bson.M) (*models.NGO, error) {
	var ngo models.NGO
	err := r.collection.FindOne(ctx, filter).Decode(&ngo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		logrus.WithError(err).Warn("Failed to find NGO")
		return nil, fmt.Errorf("failed to find ngo: %w", err)
	}
	return &ngo, nil
}
