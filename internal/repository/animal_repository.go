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
)

// AnimalRepository stores the adoption catalog.
type AnimalRepository struct {
	collection *mongo.Collection
}

func NewAnimalRepository(db *mongo.Database) *AnimalRepository {
	return &AnimalRepository{
		collection: db.Collection("animals"),
	}
}

// CreateAnimal inserts a catalog entry and assigns its ID.
func (r *AnimalRepository) CreateAnimal(ctx context.Context, animal *models.Animal) (*models.Animal, error) {
	animal.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, animal)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert animal")
		return nil, fmt.Errorf("failed to insert animal: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		animal.ID = id
	}
	return animal, nil
}

// GetAnimalsByNGO returns an NGO's catalog, newest first
func (r *AnimalRepository) GetAnimalsByNGO(ctx context.Context, ngoID primitive.ObjectID) ([]models.Animal, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"ngo_id": ngoID}, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch animals: %w", err)
	}
	defer cursor.Close(ctx)

	animals := []models.Animal{}
	if err := cursor.All(ctx, &animals); err != nil {
		return nil, fmt.Errorf("failed to decode animals: %w", err)
	}
	return animals, nil
}

// ListAvailable returns every available animal joined with the name of its NGO.
// Animals whose NGO no longer exists are left out.
func (r *AnimalRepository) ListAvailable(ctx context.Context) ([]models.AnimalListing, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "status", Value: models.AnimalStatusAvailable}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "ngos"},
			{Key: "localField", Value: "ngo_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "ngo"},
		}}},
		{{Key: "$unwind", Value: "$ngo"}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "breed", Value: 1},
			{Key: "age", Value: 1},
			{Key: "image", Value: 1},
			{Key: "status", Value: 1},
			{Key: "ngo_id", Value: 1},
			{Key: "ngo_name", Value: "$ngo.name"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list available animals: %w", err)
	}
	defer cursor.Close(ctx)

	listings := []models.AnimalListing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("failed to decode animal listings: %w", err)
	}
	return listings, nil
}

// DeleteAnimal removes an animal owned by the NGO and returns the removed entry.
func (r *AnimalRepository) DeleteAnimal(ctx context.Context, id, ngoID primitive.ObjectID) (*models.Animal, error) {
	var animal models.Animal
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id, "ngo_id": ngoID}).Decode(&animal)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		logrus.WithError(err).WithField("animalID", id.Hex()).Error("Failed to delete animal")
		return nil, fmt.Errorf("failed to delete animal: %w", err)
	}
	return &animal, nil
}
