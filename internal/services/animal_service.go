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

// AnimalInput carries the fields of a new catalog entry. Image is an already stored photo reference.
type AnimalInput struct {
	Name   string
	Breed  string
	Age    int
	Status string
	Image  string
}

// AnimalService manages each NGO's adoption catalog and the public list of available animals.
type AnimalService struct {
	repo AnimalStore
}

func NewAnimalService(repo AnimalStore) *AnimalService {
	return &AnimalService{repo: repo}
}

// AddAnimal stores a catalog entry owned by the NGO. A blank status means available.
func (s *AnimalService) AddAnimal(ctx context.Context, ngoID primitive.ObjectID, in AnimalInput) (*models.Animal, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Breed = strings.TrimSpace(in.Breed)
	in.Status = strings.TrimSpace(in.Status)
	if in.Status == "" {
		in.Status = models.AnimalStatusAvailable
	}

	switch {
	case in.Name == "" || in.Breed == "":
		return nil, fmt.Errorf("%w: name and breed are required", ErrValidation)
	case in.Age < 0:
		return nil, fmt.Errorf("%w: age must not be negative", ErrValidation)
	case strings.TrimSpace(in.Image) == "":
		return nil, fmt.Errorf("%w: photo is required", ErrValidation)
	case !models.ValidAnimalStatus(in.Status):
		return nil, fmt.Errorf("%w: unknown animal status %q", ErrValidation, in.Status)
	}

	animal, err := s.repo.CreateAnimal(ctx, &models.Animal{
		Name:   in.Name,
		Breed:  in.Breed,
		Age:    in.Age,
		Image:  in.Image,
		Status: in.Status,
		NGOID:  ngoID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	logrus.WithFields(logrus.Fields{
		"animalID": animal.ID.Hex(),
		"ngoID":    ngoID.Hex(),
	}).Info("Animal added to catalog")
	return animal, nil
}

// ListAvailable returns the animals open for adoption across all NGOs.
func (s *AnimalService) ListAvailable(ctx context.Context) ([]models.AnimalListing, error) {
	listings, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return listings, nil
}

// GetNGOAnimals returns the NGO's own catalog.
func (s *AnimalService) GetNGOAnimals(ctx context.Context, ngoID primitive.ObjectID) ([]models.Animal, error) {
	animals, err := s.repo.GetAnimalsByNGO(ctx, ngoID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return animals, nil
}

// DeleteAnimal removes an animal owned by the NGO and returns it, so callers can drop its photo.
func (s *AnimalService) DeleteAnimal(ctx context.Context, animalID string, ngoID primitive.ObjectID) (*models.Animal, error) {
	id, err := primitive.ObjectIDFromHex(animalID)
	if err != nil {
		return nil, fmt.Errorf("%w: animal %s", ErrNotFound, animalID)
	}

	animal, err := s.repo.DeleteAnimal(ctx, id, ngoID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: animal %s", ErrNotFound, animalID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	logrus.WithFields(logrus.Fields{
		"animalID": animalID,
		"ngoID":    ngoID.Hex(),
	}).Info("Animal removed from catalog")
	return animal, nil
}
