package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Dias221467/Animal_Rescue/internal/models"
	"github.com/Dias221467/Animal_Rescue/internal/repository"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// RegisterNGOInput carries the fields of an NGO signup.
type RegisterNGOInput struct {
	Name               string `json:"name" yaml:"name"`
	Email              string `json:"email" yaml:"email"`
	Password           string `json:"password" yaml:"password"`
	RegistrationNumber string `json:"registrationNumber" yaml:"registrationNumber"`
	Address            string `json:"address" yaml:"address"`
	Phone              string `json:"phone" yaml:"phone"`
}

// NGOSettings is the editable part of an NGO profile.
type NGOSettings struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// NGOService encapsulates NGO account logic and directory lookups.
type NGOService struct {
	repo NGOStore
}

// NewNGOService creates a new instance of NGOService.
func NewNGOService(repo NGOStore) *NGOService {
	return &NGOService{repo: repo}
}

// RegisterNGO creates an NGO account with a bcrypt-hashed password.
func (s *NGOService) RegisterNGO(ctx context.Context, in RegisterNGOInput) (*models.NGO, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.Name == "" || in.Email == "" || in.Password == "" {
		logrus.Warn("Missing required fields during NGO registration")
		return nil, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}
	if !emailRegex.MatchString(in.Email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
	}

	if existing, err := s.repo.GetNGOByEmail(ctx, in.Email); err == nil && existing != nil {
		logrus.WithField("email", in.Email).Warn("NGO email already in use")
		return nil, fmt.Errorf("%w: NGO with this email already exists", ErrConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Password hashing failed")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	ngo, err := s.repo.CreateNGO(ctx, &models.NGO{
		Name:               in.Name,
		Email:              in.Email,
		HashedPassword:     string(hashed),
		RegistrationNumber: strings.TrimSpace(in.RegistrationNumber),
		Address:            strings.TrimSpace(in.Address),
		Phone:              strings.TrimSpace(in.Phone),
	})
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return nil, fmt.Errorf("%w: NGO with this email already exists", ErrConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	logrus.WithField("ngoID", ngo.ID.Hex()).Info("NGO registered successfully")
	return ngo, nil
}

// Authenticate checks e-mail and password and returns the NGO on success.
func (s *NGOService) Authenticate(ctx context.Context, email, password string) (*models.NGO, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	ngo, err := s.repo.GetNGOByEmail(ctx, email)
	if err != nil {
		logrus.WithField("email", email).Warn("NGO not found at login")
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ngo.HashedPassword), []byte(password)); err != nil {
		logrus.WithField("email", email).Warn("Invalid NGO credentials")
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	logrus.WithField("ngoID", ngo.ID.Hex()).Info("NGO authenticated successfully")
	return ngo, nil
}

// GetNGO returns the full NGO profile.
func (s *NGOService) GetNGO(ctx context.Context, id primitive.ObjectID) (*models.NGO, error) {
	ngo, err := s.repo.GetNGOByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: NGO not found", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return ngo, nil
}

// Identity resolves the directory entry of an authenticated NGO.
func (s *NGOService) Identity(ctx context.Context, id primitive.ObjectID) (models.NGOSummary, error) {
	summary, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return models.NGOSummary{}, fmt.Errorf("%w: NGO %s is not registered", ErrUnauthorized, id.Hex())
	}
	if err != nil {
		return models.NGOSummary{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return *summary, nil
}

// UpdateSettings replaces the editable profile fields.
func (s *NGOService) UpdateSettings(ctx context.Context, id primitive.ObjectID, in NGOSettings) (*models.NGO, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name == "" || in.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidation)
	}
	if !emailRegex.MatchString(in.Email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
	}

	ngo, err := s.repo.UpdateNGO(ctx, id, bson.M{
		"name":    in.Name,
		"email":   in.Email,
		"phone":   strings.TrimSpace(in.Phone),
		"address": strings.TrimSpace(in.Address),
	})
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("%w: NGO not found", ErrNotFound)
	case errors.Is(err, repository.ErrDuplicateEmail):
		return nil, fmt.Errorf("%w: email already in use", ErrConflict)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	logrus.WithField("ngoID", id.Hex()).Info("NGO settings updated")
	return ngo, nil
}
