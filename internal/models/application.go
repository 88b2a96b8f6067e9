package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

// ValidApplicationStatus reports whether s is a status an NGO may set on an application.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

type AdoptionApplication struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PetID                 primitive.ObjectID `bson:"pet_id" json:"petId"`
	PetName               string             `bson:"pet_name" json:"petName"`
	PetBreed              string             `bson:"pet_breed,omitempty" json:"petBreed,omitempty"`
	FullName              string             `bson:"full_name" json:"fullName"`
	Email                 string             `bson:"email" json:"email"`
	Phone                 string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address               string             `bson:"address,omitempty" json:"address,omitempty"`
	HousingType           string             `bson:"housing_type,omitempty" json:"housingType,omitempty"`
	HasYard               string             `bson:"has_yard,omitempty" json:"hasYard,omitempty"`
	HadPets               string             `bson:"had_pets,omitempty" json:"hadPets,omitempty"`
	PetExperience         string             `bson:"pet_experience,omitempty" json:"petExperience,omitempty"`
	HasCurrentPets        string             `bson:"has_current_pets,omitempty" json:"hasCurrentPets,omitempty"`
	CurrentPets           string             `bson:"current_pets,omitempty" json:"currentPets,omitempty"`
	HoursAlone            int                `bson:"hours_alone,omitempty" json:"hoursAlone,omitempty"`
	AdoptionReason        string             `bson:"adoption_reason,omitempty" json:"adoptionReason,omitempty"`
	HasBreedingExperience string             `bson:"has_breeding_experience,omitempty" json:"hasBreedingExperience,omitempty"`
	BreedingExperience    string             `bson:"breeding_experience,omitempty" json:"breedingExperience,omitempty"`
	NGOID                 primitive.ObjectID `bson:"ngo_id" json:"ngoId"`
	Status                string             `bson:"status" json:"status"`
	CreatedAt             time.Time          `bson:"created_at" json:"createdAt"`
}

type Volunteer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName  string             `bson:"full_name" json:"fullName"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Reason    string             `bson:"reason,omitempty" json:"reason,omitempty"`
	NGOID     primitive.ObjectID `bson:"ngo_id" json:"ngoId"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
