package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AnimalStatusAvailable = "available"
	AnimalStatusPending   = "pending"
	AnimalStatusAdopted   = "adopted"
)

// ValidAnimalStatus reports whether s is an adoption-catalog status.
func ValidAnimalStatus(s string) bool {
	switch s {
	case AnimalStatusAvailable, AnimalStatusPending, AnimalStatusAdopted:
		return true
	}
	return false
}

// Animal is an NGO's catalog entry for an animal up for adoption.
type Animal struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Breed     string             `bson:"breed" json:"breed"`
	Age       int                `bson:"age" json:"age"`
	Image     string             `bson:"image" json:"image"`
	Status    string             `bson:"status" json:"status"`
	NGOID     primitive.ObjectID `bson:"ngo_id" json:"ngoId"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// AnimalListing is the public view of an available animal with its NGO's name.
type AnimalListing struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Breed   string             `bson:"breed" json:"breed"`
	Age     int                `bson:"age" json:"age"`
	Image   string             `bson:"image" json:"image"`
	Status  string             `bson:"status" json:"status"`
	NGOID   primitive.ObjectID `bson:"ngo_id" json:"ngoId"`
	NGOName string             `bson:"ngo_name" json:"ngoName"`
}
