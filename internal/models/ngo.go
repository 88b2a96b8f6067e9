package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NGO is a registered rescue organization account.
type NGO struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name               string             `bson:"name" json:"name"`
	Email              string             `bson:"email" json:"email"`
	HashedPassword     string             `bson:"hashed_password" json:"-"`
	RegistrationNumber string             `bson:"registration_number,omitempty" json:"registrationNumber,omitempty"`
	Address            string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone              string             `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt          time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updatedAt"`
}

// NGOSummary is the directory view of an NGO used for fan-out and claims.
type NGOSummary struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
}
