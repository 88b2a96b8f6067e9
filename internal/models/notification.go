package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	NotificationTypeReport    = "report"
	NotificationTypeAdoption  = "adoption"
	NotificationTypeVolunteer = "volunteer"
)

type Notification struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Type      string              `bson:"type" json:"type"`                        // report, adoption or volunteer
	Message   string              `bson:"message" json:"message"`                  // Human-readable context
	NGOID     *primitive.ObjectID `bson:"ngo_id,omitempty" json:"ngoId,omitempty"` // Recipient NGO
	Read      bool                `bson:"read" json:"read"`
	CreatedAt time.Time           `bson:"created_at" json:"createdAt"`
}
