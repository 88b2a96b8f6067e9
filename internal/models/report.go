package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReportStatusPending    = "pending"
	ReportStatusInProgress = "in-progress"
	ReportStatusCompleted  = "completed"
)

// ValidReportStatus reports whether s is one of the report lifecycle states.
func ValidReportStatus(s string) bool {
	switch s {
	case ReportStatusPending, ReportStatusInProgress, ReportStatusCompleted:
		return true
	}
	return false
}

// Report is a sighting of an animal needing rescue. A completed report is deleted, so a
// stored report is either pending or in-progress.
type Report struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Photo           string              `bson:"photo" json:"photo"`
	Description     string              `bson:"description" json:"description"`
	Location        Location            `bson:"location" json:"location"`
	Status          string              `bson:"status" json:"status"`
	AssignedNGOID   *primitive.ObjectID `bson:"assigned_ngo_id" json:"assignedNgoId"`
	AssignedNGOName *string             `bson:"assigned_ngo_name" json:"assignedNgoName"`
	CreatedAt       time.Time           `bson:"created_at" json:"createdAt"`
}
