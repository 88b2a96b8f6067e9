package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidLocation is returned when a coordinate pair is missing, non-numeric or out of range.
var ErrInvalidLocation = errors.New("invalid location")

const geoJSONPoint = "Point"

// Location is a GeoJSON point. Coordinates are always [longitude, latitude], the order
// the 2dsphere index expects.
type Location struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewLocation validates a longitude/latitude pair and builds a point from it.
func NewLocation(longitude, latitude float64) (Location, error) {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) || longitude < -180 || longitude > 180 {
		return Location{}, fmt.Errorf("%w: longitude %v outside [-180, 180]", ErrInvalidLocation, longitude)
	}
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) || latitude < -90 || latitude > 90 {
		return Location{}, fmt.Errorf("%w: latitude %v outside [-90, 90]", ErrInvalidLocation, latitude)
	}
	return Location{Type: geoJSONPoint, Coordinates: []float64{longitude, latitude}}, nil
}

// ParseLocation builds a point from raw form values.
func ParseLocation(longitude, latitude string) (Location, error) {
	lng, err := parseCoordinate("longitude", longitude)
	if err != nil {
		return Location{}, err
	}
	lat, err := parseCoordinate("latitude", latitude)
	if err != nil {
		return Location{}, err
	}
	return NewLocation(lng, lat)
}

// LocationFromPointers builds a point from optional JSON numbers; nil means the field was missing.
func LocationFromPointers(longitude, latitude *float64) (Location, error) {
	if longitude == nil {
		return Location{}, fmt.Errorf("%w: longitude is required", ErrInvalidLocation)
	}
	if latitude == nil {
		return Location{}, fmt.Errorf("%w: latitude is required", ErrInvalidLocation)
	}
	return NewLocation(*longitude, *latitude)
}

func parseCoordinate(name, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidLocation, name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not a number", ErrInvalidLocation, name)
	}
	return v, nil
}

// Longitude returns the first coordinate.
func (l Location) Longitude() float64 {
	if len(l.Coordinates) < 2 {
		return 0
	}
	return l.Coordinates[0]
}

// Latitude returns the second coordinate.
func (l Location) Latitude() float64 {
	if len(l.Coordinates) < 2 {
		return 0
	}
	return l.Coordinates[1]
}
