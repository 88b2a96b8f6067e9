package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dias221467/Animal_Rescue/internal/models"
	"github.com/Dias221467/Animal_Rescue/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReportRepository handles database operations related to rescue reports.
type ReportRepository struct {
	collection *mongo.Collection
}

// NewReportRepository creates a new instance of ReportRepository.
func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{
		collection: db.Collection("reports"),
	}
}

// CreateReport inserts a report and assigns its ID.
func (r *ReportRepository) CreateReport(ctx context.Context, report *models.Report) (*models.Report, error) {
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, report)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert report")
		return nil, fmt.Errorf("failed to insert report: %w", err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		logger.Log.Error("Failed to cast inserted report ID")
		return nil, fmt.Errorf("failed to cast inserted ID")
	}
	report.ID = insertedID

	logger.Log.WithField("report_id", report.ID.Hex()).Info("Report created successfully")
	return report, nil
}

// GetReportByID fetches a report by its ID.
func (r *ReportRepository) GetReportByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error) {
	var report models.Report
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).WithField("report_id", id.Hex()).Error("Failed to find report by ID")
		return nil, fmt.Errorf("failed to find report: %w", err)
	}
	return &report, nil
}

// ListReports returns every stored report, most recent first.
func (r *ReportRepository) ListReports(ctx context.Context) ([]models.Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.find(ctx, bson.M{}, opts)
}

// ListNearby returns open reports within maxMeters of the point, nearest first.
func (r *ReportRepository) ListNearby(ctx context.Context, point models.Location, maxMeters float64, limit int64) ([]models.Report, error) {
	filter := bson.M{
		"location": bson.M{
			"$nearSphere": bson.M{
				"$geometry":    bson.M{"type": point.Type, "coordinates": point.Coordinates},
				"$maxDistance": maxMeters,
			},
		},
	}
	return r.find(ctx, filter, options.Find().SetLimit(limit))
}

// ClaimReport moves a report to in-progress and stamps the claiming NGO. The write is
// unconditional: a later claim overwrites an earlier one.
func (r *ReportRepository) ClaimReport(ctx context.Context, id, ngoID primitive.ObjectID, ngoName string) (*models.Report, error) {
	update := bson.M{"$set": bson.M{
		"status":            models.ReportStatusInProgress,
		"assigned_ngo_id":   ngoID,
		"assigned_ngo_name": ngoName,
	}}
	report, err := r.findOneAndUpdate(ctx, id, update)
	if err != nil {
		return nil, err
	}

	logger.Log.WithFields(map[string]interface{}{
		"report_id": id.Hex(),
		"ngo_id":    ngoID.Hex(),
	}).Info("Report claimed")
	return report, nil
}

// SetStatus changes only the status field of a report.
func (r *ReportRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Report, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{"$set": bson.M{"status": status}})
}

// DeleteReport removes a report.
func (r *ReportRepository) DeleteReport(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Log.WithError(err).WithField("report_id", id.Hex()).Error("Failed to delete report")
		return fmt.Errorf("failed to delete report: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	logger.Log.WithField("report_id", id.Hex()).Info("Report deleted")
	return nil
}

// CountByStatus returns the number of stored reports per status.
func (r *ReportRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate report statuses: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode report statuses: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *ReportRepository) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.Report, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var report models.Report
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Log.WithError(err).WithField("report_id", id.Hex()).Error("Failed to update report")
		return nil, fmt.Errorf("failed to update report: %w", err)
	}
	return &report, nil
}

func (r *ReportRepository) find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Report, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch reports")
		return nil, fmt.Errorf("failed to fetch reports: %w", err)
	}
	defer cursor.Close(ctx)

	reports := []models.Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode reports: %w", err)
	}
	return reports, nil
}
