package treatmentRepo

import (
	"context"
	"fmt"
	"time"

	"docportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTreatmentRepo implements TreatmentRepository using MongoDB.
type MongoTreatmentRepo struct {
	coll *mongo.Collection
}

// NewMongoTreatmentRepo creates a new TreatmentRepository backed by the given database handle.
func NewMongoTreatmentRepo(db *mongo.Database) TreatmentRepository {
	return &MongoTreatmentRepo{coll: db.Collection("appointmentOptions")}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ListTreatments retrieves all treatment options in catalogue order.
func (r *MongoTreatmentRepo) ListTreatments() ([]models.TreatmentOption, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve treatment options: %w", err)
	}
	defer cursor.Close(ctx)

	var treatments []models.TreatmentOption
	for cursor.Next(ctx) {
		var t models.TreatmentOption
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode treatment option: %w", err)
		}
		treatments = append(treatments, t)
	}
	return treatments, nil
}

// ListSpecialties retrieves only the treatment names, for doctor management forms.
func (r *MongoTreatmentRepo) ListSpecialties() ([]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve specialties: %w", err)
	}
	defer cursor.Close(ctx)

	var names []string
	for cursor.Next(ctx) {
		var t models.TreatmentOption
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode specialty: %w", err)
		}
		names = append(names, t.Name)
	}
	return names, nil
}

// GetByName retrieves a single treatment option by its unique name.
func (r *MongoTreatmentRepo) GetByName(name string) (*models.TreatmentOption, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var t models.TreatmentOption
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch treatment %s: %w", name, err)
	}
	return &t, nil
}
