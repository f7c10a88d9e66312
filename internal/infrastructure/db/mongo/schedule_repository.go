package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/peopleops/employee-system/internal/core/domain"
)

const (
	scheduleCollection = "work_schedules"
	punchCollection    = "punch_records"
)

type ScheduleRepository struct {
	coll *mongo.Collection
}

func NewScheduleRepository(db *mongo.Database) *ScheduleRepository {
	return &ScheduleRepository{coll: db.Collection(scheduleCollection)}
}

// Upsert stores the weekly schedule keyed by user, replacing any prior one.
func (r *ScheduleRepository) Upsert(ctx context.Context, schedule *domain.WorkSchedule) (*domain.WorkSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if schedule.ID == "" {
		schedule.ID = primitive.NewObjectID().Hex()
	}

	filter := bson.M{"user_id": schedule.UserID}
	update := bson.M{"$set": bson.M{
		"shifts":     schedule.Shifts,
		"updated_at": schedule.UpdatedAt,
	}, "$setOnInsert": bson.M{
		"_id":        schedule.ID,
		"user_id":    schedule.UserID,
		"created_at": schedule.CreatedAt,
	}}

	if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return nil, fmt.Errorf("upsert schedule: %w", err)
	}
	return r.FindByUser(ctx, schedule.UserID)
}

func (r *ScheduleRepository) FindByUser(ctx context.Context, userID string) (*domain.WorkSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var schedule domain.WorkSchedule
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&schedule); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("find schedule: %w", err)
	}
	return &schedule, nil
}

// EnsureIndexes enforces one schedule per user.
func (r *ScheduleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

type PunchRepository struct {
	coll *mongo.Collection
}

func NewPunchRepository(db *mongo.Database) *PunchRepository {
	return &PunchRepository{coll: db.Collection(punchCollection)}
}

func (r *PunchRepository) Insert(ctx context.Context, punch *domain.PunchRecord) (*domain.PunchRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	punch.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, punch); err != nil {
		return nil, fmt.Errorf("insert punch: %w", err)
	}
	return punch, nil
}

func (r *PunchRepository) ListByUser(ctx context.Context, userID string, from, to time.Time) ([]*domain.PunchRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"user_id":   userID,
		"timestamp": bson.M{"$gte": from.UTC(), "$lt": to.UTC()},
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list punches: %w", err)
	}
	defer cursor.Close(ctx)

	var punches []*domain.PunchRecord
	if err := cursor.All(ctx, &punches); err != nil {
		return nil, fmt.Errorf("decode punches: %w", err)
	}
	return punches, nil
}

// EnsureIndexes backs the per-user time-range listing.
func (r *PunchRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: 1}},
	})
	return err
}
