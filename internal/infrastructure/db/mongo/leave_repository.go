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

const leaveCollection = "leave_requests"

type LeaveRepository struct {
	coll *mongo.Collection
}

func NewLeaveRepository(db *mongo.Database) *LeaveRepository {
	return &LeaveRepository{coll: db.Collection(leaveCollection)}
}

func (r *LeaveRepository) Create(ctx context.Context, req *domain.LeaveRequest) (*domain.LeaveRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	req.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		return nil, fmt.Errorf("insert leave request: %w", err)
	}
	return req, nil
}

func (r *LeaveRepository) FindByID(ctx context.Context, id string) (*domain.LeaveRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var req domain.LeaveRequest
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&req); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("find leave request: %w", err)
	}
	return &req, nil
}

func (r *LeaveRepository) ListByUser(ctx context.Context, userID string) ([]*domain.LeaveRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "requested_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []*domain.LeaveRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("decode leave requests: %w", err)
	}
	return requests, nil
}

// FindOverdueApproved returns approved requests with end_date strictly
// before asOf. Completed/rejected requests never match, which is what makes
// the completion sweep idempotent.
func (r *LeaveRepository) FindOverdueApproved(ctx context.Context, asOf time.Time) ([]*domain.LeaveRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"status":   string(domain.LeaveApproved),
		"end_date": bson.M{"$lt": asOf.UTC()},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find overdue leave: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []*domain.LeaveRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("decode overdue leave: %w", err)
	}
	return requests, nil
}

func (r *LeaveRepository) Update(ctx context.Context, req *domain.LeaveRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": req.ID}, req)
	if err != nil {
		return fmt.Errorf("update leave request: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrLeaveNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the per-user listing and the
// daily overdue scan.
func (r *LeaveRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "requested_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "end_date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
