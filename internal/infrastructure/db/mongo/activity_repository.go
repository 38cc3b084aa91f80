package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
	"github.com/doramarin/wedding-rsvp/internal/core/ports"
)

// ActivityRepository implements ports.ActivityRepository using MongoDB.
type ActivityRepository struct {
	coll *mongo.Collection
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(db *mongo.Database) ports.ActivityRepository {
	return &ActivityRepository{coll: db.Collection(collectionActivity)}
}

type mongoActivity struct {
	Username   string    `bson:"username"`
	Actor      string    `bson:"actor"`
	Kind       string    `bson:"kind"`
	Detail     string    `bson:"detail,omitempty"`
	OccurredAt time.Time `bson:"occurred_at"`
}

func (r *ActivityRepository) Insert(ctx context.Context, a *domain.Activity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, mongoActivity{
		Username:   a.Username,
		Actor:      a.Actor,
		Kind:       string(a.Kind),
		Detail:     a.Detail,
		OccurredAt: a.OccurredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// List returns the newest entries first.
func (r *ActivityRepository) List(ctx context.Context, f ports.ActivityFilter) ([]domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Username != "" {
		filter["username"] = f.Username
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "occurred_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(f.Limit))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	var docs []mongoActivity
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode activity: %w", err)
	}

	out := make([]domain.Activity, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.Activity{
			Username:   d.Username,
			Actor:      d.Actor,
			Kind:       domain.ActivityKind(d.Kind),
			Detail:     d.Detail,
			OccurredAt: d.OccurredAt.UTC(),
		})
	}
	return out, nil
}
