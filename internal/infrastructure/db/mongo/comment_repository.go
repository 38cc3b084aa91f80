package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

const commentSeqKey = "guest_comments"

type CommentRepository struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{
		coll:     db.Collection(collectionComments),
		counters: db.Collection(collectionCounters),
	}
}

type mongoComment struct {
	Seq       int64  `bson:"seq"`
	Username  string `bson:"user_username"`
	Text      string `bson:"comment"`
	CreatedAt int64  `bson:"created_at"`
}

// Insert assigns the next global sequence number so comments keep their
// submission order regardless of clock resolution.
func (r *CommentRepository) Insert(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	seq, err := r.nextSeq(ctx)
	if err != nil {
		return nil, err
	}
	doc := mongoComment{
		Seq:       seq,
		Username:  c.Username,
		Text:      c.Text,
		CreatedAt: c.CreatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	saved := *c
	saved.Seq = seq
	return &saved, nil
}

func (r *CommentRepository) nextSeq(ctx context.Context) (int64, error) {
	var counter struct {
		Value int64 `bson:"value"`
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": commentSeqKey},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next comment seq: %w", err)
	}
	return counter.Value, nil
}

func (r *CommentRepository) ListByAccount(ctx context.Context, username string) ([]domain.Comment, error) {
	return r.find(ctx, bson.M{"user_username": username})
}

func (r *CommentRepository) ListAll(ctx context.Context) ([]domain.Comment, error) {
	return r.find(ctx, bson.M{})
}

func (r *CommentRepository) find(ctx context.Context, filter bson.M) ([]domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	var docs []mongoComment
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}

	out := make([]domain.Comment, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.Comment{
			Seq:       d.Seq,
			Username:  d.Username,
			Text:      d.Text,
			CreatedAt: unixToTime(d.CreatedAt),
		})
	}
	return out, nil
}
