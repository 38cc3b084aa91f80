package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

type PersonRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewPersonRepository(db *mongo.Database) *PersonRepository {
	return &PersonRepository{db: db, coll: db.Collection(collectionPersons)}
}

// mongoPerson stores created_at as unix nanoseconds so persons added within
// the same second keep their insertion order.
type mongoPerson struct {
	ID          string `bson:"_id"`
	Username    string `bson:"user_username"`
	NameSurname string `bson:"name_surname"`
	CreatedAt   int64  `bson:"created_at"`
}

func newMongoPerson(p *domain.InvitedPerson) mongoPerson {
	return mongoPerson{
		ID:          p.ID,
		Username:    p.Username,
		NameSurname: p.NameSurname,
		CreatedAt:   p.CreatedAt.UnixNano(),
	}
}

func (m mongoPerson) toDomain() domain.InvitedPerson {
	return domain.InvitedPerson{
		ID:          m.ID,
		Username:    m.Username,
		NameSurname: m.NameSurname,
		CreatedAt:   unixNanoToTime(m.CreatedAt),
	}
}

func (r *PersonRepository) Create(ctx context.Context, p *domain.InvitedPerson) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, newMongoPerson(p))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrPersonExists
		}
		return fmt.Errorf("insert invited person: %w", err)
	}
	return nil
}

func (r *PersonRepository) ListByAccount(ctx context.Context, username string) ([]domain.InvitedPerson, error) {
	return r.find(ctx, bson.M{"user_username": username})
}

func (r *PersonRepository) ListAll(ctx context.Context) ([]domain.InvitedPerson, error) {
	return r.find(ctx, bson.M{})
}

func (r *PersonRepository) find(ctx context.Context, filter bson.M) ([]domain.InvitedPerson, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "user_username", Value: 1}, {Key: "created_at", Value: 1}, {Key: "name_surname", Value: 1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list invited persons: %w", err)
	}
	var docs []mongoPerson
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode invited persons: %w", err)
	}

	out := make([]domain.InvitedPerson, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *PersonRepository) FindByName(ctx context.Context, username, name string) (*domain.InvitedPerson, error) {
	return r.findOne(ctx, bson.M{"user_username": username, "name_surname": name})
}

func (r *PersonRepository) FindByID(ctx context.Context, username, id string) (*domain.InvitedPerson, error) {
	return r.findOne(ctx, bson.M{"user_username": username, "_id": id})
}

func (r *PersonRepository) findOne(ctx context.Context, filter bson.M) (*domain.InvitedPerson, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoPerson
	if err := r.coll.FindOne(ctx, filter).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPersonNotFound
		}
		return nil, fmt.Errorf("find invited person: %w", err)
	}
	p := m.toDomain()
	return &p, nil
}

// DeleteByName removes the person and its stored response.
func (r *PersonRepository) DeleteByName(ctx context.Context, username, name string) error {
	p, err := r.FindByName(ctx, username, name)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.db.Collection(collectionResponses).DeleteMany(ctx, bson.M{"user_username": username, "person_id": p.ID}); err != nil {
		return fmt.Errorf("delete responses for person: %w", err)
	}
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": p.ID}); err != nil {
		return fmt.Errorf("delete invited person: %w", err)
	}
	return nil
}
