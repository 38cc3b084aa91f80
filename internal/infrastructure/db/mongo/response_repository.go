package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

type ResponseRepository struct {
	coll *mongo.Collection
}

func NewResponseRepository(db *mongo.Database) *ResponseRepository {
	return &ResponseRepository{coll: db.Collection(collectionResponses)}
}

type mongoResponse struct {
	PersonID    string `bson:"person_id"`
	Username    string `bson:"user_username"`
	NameSurname string `bson:"name_surname"`
	Accepted    *bool  `bson:"accepted"`
	MenuOption  string `bson:"menu_option"`
	Allergies   string `bson:"allergies"`
	Comment     string `bson:"comment"`
	UpdatedAt   int64  `bson:"updated_at"`
}

func (m mongoResponse) toDomain() domain.RSVPResponse {
	return domain.RSVPResponse{
		PersonID:    m.PersonID,
		Username:    m.Username,
		NameSurname: m.NameSurname,
		Accepted:    m.Accepted,
		MenuOption:  domain.MenuOption(m.MenuOption),
		Allergies:   m.Allergies,
		Comment:     m.Comment,
		UpdatedAt:   unixToTime(m.UpdatedAt),
	}
}

// Upsert replaces the response stored for (account, person).
func (r *ResponseRepository) Upsert(ctx context.Context, resp *domain.RSVPResponse) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoResponse{
		PersonID:    resp.PersonID,
		Username:    resp.Username,
		NameSurname: resp.NameSurname,
		Accepted:    resp.Accepted,
		MenuOption:  string(resp.MenuOption),
		Allergies:   resp.Allergies,
		Comment:     resp.Comment,
		UpdatedAt:   resp.UpdatedAt.Unix(),
	}
	filter := bson.M{"user_username": resp.Username, "person_id": resp.PersonID}
	_, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": doc}, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert response: %w", err)
	}
	return nil
}

func (r *ResponseRepository) ListByAccount(ctx context.Context, username string) ([]domain.RSVPResponse, error) {
	return r.find(ctx, bson.M{"user_username": username})
}

func (r *ResponseRepository) ListAll(ctx context.Context) ([]domain.RSVPResponse, error) {
	return r.find(ctx, bson.M{})
}

func (r *ResponseRepository) find(ctx context.Context, filter bson.M) ([]domain.RSVPResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "user_username", Value: 1}, {Key: "name_surname", Value: 1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	var docs []mongoResponse
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode responses: %w", err)
	}

	out := make([]domain.RSVPResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}
