package mongodb

import (
	"context"
	"time"

	"portfolio/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type contactDoc struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Name      string        `bson:"name"`
	Email     string        `bson:"email"`
	Message   string        `bson:"message"`
	CreatedAt time.Time     `bson:"createdAt"`
}

func (d *contactDoc) toDomain() domain.ContactMessage {
	return domain.ContactMessage{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Message:   d.Message,
		CreatedAt: d.CreatedAt,
	}
}

// ContactRepo implements domain.ContactRepository on the contacts collection.
type ContactRepo struct {
	coll *mongo.Collection
}

// NewContactRepo wraps a Store as a ContactRepository.
func NewContactRepo(s *Store) *ContactRepo {
	return &ContactRepo{coll: s.db.Collection("contacts")}
}

// Create stores a contact-form submission.
func (r *ContactRepo) Create(ctx context.Context, m domain.ContactMessage) (*domain.ContactMessage, error) {
	doc := contactDoc{
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: time.Now().UTC(),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		doc.ID = id
	}
	created := doc.toDomain()
	return &created, nil
}

// List returns the most recent messages, newest first.
func (r *ContactRepo) List(ctx context.Context, limit int) ([]domain.ContactMessage, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []contactDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]domain.ContactMessage, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}
