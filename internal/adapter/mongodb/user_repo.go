package mongodb

import (
	"context"
	"errors"
	"time"

	"portfolio/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type userDoc struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Email     string        `bson:"email"`
	Password  string        `bson:"password"`
	CreatedAt time.Time     `bson:"createdAt"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		PasswordHash: d.Password,
		CreatedAt:    d.CreatedAt,
	}
}

// UserRepo implements domain.UserRepository on the users collection.
type UserRepo struct {
	coll *mongo.Collection
}

// NewUserRepo wraps a Store as a UserRepository.
func NewUserRepo(s *Store) *UserRepo {
	return &UserRepo{coll: s.db.Collection("users")}
}

// GetByEmail retrieves a user by email. Returns (nil, nil) when absent.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

// Create creates a new user record.
func (r *UserRepo) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	doc := userDoc{
		Email:     email,
		Password:  passwordHash,
		CreatedAt: time.Now().UTC(),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		doc.ID = id
	}
	return doc.toDomain(), nil
}

// UpdatePassword overwrites the stored password hash for email.
func (r *UserRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"password": passwordHash}},
	)
	return err
}

// UpdateEmail changes the record key from oldEmail to newEmail. The unique
// index rejects a change that would collide with an existing record.
func (r *UserRepo) UpdateEmail(ctx context.Context, oldEmail, newEmail string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"email": oldEmail},
		bson.M{"$set": bson.M{"email": newEmail}},
	)
	return err
}
