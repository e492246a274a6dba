package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pandey-i/note-taking-app/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(conn *Connection) *UserRepository {
	return &UserRepository{coll: conn.Collection(usersCollection)}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: email}}, "failed to get user by email")
}

func (r *UserRepository) GetByExternalID(ctx context.Context, externalID string) (model.User, error) {
	return r.findOne(ctx, bson.D{{Key: "google_id", Value: externalID}}, "failed to get user by external id")
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id.String()}}, "failed to get user by id")
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	if _, err := r.coll.InsertOne(ctx, newUserDocument(user)); err != nil {
		if dup := duplicateError(err); dup != nil {
			return model.User{}, dup
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Save replaces the stored document, so cleared optional fields are removed.
func (r *UserRepository) Save(ctx context.Context, user model.User) error {
	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: user.ID.String()}}, newUserDocument(user))
	if err != nil {
		if dup := duplicateError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.D, msg string) (model.User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("%s: %w", msg, err)
	}

	return doc.toModel()
}

func duplicateError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return nil
	}
	switch msg := err.Error(); {
	case strings.Contains(msg, usersGoogleIDIndex):
		return model.ErrDuplicateExternalID
	case strings.Contains(msg, usersEmailIndex):
		return model.ErrDuplicateEmail
	default:
		return nil
	}
}
