package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pandey-i/note-taking-app/internal/model"
)

var _ model.NoteStore = (*NoteRepository)(nil)

type NoteRepository struct {
	coll  *mongo.Collection
	clock func() time.Time
}

func NewNoteRepository(conn *Connection) *NoteRepository {
	return &NoteRepository{coll: conn.Collection(notesCollection), clock: time.Now}
}

func (r *NoteRepository) Create(ctx context.Context, note model.Note) (model.Note, error) {
	if _, err := r.coll.InsertOne(ctx, newNoteDocument(note)); err != nil {
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}
	return note, nil
}

func (r *NoteRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (model.Note, error) {
	var doc noteDocument
	if err := r.coll.FindOne(ctx, ownedFilter(ownerID, id)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to get note: %w", err)
	}
	return doc.toModel()
}

// GetByOwner returns the owner's notes, newest first.
func (r *NoteRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.D{{Key: "user", Value: ownerID.String()}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get notes: %w", err)
	}
	defer cur.Close(ctx)

	notes := make([]model.Note, 0)
	for cur.Next(ctx) {
		var doc noteDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode note: %w", err)
		}
		note, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}

func (r *NoteRepository) Update(ctx context.Context, ownerID, id uuid.UUID, title, content string) (model.Note, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: title},
		{Key: "content", Value: content},
		{Key: "updated_at", Value: r.clock().UTC()},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc noteDocument
	if err := r.coll.FindOneAndUpdate(ctx, ownedFilter(ownerID, id), update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to update note: %w", err)
	}
	return doc.toModel()
}

func (r *NoteRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, ownedFilter(ownerID, id))
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func ownedFilter(ownerID, id uuid.UUID) bson.D {
	return bson.D{{Key: "_id", Value: id.String()}, {Key: "user", Value: ownerID.String()}}
}
