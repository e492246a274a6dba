// Package mongo stores users and notes in MongoDB.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const (
	defaultDatabase = "note-taking-app"

	usersCollection = "users"
	notesCollection = "notes"

	usersEmailIndex    = "users_email_unique"
	usersGoogleIDIndex = "users_google_id_unique"
	notesOwnerIndex    = "notes_user_created_at"
)

// Connection is a MongoDB client bound to the application database.
type Connection struct {
	client *mongo.Client
	*mongo.Database
}

// NewConnection connects to dsn, verifies the server is reachable and
// ensures the indexes the repositories rely on. The database name is taken
// from the DSN path.
func NewConnection(ctx context.Context, dsn string) (*Connection, error) {
	cs, err := connstring.ParseAndValidate(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mongodb dsn: %w", err)
	}
	dbName := cs.Database
	if dbName == "" {
		dbName = defaultDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(dsn))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	conn := &Connection{client: client, Database: client.Database(dbName)}
	if err := conn.Ping(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	if err := ensureIndexes(ctx, conn.Database); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return conn, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("mongodb client is nil")
	}
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Connection) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName(usersEmailIndex).SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "google_id", Value: 1}},
			Options: options.Index().SetName(usersGoogleIDIndex).SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "google_id", Value: bson.D{{Key: "$type", Value: "string"}}}}),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	_, err = db.Collection(notesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}, {Key: "created_at", Value: -1}},
		Options: options.Index().SetName(notesOwnerIndex),
	})
	if err != nil {
		return fmt.Errorf("failed to create note indexes: %w", err)
	}

	return nil
}
