// Package repository opens the user and note stores for a DSN.
package repository

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pandey-i/note-taking-app/internal/model"
	"github.com/pandey-i/note-taking-app/internal/repository/memory"
	"github.com/pandey-i/note-taking-app/internal/repository/mongo"
	"github.com/pandey-i/note-taking-app/internal/repository/postgres"
)

// Stores bundles the stores of one backend with its lifecycle hooks.
type Stores struct {
	Users model.UserStore
	Notes model.NoteStore

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

var _ model.Pinger = (*Stores)(nil)

// Ping reports whether the backend is reachable.
func (s *Stores) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases backend connections.
func (s *Stores) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// NewMemory returns empty in-process stores.
func NewMemory() *Stores {
	return &Stores{
		Users: memory.NewUserRepository(),
		Notes: memory.NewNoteRepository(),
	}
}

// Open connects to the backend selected by the DSN scheme: mongodb and
// mongodb+srv for MongoDB, postgres and postgresql for PostgreSQL, memory
// for in-process stores.
func Open(ctx context.Context, dsn string) (*Stores, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database dsn: %w", err)
	}

	switch u.Scheme {
	case "mongodb", "mongodb+srv":
		conn, err := mongo.NewConnection(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Users: mongo.NewUserRepository(conn),
			Notes: mongo.NewNoteRepository(conn),
			ping:  conn.Ping,
			close: conn.Close,
		}, nil
	case "postgres", "postgresql":
		conn, err := postgres.NewConnection(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Users: postgres.NewUserRepository(conn),
			Notes: postgres.NewNoteRepository(conn),
			ping:  conn.Ping,
			close: func(context.Context) error { return conn.Close() },
		}, nil
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unsupported database scheme %q", u.Scheme)
	}
}
