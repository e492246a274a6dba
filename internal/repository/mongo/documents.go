package mongo

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pandey-i/note-taking-app/internal/model"
)

type userDocument struct {
	ID            string     `bson:"_id"`
	Email         string     `bson:"email"`
	PasswordHash  *string    `bson:"password,omitempty"`
	Name          string     `bson:"name"`
	GoogleID      *string    `bson:"google_id,omitempty"`
	EmailVerified bool       `bson:"email_verified"`
	OTP           *string    `bson:"otp,omitempty"`
	OTPExpiresAt  *time.Time `bson:"otp_expires_at,omitempty"`
	CreatedAt     time.Time  `bson:"created_at"`
	UpdatedAt     time.Time  `bson:"updated_at"`
}

func newUserDocument(u model.User) userDocument {
	return userDocument{
		ID:            u.ID.String(),
		Email:         u.Email,
		PasswordHash:  u.PasswordHash,
		Name:          u.Name,
		GoogleID:      u.ExternalID,
		EmailVerified: u.EmailVerified,
		OTP:           u.OTP,
		OTPExpiresAt:  u.OTPExpiresAt,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (d userDocument) toModel() (model.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to parse user id %q: %w", d.ID, err)
	}

	return model.User{
		ID:            id,
		Email:         d.Email,
		PasswordHash:  d.PasswordHash,
		Name:          d.Name,
		ExternalID:    d.GoogleID,
		EmailVerified: d.EmailVerified,
		OTP:           d.OTP,
		OTPExpiresAt:  d.OTPExpiresAt,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}, nil
}

type noteDocument struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user"`
	Title     string    `bson:"title"`
	Content   string    `bson:"content"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func newNoteDocument(n model.Note) noteDocument {
	return noteDocument{
		ID:        n.ID.String(),
		UserID:    n.OwnerID.String(),
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func (d noteDocument) toModel() (model.Note, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to parse note id %q: %w", d.ID, err)
	}
	ownerID, err := uuid.Parse(d.UserID)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to parse note owner %q: %w", d.UserID, err)
	}

	return model.Note{
		ID:        id,
		OwnerID:   ownerID,
		Title:     d.Title,
		Content:   d.Content,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}
