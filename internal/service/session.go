package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pandey-i/note-taking-app/internal/apierror"
	"github.com/pandey-i/note-taking-app/internal/logger"
	"github.com/pandey-i/note-taking-app/internal/model"
)

// Session issues session tokens and resolves them back to users.
type Session struct {
	tokenManager model.TokenManager
	userStore    model.UserStore
	logger       *logger.Logger
}

func NewSession(tokenManager model.TokenManager, userStore model.UserStore, logger *logger.Logger) *Session {
	return &Session{tokenManager: tokenManager, userStore: userStore, logger: logger}
}

// Issue signs a token for user.
func (s *Session) Issue(user model.User) (model.Session, error) {
	token, err := s.tokenManager.GenerateToken(user.ID)
	if err != nil {
		s.logger.Error("Session service: failed to generate token",
			"user_id", user.ID,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to generate token: %w", err)
	}
	return model.Session{Token: token, User: user.Public()}, nil
}

// Authenticate verifies token and loads the user it was issued to.
func (s *Session) Authenticate(ctx context.Context, token string) (model.PublicUser, error) {
	if token == "" {
		return model.PublicUser{}, apierror.NewErrMissingToken()
	}

	userID, err := s.tokenManager.ParseToken(token)
	if err != nil {
		s.logger.Debug("Session service: token rejected",
			"error", err.Error())
		return model.PublicUser{}, apierror.NewErrInvalidToken(err)
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Info("Session service: token for unknown user",
				"user_id", userID)
			return model.PublicUser{}, apierror.NewErrInvalidToken(err)
		}
		s.logger.Error("Session service: failed to get user by id",
			"user_id", userID,
			"error", err.Error())
		return model.PublicUser{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user.Public(), nil
}
