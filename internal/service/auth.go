package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pandey-i/note-taking-app/internal/apierror"
	"github.com/pandey-i/note-taking-app/internal/identity"
	"github.com/pandey-i/note-taking-app/internal/logger"
	"github.com/pandey-i/note-taking-app/internal/mailer"
	"github.com/pandey-i/note-taking-app/internal/model"
	"github.com/pandey-i/note-taking-app/internal/otp"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

type Auth struct {
	userStore model.UserStore
	otpIssuer model.OTPIssuer
	hasher    model.PasswordHasher
	mailer    model.Mailer
	identity  model.IdentityVerifier
	sessions  *Session
	logger    *logger.Logger
	clock     func() time.Time
}

func NewAuth(
	userStore model.UserStore,
	otpIssuer model.OTPIssuer,
	hasher model.PasswordHasher,
	mailer model.Mailer,
	verifier model.IdentityVerifier,
	sessions *Session,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore: userStore,
		otpIssuer: otpIssuer,
		hasher:    hasher,
		mailer:    mailer,
		identity:  verifier,
		sessions:  sessions,
		logger:    logger,
		clock:     time.Now,
	}
}

// Register creates an unverified account and emails it a one-time code.
// It returns the normalized email the code was sent to.
func (a *Auth) Register(ctx context.Context, email, password, name string) (string, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)

	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	if email == "" || password == "" || name == "" {
		return "", apierror.NewErrMissingFields("All fields are required")
	}
	if err := mailer.ValidateAddress(email); err != nil {
		a.logger.Info("Auth service: invalid email address",
			"email", email,
			"error", err.Error())
		return "", apierror.NewErrMissingFields("Invalid email address")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return "", apierror.NewErrWeakPassword(MinPasswordLength)
	}

	_, err := a.userStore.GetByEmail(ctx, email)
	switch {
	case err == nil:
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return "", apierror.NewErrAlreadyRegistered()
	case !errors.Is(err, model.ErrNotFound):
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := a.clock()
	code, err := a.otpIssuer.Issue(now)
	if err != nil {
		a.logger.Error("Auth service: failed to issue otp",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to issue otp: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: &hash,
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	user.SetOTP(code)

	if _, err := a.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			a.logger.Info("Auth service: user registered concurrently",
				"email", email)
			return "", apierror.NewErrAlreadyRegistered()
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	if err := a.sendOTP(ctx, email, code.Value, mailer.PurposeRegistration); err != nil {
		return "", err
	}

	a.logger.Info("Auth service: user registered, otp sent",
		"email", email,
		"user_id", user.ID)

	return email, nil
}

// VerifyOTP redeems a pending code, marks the email verified and opens a
// session.
func (a *Auth) VerifyOTP(ctx context.Context, email, code string) (model.Session, error) {
	email = normalizeEmail(email)
	code = strings.TrimSpace(code)

	if email == "" || code == "" {
		return model.Session{}, apierror.NewErrMissingFields("Email and OTP are required")
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Session{}, apierror.NewErrUserNotFound()
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	now := a.clock()
	if err := a.otpIssuer.Validate(user, code, now); err != nil {
		a.logger.Info("Auth service: otp rejected",
			"email", email,
			"reason", err.Error())
		return model.Session{}, otpError(err)
	}

	user.EmailVerified = true
	user.ClearOTP()
	user.UpdatedAt = now
	if err := a.userStore.Save(ctx, user); err != nil {
		a.logger.Error("Auth service: failed to save verified user",
			"user_id", user.ID,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to save user: %w", err)
	}

	session, err := a.sessions.Issue(user)
	if err != nil {
		return model.Session{}, err
	}

	a.logger.Info("Auth service: otp verified",
		"user_id", user.ID)

	return session, nil
}

// Login checks the password of a verified account and emails it a fresh
// code. No token is issued until the code is verified.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)

	if email == "" || password == "" {
		return "", apierror.NewErrMissingFields("Email and password are required")
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", apierror.NewErrInvalidCredentials()
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if !user.HasPassword() {
		return "", apierror.NewErrPasswordLoginUnavailable()
	}

	ok, err := a.hasher.Compare(*user.PasswordHash, password)
	if err != nil {
		a.logger.Error("Auth service: failed to compare password",
			"user_id", user.ID,
			"error", err.Error())
		return "", fmt.Errorf("failed to compare password: %w", err)
	}
	if !ok {
		a.logger.Info("Auth service: wrong password",
			"user_id", user.ID)
		return "", apierror.NewErrInvalidCredentials()
	}

	if !user.EmailVerified {
		return "", apierror.NewErrEmailNotVerified()
	}

	now := a.clock()
	code, err := a.otpIssuer.Issue(now)
	if err != nil {
		a.logger.Error("Auth service: failed to issue otp",
			"user_id", user.ID,
			"error", err.Error())
		return "", fmt.Errorf("failed to issue otp: %w", err)
	}

	user.SetOTP(code)
	user.UpdatedAt = now
	if err := a.userStore.Save(ctx, user); err != nil {
		a.logger.Error("Auth service: failed to save otp",
			"user_id", user.ID,
			"error", err.Error())
		return "", fmt.Errorf("failed to save user: %w", err)
	}

	if err := a.sendOTP(ctx, email, code.Value, mailer.PurposeLogin); err != nil {
		return "", err
	}

	a.logger.Info("Auth service: login otp sent",
		"user_id", user.ID)

	return email, nil
}

// GoogleLogin signs in with a Google ID token, linking or creating the
// account as needed.
func (a *Auth) GoogleLogin(ctx context.Context, credential string) (model.Session, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return model.Session{}, apierror.NewErrMissingFields("Missing Google credential")
	}

	external, err := a.identity.Verify(ctx, credential)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidAssertion) {
			a.logger.Info("Auth service: google credential rejected",
				"error", err.Error())
			return model.Session{}, apierror.NewErrInvalidAssertion(err)
		}
		a.logger.Error("Auth service: failed to verify google credential",
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to verify google credential: %w", err)
	}

	user, err := a.resolveExternalUser(ctx, external)
	if err != nil {
		return model.Session{}, err
	}

	session, err := a.sessions.Issue(user)
	if err != nil {
		return model.Session{}, err
	}

	a.logger.Info("Auth service: google login completed",
		"user_id", user.ID)

	return session, nil
}

func (a *Auth) resolveExternalUser(ctx context.Context, external model.ExternalIdentity) (model.User, error) {
	user, err := a.userStore.GetByExternalID(ctx, external.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by external id",
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by external id: %w", err)
	}

	email := normalizeEmail(external.Email)
	now := a.clock()
	subject := external.Subject

	user, err = a.userStore.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if user.ExternalID != nil && *user.ExternalID != subject {
			a.logger.Info("Auth service: email already linked to another google account",
				"user_id", user.ID)
			return model.User{}, apierror.NewErrInvalidAssertion(
				fmt.Errorf("%w: email is linked to a different google account", identity.ErrInvalidAssertion))
		}
		user.ExternalID = &subject
		user.EmailVerified = true
		user.UpdatedAt = now
		if err := a.userStore.Save(ctx, user); err != nil {
			a.logger.Error("Auth service: failed to link google account",
				"user_id", user.ID,
				"error", err.Error())
			return model.User{}, fmt.Errorf("failed to link account: %w", err)
		}
		a.logger.Info("Auth service: google account linked",
			"user_id", user.ID)
		return user, nil
	case !errors.Is(err, model.ErrNotFound):
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	name := strings.TrimSpace(external.Name)
	if name == "" {
		name = email
	}
	user = model.User{
		ID:            uuid.New(),
		Email:         email,
		Name:          name,
		ExternalID:    &subject,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateExternalID) {
			// Another request created the account first.
			return a.userStore.GetByExternalID(ctx, subject)
		}
		a.logger.Error("Auth service: failed to create google user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: google user created",
		"user_id", created.ID)

	return created, nil
}

func (a *Auth) sendOTP(ctx context.Context, email, code string, purpose mailer.Purpose) error {
	if err := a.mailer.Send(ctx, mailer.OTPMessage(email, code, purpose)); err != nil {
		a.logger.Error("Auth service: failed to send otp email",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to send otp email: %w", err)
	}
	return nil
}

func otpError(err error) error {
	switch {
	case errors.Is(err, otp.ErrNoPending):
		return apierror.NewErrNoOTPPending()
	case errors.Is(err, otp.ErrMismatch):
		return apierror.NewErrCodeMismatch()
	case errors.Is(err, otp.ErrExpired):
		return apierror.NewErrOTPExpired()
	default:
		return fmt.Errorf("failed to validate otp: %w", err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
