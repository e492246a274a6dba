// Package identity verifies credentials issued by external identity providers.
package identity

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"google.golang.org/api/idtoken"

	"github.com/pandey-i/note-taking-app/internal/model"
)

// ErrInvalidAssertion is returned for any credential that cannot be trusted.
var ErrInvalidAssertion = errors.New("invalid identity assertion")

var googleIssuers = map[string]struct{}{
	"accounts.google.com":         {},
	"https://accounts.google.com": {},
}

type payloadValidator interface {
	Validate(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)
}

// Google validates Google Sign-In ID tokens.
type Google struct {
	clientID  string
	validator payloadValidator
}

var _ model.IdentityVerifier = (*Google)(nil)

// NewGoogle creates a verifier accepting tokens issued for clientID.
func NewGoogle(ctx context.Context, clientID string) (*Google, error) {
	v, err := idtoken.NewValidator(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create google token validator: %w", err)
	}
	return &Google{clientID: clientID, validator: v}, nil
}

// Verify checks signature, audience, expiry and issuer of credential and
// returns the asserted identity. Only addresses Google marks as verified are
// accepted. Failures reaching Google are returned without ErrInvalidAssertion.
func (g *Google) Verify(ctx context.Context, credential string) (model.ExternalIdentity, error) {
	if g.clientID == "" {
		return model.ExternalIdentity{}, fmt.Errorf("%w: google client id is not configured", ErrInvalidAssertion)
	}

	payload, err := g.validator.Validate(ctx, credential, g.clientID)
	if err != nil {
		if isTransportError(err) {
			return model.ExternalIdentity{}, fmt.Errorf("failed to fetch google certificates: %w", err)
		}
		return model.ExternalIdentity{}, fmt.Errorf("%w: %v", ErrInvalidAssertion, err)
	}
	if _, ok := googleIssuers[payload.Issuer]; !ok {
		return model.ExternalIdentity{}, fmt.Errorf("%w: unexpected issuer %q", ErrInvalidAssertion, payload.Issuer)
	}

	email := stringClaim(payload.Claims, "email")
	if payload.Subject == "" || email == "" {
		return model.ExternalIdentity{}, fmt.Errorf("%w: missing subject or email", ErrInvalidAssertion)
	}
	if verified, _ := payload.Claims["email_verified"].(bool); !verified {
		return model.ExternalIdentity{}, fmt.Errorf("%w: email %q is not verified by google", ErrInvalidAssertion, email)
	}

	return model.ExternalIdentity{
		Subject: payload.Subject,
		Email:   email,
		Name:    stringClaim(payload.Claims, "name"),
	}, nil
}

// isTransportError reports failures reaching Google rather than a bad token.
func isTransportError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

func stringClaim(claims map[string]interface{}, key string) string {
	v, _ := claims[key].(string)
	return v
}

// Disabled rejects every credential. It stands in for Google when no client
// id is configured.
type Disabled struct{}

var _ model.IdentityVerifier = Disabled{}

func (Disabled) Verify(context.Context, string) (model.ExternalIdentity, error) {
	return model.ExternalIdentity{}, fmt.Errorf("%w: google sign-in is not configured", ErrInvalidAssertion)
}
