package model

import "context"

// ExternalIdentity is what an identity provider asserts about a user.
type ExternalIdentity struct {
	Subject string
	Email   string
	Name    string
}

// IdentityVerifier validates a provider-issued credential.
type IdentityVerifier interface {
	Verify(ctx context.Context, credential string) (ExternalIdentity, error)
}

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}
