package auth

import "context"

// Identity is the decoded result of a successfully verified bearer credential.
// SubjectID is the stable id issued by the identity provider (Firebase UID),
// distinct from any store-generated record id.
type Identity struct {
	SubjectID string
	Email     string
	Claims    map[string]any
}

// Verifier checks an opaque bearer credential against an identity authority.
type Verifier interface {
	Verify(ctx context.Context, credential string) (Identity, error)
}
