package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseVerifier validates Firebase ID tokens through the Admin SDK.
// Credentials come from GOOGLE_APPLICATION_CREDENTIALS unless explicit
// client options are supplied.
type FirebaseVerifier struct {
	client *fbauth.Client
}

func NewFirebaseVerifier(ctx context.Context, projectID string, opts ...option.ClientOption) (*FirebaseVerifier, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)

	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Auth(ctx)

	if err != nil {
		return nil, fmt.Errorf("init firebase auth client: %w", err)
	}

	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, credential string) (Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, credential)

	if err != nil {
		return Identity{}, fmt.Errorf("verify id token: %w", err)
	}

	email, _ := token.Claims["email"].(string)

	return Identity{
		SubjectID: token.UID,
		Email:     email,
		Claims:    token.Claims,
	}, nil
}
