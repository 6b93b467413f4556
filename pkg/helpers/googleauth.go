package helpers

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"
)

// GoogleVerifier validates Google ID tokens coming from the SPA sign-in
// popup. An empty ClientID skips the audience check (local development).
type GoogleVerifier struct {
	ClientID string
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{ClientID: clientID}
}

// Verify checks the token against Google's public keys and returns the
// verified email and display name. Name may be empty; email never is.
func (v *GoogleVerifier) Verify(ctx context.Context, raw string) (email, name string, err error) {
	payload, err := idtoken.Validate(ctx, raw, v.ClientID)
	if err != nil {
		return "", "", fmt.Errorf("validate id token: %w", err)
	}
	email, _ = payload.Claims["email"].(string)
	name, _ = payload.Claims["name"].(string)
	if email == "" {
		return "", "", errors.New("id token has no email claim")
	}
	return email, name, nil
}
