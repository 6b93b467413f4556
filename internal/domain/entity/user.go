package entity

import "time"

// Account kinds. Password accounts carry a bcrypt hash; federated accounts
// are provisioned on first Google sign-in and have no local credential.
const (
	AccountKindPassword  = "password"
	AccountKindFederated = "federated"
)

// User is the aggregate root for the credential store.
// PasswordHash is empty for federated accounts.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	AccountKind  string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}
