package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopwish/shopwish-api/internal/domain/entity"
	"github.com/shopwish/shopwish-api/internal/domain/repository"
	"github.com/shopwish/shopwish-api/pkg/helpers"
)

// stubUserRepo keeps users in memory, keyed by email, with the same
// sentinel semantics as the postgres implementation.
type stubUserRepo struct {
	byEmail map[string]*entity.User
	nextID  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *stubUserRepo) Create(ctx context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return repository.ErrDuplicate
	}
	r.nextID++
	u.ID = fmt.Sprintf("user-%d", r.nextID)
	u.CreatedAt = time.Now()
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type stubGoogle struct {
	email string
	name  string
	err   error
}

func (g *stubGoogle) Verify(ctx context.Context, idToken string) (string, string, error) {
	return g.email, g.name, g.err
}

func newAuthService(users repository.UserRepository, google GoogleVerifier) *AuthService {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(users, jwt, google, "shopwish@gmail.com", logrus.New(), nil)
}

func TestRegisterHashesPasswordAndSetsRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)
	ctx := context.Background()

	u, err := svc.Register(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.IsAdmin)
	assert.Equal(t, entity.AccountKindPassword, u.AccountKind)
	assert.NotEqual(t, "hunter22", u.PasswordHash)
	assert.True(t, helpers.CheckPassword(u.PasswordHash, "hunter22"))

	admin, err := svc.Register(ctx, "Admin", "shopwish@gmail.com", "admin12345")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other Alice", "alice@example.com", "different")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	u, token, err := svc.Login(ctx, "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.JWT.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginFederatedAccountHasNoPassword(t *testing.T) {
	repo := newStubUserRepo()
	require.NoError(t, repo.Create(context.Background(), &entity.User{
		Name:        "Bob",
		Email:       "bob@example.com",
		AccountKind: entity.AccountKindFederated,
	}))
	svc := newAuthService(repo, nil)

	_, _, err := svc.Login(context.Background(), "bob@example.com", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGoogleSignInProvisionsAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, &stubGoogle{email: "carol@example.com", name: ""})

	u, token, err := svc.LoginWithGoogle(context.Background(), "valid-token")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	// Name falls back to the email local part when the provider omits it.
	assert.Equal(t, "carol", u.Name)
	assert.Equal(t, entity.AccountKindFederated, u.AccountKind)
	assert.False(t, u.IsAdmin)

	// Second sign-in reuses the account.
	again, _, err := svc.LoginWithGoogle(context.Background(), "valid-token")
	require.NoError(t, err)
	assert.Equal(t, u.ID, again.ID)
}

func TestGoogleSignInBadToken(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), &stubGoogle{err: errors.New("token expired")})

	_, _, err := svc.LoginWithGoogle(context.Background(), "bad-token")
	assert.ErrorIs(t, err, ErrGoogleAuth)
}

func TestCurrentUserGone(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	_, err := svc.CurrentUser(context.Background(), "user-deleted")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
