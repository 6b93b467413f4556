package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/shopwish/shopwish-api/internal/domain/entity"
	"github.com/shopwish/shopwish-api/internal/domain/repository"
	"github.com/shopwish/shopwish-api/pkg/helpers"
	"github.com/shopwish/shopwish-api/pkg/mailer"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrGoogleAuth         = errors.New("google authentication failed")
)

// GoogleVerifier validates a federated ID token and returns the verified
// identity. Implemented by helpers.GoogleVerifier; stubbed in tests.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (email, name string, err error)
}

// AuthService covers registration, password and Google sign-in, and token
// validation. Admin status is a stored role set at provisioning time: an
// account created with the configured admin email gets it, nobody else.
type AuthService struct {
	Users      repository.UserRepository
	JWT        *helpers.JWTManager
	Google     GoogleVerifier
	AdminEmail string
	Logger     *logrus.Logger
	Mail       *Mailer
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, google GoogleVerifier, adminEmail string, logger *logrus.Logger, mail *Mailer) *AuthService {
	return &AuthService{
		Users:      users,
		JWT:        jwt,
		Google:     google,
		AdminEmail: adminEmail,
		Logger:     logger,
		Mail:       mail,
	}
}

// Register creates a password account. Field presence is checked at the
// binding layer; uniqueness is enforced by the store.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		AccountKind:  entity.AccountKindPassword,
		IsAdmin:      email == s.AdminEmail,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.Mail.SendWelcome(ctx, u.Email, u.Name)
	return u, nil
}

// Login authenticates a password account and issues a session token.
// Federated accounts have no password and always fail here.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if u.PasswordHash == "" || !helpers.CheckPassword(u.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, _, err := s.JWT.Generate(u.ID, u.Name, u.Email)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return u, token, nil
}

// LoginWithGoogle verifies the provider token and signs the user in,
// provisioning a federated account on first sign-in.
func (s *AuthService) LoginWithGoogle(ctx context.Context, idToken string) (*entity.User, string, error) {
	email, name, err := s.Google.Verify(ctx, idToken)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("google token verification failed")
		}
		return nil, "", ErrGoogleAuth
	}

	u, err := s.Users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		if name == "" {
			name = strings.SplitN(email, "@", 2)[0]
		}
		u = &entity.User{
			Name:        name,
			Email:       email,
			AccountKind: entity.AccountKindFederated,
			IsAdmin:     email == s.AdminEmail,
		}
		if err := s.Users.Create(ctx, u); err != nil {
			// Lost a provisioning race; the account exists now.
			if errors.Is(err, repository.ErrDuplicate) {
				u, err = s.Users.GetByEmail(ctx, email)
				if err != nil {
					return nil, "", err
				}
			} else {
				return nil, "", err
			}
		} else {
			s.Mail.SendWelcome(ctx, u.Email, u.Name)
		}
	} else if err != nil {
		return nil, "", err
	}

	token, _, err := s.JWT.Generate(u.ID, u.Name, u.Email)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return u, token, nil
}

// CurrentUser re-resolves the user record behind a validated token so the
// caller gets fresh profile data and the current admin flag.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// Mailer publishes transactional email jobs to RabbitMQ. All sends are
// best-effort: a missing publisher or a broker error never fails the
// request that triggered the email.
type Mailer struct {
	Pub     *helpers.RabbitPublisher
	Enabled bool
	Logger  *logrus.Logger
}

func NewMailer(pub *helpers.RabbitPublisher, enabled bool, logger *logrus.Logger) *Mailer {
	return &Mailer{Pub: pub, Enabled: enabled, Logger: logger}
}

func (m *Mailer) SendWelcome(ctx context.Context, to, name string) {
	if m == nil || !m.Enabled || m.Pub == nil {
		return
	}
	job, err := mailer.NewWelcomeJob(to, name)
	if err == nil {
		err = m.Pub.PublishJSON(ctx, job)
	}
	if err != nil && m.Logger != nil {
		m.Logger.WithError(err).WithField("to", to).Warn("enqueue welcome email failed")
	}
}

func (m *Mailer) SendOrderConfirmation(ctx context.Context, to string, data mailer.OrderEmailData) {
	if m == nil || !m.Enabled || m.Pub == nil {
		return
	}
	job, err := mailer.NewOrderConfirmationJob(to, data)
	if err == nil {
		err = m.Pub.PublishJSON(ctx, job)
	}
	if err != nil && m.Logger != nil {
		m.Logger.WithError(err).WithField("to", to).Warn("enqueue order confirmation failed")
	}
}
