package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/NoBdr07/plateforme-owod/internal/auth"
	"github.com/NoBdr07/plateforme-owod/internal/core/domain"
	"github.com/NoBdr07/plateforme-owod/internal/core/ports"
)

// AuthService implements registration, login and session lookup. Tokens are
// minted by the auth.Codec; roles are snapshotted into the token at login
// and stay valid until it expires.
type AuthService struct {
	users ports.UserRepository
	codec *auth.Codec
}

func NewAuthService(users ports.UserRepository, codec *auth.Codec) *AuthService {
	return &AuthService{users: users, codec: codec}
}

func (s *AuthService) Register(ctx context.Context, email, password, firstname, lastname string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		Firstname:    firstname,
		Lastname:     lastname,
		PasswordHash: string(hash),
		Roles:        []domain.Role{domain.RoleUser},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.users.Create(ctx, user)
}

// Login verifies the password and issues a signed session token. Cookie
// emission stays in the handler; attribute decisions in auth.CookiePolicy.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID, user.Roles)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Session resolves the stored account behind an authenticated principal.
func (s *AuthService) Session(ctx context.Context, userID string) (*ports.SessionInfo, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	authorities := make([]string, len(user.Roles))
	for i, r := range user.Roles {
		authorities[i] = r.Authority()
	}

	return &ports.SessionInfo{
		UserID:      user.ID,
		Firstname:   user.Firstname,
		Lastname:    user.Lastname,
		Roles:       authorities,
		AccountType: user.AccountType(),
		DesignerID:  user.DesignerID,
		CompanyID:   user.CompanyID,
	}, nil
}
