package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DevGleb/RealWorldApp/internal/domain"
	"github.com/DevGleb/RealWorldApp/internal/logger"
	"github.com/DevGleb/RealWorldApp/internal/metrics"
	"github.com/DevGleb/RealWorldApp/internal/repository"
)

// UserService orchestrates registration, login and current-user
// operations. Password hashing and token issuance are delegated to
// injected collaborators.
type UserService struct {
	users  repository.UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewUserService creates a new UserService.
func NewUserService(users repository.UserRepository, hasher PasswordHasher, tokens TokenIssuer) *UserService {
	return &UserService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates an account. A duplicate email fails with
// ErrEmailTaken; a duplicate username with ErrUsernameTaken. Bio and
// image start empty, never null.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*domain.UserView, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		Bio:          "",
		Image:        "",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Add(ctx, user); err != nil {
		// The email was checked above, so a remaining unique violation
		// is the username (or a concurrent registration race).
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	metrics.UsersRegistered.Inc()
	logger.Info("user registered", slog.String("username", username))

	return s.buildUserView(user)
}

// Login verifies credentials. An unknown email and a wrong password are
// deliberately indistinguishable: both fail with ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.UserView, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hasher.Verify(password, user.PasswordHash) {
		metrics.Logins.WithLabelValues("failure").Inc()
		return nil, ErrInvalidCredentials
	}

	metrics.Logins.WithLabelValues("success").Inc()
	return s.buildUserView(user)
}

// GetCurrent returns the authenticated user's own view, or nil when the
// account no longer exists.
func (s *UserService) GetCurrent(ctx context.Context, userID string) (*domain.UserView, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil || user == nil {
		return nil, err
	}
	return s.buildUserView(user)
}

// UpdateCurrent applies a partial update: empty or omitted fields are
// left unchanged. A supplied password is re-hashed before persisting.
func (s *UserService) UpdateCurrent(ctx context.Context, userID string, update domain.UserUpdate) (*domain.UserView, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil || user == nil {
		return nil, err
	}

	applyIfSet(&user.Username, update.Username)
	applyIfSet(&user.Email, update.Email)
	applyIfSet(&user.Bio, update.Bio)
	applyIfSet(&user.Image, update.Image)
	if update.Password != nil && *update.Password != "" {
		hashed, err := s.hasher.Hash(*update.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return s.buildUserView(user)
}

// buildUserView composes the user's own view with a freshly issued
// token attached.
func (s *UserService) buildUserView(user *domain.User) (*domain.UserView, error) {
	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &domain.UserView{
		Username: user.Username,
		Email:    user.Email,
		Bio:      user.Bio,
		Image:    user.Image,
		Token:    token,
	}, nil
}
