package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avolkovs/techcards/internal/common"
	"github.com/avolkovs/techcards/internal/server/auth"
	"github.com/avolkovs/techcards/internal/server/config"
	"github.com/avolkovs/techcards/internal/server/models"
	"github.com/avolkovs/techcards/internal/server/repositories/users"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo       users.Repository
	bcryptCost int
	cfg        *config.Config
}

func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:       repo,
		bcryptCost: cfg.BcryptCost,
		cfg:        cfg,
	}
}

// normalizeEmail lowercases and trims an address so lookups are
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login verifies credentials and issues a signed token. Unknown email and
// wrong password produce the same message, so the response never reveals
// whether an account exists.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return "", common.NewValidation("Email and password are required")
	}

	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.NewUnauthorized("Invalid email or password")
		}
		return "", fmt.Errorf("%w: %s", common.NewInternal("SERVER_ERROR", "Login failed"), err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", common.NewUnauthorized("Invalid email or password")
	}

	token, err := auth.GenerateToken(user.ID, []byte(s.cfg.SecretKey), s.cfg.TokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("%w: %s", common.NewInternal("SERVER_ERROR", "Login failed"), err)
	}
	return token, nil
}

// Me resolves the user behind a verified token subject.
func (s *UserService) Me(ctx context.Context, userID string) (*models.PublicUser, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.NewUnauthorized("User not found")
		}
		return nil, fmt.Errorf("%w: %s", common.NewInternal("SERVER_ERROR", "Failed to fetch user"), err)
	}
	pub := user.Public()
	return &pub, nil
}

// CreateOrUpdateUser upserts an account by email with a freshly hashed
// password. Used by the admin tool, not exposed over HTTP.
func (s *UserService) CreateOrUpdateUser(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, common.NewValidation("Email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		if err := s.repo.UpdatePasswordHash(ctx, existing.ID, string(hash)); err != nil {
			return nil, fmt.Errorf("updating password: %w", err)
		}
		existing.PasswordHash = string(hash)
		return existing, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return created, nil
}
