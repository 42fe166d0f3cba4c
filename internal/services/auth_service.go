package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cloud-media-platform/internal/apperrors"
	"cloud-media-platform/internal/auth"
	"cloud-media-platform/internal/models"
	"cloud-media-platform/internal/repository"
)

// AuthService handles registration and login.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
	log        *zap.SugaredLogger

	now func() time.Time
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager, bcryptCost int, log *zap.SugaredLogger) *AuthService {
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost, log: log, now: time.Now}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.AlreadyExists("user with this email already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Internal("failed to check existing user", err)
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, apperrors.AlreadyExists("user with this email already exists")
		}
		return nil, apperrors.Internal("failed to create user", err)
	}
	s.log.Infow("user registered", "userId", user.ID)

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.Internal("failed to issue token", err)
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Unauthorized("invalid email or password")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to look up user", err)
	}
	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		return nil, apperrors.Unauthorized("invalid email or password")
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.Internal("failed to issue token", err)
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}
