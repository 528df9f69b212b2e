package service

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/config"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/events"
	"github.com/spec-kit/account-service/internal/repository"
)

// AuthService coordinates signup and login. Every outcome, success or
// failure, is a response envelope; expected business failures never surface
// as Go errors past this layer.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	logger     *zap.Logger
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, dispatcher events.Dispatcher, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL()),
		dispatcher: dispatcher,
		logger:     logger,
		bcryptCost: cfg.BcryptCost,
	}
}

// Signup registers a new account: duplicate check, hash, persist, redact.
func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) *dto.UserResponse {
	_, err := s.users.GetByEmail(ctx, req.Email)
	if err == nil {
		return &dto.UserResponse{BaseResponse: dto.Fail(http.StatusBadRequest, dto.MsgUserAlreadyExist)}
	}
	if !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error("signup: email lookup failed", zap.Error(err))
		return &dto.UserResponse{BaseResponse: dto.Internal(err)}
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		s.logger.Error("signup: hashing failed", zap.Error(err))
		return &dto.UserResponse{BaseResponse: dto.Internal(err)}
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Address:      req.Address,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Two concurrent signups can both pass the pre-check; the store's
		// unique constraint decides, and the loser gets the same conflict.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return &dto.UserResponse{BaseResponse: dto.Fail(http.StatusBadRequest, dto.MsgUserAlreadyExist)}
		}
		s.logger.Error("signup: create failed", zap.Error(err))
		return &dto.UserResponse{BaseResponse: dto.Internal(err)}
	}

	s.publish(ctx, events.NewEvent(events.EventUserRegistered, user.ID,
		events.UserRegisteredPayload{Name: user.Name, Email: user.Email}))

	return &dto.UserResponse{
		BaseResponse: dto.OK(http.StatusCreated, dto.MsgUserCreated),
		User:         dto.NewUserPayload(user),
	}
}

// Login authenticates by email and password and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) *dto.LoginResponse {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &dto.LoginResponse{BaseResponse: dto.Fail(http.StatusNotFound, dto.MsgUserNotFound)}
		}
		s.logger.Error("login: email lookup failed", zap.Error(err))
		return &dto.LoginResponse{BaseResponse: dto.Internal(err)}
	}

	if err := auth.ComparePassword(user.PasswordHash, req.Password); err != nil {
		return &dto.LoginResponse{BaseResponse: dto.Fail(http.StatusUnauthorized, dto.MsgInvalidCredential)}
	}

	token, _, err := s.tokenMgr.Issue(user.ID)
	if err != nil {
		s.logger.Error("login: token issuance failed", zap.Error(err))
		return &dto.LoginResponse{BaseResponse: dto.Internal(err)}
	}

	return &dto.LoginResponse{
		BaseResponse: dto.OK(http.StatusOK, dto.MsgUserLogin),
		User: &dto.LoginUserPayload{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Token: token,
		},
	}
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
