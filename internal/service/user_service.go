package service

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/events"
	"github.com/spec-kit/account-service/internal/repository"
)

// UserListCache caches the redacted users list. Implementations may be
// best-effort; a miss or error just falls through to the repository.
type UserListCache interface {
	GetUsers(ctx context.Context) ([]dto.UserPayload, bool)
	SetUsers(ctx context.Context, users []dto.UserPayload)
	Invalidate(ctx context.Context)
}

// UserService handles authenticated profile operations. Ownership is
// enforced by comparing the target id to the caller id, and the existence
// check always fires first so a probe on a missing id never turns into an
// ownership error.
type UserService struct {
	users      repository.UserRepository
	cache      UserListCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewUserService builds the service. cache and dispatcher may be nil.
func NewUserService(users repository.UserRepository, cache UserListCache, dispatcher events.Dispatcher, logger *zap.Logger) *UserService {
	return &UserService{users: users, cache: cache, dispatcher: dispatcher, logger: logger}
}

// FindAll returns every non-deleted user, redacted. Listing is deliberately
// unscoped: any authenticated caller sees all profiles.
func (s *UserService) FindAll(ctx context.Context) *dto.UsersListResponse {
	if s.cache != nil {
		if cached, ok := s.cache.GetUsers(ctx); ok {
			return &dto.UsersListResponse{
				BaseResponse: dto.OK(http.StatusOK, dto.MsgUserFetched),
				Users:        cached,
			}
		}
	}

	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.Error("find all users failed", zap.Error(err))
		return &dto.UsersListResponse{BaseResponse: dto.Internal(err)}
	}

	payloads := make([]dto.UserPayload, 0, len(users))
	for i := range users {
		payloads = append(payloads, *dto.NewUserPayload(&users[i]))
	}

	if s.cache != nil {
		s.cache.SetUsers(ctx, payloads)
	}

	return &dto.UsersListResponse{
		BaseResponse: dto.OK(http.StatusOK, dto.MsgUserFetched),
		Users:        payloads,
	}
}

// FindOne returns the user's own profile.
func (s *UserService) FindOne(ctx context.Context, id, currentUserID int64) *dto.UserResponse {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return &dto.UserResponse{BaseResponse: s.lookupFailure(err)}
	}
	if user.ID != currentUserID {
		return &dto.UserResponse{BaseResponse: dto.Fail(http.StatusUnauthorized, dto.MsgAccessNotAllowed)}
	}

	return &dto.UserResponse{
		BaseResponse: dto.OK(http.StatusOK, dto.MsgUserFetched),
		User:         dto.NewUserPayload(user),
	}
}

// Update mutates name and address of the caller's own profile, then re-reads
// the row so the response reflects what was persisted.
func (s *UserService) Update(ctx context.Context, id int64, req dto.UpdateUserRequest, currentUserID int64) *dto.UserResponse {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return &dto.UserResponse{BaseResponse: s.lookupFailure(err)}
	}
	if user.ID != currentUserID {
		return &dto.UserResponse{BaseResponse: dto.Fail(http.StatusUnauthorized, dto.MsgUpdateNotAllowed)}
	}

	if err := s.users.UpdateProfile(ctx, id, req.Name, req.Address); err != nil {
		return &dto.UserResponse{BaseResponse: s.lookupFailure(err)}
	}

	updated, err := s.users.GetByID(ctx, id)
	if err != nil {
		return &dto.UserResponse{BaseResponse: s.lookupFailure(err)}
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	s.publish(ctx, events.NewEvent(events.EventUserProfileUpdated, id,
		events.UserProfileUpdatedPayload{Name: updated.Name, Address: updated.Address}))

	return &dto.UserResponse{
		BaseResponse: dto.OK(http.StatusOK, dto.MsgUserUpdated),
		User:         dto.NewUserPayload(updated),
	}
}

// Delete soft-deletes the caller's own account. The row stays in place; the
// deletion marker hides it from every auth and ownership lookup.
func (s *UserService) Delete(ctx context.Context, id, currentUserID int64) *dto.BaseResponse {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		resp := s.lookupFailure(err)
		return &resp
	}
	if user.ID != currentUserID {
		resp := dto.Fail(http.StatusUnauthorized, dto.MsgDeleteNotAllowed)
		return &resp
	}

	if err := s.users.SoftDelete(ctx, id); err != nil {
		resp := s.lookupFailure(err)
		return &resp
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	s.publish(ctx, events.NewEvent(events.EventUserDeleted, id,
		events.UserDeletedPayload{Email: user.Email}))

	resp := dto.OK(http.StatusOK, dto.MsgUserDeleted)
	return &resp
}

func (s *UserService) lookupFailure(err error) dto.BaseResponse {
	if errors.Is(err, repository.ErrNotFound) {
		return dto.Fail(http.StatusNotFound, dto.MsgUserNotFound)
	}
	s.logger.Error("user store failure", zap.Error(err))
	return dto.Internal(err)
}

func (s *UserService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
