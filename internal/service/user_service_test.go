package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/domain"
)

type fakeListCache struct {
	users       []dto.UserPayload
	hit         bool
	setCalls    int
	invalidated int
}

func (c *fakeListCache) GetUsers(context.Context) ([]dto.UserPayload, bool) {
	return c.users, c.hit
}

func (c *fakeListCache) SetUsers(_ context.Context, users []dto.UserPayload) {
	c.users = users
	c.setCalls++
}

func (c *fakeListCache) Invalidate(context.Context) {
	c.users = nil
	c.hit = false
	c.invalidated++
}

// seedUsers inserts two accounts and returns their ids.
func seedUsers(t *testing.T, repo *memUserRepo) (int64, int64) {
	t.Helper()

	first := &domain.User{Name: "A", Email: "a@x.com", PasswordHash: "hash-a", Address: "Street 1"}
	require.NoError(t, repo.Create(context.Background(), first))
	second := &domain.User{Name: "B", Email: "b@x.com", PasswordHash: "hash-b", Address: "Street 2"}
	require.NoError(t, repo.Create(context.Background(), second))
	return first.ID, second.ID
}

func newUserService(repo *memUserRepo, cache UserListCache) *UserService {
	return NewUserService(repo, cache, nil, zap.NewNop())
}

func TestFindAll_RedactsEveryUser(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	seedUsers(t, repo)
	svc := newUserService(repo, nil)

	resp := svc.FindAll(context.Background())
	require.True(t, resp.Success)
	require.Equal(t, http.StatusOK, resp.Status)
	require.Equal(t, dto.MsgUserFetched, resp.Message)
	require.Len(t, resp.Users, 2)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	require.NotContains(t, strings.ToLower(string(raw)), "password")
	require.NotContains(t, string(raw), "hash-a")
}

func TestFindAll_ExcludesSoftDeleted(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	firstID, _ := seedUsers(t, repo)
	require.NoError(t, repo.SoftDelete(context.Background(), firstID))
	svc := newUserService(repo, nil)

	resp := svc.FindAll(context.Background())
	require.True(t, resp.Success)
	require.Len(t, resp.Users, 1)
	require.Equal(t, "b@x.com", resp.Users[0].Email)
}

func TestFindAll_CacheHitSkipsStore(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	repo.listErr = errors.New("store must not be called")
	cache := &fakeListCache{
		users: []dto.UserPayload{{ID: 1, Name: "A", Email: "a@x.com"}},
		hit:   true,
	}
	svc := newUserService(repo, cache)

	resp := svc.FindAll(context.Background())
	require.True(t, resp.Success)
	require.Len(t, resp.Users, 1)
}

func TestFindAll_MissPopulatesCache(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	seedUsers(t, repo)
	cache := &fakeListCache{}
	svc := newUserService(repo, cache)

	resp := svc.FindAll(context.Background())
	require.True(t, resp.Success)
	require.Equal(t, 1, cache.setCalls)
	require.Len(t, cache.users, 2)
}

func TestFindAll_StoreFailure(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	repo.listErr = errors.New("timeout")
	svc := newUserService(repo, nil)

	resp := svc.FindAll(context.Background())
	require.False(t, resp.Success)
	require.Equal(t, http.StatusInternalServerError, resp.Status)
	require.Equal(t, dto.MsgInternalServerError, resp.Message)
	require.Equal(t, "timeout", resp.Error)
}

func TestFindOne_Owner(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	firstID, _ := seedUsers(t, repo)
	svc := newUserService(repo, nil)

	resp := svc.FindOne(context.Background(), firstID, firstID)
	require.True(t, resp.Success)
	require.Equal(t, dto.MsgUserFetched, resp.Message)
	require.NotNil(t, resp.User)
	require.Equal(t, firstID, resp.User.ID)
}

func TestFindOne_NotOwner(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	firstID, secondID := seedUsers(t, repo)
	svc := newUserService(repo, nil)

	resp := svc.FindOne(context.Background(), secondID, firstID)
	require.False(t, resp.Success)
	require.Equal(t, http.StatusUnauthorized, resp.Status)
	require.Equal(t, dto.MsgAccessNotAllowed, resp.Message)
	require.Nil(t, resp.User)
}

func TestFindOne_MissingBeatsOwnership(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	firstID, _ := seedUsers(t, repo)
	svc := newUserService(repo, nil)

	// Probing a nonexistent id as a non-owner reports not-found, never an
	// ownership failure.
	resp := svc.FindOne(context.Background(), 999, firstID)
	require.False(t, resp.Success)
	require.Equal(t, http.StatusNotFound, resp.Status)
	require.Equal(t, dto.MsgUserNotFound, resp.Message)
}

func TestUpdate_Owner(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	firstID, _ := seedUsers(t, repo)
	cache := &fakeListCache{}
	svc := newUserService(repo, cache)

	resp := svc.Update(context.Background(), firstID,
		dto.UpdateUserRequest{Name: "Mohd Adil", Address: "Noida"}, firstID)
	require.True(t, resp.Success)
	require.Equal(t, dto.MsgUserUpdated, resp.Message)
	require.Equal(t, "Mohd Adil", resp.User.Name)
	require.Equal(t, "Noida", resp.User.Address)
	require.Equal(t, 1, cache.invalidated)

	stored, err := repo.GetByID(context.Background(), firstID)
	require.NoError(t, err)
	require.Equal(t, "Mohd Adil", stored.Name)
}

func TestUpdate_NotOwner(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	firstID, secondID := seedUsers(t, repo)
	svc := newUserService(repo, nil)

	resp := svc.Update(context.Background(), secondID,
		dto.UpdateUserRequest{Name: "X", Address: "Y"}, firstID)
	require.False(t, resp.Success)
	require.Equal(t, http.StatusUnauthorized, resp.Status)
	require.Equal(t, dto.MsgUpdateNotAllowed, resp.Message)

	stored, err := repo.GetByID(context.Background(), secondID)
	require.NoError(t, err)
	require.Equal(t, "B", stored.Name)
}

func TestUpdate_Missing(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	firstID, _ := seedUsers(t, repo)
	svc := newUserService(repo, nil)

	resp := svc.Update(context.Background(), 999,
		dto.UpdateUserRequest{Name: "X", Address: "Y"}, firstID)
	require.Equal(t, http.StatusNotFound, resp.Status)
	require.Equal(t, dto.MsgUserNotFound, resp.Message)
}

func TestDelete_Owner_SoftDeletes(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	firstID, _ := seedUsers(t, repo)
	cache := &fakeListCache{}
	svc := newUserService(repo, cache)

	resp := svc.Delete(context.Background(), firstID, firstID)
	require.True(t, resp.Success)
	require.Equal(t, http.StatusOK, resp.Status)
	require.Equal(t, dto.MsgUserDeleted, resp.Message)
	require.Equal(t, 1, cache.invalidated)

	// The row survives with the marker set; auth lookups treat it as absent.
	repo.mu.Lock()
	row := repo.users[firstID]
	repo.mu.Unlock()
	require.NotNil(t, row)
	require.True(t, row.Deleted())

	_, err := repo.GetByID(context.Background(), firstID)
	require.Error(t, err)
}

func TestDelete_NotOwner(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	firstID, secondID := seedUsers(t, repo)
	svc := newUserService(repo, nil)

	resp := svc.Delete(context.Background(), secondID, firstID)
	require.False(t, resp.Success)
	require.Equal(t, http.StatusUnauthorized, resp.Status)
	require.Equal(t, dto.MsgDeleteNotAllowed, resp.Message)

	_, err := repo.GetByID(context.Background(), secondID)
	require.NoError(t, err)
}

func TestDelete_MissingBeatsOwnership(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	firstID, _ := seedUsers(t, repo)
	svc := newUserService(repo, nil)

	resp := svc.Delete(context.Background(), 999, firstID)
	require.Equal(t, http.StatusNotFound, resp.Status)
	require.Equal(t, dto.MsgUserNotFound, resp.Message)
}
