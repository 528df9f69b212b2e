package dto

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/account-service/internal/domain"
)

func TestEnvelope_SuccessOmitsError(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(OK(http.StatusOK, MsgUserFetched))
	require.NoError(t, err)
	require.NotContains(t, string(raw), `"error"`)
	require.Contains(t, string(raw), `"success":true`)
}

func TestEnvelope_InternalCarriesDiagnostic(t *testing.T) {
	t.Parallel()

	resp := Internal(errors.New("dial tcp: refused"))
	require.False(t, resp.Success)
	require.Equal(t, http.StatusInternalServerError, resp.Status)
	require.Equal(t, MsgInternalServerError, resp.Message)
	require.Equal(t, "dial tcp: refused", resp.Error)
}

func TestNewUserPayload_HasNoPasswordField(t *testing.T) {
	t.Parallel()

	now := time.Now()
	user := &domain.User{
		ID:           1,
		Name:         "A",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$secret",
		Address:      "Street 1",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	raw, err := json.Marshal(NewUserPayload(user))
	require.NoError(t, err)
	require.NotContains(t, string(raw), "password")
	require.NotContains(t, string(raw), "secret")
	require.Contains(t, string(raw), `"email":"a@x.com"`)
}

func TestNewUserPayload_Nil(t *testing.T) {
	t.Parallel()

	require.Nil(t, NewUserPayload(nil))
}
