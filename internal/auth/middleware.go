package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/repository"
)

const currentUserKey = "current_user"

// AuthMiddleware validates bearer tokens and loads the calling user. It is
// the sole gate in front of the /users routes; signup and login never pass
// through it.
type AuthMiddleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewAuthMiddleware constructs the middleware.
func NewAuthMiddleware(tokens *TokenManager, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// Handle enforces authentication for protected routes. Failures are written
// in the common envelope shape rather than surfaced as errors.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token := bearerToken(c.Get(fiber.HeaderAuthorization))
	if token == "" {
		return c.Status(http.StatusUnauthorized).
			JSON(dto.Fail(http.StatusUnauthorized, dto.MsgTokenMissing))
	}

	claims, err := m.tokens.Verify(token)
	if err != nil {
		return c.Status(http.StatusUnauthorized).
			JSON(dto.Fail(http.StatusUnauthorized, dto.MsgInvalidToken))
	}

	// GetByID excludes soft-deleted rows, so a deleted account is treated as
	// absent even while its token is still unexpired.
	user, err := m.users.GetByID(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(http.StatusNotFound).
				JSON(dto.Fail(http.StatusNotFound, dto.MsgUserNotFound))
		}
		return c.Status(http.StatusInternalServerError).JSON(dto.Internal(err))
	}

	c.Locals(currentUserKey, user)
	return c.Next()
}

// CurrentUser retrieves the authenticated user attached by Handle.
func CurrentUser(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(currentUserKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}

// bearerToken extracts the token as the second whitespace-delimited segment
// of the Authorization header.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
