package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/service"
)

// UsersHandler exposes authenticated profile operations. The auth middleware
// runs before every route here, so the current user is always present.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	if _, ok := auth.CurrentUser(c); !ok {
		return fiber.ErrUnauthorized
	}
	resp := h.users.FindAll(c.UserContext())
	return c.Status(resp.Status).JSON(resp)
}

// Get handles GET /users/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	current, ok := auth.CurrentUser(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	id, err := userID(c)
	if err != nil {
		return err
	}

	resp := h.users.FindOne(c.UserContext(), id, current.ID)
	return c.Status(resp.Status).JSON(resp)
}

// Update handles PUT /users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	current, ok := auth.CurrentUser(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	id, err := userID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	resp := h.users.Update(c.UserContext(), id, req, current.ID)
	return c.Status(resp.Status).JSON(resp)
}

// Delete handles DELETE /users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	current, ok := auth.CurrentUser(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	id, err := userID(c)
	if err != nil {
		return err
	}

	resp := h.users.Delete(c.UserContext(), id, current.ID)
	return c.Status(resp.Status).JSON(resp)
}

func userID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(http.StatusBadRequest, "invalid user id")
	}
	return id, nil
}
