package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/olopa-labs/olopa/internal/store"
	"github.com/olopa-labs/olopa/internal/user"
)

// ListUsers returns every account. Passwords never serialize.
func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.Users.ListUsers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	if users == nil {
		users = []user.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// Me returns the currently authenticated user's profile
func (h *Handler) Me(c echo.Context) error {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	u, err := h.Users.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}

	return c.JSON(http.StatusOK, publicUser(u))
}
