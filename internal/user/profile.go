package user

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/olopa-labs/olopa/internal/store"
)

// Getter is the read-only slice of the store the profile handler needs.
type Getter interface {
	GetUserByID(ctx context.Context, id string) (User, error)
}

type Handler struct {
	Users Getter
}

// PublicProfile handles GET /api/users/:id
func (h *Handler) PublicProfile(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing user id"})
	}

	u, err := h.Users.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch user"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":        u.ID,
		"name":      u.Name,
		"role":      u.Role,
		"createdAt": u.CreatedAt.Format(time.RFC3339),
	})
}
