package contracts

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Store is the slice of the document store the contract handlers need.
type Store interface {
	CreateContract(ctx context.Context, ct Contract) (Contract, error)
	ListContracts(ctx context.Context) ([]Contract, error)
}

type Handler struct {
	Contracts Store
}

var validate = validator.New()

type CreateRequest struct {
	Title                string  `json:"title" validate:"required"`
	Description          string  `json:"description"`
	Employer             string  `json:"employer" validate:"required"`
	Freelancer           string  `json:"freelancer"`
	Amount               float64 `json:"amount" validate:"required,gt=0"`
	TransactionSignature string  `json:"transactionSignature"`
	EscrowAddress        string  `json:"escrowAddress"`
	Status               string  `json:"status"`
}

// Create stores a contract record and echoes the full document back,
// including the server-assigned id and timestamps.
func (h *Handler) Create(c echo.Context) error {
	req := new(CreateRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	status, err := ParseStatus(req.Status)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	created, err := h.Contracts.CreateContract(c.Request().Context(), Contract{
		Title:                req.Title,
		Description:          req.Description,
		Employer:             req.Employer,
		Freelancer:           req.Freelancer,
		Amount:               req.Amount,
		TransactionSignature: req.TransactionSignature,
		EscrowAddress:        req.EscrowAddress,
		Status:               status,
	})
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, created)
}

// List returns every contract in insertion order. Employer and freelancer
// are raw wallet addresses, returned as-is.
func (h *Handler) List(c echo.Context) error {
	list, err := h.Contracts.ListContracts(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	if list == nil {
		list = []Contract{}
	}
	return c.JSON(http.StatusOK, list)
}
