package contracts_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olopa-labs/olopa/internal/contracts"
	"github.com/olopa-labs/olopa/internal/store/memory"
)

func newHandler() *contracts.Handler {
	return &contracts.Handler{Contracts: memory.New()}
}

func doJSON(t *testing.T, handler echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestCreateDefaultsStatus(t *testing.T) {
	h := newHandler()
	rec := doJSON(t, h.Create, http.MethodPost, "/api/contracts",
		`{"title":"Build a site","description":"landing page","employer":"Demo_abc1234","amount":5}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var ct contracts.Contract
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ct))
	assert.Equal(t, contracts.StatusCreated, ct.Status)
	assert.NotEmpty(t, ct.ID)
	assert.False(t, ct.CreatedAt.IsZero())
	assert.Equal(t, "Demo_abc1234", ct.Employer)
}

func TestCreatePreservesExplicitStatus(t *testing.T) {
	h := newHandler()
	rec := doJSON(t, h.Create, http.MethodPost, "/api/contracts",
		`{"title":"Logo","employer":"addr","amount":2,"transactionSignature":"SIMULATED_x","escrowAddress":"SIMULATED_ESCROW_y","status":"simulated"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var ct contracts.Contract
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ct))
	assert.Equal(t, contracts.StatusSimulated, ct.Status)
	assert.Equal(t, "SIMULATED_x", ct.TransactionSignature)
}

func TestCreateRejectsBadInput(t *testing.T) {
	h := newHandler()
	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"employer":"addr","amount":2}`},
		{"missing employer", `{"title":"Logo","amount":2}`},
		{"zero amount", `{"title":"Logo","employer":"addr","amount":0}`},
		{"negative amount", `{"title":"Logo","employer":"addr","amount":-3}`},
		{"unknown status", `{"title":"Logo","employer":"addr","amount":2,"status":"paid"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h.Create, http.MethodPost, "/api/contracts", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestListInsertionOrder(t *testing.T) {
	h := newHandler()
	for _, title := range []string{"C1", "C2", "C3"} {
		rec := doJSON(t, h.Create, http.MethodPost, "/api/contracts",
			`{"title":"`+title+`","employer":"addr","amount":1}`)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, h.List, http.MethodGet, "/api/contracts", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []contracts.Contract
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 3)
	assert.Equal(t, "C1", list[0].Title)
	assert.Equal(t, "C2", list[1].Title)
	assert.Equal(t, "C3", list[2].Title)

	// Newest-first rendering reverses the returned order
	assert.Equal(t, "C3", list[len(list)-1].Title)
}

func TestListEmpty(t *testing.T) {
	h := newHandler()
	rec := doJSON(t, h.List, http.MethodGet, "/api/contracts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
