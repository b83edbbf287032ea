package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"bloglist/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", models.NewValidationError("bad input"), http.StatusBadRequest},
		{"Conflict", models.NewConflictError("username must be unique"), http.StatusConflict},
		{"Unauthorized", models.NewUnauthorizedError("token missing or invalid"), http.StatusUnauthorized},
		{"Not Found", models.NewNotFoundError("Blog", 1), http.StatusNotFound},
		{"Consistency", models.NewConsistencyError("blog creation", errors.New("boom")), http.StatusInternalServerError},
		{"Internal", models.NewInternalError(errors.New("boom")), http.StatusInternalServerError},
		{"Plain Error", errors.New("anything"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusForError(tt.err))
		})
	}
}

func TestParsePagination(t *testing.T) {
	app := fiber.New()
	var got Pagination
	app.Get("/things", func(c *fiber.Ctx) error {
		got = parsePagination(c, 50)
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name     string
		query    string
		expected Pagination
	}{
		{"Defaults", "", Pagination{Limit: 50, Offset: 0}},
		{"Explicit", "?limit=10&offset=20", Pagination{Limit: 10, Offset: 20}},
		{"Capped Limit", "?limit=500", Pagination{Limit: 100, Offset: 0}},
		{"Negative Values", "?limit=-5&offset=-5", Pagination{Limit: 50, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/things"+tt.query, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			_ = resp.Body.Close()
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseID(t *testing.T) {
	s := &Server{}
	app := fiber.New()

	var gotID uint
	var gotErr error
	app.Get("/things/:id", func(c *fiber.Ctx) error {
		gotID, gotErr = s.parseID(c, "id")
		if gotErr != nil {
			return nil
		}
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/things/7", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, gotErr)
	assert.Equal(t, uint(7), gotID)

	for _, bad := range []string{"banana", "0", "-3"} {
		req = httptest.NewRequest(http.MethodGet, "/things/"+bad, nil)
		resp, err = app.Test(req)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "id %q", bad)
		assert.ErrorIs(t, gotErr, errResponseWritten)
	}
}
