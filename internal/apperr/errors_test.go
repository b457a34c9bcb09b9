package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/expr-pda/internal/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("expression is required")

	if err.Error() != "expression is required" {
		t.Errorf("expected 'expression is required', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("mismatched parentheses")
	err := apperr.NewValidationWrap("invalid expression", inner)

	if err.Error() != "invalid expression: mismatched parentheses" {
		t.Errorf("expected 'invalid expression: mismatched parentheses', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("invalid page size")

	wrapped := fmt.Errorf("failed to list: %w", original)
	doubleWrapped := fmt.Errorf("router error: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "invalid page size" {
		t.Errorf("expected 'invalid page size', got %q", ve.Message)
	}
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("database connection failed")
	wrapped := fmt.Errorf("storage error: %w", plain)

	var ve *apperr.ValidationError
	if errors.As(wrapped, &ve) {
		t.Fatal("errors.As should NOT find ValidationError in plain error chain")
	}
}

func TestNotFoundError(t *testing.T) {
	err := apperr.NewNotFound("check", "42")
	assert.Equal(t, "check 42 not found", err.Error())
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation",
			err:        fmt.Errorf("bind: %w", apperr.NewValidation("expression is required")),
			wantStatus: http.StatusBadRequest,
			wantBody:   `"error":"expression is required"`,
		},
		{
			name:       "not found",
			err:        apperr.NewNotFound("check", "abc"),
			wantStatus: http.StatusNotFound,
			wantBody:   `"error":"check abc not found"`,
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `"error":"method not allowed"`,
		},
		{
			name:       "unhandled",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"error":"internal server error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			apperr.GlobalErrorHandler()(tt.err, c)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
