package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omniboxhq/omnibox/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "validation error",
			err:      services.NewValidationError("body", "must not be empty"),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "not found",
			err:      services.ErrNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "wrapped not found",
			err:      fmt.Errorf("loading conversation: %w", services.ErrNotFound),
			wantCode: http.StatusNotFound,
		},
		{
			name:     "forbidden",
			err:      fmt.Errorf("%w: conversation is not assigned to you", services.ErrForbidden),
			wantCode: http.StatusForbidden,
		},
		{
			name:     "conflict",
			err:      fmt.Errorf("%w: conversation is not pending", services.ErrConflict),
			wantCode: http.StatusConflict,
		},
		{
			name:     "unexpected error",
			err:      errors.New("connection reset"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.Equal(t, tt.wantCode, he.Code)
		})
	}
}
