package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"unauthorized", Unauthorized("invalid or expired token"), KindUnauthorized},
		{"forbidden", Forbidden("not authorized"), KindForbidden},
		{"not found", NotFoundf("record %s not found", "abc"), KindNotFound},
		{"conflict", Conflict("staff id already exists"), KindConflict},
		{"validation", Validation("invalid date format"), KindValidation},
		{"wrapped", fmt.Errorf("update record: %w", NotFound("record not found")), KindNotFound},
		{"plain error", errors.New("connection reset"), KindInternal},
		{"nil-ish internal", fmt.Errorf("boom"), KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestReasonSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("restore: %w", NotFound("no deleted record with that id"))
	var ae *Error
	assert.True(t, errors.As(err, &ae))
	assert.Equal(t, "no deleted record with that id", ae.Reason)
}
