package validator

import (
	"testing"

	domainerrors "planner/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	UserName string  `json:"userName" validate:"required"`
	Role     string  `json:"role" validate:"required,oneof=customer admin"`
	Amount   float64 `form:"p_amount" validate:"gt=0"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sampleRequest{UserName: "alice", Role: "admin", Amount: 1}))

	err := v.Validate(&sampleRequest{Role: "owner"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr *domainerrors.BaseError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "userName,role,p_amount", appErr.Details())
}
