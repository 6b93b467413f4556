package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email         string  `json:"email" binding:"required,email"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" binding:"omitempty,oneof=bank_transfer e_wallet cod"`
}

func validate(t *testing.T, v any) error {
	t.Helper()
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return engine.Struct(v)
}

func TestToDetailsUsesJSONFieldNames(t *testing.T) {
	Init()

	err := validate(t, sampleRequest{Email: "not-an-email", Price: -1, PaymentMethod: "cash"})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be a valid email", details["email"])
	assert.Equal(t, "must be greater than 0", details["price"])
	assert.Equal(t, "must be one of: bank_transfer, e_wallet, cod", details["payment_method"])
}

func TestToDetailsRequired(t *testing.T) {
	Init()

	err := validate(t, sampleRequest{})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "is required", details["email"])
	assert.Equal(t, "is required", details["price"])
	assert.NotContains(t, details, "payment_method")
}

func TestToDetailsNilError(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}
