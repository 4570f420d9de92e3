package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payline/payline-go/models"
	"github.com/payline/payline-go/pure_utils"
)

const rawAPIError = `{
	"error": {
		"type": "invalid_request_error",
		"message": "No such customer: cus_missing",
		"param": "id"
	}
}`

func TestDecodeAPIError(t *testing.T) {
	apiErr, err := DecodeAPIError([]byte(rawAPIError))
	require.NoError(t, err)

	assert.Equal(t, "invalid_request_error", apiErr.Type)
	assert.Equal(t, "No such customer: cus_missing", apiErr.Message)
	assert.False(t, apiErr.Code.Set)
	assert.Equal(t, "id", apiErr.Param.Value())
}

func TestEntityDecodeRejectsErrorBody(t *testing.T) {
	// A caller expecting a customer but receiving an error body gets a typed
	// failure carrying the decoded error, not a pile of missing fields.
	_, err := DecodeCustomer([]byte(rawAPIError))
	assert.ErrorIs(t, err, models.ErrAPIError)

	var decodeErr models.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.NotNil(t, decodeErr.APIError)
	assert.Equal(t, "invalid_request_error", decodeErr.APIError.Type)
}

func TestAPIErrorRoundTrip(t *testing.T) {
	apiErr := models.APIError{
		Type:    "card_error",
		Message: "Your card was declined.",
		Code:    pure_utils.NullFrom("card_declined"),
		Param:   pure_utils.Null[string]{},
	}

	raw, err := EncodeAPIError(apiErr)
	require.NoError(t, err)

	decoded, err := DecodeAPIError(raw)
	require.NoError(t, err)
	assert.Equal(t, apiErr, decoded)
}

func TestInvalidJSONFailsDecode(t *testing.T) {
	_, err := DecodeCustomer([]byte(`{"id": `))
	assert.ErrorIs(t, err, models.ErrInvalidJSON)
}
