package models

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError(t *testing.T) {
	apiErr := NewAPIError(ErrorCodeInvalidFormat, "unexpected data after JSON object", nil, http.StatusBadRequest)

	assert.Equal(t, "400 invalid_format: unexpected data after JSON object", apiErr.Error())

	raw, err := json.Marshal(apiErr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"invalid_format","message":"unexpected data after JSON object"}`, string(raw))
}

func TestFieldErrorSentinels(t *testing.T) {
	missing := error(&FieldError{Field: FieldWaterLevel, Kind: FieldMissing})
	parse := error(&FieldError{Field: FieldTemperature, Kind: FieldParse, Err: errors.New("bad")})

	assert.ErrorIs(t, missing, ErrMissingField)
	assert.NotErrorIs(t, missing, ErrInvalidField)
	assert.ErrorIs(t, parse, ErrInvalidField)
	assert.NotErrorIs(t, parse, ErrMissingField)
	assert.Equal(t, `field "w_level" is required`, missing.Error())
}
