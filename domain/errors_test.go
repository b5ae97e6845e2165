package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrTransport,
		ErrAPI,
		ErrNotFound,
		ErrInvalidArgument,
		ErrDecode,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b,
					"sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewTransportError("customers", "get", cause)

	assert.Equal(t, "customers get: transport failure: connection refused", err.Error())
	require.ErrorIs(t, err, ErrTransport)
	require.ErrorIs(t, err, cause)
	assert.True(t, IsTransport(err))
	assert.False(t, IsAPIError(err))
	assert.False(t, IsNotFound(err))

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "customers", te.Resource)
	assert.Equal(t, "get", te.Operation)
}

func TestAPIError_Message(t *testing.T) {
	tests := []struct {
		name        string
		err         *APIError
		expectedMsg string
	}{
		{
			name: "code and description",
			err: &APIError{
				Resource: "customers", Operation: "create", StatusCode: 400,
				Errors: []ErrorDetail{{Code: "invalid_cpfCnpj", Description: "CPF inválido"}},
			},
			expectedMsg: "customers create: upstream returned status 400: invalid_cpfCnpj: CPF inválido",
		},
		{
			name: "multiple details joined",
			err: &APIError{
				Resource: "payments", Operation: "create", StatusCode: 400,
				Errors: []ErrorDetail{
					{Description: "valor inválido"},
					{Code: "invalid_dueDate"},
				},
			},
			expectedMsg: "payments create: upstream returned status 400: valor inválido; invalid_dueDate",
		},
		{
			name:        "raw body fallback",
			err:         &APIError{Resource: "payments", Operation: "get", StatusCode: 502, Body: " bad gateway \n"},
			expectedMsg: "payments get: upstream returned status 502: bad gateway",
		},
		{
			name:        "no payload",
			err:         &APIError{Resource: "customers", Operation: "delete", StatusCode: 500},
			expectedMsg: "customers delete: upstream returned status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedMsg, tt.err.Error())
			require.ErrorIs(t, tt.err, ErrAPI)
			assert.True(t, IsAPIError(tt.err))
		})
	}
}

func TestAPIError_HasCode(t *testing.T) {
	err := &APIError{Errors: []ErrorDetail{{Code: "a"}, {Code: "b"}}}

	assert.True(t, err.HasCode("b"))
	assert.False(t, err.HasCode("c"))
}

func TestNotFoundError(t *testing.T) {
	api := &APIError{Resource: "customers", Operation: "get", StatusCode: 404}
	err := NewNotFoundError("customers", "cus_1", api)

	assert.Equal(t, `customers with id "cus_1" not found`, err.Error())
	require.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsNotFound(err))
	assert.True(t, IsAPIError(err), "not found is a specialization of APIError")

	var got *APIError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, 404, got.StatusCode)
}

func TestNotFoundError_WithoutAPI(t *testing.T) {
	err := NewNotFoundError("payments", "", nil)

	assert.Equal(t, "payments not found", err.Error())
	assert.True(t, IsNotFound(err))
	assert.False(t, IsAPIError(err))
}

func TestDecodeError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := NewDecodeError("payments", "list", cause)

	assert.Contains(t, err.Error(), "decoding response")
	assert.True(t, IsDecode(err))
	require.ErrorIs(t, err, cause)
}

func TestInvalidArgumentError(t *testing.T) {
	err := NewInvalidArgumentError("id", "is required")

	assert.Equal(t, "invalid argument: id is required", err.Error())
	assert.True(t, IsInvalidArgument(err))
}

func TestErrorsSurviveWrapping(t *testing.T) {
	base := NewNotFoundError("customers", "cus_1", &APIError{StatusCode: 404})
	wrapped := fmt.Errorf("loading profile: %w", base)

	assert.True(t, IsNotFound(wrapped))
	assert.True(t, IsAPIError(wrapped))
	assert.False(t, IsTransport(wrapped))
}
