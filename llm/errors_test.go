package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLLMError(t *testing.T) {
	testCases := []struct {
		name          string
		errType       ErrorType
		message       string
		underlyingErr error
		expectedStr   string
	}{
		{
			name:          "Request error with underlying error",
			errType:       ErrorTypeRequest,
			message:       "failed to send request",
			underlyingErr: errors.New("connection refused"),
			expectedStr:   "RequestError (failed to send request): connection refused",
		},
		{
			name:        "API error without underlying error",
			errType:     ErrorTypeAPI,
			message:     "API error: status code 500",
			expectedStr: "APIError: API error: status code 500",
		},
		{
			name:        "Invalid input error",
			errType:     ErrorTypeInvalidInput,
			message:     "prompt must be at least 10 characters",
			expectedStr: "InvalidInputError: prompt must be at least 10 characters",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			llmErr := NewLLMError(tc.errType, tc.message, tc.underlyingErr)

			assert.Equal(t, tc.errType, llmErr.Type)
			assert.Equal(t, tc.message, llmErr.Message)
			assert.Equal(t, tc.expectedStr, llmErr.Error())

			if tc.underlyingErr != nil {
				assert.Equal(t, tc.underlyingErr, errors.Unwrap(llmErr))
			}
		})
	}
}

func TestErrorTypeStrings(t *testing.T) {
	testCases := map[ErrorType]string{
		ErrorTypeUnknown:        "UnknownError",
		ErrorTypeProvider:       "ProviderError",
		ErrorTypeRequest:        "RequestError",
		ErrorTypeResponse:       "ResponseError",
		ErrorTypeAPI:            "APIError",
		ErrorTypeRateLimit:      "RateLimitError",
		ErrorTypeAuthentication: "AuthenticationError",
		ErrorTypeInvalidInput:   "InvalidInputError",
	}

	for errType, expected := range testCases {
		assert.Equal(t, expected, NewLLMError(errType, "msg", nil).TypeString())
	}
}
