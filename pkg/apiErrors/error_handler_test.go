package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code       string
		wantStatus int
	}{
		{code: ErrInvalidRequest, wantStatus: http.StatusBadRequest},
		{code: ErrRateLimited, wantStatus: http.StatusTooManyRequests},
		{code: ErrNotFound, wantStatus: http.StatusNotFound},
		{code: ErrExternalService, wantStatus: http.StatusBadGateway},
		{code: ErrMalformedResponse, wantStatus: http.StatusBadGateway},
		{code: ErrCommunication, wantStatus: http.StatusServiceUnavailable},
		{code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", map[string]string{"campo": "valor"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrRateLimited).Code)

	apiErr := FromError(errors.New("boom"), ErrCommunication)
	assert.Equal(t, ErrCommunication, apiErr.Code)
	assert.Equal(t, "boom", apiErr.Message)
}
