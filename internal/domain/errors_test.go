package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "rate limit esgotado", err: &IntegrationError{Err: ErrRateLimitExceeded}, want: "rate_limit"},
		{name: "validação", err: NewValidationError("account id is required"), want: "validation"},
		{name: "payload inválido", err: NewMalformedResponseError("act_1/ads", "missing id"), want: "malformed"},
		{name: "rede", err: &IntegrationError{Err: ErrNetwork}, want: "network"},
		{name: "api", err: fmt.Errorf("stage ads: %w", &IntegrationError{Err: ErrAPI}), want: "api"},
		{name: "cancelado", err: context.Canceled, want: "canceled"},
		{name: "prazo esgotado embrulhado", err: fmt.Errorf("poll: %w", context.DeadlineExceeded), want: "canceled"},
		{name: "desconhecido", err: errors.New("boom"), want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorKind(tt.err))
		})
	}
}
