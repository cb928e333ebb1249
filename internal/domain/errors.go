package domain

import (
	"context"
	"errors"
	"fmt"
)

// Tipos de erro da camada de ingestão
var (
	// ErrTransientRateLimit é tratado internamente pelo scheduler (retry) e só
	// chega ao chamador embrulhado em ErrRateLimitExceeded
	ErrTransientRateLimit = errors.New("transient rate limit")
	ErrRateLimitExceeded  = errors.New("rate limit exceeded")

	// Erros remotos e de transporte
	ErrAPI               = errors.New("api error")
	ErrNetwork           = errors.New("network error")
	ErrMalformedResponse = errors.New("malformed response")

	// Erros de parâmetro do chamador
	ErrValidation = errors.New("validation error")
)

// IntegrationError é um erro com contexto adicional sobre a chamada externa
type IntegrationError struct {
	Err      error  // Tipo base (um dos Err* acima)
	Code     int    // Código retornado pela API externa (quando aplicável)
	Endpoint string // Endpoint envolvido
	Details  string // Mensagem legível
}

// Error implementa a interface error
func (e *IntegrationError) Error() string {
	msg := e.Err.Error()
	if e.Endpoint != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Endpoint)
	}
	if e.Code != 0 {
		msg = fmt.Sprintf("%s (code %d)", msg, e.Code)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

// Unwrap retorna o tipo base
func (e *IntegrationError) Unwrap() error {
	return e.Err
}

// NewValidationError cria um erro de validação de parâmetro
func NewValidationError(details string) *IntegrationError {
	return &IntegrationError{Err: ErrValidation, Details: details}
}

// NewMalformedResponseError cria um erro de payload fora do formato esperado
func NewMalformedResponseError(endpoint, details string) *IntegrationError {
	return &IntegrationError{Err: ErrMalformedResponse, Endpoint: endpoint, Details: details}
}

// ErrorKind retorna um rótulo curto para o tipo do erro, usado em métricas e logs
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrRateLimitExceeded), errors.Is(err, ErrTransientRateLimit):
		return "rate_limit"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed"
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrAPI):
		return "api"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "unknown"
	}
}
