package metaclient

import (
	"context"
	"strings"

	"github.com/vfg2006/ads-ingestion-api/internal/domain"
)

// CredentialProvider fornece o bearer token da Graph API a cada chamada.
// A renovação do token fica a cargo do colaborador externo de autenticação.
type CredentialProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// StaticToken é um CredentialProvider com token fixo vindo da configuração
type StaticToken string

func (t StaticToken) AccessToken(context.Context) (string, error) {
	token := strings.TrimSpace(string(t))
	if token == "" {
		return "", domain.NewValidationError("meta access token is required")
	}
	return token, nil
}

// CredentialFunc adapta uma função para CredentialProvider
type CredentialFunc func(ctx context.Context) (string, error)

func (f CredentialFunc) AccessToken(ctx context.Context) (string, error) {
	return f(ctx)
}

// Verify consulta o provider uma vez na inicialização para que um token ausente
// falhe antes de qualquer tarefa entrar na fila
func Verify(ctx context.Context, credentials CredentialProvider) error {
	if credentials == nil {
		return domain.NewValidationError("meta credential provider is required")
	}

	token, err := credentials.AccessToken(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(token) == "" {
		return domain.NewValidationError("meta access token is required")
	}
	return nil
}
