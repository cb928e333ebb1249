package metaclient

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	metadomain "github.com/vfg2006/ads-ingestion-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-ingestion-api/infrastructure/integrator/meta/metaqueue"
	"github.com/vfg2006/ads-ingestion-api/internal/config"
	"github.com/vfg2006/ads-ingestion-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MetaClient executa uma tentativa de cada tarefa contra a Graph API.
// Implementa metaqueue.Transport; retry e espaçamento ficam no scheduler.
type MetaClient struct {
	baseURL        string
	httpClient     *http.Client
	credentials    CredentialProvider
	rateLimitCodes []int
}

var _ metaqueue.Transport = (*MetaClient)(nil)

type Option func(*MetaClient)

// WithHTTPClient substitui o http.Client padrão (ex.: testes com httptest)
func WithHTTPClient(c *http.Client) Option {
	return func(mc *MetaClient) {
		mc.httpClient = c
	}
}

// WithBaseURL substitui a URL da Graph API montada a partir da configuração
func WithBaseURL(u string) Option {
	return func(mc *MetaClient) {
		mc.baseURL = strings.TrimRight(u, "/")
	}
}

func NewClient(cfg *config.Config, credentials CredentialProvider, opts ...Option) *MetaClient {
	timeout := cfg.Meta.HTTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	codes := cfg.Meta.RateLimitCodes
	if len(codes) == 0 {
		codes = []int{4, 17}
	}

	client := &MetaClient{
		baseURL:        strings.TrimRight(cfg.Meta.URL, "/"),
		httpClient:     &http.Client{Timeout: timeout},
		credentials:    credentials,
		rateLimitCodes: codes,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executa uma única tentativa da tarefa e classifica o resultado
func (c *MetaClient) Do(ctx context.Context, task *metaqueue.Task) (*metaqueue.Response, error) {
	token, err := c.credentials.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, task, token)
	if err != nil {
		return nil, errors.Wrap(&domain.IntegrationError{
			Err:      domain.ErrValidation,
			Endpoint: task.Endpoint,
			Details:  err.Error(),
		}, "erro ao criar a requisição")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		logrus.WithFields(logrus.Fields{
			"task_id":  task.ID,
			"endpoint": task.Endpoint,
		}).WithError(err).Error("Erro ao fazer a requisição")

		return nil, &domain.IntegrationError{
			Err:      domain.ErrNetwork,
			Endpoint: task.Endpoint,
			Details:  err.Error(),
		}
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp, task.Endpoint)
	if err != nil {
		return nil, err
	}

	return &metaqueue.Response{StatusCode: resp.StatusCode, Body: body}, nil
}

func (c *MetaClient) newRequest(ctx context.Context, task *metaqueue.Task, token string) (*http.Request, error) {
	endpoint := c.baseURL + "/" + strings.TrimLeft(task.Endpoint, "/")

	method := task.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if method == http.MethodGet {
		if len(task.Params) > 0 {
			endpoint += "?" + task.Params.Encode()
		}
	} else if len(task.Params) > 0 {
		body = strings.NewReader(task.Params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	return req, nil
}

// HandleResponse lê o corpo e converte o envelope de erro da Graph API no tipo de erro adequado
func (c *MetaClient) HandleResponse(resp *http.Response, endpoint string) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(&domain.IntegrationError{
			Err:      domain.ErrNetwork,
			Endpoint: endpoint,
			Details:  err.Error(),
		}, "erro ao ler resposta")
	}

	hasErrorEnvelope := gjson.GetBytes(body, "error").Exists()
	if resp.StatusCode >= 200 && resp.StatusCode < 300 && !hasErrorEnvelope {
		return body, nil
	}

	return nil, c.handleErrorResponse(resp.StatusCode, body, endpoint)
}

func (c *MetaClient) handleErrorResponse(status int, body []byte, endpoint string) error {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Empty() {
		return &domain.IntegrationError{
			Err:      domain.ErrAPI,
			Endpoint: endpoint,
			Details:  "status " + http.StatusText(status) + ": " + truncate(string(body), 256),
		}
	}

	logger := logrus.WithFields(logrus.Fields{
		"endpoint":   endpoint,
		"code":       errorResp.Error.Code,
		"subcode":    errorResp.Error.ErrorSubcode,
		"fbtrace_id": errorResp.Error.FBTraceID,
	})

	if errorResp.IsRateLimited(c.rateLimitCodes) {
		logger.Warn("Rate limit da API do Meta")
		return &domain.IntegrationError{
			Err:      domain.ErrTransientRateLimit,
			Code:     errorResp.Error.Code,
			Endpoint: endpoint,
			Details:  errorResp.Error.Message,
		}
	}

	if errorResp.IsTokenExpired() {
		logger.Warn("Token expirado detectado pela API Meta; renove META_ACCESS_TOKEN")
	}

	return &domain.IntegrationError{
		Err:      domain.ErrAPI,
		Code:     errorResp.Error.Code,
		Endpoint: endpoint,
		Details:  errorResp.Description(),
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
