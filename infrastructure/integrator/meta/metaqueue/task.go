package metaqueue

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vfg2006/ads-ingestion-api/pkg/utils"
)

// Task descreve uma chamada à Graph API. Pertence ao scheduler enquanto está na fila.
type Task struct {
	ID          string
	Method      string
	Endpoint    string
	Params      url.Values
	Attempt     int
	MaxAttempts int
}

// NewTask cria uma tarefa GET; MaxAttempts 0 usa o padrão do scheduler
func NewTask(endpoint string, params url.Values) *Task {
	return &Task{
		ID:       utils.MustGenerateID(),
		Method:   http.MethodGet,
		Endpoint: endpoint,
		Params:   params,
	}
}

// NewMutation cria uma tarefa POST (ex.: responder ou ocultar comentário)
func NewMutation(endpoint string, params url.Values) *Task {
	t := NewTask(endpoint, params)
	t.Method = http.MethodPost
	return t
}

// Clone copia a tarefa para uma nova página, mantendo endpoint e parâmetros
func (t *Task) Clone() *Task {
	params := url.Values{}
	for k, v := range t.Params {
		params[k] = append([]string(nil), v...)
	}

	return &Task{
		ID:          utils.MustGenerateID(),
		Method:      t.Method,
		Endpoint:    t.Endpoint,
		Params:      params,
		MaxAttempts: t.MaxAttempts,
	}
}

type Response struct {
	StatusCode int
	Body       []byte
}

// Transport executa uma única tentativa da tarefa
type Transport interface {
	Do(ctx context.Context, task *Task) (*Response, error)
}

type TransportFunc func(ctx context.Context, task *Task) (*Response, error)

func (f TransportFunc) Do(ctx context.Context, task *Task) (*Response, error) {
	return f(ctx, task)
}
