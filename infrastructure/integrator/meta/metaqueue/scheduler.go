package metaqueue

import (
	"container/list"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-ingestion-api/internal/domain"
	"github.com/vfg2006/ads-ingestion-api/pkg/metrics"
)

const (
	DefaultInterCallDelay = 300 * time.Millisecond
	DefaultMaxAttempts    = 3
)

// ErrSchedulerClosed é retornado para tarefas submetidas ou pendentes após Close
var ErrSchedulerClosed = errors.New("request scheduler closed")

type Config struct {
	InterCallDelay time.Duration
	// BackoffDelay padrão é 2x InterCallDelay
	BackoffDelay time.Duration
	MaxAttempts  int
	// TaskTimeout limita cada tentativa; 0 desativa
	TaskTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.InterCallDelay <= 0 {
		c.InterCallDelay = DefaultInterCallDelay
	}
	if c.BackoffDelay <= 0 {
		c.BackoffDelay = 2 * c.InterCallDelay
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	return c
}

type result struct {
	resp *Response
	err  error
}

type job struct {
	ctx    context.Context
	task   *Task
	result chan result
}

// Scheduler serializa as chamadas à API externa: um único worker consome a fila
// em ordem FIFO e aguarda InterCallDelay após cada tarefa concluída.
type Scheduler struct {
	transport Transport
	cfg       Config
	metrics   *metrics.Metrics

	mu      sync.Mutex
	pending *list.List
	notify  chan struct{}
	closed  bool

	done    chan struct{}
	stopped chan struct{}
}

type Option func(*Scheduler)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Scheduler) {
		s.metrics = m
	}
}

// NewScheduler cria o scheduler e inicia o worker
func NewScheduler(transport Transport, cfg Config, opts ...Option) *Scheduler {
	s := &Scheduler{
		transport: transport,
		cfg:       cfg.withDefaults(),
		pending:   list.New(),
		notify:    make(chan struct{}, 1),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	go s.run()

	return s
}

// Submit enfileira a tarefa e bloqueia até o resultado terminal ou o cancelamento de ctx.
// Uma tarefa cancelada enquanto pendente é descartada sem chamada de rede.
func (s *Scheduler) Submit(ctx context.Context, task *Task) (*Response, error) {
	if task == nil || task.Endpoint == "" {
		return nil, domain.NewValidationError("task endpoint is required")
	}

	if task.MaxAttempts <= 0 {
		task.MaxAttempts = s.cfg.MaxAttempts
	}

	j := &job{ctx: ctx, task: task, result: make(chan result, 1)}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrSchedulerClosed
	}
	s.pending.PushBack(j)
	s.metrics.SetQueueDepth(s.pending.Len())
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}

	select {
	case r := <-j.result:
		return r.resp, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close interrompe o worker; tarefas ainda pendentes recebem ErrSchedulerClosed
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	close(s.done)
	<-s.stopped

	s.mu.Lock()
	defer s.mu.Unlock()
	for el := s.pending.Front(); el != nil; el = el.Next() {
		el.Value.(*job).result <- result{err: ErrSchedulerClosed}
	}
	s.pending.Init()
	s.metrics.SetQueueDepth(0)
}

func (s *Scheduler) run() {
	defer close(s.stopped)

	for {
		j := s.next()
		if j == nil {
			return
		}

		if err := j.ctx.Err(); err != nil {
			logrus.WithFields(logrus.Fields{
				"task_id":  j.task.ID,
				"endpoint": j.task.Endpoint,
			}).Debug("metaqueue: task cancelled while pending")
			j.result <- result{err: err}
			continue
		}

		resp, err := s.execute(j)
		j.result <- result{resp: resp, err: err}

		if !s.sleep(context.Background(), s.cfg.InterCallDelay) {
			return
		}
	}
}

// next bloqueia até haver uma tarefa na fila; retorna nil quando o scheduler fecha
func (s *Scheduler) next() *job {
	for {
		s.mu.Lock()
		if front := s.pending.Front(); front != nil {
			j := s.pending.Remove(front).(*job)
			s.metrics.SetQueueDepth(s.pending.Len())
			s.mu.Unlock()
			return j
		}
		s.mu.Unlock()

		select {
		case <-s.notify:
		case <-s.done:
			return nil
		}
	}
}

func (s *Scheduler) execute(j *job) (*Response, error) {
	task := j.task
	logger := logrus.WithFields(logrus.Fields{
		"task_id":  task.ID,
		"endpoint": task.Endpoint,
		"method":   task.Method,
	})

	for task.Attempt = 1; ; task.Attempt++ {
		resp, err := s.attempt(j.ctx, task)
		if err == nil {
			return resp, nil
		}

		if !errors.Is(err, domain.ErrTransientRateLimit) {
			s.metrics.IncError(domain.ErrorKind(err))
			logger.WithError(err).WithField("attempt", task.Attempt).Warn("metaqueue: request failed")
			return nil, err
		}

		if task.Attempt >= task.MaxAttempts {
			s.metrics.IncError("rate_limit")
			logger.WithField("attempts", task.Attempt).Error("metaqueue: rate limit retries exhausted")
			return nil, &domain.IntegrationError{
				Err:      domain.ErrRateLimitExceeded,
				Code:     rateLimitCode(err),
				Endpoint: task.Endpoint,
				Details:  err.Error(),
			}
		}

		s.metrics.IncRetry()
		logger.WithFields(logrus.Fields{
			"attempt":    task.Attempt,
			"backoff_ms": s.cfg.BackoffDelay.Milliseconds(),
		}).Warn("metaqueue: rate limited, retrying")

		if !s.sleep(j.ctx, s.cfg.BackoffDelay) {
			if err := j.ctx.Err(); err != nil {
				return nil, err
			}
			return nil, ErrSchedulerClosed
		}
	}
}

func (s *Scheduler) attempt(ctx context.Context, task *Task) (*Response, error) {
	if s.cfg.TaskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.TaskTimeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := s.transport.Do(ctx, task)

	outcome := "success"
	if err != nil {
		outcome = domain.ErrorKind(err)
	}
	s.metrics.ObserveRequest(outcome, time.Since(start))

	return resp, err
}

// sleep espera d respeitando ctx e o fechamento do scheduler; retorna false se interrompido
func (s *Scheduler) sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	case <-s.done:
		return false
	}
}

func rateLimitCode(err error) int {
	var ierr *domain.IntegrationError
	if errors.As(err, &ierr) {
		return ierr.Code
	}
	return 0
}
