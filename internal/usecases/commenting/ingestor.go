package commenting

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-ingestion-api/internal/config"
	"github.com/vfg2006/ads-ingestion-api/internal/domain"
	"github.com/vfg2006/ads-ingestion-api/pkg/metrics"
)

const (
	DefaultPollInterval = 30 * time.Second
	DefaultPollTimeout  = 20 * time.Second
)

// ErrCommentNotFound indica um id que não está no conjunto ativo
var ErrCommentNotFound = errors.New("comment not found")

// ErrAlreadyStarted é retornado por Start chamado mais de uma vez
var ErrAlreadyStarted = errors.New("comment ingestor already started")

// Handler recebe uma cópia de cada comentário novo
type Handler func(comment domain.Comment)

// Ingestor faz o polling dos comentários dos anúncios, deduplica por id,
// classifica o sentimento e notifica os assinantes.
type Ingestor struct {
	source      CommentSource
	classifier  Classifier
	accountID   string
	interval    time.Duration
	pollTimeout time.Duration
	metrics     *metrics.Metrics
	scheduler   *gocron.Scheduler

	startMu sync.Mutex
	started bool

	pollMutex sync.Mutex

	mu       sync.RWMutex
	comments map[string]domain.Comment
	removed  map[string]struct{}

	subsMu      sync.RWMutex
	subscribers map[uint64]Handler
	nextSubID   uint64
}

type Option func(*Ingestor)

// WithClassifier troca o classificador de sentimento; sem classificador tudo fica neutral
func WithClassifier(c Classifier) Option {
	return func(i *Ingestor) {
		i.classifier = c
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(i *Ingestor) {
		i.metrics = m
	}
}

// NewIngestor cria o ingestor da conta configurada em META_AD_ACCOUNT_ID
func NewIngestor(cfg *config.Config, source CommentSource, opts ...Option) *Ingestor {
	i := &Ingestor{
		source:      source,
		accountID:   cfg.Meta.AdAccountID,
		interval:    cfg.Comments.PollInterval,
		pollTimeout: cfg.Comments.PollTimeout,
		scheduler:   gocron.NewScheduler(time.UTC),
		comments:    make(map[string]domain.Comment),
		removed:     make(map[string]struct{}),
		subscribers: make(map[uint64]Handler),
	}

	if i.interval <= 0 {
		i.interval = DefaultPollInterval
	}
	if i.pollTimeout <= 0 {
		i.pollTimeout = DefaultPollTimeout
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Start agenda o polling no intervalo configurado. A primeira execução é imediata.
// Só pode ser chamado uma vez por Ingestor.
func (i *Ingestor) Start(ctx context.Context) error {
	i.startMu.Lock()
	defer i.startMu.Unlock()

	if i.started {
		return ErrAlreadyStarted
	}

	logrus.WithFields(logrus.Fields{
		"account_id":    i.accountID,
		"poll_interval": i.interval.String(),
	}).Info("Iniciando polling de comentários")

	_, err := i.scheduler.Every(i.interval).SingletonMode().Do(func() {
		pollCtx, cancel := context.WithTimeout(ctx, i.pollTimeout)
		defer cancel()

		if _, err := i.Poll(pollCtx); err != nil {
			logrus.WithError(err).WithField("account_id", i.accountID).
				Warn("Erro no polling de comentários")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar polling de comentários: %w", err)
	}

	i.scheduler.StartAsync()
	i.started = true

	go func() {
		<-ctx.Done()
		i.Stop()
	}()

	return nil
}

// Stop interrompe o agendador; pode ser chamado mais de uma vez
func (i *Ingestor) Stop() {
	if i.scheduler.IsRunning() {
		logrus.Info("Parando polling de comentários")
		i.scheduler.Stop()
	}
}

// Poll executa um ciclo de ingestão e retorna quantos comentários novos entraram.
// Ciclos concorrentes são serializados.
func (i *Ingestor) Poll(ctx context.Context) (int, error) {
	i.pollMutex.Lock()
	defer i.pollMutex.Unlock()

	fetched, err := i.source.GetAdComments(ctx, i.accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to poll comments: %w", err)
	}

	fresh := make([]domain.Comment, 0)
	for _, c := range fetched {
		if i.known(c.ID) {
			continue
		}

		c.Sentiment = i.classify(ctx, c)
		c.Status = domain.CommentPending

		i.mu.Lock()
		i.comments[c.ID] = c
		i.mu.Unlock()

		i.metrics.CommentIngested(string(c.Sentiment))
		fresh = append(fresh, c)
	}

	if len(fresh) > 0 {
		logrus.WithFields(logrus.Fields{
			"account_id": i.accountID,
			"new":        len(fresh),
			"fetched":    len(fetched),
		}).Info("Novos comentários ingeridos")
	}

	for _, c := range fresh {
		i.notify(c)
	}

	return len(fresh), nil
}

// known inclui comentários ocultados para que não voltem no próximo ciclo
func (i *Ingestor) known(id string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if _, ok := i.comments[id]; ok {
		return true
	}
	_, ok := i.removed[id]
	return ok
}

// classify nunca falha: erro ou rótulo desconhecido viram neutral
func (i *Ingestor) classify(ctx context.Context, c domain.Comment) domain.Sentiment {
	if i.classifier == nil {
		return domain.SentimentNeutral
	}

	sentiment, err := i.classifier.Classify(ctx, c.Message)
	if err != nil {
		logrus.WithError(err).WithField("comment_id", c.ID).
			Warn("Falha ao classificar comentário, usando neutral")
		return domain.SentimentNeutral
	}

	return ParseSentiment(string(sentiment))
}

// Subscribe registra um handler e retorna a função que o remove
func (i *Ingestor) Subscribe(handler Handler) func() {
	i.subsMu.Lock()
	id := i.nextSubID
	i.nextSubID++
	i.subscribers[id] = handler
	i.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			i.subsMu.Lock()
			delete(i.subscribers, id)
			i.subsMu.Unlock()
		})
	}
}

// notify chama os handlers fora do lock, cada um com sua própria cópia
func (i *Ingestor) notify(c domain.Comment) {
	i.subsMu.RLock()
	handlers := make([]Handler, 0, len(i.subscribers))
	for _, h := range i.subscribers {
		handlers = append(handlers, h)
	}
	i.subsMu.RUnlock()

	for _, h := range handlers {
		h(c)
	}
}

// GetComments retorna um snapshot filtrado, do mais recente para o mais antigo
func (i *Ingestor) GetComments(filter domain.CommentFilter) []domain.Comment {
	i.mu.RLock()
	out := make([]domain.Comment, 0, len(i.comments))
	for _, c := range i.comments {
		if filter.Match(c) {
			out = append(out, c)
		}
	}
	i.mu.RUnlock()

	sort.Slice(out, func(a, b int) bool {
		if !out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return out[a].CreatedAt.After(out[b].CreatedAt)
		}
		return out[a].ID < out[b].ID
	})

	return out
}

// ReplyToComment responde e marca o comentário como handled. Em caso de erro o estado local não muda.
func (i *Ingestor) ReplyToComment(ctx context.Context, commentID, message string) error {
	if strings.TrimSpace(message) == "" {
		return domain.NewValidationError("reply message is required")
	}
	if err := i.requireActive(commentID); err != nil {
		return err
	}

	if err := i.source.ReplyToComment(ctx, commentID, message); err != nil {
		return fmt.Errorf("failed to reply comment: %w", err)
	}

	i.mu.Lock()
	if c, ok := i.comments[commentID]; ok {
		c.Status = domain.CommentHandled
		i.comments[commentID] = c
	}
	i.mu.Unlock()

	logrus.WithField("comment_id", commentID).Info("Comentário respondido")
	return nil
}

// HideComment oculta o comentário na plataforma e o remove do conjunto ativo
func (i *Ingestor) HideComment(ctx context.Context, commentID string) error {
	if err := i.requireActive(commentID); err != nil {
		return err
	}

	if err := i.source.HideComment(ctx, commentID); err != nil {
		return fmt.Errorf("failed to hide comment: %w", err)
	}

	i.mu.Lock()
	delete(i.comments, commentID)
	i.removed[commentID] = struct{}{}
	i.mu.Unlock()

	logrus.WithField("comment_id", commentID).Info("Comentário ocultado")
	return nil
}

func (i *Ingestor) requireActive(commentID string) error {
	if strings.TrimSpace(commentID) == "" {
		return domain.NewValidationError("comment id is required")
	}

	i.mu.RLock()
	_, ok := i.comments[commentID]
	i.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrCommentNotFound, commentID)
	}
	return nil
}
