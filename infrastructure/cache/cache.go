package cache

import (
	"container/list"
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/vfg2006/ads-ingestion-api/pkg/metrics"
)

// DefaultTTL é a validade padrão de uma entrada
const DefaultTTL = 5 * time.Minute

type entry struct {
	key      string
	value    any
	storedAt time.Time
}

// ResultCache é um cache TTL com limite LRU opcional para consultas idempotentes.
// Entradas vencidas são removidas de forma preguiçosa na próxima consulta.
type ResultCache struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	items      map[string]*list.Element
	lru        *list.List
	group      singleflight.Group
	now        func() time.Time
	metrics    *metrics.Metrics
}

type Option func(*ResultCache)

// WithMaxEntries limita a quantidade de entradas; 0 significa sem limite
func WithMaxEntries(n int) Option {
	return func(c *ResultCache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// WithClock substitui o relógio usado para calcular a validade
func WithClock(now func() time.Time) Option {
	return func(c *ResultCache) {
		c.now = now
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *ResultCache) {
		c.metrics = m
	}
}

func New(ttl time.Duration, opts ...Option) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c := &ResultCache{
		ttl:   ttl,
		items: make(map[string]*list.Element),
		lru:   list.New(),
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Key monta uma chave canônica: partes normalizadas (trim + minúsculas) unidas por "|"
func Key(parts ...string) string {
	normalized := make([]string, len(parts))
	for i, p := range parts {
		normalized[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(normalized, "|")
}

// Get retorna o valor se now - storedAt <= ttl; caso contrário remove a entrada
func (c *ResultCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.metrics.CacheLookup("miss")
		return nil, false
	}

	e := el.Value.(*entry)
	if c.now().Sub(e.storedAt) > c.ttl {
		c.removeElement(el)
		c.metrics.CacheLookup("expired")
		c.metrics.CacheEviction("ttl")
		return nil, false
	}

	c.lru.MoveToFront(el)
	c.metrics.CacheLookup("hit")
	return e.value, true
}

// Put grava ou substitui o valor e renova storedAt
func (c *ResultCache) Put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		e := el.Value.(*entry)
		e.value = value
		e.storedAt = c.now()
		c.lru.MoveToFront(el)
		return
	}

	el := c.lru.PushFront(&entry{key: key, value: value, storedAt: c.now()})
	c.items[key] = el

	if c.maxEntries > 0 && c.lru.Len() > c.maxEntries {
		if oldest := c.lru.Back(); oldest != nil {
			c.removeElement(oldest)
			c.metrics.CacheEviction("lru")
			logrus.WithField("key", oldest.Value.(*entry).key).Debug("cache: entry evicted by size bound")
		}
	}
}

// Delete remove a entrada, se existir
func (c *ResultCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.removeElement(el)
	}
}

// Len retorna a quantidade de entradas armazenadas (incluindo vencidas ainda não coletadas)
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Quantas vezes um seguidor refaz a carga quando quem a liderava desistiu
const maxLeaderHandoffs = 3

// GetOrLoad retorna o valor em cache ou executa loader uma única vez por chave,
// mesmo com chamadas concorrentes. Erros do loader não são armazenados.
// A carga compartilhada roda com o ctx de quem chegou primeiro; se esse ctx for
// cancelado, quem ainda espera com ctx vivo assume e refaz a carga.
func (c *ResultCache) GetOrLoad(ctx context.Context, key string, loader func(ctx context.Context) (any, error)) (any, error) {
	for handoff := 0; ; handoff++ {
		v, shared, err := c.load(ctx, key, loader)
		if err == nil || ctx.Err() != nil {
			return v, err
		}

		leaderGaveUp := shared && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded))
		if !leaderGaveUp || handoff >= maxLeaderHandoffs {
			return nil, err
		}

		logrus.WithField("key", key).Debug("cache: leader context ended, retrying load")
	}
}

func (c *ResultCache) load(ctx context.Context, key string, loader func(ctx context.Context) (any, error)) (any, bool, error) {
	if v, ok := c.Get(key); ok {
		return v, false, nil
	}

	ch := c.group.DoChan(key, func() (any, error) {
		if v, ok := c.Get(key); ok {
			return v, nil
		}

		v, err := loader(ctx)
		if err != nil {
			return nil, err
		}

		c.Put(key, v)
		return v, nil
	})

	select {
	case res := <-ch:
		if res.Shared {
			logrus.WithField("key", key).Debug("cache: in-flight load shared")
		}
		return res.Val, res.Shared, res.Err
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}

func (c *ResultCache) removeElement(el *list.Element) {
	c.lru.Remove(el)
	delete(c.items, el.Value.(*entry).key)
}
