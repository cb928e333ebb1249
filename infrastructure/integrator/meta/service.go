package meta

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-ingestion-api/infrastructure/cache"
	metadomain "github.com/vfg2006/ads-ingestion-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-ingestion-api/infrastructure/integrator/meta/metaqueue"
	"github.com/vfg2006/ads-ingestion-api/internal/config"
	"github.com/vfg2006/ads-ingestion-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Submitter é a fila de requisições usada pelo integrador
type Submitter interface {
	Submit(ctx context.Context, task *metaqueue.Task) (*metaqueue.Response, error)
}

// MetaIntegrator emite as consultas tipadas à Graph API através da fila única
// e normaliza as respostas nas entidades de domínio.
type MetaIntegrator struct {
	cfg       *config.Config
	submitter Submitter
	cache     *cache.ResultCache
	maxPages  int
}

// New cria o integrador; cache pode ser nil para desativar o cache de resultados
func New(cfg *config.Config, submitter Submitter, resultCache *cache.ResultCache) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:       cfg,
		submitter: submitter,
		cache:     resultCache,
		maxPages:  cfg.Meta.MaxPages,
	}
}

// accountEndpoint monta act_{id}/{edge}; aceita o id com ou sem o prefixo act_
func accountEndpoint(accountID, edge string) (string, error) {
	accountID = strings.TrimPrefix(strings.TrimSpace(accountID), "act_")
	if accountID == "" {
		return "", domain.NewValidationError("account id is required")
	}
	return fmt.Sprintf("act_%s/%s", accountID, edge), nil
}

// fetchAll segue a paginação por cursor até a última página ou até maxPages
func fetchAll[T any](ctx context.Context, s *MetaIntegrator, task *metaqueue.Task) ([]T, error) {
	items := make([]T, 0)
	current := task

	for page := 1; ; page++ {
		resp, err := s.submitter.Submit(ctx, current)
		if err != nil {
			return nil, err
		}

		var envelope metadomain.Envelope[T]
		if err := json.Unmarshal(resp.Body, &envelope); err != nil {
			return nil, domain.NewMalformedResponseError(task.Endpoint, "invalid json: "+err.Error())
		}

		if envelope.Data == nil {
			return nil, domain.NewMalformedResponseError(task.Endpoint, "missing data field")
		}

		items = append(items, *envelope.Data...)

		if !envelope.Paging.HasNext() {
			return items, nil
		}

		if s.maxPages > 0 && page >= s.maxPages {
			logrus.WithFields(logrus.Fields{
				"endpoint":  task.Endpoint,
				"max_pages": s.maxPages,
			}).Error("meta: pagination limit reached")
			return nil, &domain.IntegrationError{
				Err:      domain.ErrAPI,
				Endpoint: task.Endpoint,
				Details:  fmt.Sprintf("result exceeds %d pages", s.maxPages),
			}
		}

		current = task.Clone()
		current.Params.Set("after", envelope.Paging.Cursors.After)
	}
}

// cached consulta o cache de resultados e coalesce cargas concorrentes da mesma chave
func cached[T any](ctx context.Context, s *MetaIntegrator, key string, load func(ctx context.Context) ([]T, error)) ([]T, error) {
	if s.cache == nil {
		return load(ctx)
	}

	v, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	items, ok := v.([]T)
	if !ok {
		return nil, fmt.Errorf("cache: unexpected value type %T for key %s", v, key)
	}

	return slices.Clone(items), nil
}

// idsKey ordena os ids para que o mesmo conjunto gere a mesma chave de cache
func idsKey(ids []string) string {
	sorted := slices.Clone(ids)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

// inFilter monta o parâmetro filtering da Graph API para field IN ids
func inFilter(field string, ids []string) (string, error) {
	filter := []map[string]any{{
		"field":    field,
		"operator": "IN",
		"value":    ids,
	}}

	b, err := json.Marshal(filter)
	if err != nil {
		return "", fmt.Errorf("erro ao montar filtro %s: %w", field, err)
	}
	return string(b), nil
}

// uniqueIDs remove ids vazios e repetidos mantendo a ordem
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
