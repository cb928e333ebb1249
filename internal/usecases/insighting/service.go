package insighting

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/ads-ingestion-api/internal/config"
	"github.com/vfg2006/ads-ingestion-api/internal/domain"
)

// Service combina o fetcher de relatórios com as funções puras do agregador
type Service struct {
	fetcher InsightsFetcher
	geo     GeoOptions
}

// NewService cria uma nova instância do serviço de insights
func NewService(cfg *config.Config, fetcher InsightsFetcher) Insighter {
	return &Service{
		fetcher: fetcher,
		geo: GeoOptions{
			BaselineCTR:    cfg.Geo.BaselineCTR,
			EstimateGrowth: cfg.Geo.EstimateGrowth,
		},
	}
}

// GetAccountDashboard obtém os insights diários e calcula totais, razões, tendências e série diária
func (s *Service) GetAccountDashboard(ctx context.Context, accountID string, dateRange domain.DateRange, metricIDs []string) (*domain.AccountDashboard, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, domain.NewValidationError("account id is required")
	}

	records, err := s.fetcher.GetAccountInsights(ctx, accountID, dateRange, metricIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get account insights: %w", err)
	}

	daily := DailySeries(records)

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"date_range": dateRange.String(),
		"days":       len(daily),
	}).Debug("Dashboard da conta agregado")

	return &domain.AccountDashboard{
		AccountID: accountID,
		DateRange: dateRange,
		Metrics:   Aggregate(records),
		Trends:    Trends(daily),
		Daily:     daily,
	}, nil
}

// GetGeoReport busca em paralelo o período atual, o período anterior e a demografia.
// As chamadas ainda passam uma a uma pela fila da Graph API; qualquer falha derruba o relatório.
func (s *Service) GetGeoReport(ctx context.Context, accountID string, dateRange domain.DateRange) (*domain.GeoReport, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, domain.NewValidationError("account id is required")
	}

	var (
		current      []domain.GeoInsight
		previous     []domain.GeoInsight
		demographics []domain.DemographicRow
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.fetcher.GetGeoInsights(gctx, accountID, dateRange)
		if err != nil {
			return fmt.Errorf("failed to get geo insights: %w", err)
		}
		current = rows
		return nil
	})

	g.Go(func() error {
		rows, err := s.fetcher.GetGeoInsights(gctx, accountID, dateRange.Previous())
		if err != nil {
			return fmt.Errorf("failed to get previous geo insights: %w", err)
		}
		previous = rows
		return nil
	})

	g.Go(func() error {
		rows, err := s.fetcher.GetDemographicInsights(gctx, accountID, dateRange)
		if err != nil {
			return fmt.Errorf("failed to get demographic insights: %w", err)
		}
		demographics = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"account_id": accountID,
			"date_range": dateRange.String(),
		}).Warn("Erro ao montar relatório geográfico")
		return nil, err
	}

	regions := RollupGeo(current, previous, s.geo)

	return &domain.GeoReport{
		AccountID:     accountID,
		DateRange:     dateRange,
		Regions:       regions,
		SpendByRegion: SpendByRegion(regions),
		Age:           RollupDemographics(demographics, domain.DimensionAge),
		Gender:        RollupDemographics(demographics, domain.DimensionGender),
	}, nil
}
