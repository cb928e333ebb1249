package insighting

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

import (
	"context"

	"github.com/vfg2006/ads-ingestion-api/internal/domain"
)

// InsightsFetcher define as consultas de relatório usadas pelo agregador
type InsightsFetcher interface {
	// GetAccountInsights obtém as linhas diárias de insights da conta
	GetAccountInsights(ctx context.Context, accountID string, dateRange domain.DateRange, metricIDs []string) ([]domain.InsightRecord, error)

	// GetGeoInsights obtém o breakdown por região
	GetGeoInsights(ctx context.Context, accountID string, dateRange domain.DateRange) ([]domain.GeoInsight, error)

	// GetDemographicInsights obtém o breakdown idade x gênero
	GetDemographicInsights(ctx context.Context, accountID string, dateRange domain.DateRange) ([]domain.DemographicRow, error)
}

// Insighter é a interface exposta para os handlers HTTP
type Insighter interface {
	// GetAccountDashboard agrega os insights diários de uma conta no período
	GetAccountDashboard(ctx context.Context, accountID string, dateRange domain.DateRange, metricIDs []string) (*domain.AccountDashboard, error)

	// GetGeoReport monta o relatório geográfico e demográfico da conta
	GetGeoReport(ctx context.Context, accountID string, dateRange domain.DateRange) (*domain.GeoReport, error)
}
