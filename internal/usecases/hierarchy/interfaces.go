package hierarchy

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

import (
	"context"

	"github.com/vfg2006/ads-ingestion-api/internal/domain"
)

// ResourceFetcher define as consultas em lote da árvore de campanhas
type ResourceFetcher interface {
	GetCampaigns(ctx context.Context, accountID string, dateRange domain.DateRange) ([]domain.Campaign, error)
	GetAdSets(ctx context.Context, accountID string, campaignIDs []string) ([]domain.AdSet, error)
	GetAds(ctx context.Context, accountID string, adSetIDs []string) ([]domain.Ad, error)
	GetCreatives(ctx context.Context, accountID string, adIDs []string) ([]domain.Creative, error)
}

// Orchestrator é a interface exposta para os handlers HTTP
type Orchestrator interface {
	// GetHierarchy monta a árvore campanha → conjunto → anúncio → criativo do período
	GetHierarchy(ctx context.Context, accountID string, dateRange domain.DateRange) (*domain.AdHierarchy, error)
}
