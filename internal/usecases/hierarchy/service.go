package hierarchy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-ingestion-api/internal/domain"
)

type Service struct {
	fetcher ResourceFetcher
}

// NewService cria o orquestrador da árvore de campanhas
func NewService(fetcher ResourceFetcher) Orchestrator {
	return &Service{fetcher: fetcher}
}

// GetHierarchy busca cada nível com uma única consulta em lote pelos ids do nível anterior.
// Um nível sem ids encerra a busca e os níveis seguintes ficam vazios. Qualquer erro
// descarta a árvore inteira para não parecer que o nível que falhou está vazio.
func (s *Service) GetHierarchy(ctx context.Context, accountID string, dateRange domain.DateRange) (*domain.AdHierarchy, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, domain.NewValidationError("account id is required")
	}

	start := time.Now()
	result := domain.NewEmptyHierarchy()
	logger := logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"date_range": dateRange.String(),
	})

	campaigns, err := s.fetcher.GetCampaigns(ctx, accountID, dateRange)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaigns: %w", err)
	}
	if len(campaigns) == 0 {
		logger.Debug("Conta sem campanhas no período")
		return result, nil
	}
	result.Campaigns = campaigns

	adSets, err := s.fetcher.GetAdSets(ctx, accountID, domain.CampaignIDs(campaigns))
	if err != nil {
		return nil, fmt.Errorf("failed to get ad sets: %w", err)
	}
	if len(adSets) == 0 {
		return result, nil
	}
	result.AdSets = adSets

	ads, err := s.fetcher.GetAds(ctx, accountID, domain.AdSetIDs(adSets))
	if err != nil {
		return nil, fmt.Errorf("failed to get ads: %w", err)
	}
	if len(ads) == 0 {
		return result, nil
	}
	result.Ads = ads

	creatives, err := s.fetcher.GetCreatives(ctx, accountID, domain.AdIDs(ads))
	if err != nil {
		return nil, fmt.Errorf("failed to get creatives: %w", err)
	}
	if creatives != nil {
		result.Creatives = creatives
	}

	logger.WithFields(logrus.Fields{
		"campaigns": len(result.Campaigns),
		"ad_sets":   len(result.AdSets),
		"ads":       len(result.Ads),
		"creatives": len(result.Creatives),
		"duration":  time.Since(start).String(),
	}).Info("Hierarquia de campanhas carregada")

	return result, nil
}
