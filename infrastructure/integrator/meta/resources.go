package meta

import (
	"context"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-ingestion-api/infrastructure/cache"
	metadomain "github.com/vfg2006/ads-ingestion-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-ingestion-api/infrastructure/integrator/meta/metaqueue"
	"github.com/vfg2006/ads-ingestion-api/internal/domain"
)

const (
	campaignFields = "id,name,status,objective,daily_budget,lifetime_budget,start_time,stop_time"
	adSetFields    = "id,name,campaign_id,status,daily_budget"
	adFields       = "id,name,adset_id,campaign_id,status"
	creativeFields = "id,creative{id,name,object_type,title,body,thumbnail_url,image_url}"
)

func (s *MetaIntegrator) GetCampaigns(ctx context.Context, accountID string, dateRange domain.DateRange) ([]domain.Campaign, error) {
	endpoint, err := accountEndpoint(accountID, "campaigns")
	if err != nil {
		return nil, err
	}

	key := cache.Key("campaigns", endpoint, dateRange.Since(), dateRange.Until())

	return cached(ctx, s, key, func(ctx context.Context) ([]domain.Campaign, error) {
		params := url.Values{}
		params.Add("fields", campaignFields)
		params.Add("time_range", dateRange.TimeRange())

		rows, err := fetchAll[metadomain.Campaign](ctx, s, metaqueue.NewTask(endpoint, params))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("campaigns: failed to get campaigns from API")
			return nil, err
		}

		campaigns := make([]domain.Campaign, 0, len(rows))
		for _, row := range rows {
			campaign, err := FactoryCampaign(endpoint, row)
			if err != nil {
				return nil, err
			}
			campaigns = append(campaigns, *campaign)
		}

		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"count":      len(campaigns),
		}).Debug("campaigns: successfully retrieved campaigns")

		return campaigns, nil
	})
}

// GetAdSets busca os conjuntos de anúncios de todas as campanhas em uma única consulta
func (s *MetaIntegrator) GetAdSets(ctx context.Context, accountID string, campaignIDs []string) ([]domain.AdSet, error) {
	endpoint, err := accountEndpoint(accountID, "adsets")
	if err != nil {
		return nil, err
	}

	campaignIDs = uniqueIDs(campaignIDs)
	if len(campaignIDs) == 0 {
		return []domain.AdSet{}, nil
	}

	key := cache.Key("adsets", endpoint, idsKey(campaignIDs))

	return cached(ctx, s, key, func(ctx context.Context) ([]domain.AdSet, error) {
		filtering, err := inFilter("campaign.id", campaignIDs)
		if err != nil {
			return nil, err
		}

		params := url.Values{}
		params.Add("fields", adSetFields)
		params.Add("filtering", filtering)

		rows, err := fetchAll[metadomain.AdSet](ctx, s, metaqueue.NewTask(endpoint, params))
		if err != nil {
			return nil, err
		}

		adSets := make([]domain.AdSet, 0, len(rows))
		for _, row := range rows {
			adSet, err := FactoryAdSet(endpoint, row)
			if err != nil {
				return nil, err
			}
			adSets = append(adSets, *adSet)
		}

		return adSets, nil
	})
}

// GetAds busca os anúncios de todos os conjuntos em uma única consulta
func (s *MetaIntegrator) GetAds(ctx context.Context, accountID string, adSetIDs []string) ([]domain.Ad, error) {
	endpoint, err := accountEndpoint(accountID, "ads")
	if err != nil {
		return nil, err
	}

	adSetIDs = uniqueIDs(adSetIDs)
	if len(adSetIDs) == 0 {
		return []domain.Ad{}, nil
	}

	key := cache.Key("ads", endpoint, idsKey(adSetIDs))

	return cached(ctx, s, key, func(ctx context.Context) ([]domain.Ad, error) {
		filtering, err := inFilter("adset.id", adSetIDs)
		if err != nil {
			return nil, err
		}

		params := url.Values{}
		params.Add("fields", adFields)
		params.Add("filtering", filtering)

		rows, err := fetchAll[metadomain.Ad](ctx, s, metaqueue.NewTask(endpoint, params))
		if err != nil {
			return nil, err
		}

		ads := make([]domain.Ad, 0, len(rows))
		for _, row := range rows {
			ad, err := FactoryAd(endpoint, row)
			if err != nil {
				return nil, err
			}
			ads = append(ads, *ad)
		}

		return ads, nil
	})
}

// GetCreatives busca o criativo de cada anúncio em uma única consulta
func (s *MetaIntegrator) GetCreatives(ctx context.Context, accountID string, adIDs []string) ([]domain.Creative, error) {
	endpoint, err := accountEndpoint(accountID, "ads")
	if err != nil {
		return nil, err
	}

	adIDs = uniqueIDs(adIDs)
	if len(adIDs) == 0 {
		return []domain.Creative{}, nil
	}

	key := cache.Key("creatives", endpoint, idsKey(adIDs))

	return cached(ctx, s, key, func(ctx context.Context) ([]domain.Creative, error) {
		filtering, err := inFilter("id", adIDs)
		if err != nil {
			return nil, err
		}

		params := url.Values{}
		params.Add("fields", creativeFields)
		params.Add("filtering", filtering)

		rows, err := fetchAll[metadomain.AdWithCreative](ctx, s, metaqueue.NewTask(endpoint, params))
		if err != nil {
			return nil, err
		}

		creatives := make([]domain.Creative, 0, len(rows))
		for _, row := range rows {
			creative, err := FactoryCreative(endpoint, row)
			if err != nil {
				return nil, err
			}
			// anúncio sem criativo associado
			if creative == nil {
				continue
			}
			creatives = append(creatives, *creative)
		}

		return creatives, nil
	})
}
