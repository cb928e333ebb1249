package meta

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/vfg2006/ads-ingestion-api/infrastructure/cache"
	metadomain "github.com/vfg2006/ads-ingestion-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-ingestion-api/infrastructure/integrator/meta/metaqueue"
	"github.com/vfg2006/ads-ingestion-api/internal/domain"
)

var (
	accountInsightFields = []string{"date_start", "date_stop", "spend", "impressions", "clicks", "reach", "actions", "action_values"}
	geoInsightFields     = "spend,impressions,clicks,ctr,reach,frequency"
	demographicFields    = "reach,spend"

	metricIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// GetAccountInsights busca a série diária (time_increment=1) da conta. metricIDs são
// campos numéricos adicionais retornados em InsightRecord.Extra.
func (s *MetaIntegrator) GetAccountInsights(ctx context.Context, accountID string, dateRange domain.DateRange, metricIDs []string) ([]domain.InsightRecord, error) {
	endpoint, err := accountEndpoint(accountID, "insights")
	if err != nil {
		return nil, err
	}

	extra, err := extraMetrics(metricIDs)
	if err != nil {
		return nil, err
	}

	key := cache.Key("insights", endpoint, dateRange.Since(), dateRange.Until(), strings.Join(extra, ","))

	return cached(ctx, s, key, func(ctx context.Context) ([]domain.InsightRecord, error) {
		params := url.Values{}
		params.Add("level", "account")
		params.Add("time_increment", "1")
		params.Add("time_range", dateRange.TimeRange())
		params.Add("fields", strings.Join(append(slices.Clone(accountInsightFields), extra...), ","))

		rows, err := fetchAll[jsoniter.RawMessage](ctx, s, metaqueue.NewTask(endpoint, params))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("insights: failed to get ad account insights from API")
			return nil, err
		}

		records := make([]domain.InsightRecord, 0, len(rows))
		for _, raw := range rows {
			var row metadomain.InsightRow
			if err := json.Unmarshal(raw, &row); err != nil {
				return nil, domain.NewMalformedResponseError(endpoint, "invalid insight row: "+err.Error())
			}

			record, err := FactoryInsightRecord(endpoint, row)
			if err != nil {
				return nil, err
			}

			if len(extra) > 0 {
				record.Extra = make(map[string]float64, len(extra))
				for _, metric := range extra {
					value := gjson.GetBytes(raw, metric)
					if !value.Exists() {
						continue
					}
					f, err := metadomain.ParseFloat(metric, value.String())
					if err != nil {
						return nil, domain.NewMalformedResponseError(endpoint, err.Error())
					}
					record.Extra[metric] = f
				}
			}

			records = append(records, *record)
		}

		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"days":       len(records),
		}).Debug("insights: successfully retrieved ad account insights")

		return records, nil
	})
}

// GetGeoInsights busca o breakdown por região do período
func (s *MetaIntegrator) GetGeoInsights(ctx context.Context, accountID string, dateRange domain.DateRange) ([]domain.GeoInsight, error) {
	endpoint, err := accountEndpoint(accountID, "insights")
	if err != nil {
		return nil, err
	}

	key := cache.Key("geo", endpoint, dateRange.Since(), dateRange.Until())

	return cached(ctx, s, key, func(ctx context.Context) ([]domain.GeoInsight, error) {
		params := url.Values{}
		params.Add("level", "account")
		params.Add("breakdowns", "region")
		params.Add("time_range", dateRange.TimeRange())
		params.Add("fields", geoInsightFields)

		rows, err := fetchAll[metadomain.InsightRow](ctx, s, metaqueue.NewTask(endpoint, params))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("insights: failed to get geo insights from API")
			return nil, err
		}

		insights := make([]domain.GeoInsight, 0, len(rows))
		for _, row := range rows {
			geo, err := FactoryGeoInsight(endpoint, row)
			if err != nil {
				return nil, err
			}
			insights = append(insights, *geo)
		}

		return insights, nil
	})
}

// GetDemographicInsights busca o breakdown idade x gênero do período
func (s *MetaIntegrator) GetDemographicInsights(ctx context.Context, accountID string, dateRange domain.DateRange) ([]domain.DemographicRow, error) {
	endpoint, err := accountEndpoint(accountID, "insights")
	if err != nil {
		return nil, err
	}

	key := cache.Key("demographics", endpoint, dateRange.Since(), dateRange.Until())

	return cached(ctx, s, key, func(ctx context.Context) ([]domain.DemographicRow, error) {
		params := url.Values{}
		params.Add("level", "account")
		params.Add("breakdowns", "age,gender")
		params.Add("time_range", dateRange.TimeRange())
		params.Add("fields", demographicFields)

		rows, err := fetchAll[metadomain.InsightRow](ctx, s, metaqueue.NewTask(endpoint, params))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("insights: failed to get demographic insights from API")
			return nil, err
		}

		demographics := make([]domain.DemographicRow, 0, len(rows))
		for _, row := range rows {
			demo, err := FactoryDemographicRow(endpoint, row)
			if err != nil {
				return nil, err
			}
			demographics = append(demographics, *demo)
		}

		return demographics, nil
	})
}

// extraMetrics valida e ordena os campos adicionais, ignorando os já solicitados
func extraMetrics(metricIDs []string) ([]string, error) {
	extra := make([]string, 0, len(metricIDs))
	for _, id := range metricIDs {
		id = strings.ToLower(strings.TrimSpace(id))
		if id == "" || slices.Contains(accountInsightFields, id) || slices.Contains(extra, id) {
			continue
		}
		if !metricIDPattern.MatchString(id) {
			return nil, domain.NewValidationError(fmt.Sprintf("invalid metric id %q", id))
		}
		extra = append(extra, id)
	}
	slices.Sort(extra)
	return extra, nil
}
