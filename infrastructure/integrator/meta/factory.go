package meta

import (
	"fmt"
	"strings"
	"time"

	metadomain "github.com/vfg2006/ads-ingestion-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-ingestion-api/internal/domain"
)

// Orçamentos da Graph API vêm na menor unidade da moeda (centavos)
const budgetUnit = 100

func FactoryCampaign(endpoint string, raw metadomain.Campaign) (*domain.Campaign, error) {
	if raw.ID == "" {
		return nil, domain.NewMalformedResponseError(endpoint, "campaign without id")
	}

	dailyBudget, err := metadomain.ParseFloat("daily_budget", raw.DailyBudget)
	if err != nil {
		return nil, domain.NewMalformedResponseError(endpoint, err.Error())
	}

	lifetimeBudget, err := metadomain.ParseFloat("lifetime_budget", raw.LifetimeBudget)
	if err != nil {
		return nil, domain.NewMalformedResponseError(endpoint, err.Error())
	}

	startTime, err := parseOptionalTime("start_time", raw.StartTime)
	if err != nil {
		return nil, domain.NewMalformedResponseError(endpoint, err.Error())
	}

	stopTime, err := parseOptionalTime("stop_time", raw.StopTime)
	if err != nil {
		return nil, domain.NewMalformedResponseError(endpoint, err.Error())
	}

	return &domain.Campaign{
		ID:             raw.ID,
		Name:           raw.Name,
		Status:         raw.Status,
		Objective:      raw.Objective,
		DailyBudget:    dailyBudget / budgetUnit,
		LifetimeBudget: lifetimeBudget / budgetUnit,
		StartTime:      startTime,
		StopTime:       stopTime,
	}, nil
}

func FactoryAdSet(endpoint string, raw metadomain.AdSet) (*domain.AdSet, error) {
	if raw.ID == "" || raw.CampaignID == "" {
		return nil, domain.NewMalformedResponseError(endpoint, "ad set without id or campaign_id")
	}

	dailyBudget, err := metadomain.ParseFloat("daily_budget", raw.DailyBudget)
	if err != nil {
		return nil, domain.NewMalformedResponseError(endpoint, err.Error())
	}

	return &domain.AdSet{
		ID:          raw.ID,
		Name:        raw.Name,
		CampaignID:  raw.CampaignID,
		Status:      raw.Status,
		DailyBudget: dailyBudget / budgetUnit,
	}, nil
}

func FactoryAd(endpoint string, raw metadomain.Ad) (*domain.Ad, error) {
	if raw.ID == "" || raw.AdSetID == "" {
		return nil, domain.NewMalformedResponseError(endpoint, "ad without id or adset_id")
	}

	return &domain.Ad{
		ID:         raw.ID,
		Name:       raw.Name,
		AdSetID:    raw.AdSetID,
		CampaignID: raw.CampaignID,
		Status:     raw.Status,
	}, nil
}

// FactoryCreative retorna nil quando o anúncio não possui criativo
func FactoryCreative(endpoint string, raw metadomain.AdWithCreative) (*domain.Creative, error) {
	if raw.ID == "" {
		return nil, domain.NewMalformedResponseError(endpoint, "ad without id")
	}

	if raw.Creative == nil {
		return nil, nil
	}

	if raw.Creative.ID == "" {
		return nil, domain.NewMalformedResponseError(endpoint, "creative without id")
	}

	return &domain.Creative{
		ID:           raw.Creative.ID,
		AdID:         raw.ID,
		Name:         raw.Creative.Name,
		Type:         raw.Creative.ObjectType,
		Title:        raw.Creative.Title,
		Body:         raw.Creative.Body,
		ThumbnailURL: raw.Creative.ThumbnailURL,
		ImageURL:     raw.Creative.ImageURL,
	}, nil
}

func FactoryInsightRecord(endpoint string, raw metadomain.InsightRow) (*domain.InsightRecord, error) {
	date, err := time.Parse(time.DateOnly, raw.DateStart)
	if err != nil {
		return nil, domain.NewMalformedResponseError(endpoint, "insight row without valid date_start")
	}

	record := &domain.InsightRecord{Date: date}

	if record.Spend, err = metadomain.ParseFloat("spend", raw.Spend); err != nil {
		return nil, domain.NewMalformedResponseError(endpoint, err.Error())
	}
	if record.Impressions, err = metadomain.ParseInt("impressions", raw.Impressions); err != nil {
		return nil, domain.NewMalformedResponseError(endpoint, err.Error())
	}
	if record.Clicks, err = metadomain.ParseInt("clicks", raw.Clicks); err != nil {
		return nil, domain.NewMalformedResponseError(endpoint, err.Error())
	}
	if record.Reach, err = metadomain.ParseInt("reach", raw.Reach); err != nil {
		return nil, domain.NewMalformedResponseError(endpoint, err.Error())
	}
	if record.Actions, err = metadomain.SumActions(raw.Actions); err != nil {
		return nil, domain.NewMalformedResponseError(endpoint, err.Error())
	}
	if record.ActionValues, err = metadomain.SumActions(raw.ActionValues); err != nil {
		return nil, domain.NewMalformedResponseError(endpoint, err.Error())
	}

	return record, nil
}

func FactoryGeoInsight(endpoint string, raw metadomain.InsightRow) (*domain.GeoInsight, error) {
	if strings.TrimSpace(raw.Region) == "" {
		return nil, domain.NewMalformedResponseError(endpoint, "geo row without region")
	}

	geo := &domain.GeoInsight{Region: raw.Region}

	var err error
	if geo.Spend, err = metadomain.ParseFloat("spend", raw.Spend); err != nil {
		return nil, domain.NewMalformedResponseError(endpoint, err.Error())
	}
	if geo.Impressions, err = metadomain.ParseInt("impressions", raw.Impressions); err != nil {
		return nil, domain.NewMalformedResponseError(endpoint, err.Error())
	}
	if geo.Clicks, err = metadomain.ParseInt("clicks", raw.Clicks); err != nil {
		return nil, domain.NewMalformedResponseError(endpoint, err.Error())
	}
	if geo.CTR, err = metadomain.ParseFloat("ctr", raw.CTR); err != nil {
		return nil, domain.NewMalformedResponseError(endpoint, err.Error())
	}
	if geo.Reach, err = metadomain.ParseInt("reach", raw.Reach); err != nil {
		return nil, domain.NewMalformedResponseError(endpoint, err.Error())
	}
	if geo.Frequency, err = metadomain.ParseFloat("frequency", raw.Frequency); err != nil {
		return nil, domain.NewMalformedResponseError(endpoint, err.Error())
	}

	return geo, nil
}

func FactoryDemographicRow(endpoint string, raw metadomain.InsightRow) (*domain.DemographicRow, error) {
	if raw.Age == "" || raw.Gender == "" {
		return nil, domain.NewMalformedResponseError(endpoint, "demographic row without age or gender")
	}

	row := &domain.DemographicRow{
		Age:    strings.TrimSpace(raw.Age),
		Gender: strings.ToLower(strings.TrimSpace(raw.Gender)),
	}

	var err error
	if row.Reach, err = metadomain.ParseInt("reach", raw.Reach); err != nil {
		return nil, domain.NewMalformedResponseError(endpoint, err.Error())
	}
	if row.Spend, err = metadomain.ParseFloat("spend", raw.Spend); err != nil {
		return nil, domain.NewMalformedResponseError(endpoint, err.Error())
	}

	return row, nil
}

func FactoryComment(endpoint, adID string, raw metadomain.Comment) (*domain.Comment, error) {
	if raw.ID == "" {
		return nil, domain.NewMalformedResponseError(endpoint, "comment without id")
	}

	createdAt, err := parseOptionalTime("created_time", raw.CreatedTime)
	if err != nil {
		return nil, domain.NewMalformedResponseError(endpoint, err.Error())
	}

	comment := &domain.Comment{
		ID:      raw.ID,
		AdID:    adID,
		Message: raw.Message,
		Status:  domain.CommentPending,
	}

	if createdAt != nil {
		comment.CreatedAt = *createdAt
	}

	if raw.From != nil {
		comment.Author = domain.CommentAuthor{ID: raw.From.ID, Name: raw.From.Name}
	}

	return comment, nil
}

func parseOptionalTime(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse(metadomain.CreatedTimeLayout, value)
	if err != nil {
		// alguns campos vêm em RFC3339
		t, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return nil, fmt.Errorf("campo %s com data inválida %q", field, value)
		}
	}

	t = t.UTC()
	return &t, nil
}
