package domain

import "time"

type Campaign struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Status         string     `json:"status"`
	Objective      string     `json:"objective,omitempty"`
	DailyBudget    float64    `json:"daily_budget"`
	LifetimeBudget float64    `json:"lifetime_budget"`
	StartTime      *time.Time `json:"start_time,omitempty"`
	StopTime       *time.Time `json:"stop_time,omitempty"`
}

type AdSet struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	CampaignID  string  `json:"campaign_id"`
	Status      string  `json:"status"`
	DailyBudget float64 `json:"daily_budget"`
}

type Ad struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AdSetID    string `json:"adset_id"`
	CampaignID string `json:"campaign_id"`
	Status     string `json:"status"`
}

type Creative struct {
	ID           string `json:"id"`
	AdID         string `json:"ad_id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Title        string `json:"title,omitempty"`
	Body         string `json:"body,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
}

// AdHierarchy é a árvore campanha -> conjunto -> anúncio -> criativo desnormalizada
type AdHierarchy struct {
	Campaigns []Campaign `json:"campaigns"`
	AdSets    []AdSet    `json:"adSets"`
	Ads       []Ad       `json:"ads"`
	Creatives []Creative `json:"creatives"`
}

// NewEmptyHierarchy retorna uma hierarquia com coleções vazias (nunca nil)
func NewEmptyHierarchy() *AdHierarchy {
	return &AdHierarchy{
		Campaigns: []Campaign{},
		AdSets:    []AdSet{},
		Ads:       []Ad{},
		Creatives: []Creative{},
	}
}

func CampaignIDs(campaigns []Campaign) []string {
	ids := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.ID)
	}
	return ids
}

func AdSetIDs(adSets []AdSet) []string {
	ids := make([]string, 0, len(adSets))
	for _, s := range adSets {
		ids = append(ids, s.ID)
	}
	return ids
}

func AdIDs(ads []Ad) []string {
	ids := make([]string, 0, len(ads))
	for _, a := range ads {
		ids = append(ids, a.ID)
	}
	return ids
}
