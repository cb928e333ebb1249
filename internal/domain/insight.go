package domain

import "time"

// ActionPurchase é o action_type usado para compras e receita
const ActionPurchase = "purchase"

// InsightRecord é uma linha diária do relatório de insights
type InsightRecord struct {
	Date         time.Time          `json:"date"`
	Spend        float64            `json:"spend"`
	Impressions  int64              `json:"impressions"`
	Clicks       int64              `json:"clicks"`
	Reach        int64              `json:"reach"`
	Actions      map[string]float64 `json:"actions,omitempty"`
	ActionValues map[string]float64 `json:"action_values,omitempty"`
	Extra        map[string]float64 `json:"extra,omitempty"`
}

// Purchases retorna a contagem de compras do registro (0 se ausente)
func (r InsightRecord) Purchases() float64 {
	return r.Actions[ActionPurchase]
}

// Revenue retorna o valor de compras do registro (0 se ausente)
func (r InsightRecord) Revenue() float64 {
	return r.ActionValues[ActionPurchase]
}

type Totals struct {
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	Purchases   float64 `json:"purchases"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
}

// AggregatedMetrics é sempre recalculado a partir de Totals
type AggregatedMetrics struct {
	Totals            Totals  `json:"totals"`
	CTR               float64 `json:"ctr"`
	CPC               float64 `json:"cpc"`
	CPM               float64 `json:"cpm"`
	CostPerPurchase   float64 `json:"costPerPurchase"`
	ROAS              float64 `json:"roas"`
	ConversionRate    float64 `json:"conversionRate"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// DailyMetrics são as métricas derivadas de um único dia
type DailyMetrics struct {
	Date             time.Time `json:"date"`
	Spend            float64   `json:"spend"`
	Revenue          float64   `json:"revenue"`
	Purchases        float64   `json:"purchases"`
	Impressions      int64     `json:"impressions"`
	Clicks           int64     `json:"clicks"`
	CTR              float64   `json:"ctr"`
	CPC              float64   `json:"cpc"`
	CPM              float64   `json:"cpm"`
	ROAS             float64   `json:"roas"`
	PurchasesAverage float64   `json:"purchasesMovingAverage"`
}

// MetricTrends guarda a variação percentual entre os dois períodos mais recentes
type MetricTrends struct {
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	Purchases   float64 `json:"purchases"`
	Impressions float64 `json:"impressions"`
	Clicks      float64 `json:"clicks"`
	CTR         float64 `json:"ctr"`
}

type AccountDashboard struct {
	AccountID string            `json:"accountId"`
	DateRange DateRange         `json:"dateRange"`
	Metrics   AggregatedMetrics `json:"metrics"`
	Trends    MetricTrends      `json:"trends"`
	Daily     []DailyMetrics    `json:"daily"`
}
