package insighting

import (
	"regexp"
	"slices"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/ads-ingestion-api/internal/domain"
)

// movingAverageWindow é a janela móvel (inclusiva) usada para suavizar séries curtas
const movingAverageWindow = 3

// DefaultBaselineCTR é o CTR médio (em %) usado pela estimativa de crescimento geográfico
const DefaultBaselineCTR = 2.0

// safeDiv retorna 0 quando o denominador é zero
func safeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// Aggregate soma os registros e calcula as razões a partir dos totais.
// Valores monetários são somados em decimal para que a ordem dos registros não
// altere o resultado.
func Aggregate(records []domain.InsightRecord) domain.AggregatedMetrics {
	spend := decimal.Zero
	revenue := decimal.Zero
	purchases := decimal.Zero

	var totals domain.Totals
	for _, r := range records {
		spend = spend.Add(decimal.NewFromFloat(r.Spend))
		revenue = revenue.Add(decimal.NewFromFloat(r.Revenue()))
		purchases = purchases.Add(decimal.NewFromFloat(r.Purchases()))
		totals.Impressions += r.Impressions
		totals.Clicks += r.Clicks
	}

	totals.Spend = spend.InexactFloat64()
	totals.Revenue = revenue.InexactFloat64()
	totals.Purchases = purchases.InexactFloat64()

	return MetricsFromTotals(totals)
}

// MetricsFromTotals calcula as razões derivadas; nunca retorna NaN ou Inf
func MetricsFromTotals(totals domain.Totals) domain.AggregatedMetrics {
	impressions := float64(totals.Impressions)
	clicks := float64(totals.Clicks)

	return domain.AggregatedMetrics{
		Totals:            totals,
		CTR:               safeDiv(clicks, impressions) * 100,
		CPC:               safeDiv(totals.Spend, clicks),
		CPM:               safeDiv(totals.Spend, impressions) * 1000,
		CostPerPurchase:   safeDiv(totals.Spend, totals.Purchases),
		ROAS:              safeDiv(totals.Revenue, totals.Spend) * 100,
		ConversionRate:    safeDiv(totals.Purchases, clicks) * 100,
		AverageOrderValue: safeDiv(totals.Revenue, totals.Purchases),
	}
}

// Trend retorna a variação percentual de previous para current (0 se previous == 0)
func Trend(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// TrendOf usa os dois últimos valores da série; menos de dois pontos retorna 0
func TrendOf(series []float64) float64 {
	if len(series) < 2 {
		return 0
	}
	return Trend(series[len(series)-1], series[len(series)-2])
}

// MovingAverage calcula a média da janela [max(0, i-2) .. i] para cada índice
func MovingAverage(values []float64) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		start := max(0, i-(movingAverageWindow-1))
		sum := 0.0
		for _, v := range values[start : i+1] {
			sum += v
		}
		out[i] = sum / float64(i+1-start)
	}
	return out
}

// DailySeries retorna as métricas de cada dia em ordem cronológica, com a média
// móvel de compras
func DailySeries(records []domain.InsightRecord) []domain.DailyMetrics {
	sorted := slices.Clone(records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	daily := make([]domain.DailyMetrics, 0, len(sorted))
	purchases := make([]float64, 0, len(sorted))

	for _, r := range sorted {
		m := Aggregate([]domain.InsightRecord{r})
		daily = append(daily, domain.DailyMetrics{
			Date:        r.Date,
			Spend:       m.Totals.Spend,
			Revenue:     m.Totals.Revenue,
			Purchases:   m.Totals.Purchases,
			Impressions: m.Totals.Impressions,
			Clicks:      m.Totals.Clicks,
			CTR:         m.CTR,
			CPC:         m.CPC,
			CPM:         m.CPM,
			ROAS:        m.ROAS,
		})
		purchases = append(purchases, m.Totals.Purchases)
	}

	for i, avg := range MovingAverage(purchases) {
		daily[i].PurchasesAverage = avg
	}

	return daily
}

// Trends calcula a tendência de cada métrica entre os dois dias mais recentes
func Trends(daily []domain.DailyMetrics) domain.MetricTrends {
	series := func(pick func(domain.DailyMetrics) float64) []float64 {
		values := make([]float64, len(daily))
		for i, d := range daily {
			values[i] = pick(d)
		}
		return values
	}

	return domain.MetricTrends{
		Spend:       TrendOf(series(func(d domain.DailyMetrics) float64 { return d.Spend })),
		Revenue:     TrendOf(series(func(d domain.DailyMetrics) float64 { return d.Revenue })),
		Purchases:   TrendOf(series(func(d domain.DailyMetrics) float64 { return d.Purchases })),
		Impressions: TrendOf(series(func(d domain.DailyMetrics) float64 { return float64(d.Impressions) })),
		Clicks:      TrendOf(series(func(d domain.DailyMetrics) float64 { return float64(d.Clicks) })),
		CTR:         TrendOf(series(func(d domain.DailyMetrics) float64 { return d.CTR })),
	}
}

var leadingNumber = regexp.MustCompile(`^\d+`)

// genderOrder é a ordem fixa de exibição dos gêneros conhecidos
var genderOrder = map[string]int{
	"female":  0,
	"male":    1,
	"unknown": 2,
}

// RollupDemographics agrupa as linhas idade x gênero pela dimensão escolhida
func RollupDemographics(rows []domain.DemographicRow, dimension domain.DemographicDimension) []domain.DemographicBucket {
	index := make(map[string]int)
	buckets := make([]domain.DemographicBucket, 0)
	spend := make([]decimal.Decimal, 0)

	var totalReach int64
	for _, row := range rows {
		key := row.Age
		if dimension == domain.DimensionGender {
			key = row.Gender
		}

		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, domain.DemographicBucket{Key: key})
			spend = append(spend, decimal.Zero)
		}

		buckets[i].Reach += row.Reach
		spend[i] = spend[i].Add(decimal.NewFromFloat(row.Spend))
		totalReach += row.Reach
	}

	for i := range buckets {
		buckets[i].Spend = spend[i].InexactFloat64()
		buckets[i].PercentageOfTotalReach = safeDiv(float64(buckets[i].Reach), float64(totalReach))
	}

	less := ageLess
	if dimension == domain.DimensionGender {
		less = genderLess
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return less(buckets[i].Key, buckets[j].Key)
	})

	return buckets
}

// ageLess ordena pela idade inicial da faixa ("18-24" < "25-34" < "65+");
// faixas sem número ficam no fim
func ageLess(a, b string) bool {
	na, okA := ageStart(a)
	nb, okB := ageStart(b)

	switch {
	case okA && okB && na != nb:
		return na < nb
	case okA != okB:
		return okA
	default:
		return a < b
	}
}

func ageStart(age string) (int, bool) {
	match := leadingNumber.FindString(age)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return n, true
}

func genderLess(a, b string) bool {
	oa, okA := genderOrder[a]
	ob, okB := genderOrder[b]

	switch {
	case okA && okB:
		return oa < ob
	case okA != okB:
		return okA
	default:
		return a < b
	}
}

// GeoOptions controla a estimativa de crescimento quando não há período anterior
type GeoOptions struct {
	BaselineCTR    float64
	EstimateGrowth bool
}

// RollupGeo normaliza o CTR para porcentagem e calcula o crescimento de gasto contra o
// período anterior. Sem dado anterior o crescimento fica indisponível (nil), a menos
// que EstimateGrowth esteja ligado. Regiões são ordenadas por gasto decrescente.
func RollupGeo(current, previous []domain.GeoInsight, opts GeoOptions) []domain.GeoRegion {
	previousSpend := make(map[string]float64, len(previous))
	for _, p := range previous {
		previousSpend[p.Region] += p.Spend
	}

	baseline := opts.BaselineCTR
	if baseline <= 0 {
		baseline = DefaultBaselineCTR
	}

	regions := make([]domain.GeoRegion, 0, len(current))
	for _, g := range current {
		region := domain.GeoRegion{
			Name:        g.Region,
			Spend:       g.Spend,
			Impressions: g.Impressions,
			Clicks:      g.Clicks,
			CTR:         g.CTR * 100,
			Reach:       g.Reach,
			Frequency:   g.Frequency,
		}

		if prev, ok := previousSpend[g.Region]; ok && prev > 0 {
			growth := Trend(g.Spend, prev)
			region.GrowthPct = &growth
		} else if opts.EstimateGrowth {
			growth := (region.CTR - baseline) / baseline * 100
			region.GrowthPct = &growth
			region.GrowthEstimated = true
		}

		regions = append(regions, region)
	}

	sort.SliceStable(regions, func(i, j int) bool {
		if regions[i].Spend != regions[j].Spend {
			return regions[i].Spend > regions[j].Spend
		}
		return regions[i].Name < regions[j].Name
	})

	return regions
}

// SpendByRegion soma o gasto por nome de região
func SpendByRegion(regions []domain.GeoRegion) map[string]float64 {
	out := make(map[string]float64, len(regions))
	for _, r := range regions {
		out[r.Name] += r.Spend
	}
	return out
}
