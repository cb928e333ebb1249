package domain

// GeoInsight é uma linha normalizada do breakdown por região
type GeoInsight struct {
	Region      string  `json:"region"`
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"` // fração crua retornada pela API
	Reach       int64   `json:"reach"`
	Frequency   float64 `json:"frequency"`
}

type GeoRegion struct {
	Name        string  `json:"name"`
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
	Reach       int64   `json:"reach"`
	Frequency   float64 `json:"frequency"`
	// GrowthPct é nil quando não existe período anterior (crescimento indisponível)
	GrowthPct       *float64 `json:"growthPct"`
	GrowthEstimated bool     `json:"growthEstimated,omitempty"`
}

type DemographicDimension string

const (
	DimensionAge    DemographicDimension = "age"
	DimensionGender DemographicDimension = "gender"
)

// DemographicRow é uma linha do breakdown idade x gênero
type DemographicRow struct {
	Age    string  `json:"age"`
	Gender string  `json:"gender"`
	Reach  int64   `json:"reach"`
	Spend  float64 `json:"spend"`
}

type DemographicBucket struct {
	Key                    string  `json:"key"`
	Reach                  int64   `json:"reach"`
	Spend                  float64 `json:"spend"`
	PercentageOfTotalReach float64 `json:"percentageOfTotalReach"`
}

type GeoReport struct {
	AccountID     string              `json:"accountId"`
	DateRange     DateRange           `json:"dateRange"`
	Regions       []GeoRegion         `json:"regions"`
	SpendByRegion map[string]float64  `json:"spendByRegion"`
	Age           []DemographicBucket `json:"age"`
	Gender        []DemographicBucket `json:"gender"`
}
