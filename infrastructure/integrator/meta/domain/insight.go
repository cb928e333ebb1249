package metadomain

import (
	"fmt"
	"strconv"
	"strings"
)

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// InsightRow é uma linha de /insights; a Graph API retorna números como string
type InsightRow struct {
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
	Spend        string   `json:"spend"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	Reach        string   `json:"reach"`
	CTR          string   `json:"ctr"`
	Frequency    string   `json:"frequency"`
	Region       string   `json:"region"`
	Age          string   `json:"age"`
	Gender       string   `json:"gender"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
}

// SumActions acumula os valores por action_type; tipos repetidos são somados
func SumActions(actions []Action) (map[string]float64, error) {
	out := make(map[string]float64, len(actions))
	for _, a := range actions {
		v, err := ParseFloat(a.ActionType, a.Value)
		if err != nil {
			return nil, err
		}
		out[a.ActionType] += v
	}
	return out, nil
}

// ParseFloat converte campos numéricos da API; ausente vale 0
func ParseFloat(field, value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("campo %s com valor inválido %q", field, value)
	}
	return f, nil
}

// ParseInt converte contadores da API; ausente vale 0
func ParseInt(field, value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("campo %s com valor inválido %q", field, value)
	}
	return i, nil
}
