package domain

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateRange é um intervalo inclusivo de dias usado por todas as consultas de relatório
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange normaliza as datas para o início do dia e valida start <= end
func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateDay(start)
	end = truncateDay(end)

	if start.IsZero() || end.IsZero() {
		return DateRange{}, NewValidationError("date range requires start and end")
	}

	if start.After(end) {
		return DateRange{}, NewValidationError(fmt.Sprintf("start date %s is after end date %s",
			start.Format(dateLayout), end.Format(dateLayout)))
	}

	return DateRange{Start: start, End: end}, nil
}

// LastDays retorna os últimos n dias terminando em ref (inclusivo)
func LastDays(ref time.Time, n int) DateRange {
	if n < 1 {
		n = 1
	}
	end := truncateDay(ref)
	return DateRange{Start: end.AddDate(0, 0, -(n - 1)), End: end}
}

func (d DateRange) Since() string {
	return d.Start.Format(dateLayout)
}

func (d DateRange) Until() string {
	return d.End.Format(dateLayout)
}

// Days retorna a quantidade de dias do intervalo
func (d DateRange) Days() int {
	return int(d.End.Sub(d.Start).Hours()/24) + 1
}

// Previous retorna o período imediatamente anterior com o mesmo tamanho
func (d DateRange) Previous() DateRange {
	days := d.Days()
	end := d.Start.AddDate(0, 0, -1)
	return DateRange{Start: end.AddDate(0, 0, -(days - 1)), End: end}
}

// TimeRange monta o parâmetro time_range aceito pela Graph API
func (d DateRange) TimeRange() string {
	return fmt.Sprintf(`{"since":"%s","until":"%s"}`, d.Since(), d.Until())
}

func (d DateRange) String() string {
	return d.Since() + ".." + d.Until()
}

func truncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
