package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/ads-ingestion-api/internal/domain"
	"github.com/vfg2006/ads-ingestion-api/internal/usecases/commenting"
	"github.com/vfg2006/ads-ingestion-api/pkg/apiErrors"
	"github.com/vfg2006/ads-ingestion-api/pkg/log"
	"github.com/vfg2006/ads-ingestion-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// defaultRangeDays é usado quando a requisição não informa datas
const defaultRangeDays = 7

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("failed to encode response")
	}
}

// respondError converte o tipo do erro no código e status HTTP padronizados
func respondError(w http.ResponseWriter, err error) {
	apiErr := apiErrors.FromError(err, errorCode(err))
	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, map[string]string{"kind": domain.ErrorKind(err)})
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return apiErrors.ErrInvalidRequest
	case errors.Is(err, commenting.ErrCommentNotFound):
		return apiErrors.ErrNotFound
	case errors.Is(err, domain.ErrRateLimitExceeded):
		return apiErrors.ErrRateLimited
	case errors.Is(err, domain.ErrMalformedResponse):
		return apiErrors.ErrMalformedResponse
	case errors.Is(err, domain.ErrNetwork):
		return apiErrors.ErrCommunication
	case errors.Is(err, domain.ErrAPI):
		return apiErrors.ErrExternalService
	default:
		return apiErrors.ErrInternalServer
	}
}

// parseDateRange lê start_date e end_date (YYYY-MM-DD); sem datas usa os últimos 7 dias
func parseDateRange(r *http.Request) (domain.DateRange, error) {
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return domain.DateRange{}, domain.NewValidationError(fmt.Sprintf("invalid start_date: %s", query.Get("start_date")))
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return domain.DateRange{}, domain.NewValidationError(fmt.Sprintf("invalid end_date: %s", query.Get("end_date")))
	}

	switch {
	case startDate == nil && endDate == nil:
		return domain.LastDays(time.Now().UTC(), defaultRangeDays), nil
	case startDate == nil || endDate == nil:
		return domain.DateRange{}, domain.NewValidationError("start_date and end_date must be informed together")
	}

	return domain.NewDateRange(*startDate, *endDate)
}

// splitList lê parâmetros separados por vírgula ignorando itens vazios
func splitList(raw string) []string {
	out := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
