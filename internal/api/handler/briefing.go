package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/tortshark/campaign-analyst/infrastructure/cache"
	"github.com/tortshark/campaign-analyst/internal/domain"
	"github.com/tortshark/campaign-analyst/internal/metrics"
	"github.com/tortshark/campaign-analyst/pkg/apiErrors"
	"github.com/tortshark/campaign-analyst/pkg/log"
	"github.com/tortshark/campaign-analyst/pkg/utils"
)

// GetBriefing retorna o briefing do dia gerado pelo job de aquecimento
func GetBriefing(briefings cache.BriefingCache, loc *time.Location, m *metrics.Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workspaceID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if workspaceID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "workspace id is required", nil)
			return
		}

		date, err := utils.ParseDateOr(r.URL.Query().Get("date"), domain.DateOf(time.Now().In(loc)))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date must be formatted as YYYY-MM-DD", nil)
			return
		}

		logger := log.ForContext(r.Context()).WithFields(log.Fields{
			"workspace_id": workspaceID,
			"date":         utils.FormatDate(date),
		})

		briefing, err := briefings.Get(r.Context(), workspaceID, date)
		if err != nil {
			logger.WithError(err).Error("Erro ao buscar briefing no cache")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar briefing", nil)
			return
		}

		m.RecordBriefingCache(briefing != nil)
		if briefing == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Briefing não encontrado para a data", nil)
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, briefing); err != nil {
			logger.WithError(err).Warn("Erro ao escrever briefing")
		}
	})
}
