package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/tortshark/campaign-analyst/pkg/apiErrors"
	"github.com/tortshark/campaign-analyst/pkg/utils"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeBriefing = "briefing"
)

// CronJob é um job agendado que também pode ser disparado manualmente
type CronJob interface {
	// TriggerManualSync retorna false quando uma execução já está em andamento
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	BriefingWarmupService CronJob
}

func (s CronJobServices) byType(cronType string) CronJob {
	switch cronType {
	case CronJobTypeBriefing:
		return s.BriefingWarmupService
	default:
		return nil
	}
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if cronType != CronJobTypeBriefing {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: briefing", nil)
			return
		}

		job := services.byType(cronType)
		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de aquecimento de briefings não disponível", nil)
			return
		}

		if !job.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrConflict, "Cron job já em andamento", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		utils.WriteJSON(w, http.StatusAccepted, response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.BriefingWarmupService != nil {
			status[CronJobTypeBriefing] = services.BriefingWarmupService.GetStatus()
		}

		utils.WriteJSON(w, http.StatusOK, status)
	}
}
