package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/tortshark/campaign-analyst/infrastructure/integrator/llmgateway"
	"github.com/tortshark/campaign-analyst/internal/domain"
	"github.com/tortshark/campaign-analyst/internal/metrics"
	"github.com/tortshark/campaign-analyst/internal/usecases/analyzing"
	"github.com/tortshark/campaign-analyst/pkg/apiErrors"
	"github.com/tortshark/campaign-analyst/pkg/log"
	"github.com/tortshark/campaign-analyst/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const relayBufferSize = 4096

const (
	msgInvalidBody     = "Invalid request body"
	msgRateLimited     = "Rate limits exceeded, please try again later."
	msgCreditsDepleted = "Payment required, please add funds to your workspace."
	msgLoadFailed      = "Failed to load workspace data"
	msgAnalysisFailed  = "Failed to generate analysis"
	msgStreamingFailed = "Streaming not supported"
)

// CampaignAnalyst recebe a requisição do analista e repassa o stream SSE do gateway sem alterações
func CampaignAnalyst(service analyzing.Analyst, m *metrics.Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		flusher, ok := w.(http.Flusher)
		if !ok {
			logger.Error("ResponseWriter não suporta flush")
			apiErrors.WriteMessage(w, http.StatusInternalServerError, msgStreamingFailed)
			return
		}

		var req domain.AnalystRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("Corpo da requisição do analista inválido")
			apiErrors.WriteMessage(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		stream, err := service.Stream(r.Context(), &req)
		if err != nil {
			writeAnalystError(w, r, err, m)
			return
		}
		defer stream.Close()

		reportID, err := utils.GenerateReportID()
		if err != nil {
			logger.WithError(err).Warn("Erro ao gerar report id")
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		if reportID != "" {
			w.Header().Set("X-Report-ID", reportID)
		}
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		written, err := relay(w, flusher, stream)

		fields := log.Fields{
			"workspace_id":  req.WorkspaceID,
			"mode":          req.Mode(),
			"report_id":     reportID,
			"bytes_relayed": written,
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.WithFields(fields).WithError(err).Warn("Stream do analista interrompido")
			return
		}
		logger.WithFields(fields).Info("Stream do analista concluído")
	})
}

// relay copia o stream do gateway para o cliente, com flush a cada leitura
func relay(w io.Writer, flusher http.Flusher, stream io.Reader) (int64, error) {
	buf := make([]byte, relayBufferSize)
	var written int64

	for {
		n, readErr := stream.Read(buf)
		if n > 0 {
			wn, err := w.Write(buf[:n])
			written += int64(wn)
			if err != nil {
				return written, err
			}
			flusher.Flush()
		}

		if errors.Is(readErr, io.EOF) {
			return written, nil
		}
		if readErr != nil {
			return written, readErr
		}
	}
}

func writeAnalystError(w http.ResponseWriter, r *http.Request, err error, m *metrics.Metrics) {
	logger := log.ForContext(r.Context()).WithError(err)

	switch {
	case analyzing.IsValidationError(err):
		logger.Warn("Requisição do analista inválida")
		apiErrors.WriteMessage(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, analyzing.ErrLoadCampaigns), errors.Is(err, analyzing.ErrLoadStats):
		logger.Error("Erro ao carregar dados do workspace")
		apiErrors.WriteMessage(w, http.StatusInternalServerError, msgLoadFailed)

	case errors.Is(err, analyzing.ErrBuildPrompt), errors.Is(err, analyzing.ErrInvalidMode):
		logger.Error("Erro ao montar prompt do analista")
		apiErrors.WriteMessage(w, http.StatusInternalServerError, msgAnalysisFailed)

	default:
		reason := llmgateway.Reason(err)
		m.RecordUpstreamError(reason)
		logger.WithField("reason", reason).Error("Erro no gateway de LLM")

		switch {
		case errors.Is(err, llmgateway.ErrRateLimited):
			apiErrors.WriteMessage(w, http.StatusTooManyRequests, msgRateLimited)
		case errors.Is(err, llmgateway.ErrCreditsDepleted):
			apiErrors.WriteMessage(w, http.StatusPaymentRequired, msgCreditsDepleted)
		default:
			apiErrors.WriteMessage(w, http.StatusInternalServerError, msgAnalysisFailed)
		}
	}
}
