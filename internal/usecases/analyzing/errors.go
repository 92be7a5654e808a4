package analyzing

import (
	"errors"

	"github.com/tortshark/campaign-analyst/internal/domain"
)

// Erros específicos do analista
var (
	// Erros de validação da requisição
	ErrWorkspaceRequired = errors.New("workspaceId is required")
	ErrInvalidClientDate = errors.New("clientDate must be formatted as YYYY-MM-DD")
	ErrInvalidMessage    = errors.New("messages must have role user or assistant and non-empty content")
	ErrInvalidMode       = errors.New("invalid analysis mode")

	// Erros de leitura do banco que impedem a análise
	ErrLoadCampaigns = errors.New("error loading campaigns")
	ErrLoadStats     = errors.New("error loading campaign stats")

	ErrBuildPrompt = errors.New("error building prompt")
)

// IsValidationError indica se o erro foi causado por uma requisição inválida
func IsValidationError(err error) bool {
	return errors.Is(err, ErrWorkspaceRequired) ||
		errors.Is(err, ErrInvalidClientDate) ||
		errors.Is(err, ErrInvalidMessage) ||
		errors.Is(err, domain.ErrInvalidAnalysisPeriod)
}
