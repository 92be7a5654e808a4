package domain

import "time"

type AnalysisMode string

const (
	AnalysisModeReport   AnalysisMode = "report"
	AnalysisModeBriefing AnalysisMode = "briefing"
	AnalysisModeChat     AnalysisMode = "chat"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AnalystRequest é o corpo recebido pelo endpoint do analista
type AnalystRequest struct {
	WorkspaceID    string        `json:"workspaceId"`
	Messages       []ChatMessage `json:"messages,omitempty"`
	BriefingMode   bool          `json:"briefingMode,omitempty"`
	AnalysisPeriod string        `json:"analysisPeriod,omitempty"`
	ClientDate     string        `json:"clientDate,omitempty"`
}

// Mode deriva o modo da requisição: mensagens indicam chat, depois briefing, senão relatório
func (r *AnalystRequest) Mode() AnalysisMode {
	if len(r.Messages) > 0 {
		return AnalysisModeChat
	}
	if r.BriefingMode {
		return AnalysisModeBriefing
	}
	return AnalysisModeReport
}

// LLMRequest é o corpo enviado ao gateway de LLM (formato compatível com OpenAI)
type LLMRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

// AnalysisPayload é o snapshot agregado de um workspace para uma janela
type AnalysisPayload struct {
	WorkspaceID   string           `json:"workspaceId"`
	Window        AnalysisWindow   `json:"window"`
	Portfolio     PortfolioMetrics `json:"portfolio"`
	ChangeImpacts []ChangeImpact   `json:"changeImpacts"`
	DailyTotals   []DailyTotal     `json:"dailyTotals"`
	GeneratedAt   time.Time        `json:"generatedAt"`
}
