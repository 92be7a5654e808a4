package domain

import "time"

// Briefing é o resumo matinal gerado para um workspace em um dia do calendário
type Briefing struct {
	WorkspaceID string    `json:"workspaceId"`
	Date        time.Time `json:"date"`
	Text        string    `json:"text"`
	Model       string    `json:"model"`
	ReportID    string    `json:"reportId"`
	GeneratedAt time.Time `json:"generatedAt"`
}
