package domain

import "time"

type ChangeType string

const (
	ChangeTypeAdCreative    ChangeType = "ad_creative"
	ChangeTypeSpendIncrease ChangeType = "spend_increase"
	ChangeTypeSpendDecrease ChangeType = "spend_decrease"
	ChangeTypeTargeting     ChangeType = "targeting"
)

// ChangelogEntry é uma intervenção registrada pelo usuário em uma campanha.
// ChangeDate é tratado sempre como um dia, nunca como um instante.
type ChangelogEntry struct {
	ID           string     `json:"id"`
	CampaignID   string     `json:"campaign_id"`
	CampaignName string     `json:"campaign_name"`
	ChangeType   ChangeType `json:"change_type"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ChangeDate   time.Time  `json:"change_date"`
}

// WindowMetrics são as métricas agregadas de uma janela de dias fechada
type WindowMetrics struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Metrics
}

type ImpactDelta struct {
	CPLChange         float64 `json:"cplChange"`
	ROASChange        float64 `json:"roasChange"`
	LeadsPerDayChange float64 `json:"leadsPerDayChange"`
}

// ChangeImpact compara as janelas antes/depois de uma mudança.
// Quando TooRecent é verdadeiro, Before, After e Impact são nil.
type ChangeImpact struct {
	Change    ChangelogEntry `json:"change"`
	TooRecent bool           `json:"tooRecent"`
	Before    *WindowMetrics `json:"before"`
	After     *WindowMetrics `json:"after"`
	Impact    *ImpactDelta   `json:"impact"`
}
