package domain

type Campaign struct {
	ID          string `json:"id"`
	WorkspaceID string `json:"workspace_id"`
	Name        string `json:"name"`
	IsActive    bool   `json:"is_active"`
}

// CampaignTarget representa as metas configuradas para uma campanha.
// Todos os campos são opcionais: nil significa "sem meta configurada".
type CampaignTarget struct {
	CampaignID        string   `json:"campaign_id"`
	TargetLeadsPerDay *float64 `json:"target_leads_per_day"`
	CasePayoutAmount  *float64 `json:"case_payout_amount"`
	TargetROAS        *float64 `json:"target_roas"`
}

// HasLeadsTarget indica se existe uma meta de leads por dia utilizável
func (t *CampaignTarget) HasLeadsTarget() bool {
	return t != nil && t.TargetLeadsPerDay != nil && *t.TargetLeadsPerDay > 0
}
