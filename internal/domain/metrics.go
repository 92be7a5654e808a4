package domain

// Metrics é o resultado da agregação de linhas diárias de uma campanha
type Metrics struct {
	TotalLeads     int     `json:"totalLeads"`
	TotalCases     int     `json:"totalCases"`
	TotalRetainers int     `json:"totalRetainers"`
	TotalSpend     float64 `json:"totalSpend"`
	TotalRevenue   float64 `json:"totalRevenue"`
	Days           int     `json:"days"`
	CostPerLead    float64 `json:"costPerLead"`
	ROAS           float64 `json:"roas"`
	AvgLeadsPerDay float64 `json:"avgLeadsPerDay"`
	AvgSpendPerDay float64 `json:"avgSpendPerDay"`
	CPLTrend       float64 `json:"cplTrend"`
}

// CampaignMetrics associa as métricas do período à campanha de origem
type CampaignMetrics struct {
	Campaign Campaign `json:"campaign"`
	Metrics  Metrics  `json:"metrics"`
}

type CampaignSummary struct {
	CampaignID          string   `json:"campaignId"`
	CampaignName        string   `json:"campaignName"`
	Metrics             Metrics  `json:"metrics"`
	TargetLeadsPerDay   *float64 `json:"targetLeadsPerDay"`
	CapacityFillPercent *float64 `json:"capacityFillPercent"`
	IsHittingTarget     bool     `json:"isHittingTarget"`
	TargetROAS          *float64 `json:"targetRoas"`
	ROASVsTarget        *float64 `json:"roasVsTarget"`
}

// PortfolioMetrics soma todas as campanhas; ROAS e CPL são ponderados pelo gasto
type PortfolioMetrics struct {
	TotalSpend             float64           `json:"totalSpend"`
	TotalRevenue           float64           `json:"totalRevenue"`
	TotalLeads             int               `json:"totalLeads"`
	TotalCases             int               `json:"totalCases"`
	TotalRetainers         int               `json:"totalRetainers"`
	ROAS                   float64           `json:"roas"`
	CostPerLead            float64           `json:"costPerLead"`
	DaysInWindow           int               `json:"daysInWindow"`
	CampaignsHittingTarget int               `json:"campaignsHittingTarget"`
	Campaigns              []CampaignSummary `json:"campaigns"`
}
