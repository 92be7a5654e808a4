package analyzing

import (
	"slices"

	"github.com/tortshark/campaign-analyst/internal/domain"
)

// Summarize consolida as métricas por campanha no portfólio.
// ROAS e CPL do portfólio são calculados sobre as somas, ou seja, ponderados pelo gasto.
// Campanhas sem gasto e sem leads ficam fora da lista de campanhas.
func Summarize(campaigns []domain.CampaignMetrics, targets map[string]*domain.CampaignTarget, daysInWindow int) domain.PortfolioMetrics {
	portfolio := domain.PortfolioMetrics{
		DaysInWindow: daysInWindow,
		Campaigns:    make([]domain.CampaignSummary, 0, len(campaigns)),
	}

	for _, cm := range campaigns {
		m := cm.Metrics

		portfolio.TotalSpend += m.TotalSpend
		portfolio.TotalRevenue += m.TotalRevenue
		portfolio.TotalLeads += m.TotalLeads
		portfolio.TotalCases += m.TotalCases
		portfolio.TotalRetainers += m.TotalRetainers

		if m.TotalSpend == 0 && m.TotalLeads == 0 {
			continue
		}

		summary := summarizeCampaign(cm, targets[cm.Campaign.ID], daysInWindow)
		if summary.IsHittingTarget {
			portfolio.CampaignsHittingTarget++
		}
		portfolio.Campaigns = append(portfolio.Campaigns, summary)
	}

	portfolio.ROAS = safeDiv(portfolio.TotalRevenue, portfolio.TotalSpend)
	portfolio.CostPerLead = safeDiv(portfolio.TotalSpend, float64(portfolio.TotalLeads))

	slices.SortStableFunc(portfolio.Campaigns, func(a, b domain.CampaignSummary) int {
		switch {
		case a.Metrics.TotalSpend > b.Metrics.TotalSpend:
			return -1
		case a.Metrics.TotalSpend < b.Metrics.TotalSpend:
			return 1
		default:
			return 0
		}
	})

	return portfolio
}

func summarizeCampaign(cm domain.CampaignMetrics, target *domain.CampaignTarget, daysInWindow int) domain.CampaignSummary {
	summary := domain.CampaignSummary{
		CampaignID:   cm.Campaign.ID,
		CampaignName: cm.Campaign.Name,
		Metrics:      cm.Metrics,
	}

	if target == nil {
		return summary
	}

	summary.TargetLeadsPerDay = target.TargetLeadsPerDay
	if target.HasLeadsTarget() && daysInWindow > 0 {
		fill := float64(cm.Metrics.TotalLeads) / (*target.TargetLeadsPerDay * float64(daysInWindow)) * 100
		summary.CapacityFillPercent = &fill
		summary.IsHittingTarget = fill >= 100
	}

	if target.TargetROAS != nil && *target.TargetROAS > 0 {
		summary.TargetROAS = target.TargetROAS
		diff := cm.Metrics.ROAS - *target.TargetROAS
		summary.ROASVsTarget = &diff
	}

	return summary
}

// DailyTotals soma as linhas de todas as campanhas por dia, em ordem cronológica
func DailyTotals(stats []*domain.DailyStat) []domain.DailyTotal {
	totals := make([]domain.DailyTotal, 0)
	index := make(map[int64]int)

	for _, stat := range sortedByDate(stats) {
		date := domain.DateOf(stat.Date)
		i, ok := index[date.Unix()]
		if !ok {
			totals = append(totals, domain.DailyTotal{Date: date})
			i = len(totals) - 1
			index[date.Unix()] = i
		}

		totals[i].Leads += stat.Leads
		totals[i].Cases += stat.Cases
		totals[i].Revenue += stat.Revenue
		totals[i].AdSpend += stat.AdSpend
	}

	return totals
}
