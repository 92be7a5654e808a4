package analyzing

import (
	"slices"

	"github.com/tortshark/campaign-analyst/internal/domain"
)

// Aggregate soma as linhas diárias e calcula CPL, ROAS, médias por dia e a
// tendência de CPL entre a primeira e a segunda metade do período.
// Divisões por zero resultam em 0.
func Aggregate(stats []*domain.DailyStat) domain.Metrics {
	var m domain.Metrics

	sorted := sortedByDate(stats)
	days := make(map[int64]struct{}, len(sorted))

	for _, stat := range sorted {
		m.TotalLeads += stat.Leads
		m.TotalCases += stat.Cases
		m.TotalRetainers += stat.Retainers
		m.TotalSpend += stat.AdSpend
		m.TotalRevenue += stat.Revenue
		days[domain.DateOf(stat.Date).Unix()] = struct{}{}
	}

	m.Days = len(days)
	m.CostPerLead = safeDiv(m.TotalSpend, float64(m.TotalLeads))
	m.ROAS = safeDiv(m.TotalRevenue, m.TotalSpend)
	m.AvgLeadsPerDay = safeDiv(float64(m.TotalLeads), float64(m.Days))
	m.AvgSpendPerDay = safeDiv(m.TotalSpend, float64(m.Days))
	m.CPLTrend = cplTrend(sorted)

	return m
}

// cplTrend divide as linhas no meio (divisão inteira) e compara o CPL das metades
func cplTrend(sorted []*domain.DailyStat) float64 {
	mid := len(sorted) / 2

	firstCPL := costPerLead(sorted[:mid])
	secondCPL := costPerLead(sorted[mid:])
	if firstCPL <= 0 {
		return 0
	}

	return (secondCPL - firstCPL) / firstCPL * 100
}

func costPerLead(stats []*domain.DailyStat) float64 {
	var spend float64
	var leads int
	for _, stat := range stats {
		spend += stat.AdSpend
		leads += stat.Leads
	}
	return safeDiv(spend, float64(leads))
}

func sortedByDate(stats []*domain.DailyStat) []*domain.DailyStat {
	sorted := make([]*domain.DailyStat, 0, len(stats))
	for _, stat := range stats {
		if stat != nil {
			sorted = append(sorted, stat)
		}
	}

	slices.SortStableFunc(sorted, func(a, b *domain.DailyStat) int {
		return a.Date.Compare(b.Date)
	})

	return sorted
}

func safeDiv(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return numerator / denominator
}

// percentChange retorna a variação percentual de before para after; 0 quando before é 0
func percentChange(before, after float64) float64 {
	if before == 0 {
		return 0
	}
	return (after - before) / before * 100
}
