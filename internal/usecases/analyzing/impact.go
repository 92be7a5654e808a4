package analyzing

import (
	"context"
	"fmt"
	"time"

	"github.com/tortshark/campaign-analyst/internal/domain"
)

// ImpactWindowDays é o tamanho das janelas antes/depois de uma mudança
const ImpactWindowDays = 7

// ImpactOf mede o efeito de uma mudança comparando os 7 dias anteriores com
// os dias seguintes a ela, limitados a ontem. O dia da mudança não entra em
// nenhuma das janelas. Mudanças sem nenhum dia completo depois delas são
// retornadas como TooRecent.
func ImpactOf(ctx context.Context, entry domain.ChangelogEntry, window domain.AnalysisWindow, fetcher StatsFetcher) (domain.ChangeImpact, error) {
	changeDate := domain.TruncateDayUTC(entry.ChangeDate)
	entry.ChangeDate = changeDate

	today := window.Today()
	yesterday := window.Yesterday()

	if !changeDate.Before(today) {
		return tooRecent(entry), nil
	}

	beforeStart := changeDate.AddDate(0, 0, -ImpactWindowDays)
	beforeEnd := changeDate.AddDate(0, 0, -1)

	afterStart := changeDate.AddDate(0, 0, 1)
	afterEnd := minDate(changeDate.AddDate(0, 0, ImpactWindowDays), yesterday)

	if afterStart.After(yesterday) {
		return tooRecent(entry), nil
	}

	before, err := windowMetrics(ctx, fetcher, entry.CampaignID, beforeStart, beforeEnd)
	if err != nil {
		return domain.ChangeImpact{}, fmt.Errorf("janela anterior da mudança %s: %w", entry.ID, err)
	}

	after, err := windowMetrics(ctx, fetcher, entry.CampaignID, afterStart, afterEnd)
	if err != nil {
		return domain.ChangeImpact{}, fmt.Errorf("janela posterior da mudança %s: %w", entry.ID, err)
	}

	return domain.ChangeImpact{
		Change: entry,
		Before: before,
		After:  after,
		Impact: &domain.ImpactDelta{
			CPLChange:         percentChange(before.CostPerLead, after.CostPerLead),
			ROASChange:        percentChange(before.ROAS, after.ROAS),
			LeadsPerDayChange: percentChange(before.AvgLeadsPerDay, after.AvgLeadsPerDay),
		},
	}, nil
}

func windowMetrics(ctx context.Context, fetcher StatsFetcher, campaignID string, start, end time.Time) (*domain.WindowMetrics, error) {
	stats, err := fetcher.GetByDateRange(ctx, []string{campaignID}, start, end)
	if err != nil {
		return nil, err
	}

	return &domain.WindowMetrics{
		Start:   start,
		End:     end,
		Metrics: Aggregate(stats),
	}, nil
}

func tooRecent(entry domain.ChangelogEntry) domain.ChangeImpact {
	return domain.ChangeImpact{
		Change:    entry,
		TooRecent: true,
	}
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
