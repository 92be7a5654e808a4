package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/tortshark/campaign-analyst/infrastructure/database/postgres"
	"github.com/tortshark/campaign-analyst/internal/domain"
)

const (
	campaignStatsTable = "campaign_stats_history csh"
)

type CampaignStatsRepository interface {
	GetByDateRange(ctx context.Context, campaignIDs []string, startDate, endDate time.Time) ([]*domain.DailyStat, error)
}

type campaignStatsRepository struct {
	conn postgres.Queryer
}

func NewCampaignStatsRepository(conn postgres.Queryer) CampaignStatsRepository {
	return &campaignStatsRepository{
		conn: conn,
	}
}

// GetByDateRange busca as linhas diárias das campanhas no intervalo inclusivo, ordenadas por data
func (r *campaignStatsRepository) GetByDateRange(ctx context.Context, campaignIDs []string, startDate, endDate time.Time) ([]*domain.DailyStat, error) {
	stats := make([]*domain.DailyStat, 0)
	if len(campaignIDs) == 0 {
		return stats, nil
	}

	query, args, err := squirrel.
		Select("csh.campaign_id, csh.date, csh.leads, csh.cases, csh.retainers, csh.revenue, csh.ad_spend").
		From(campaignStatsTable).
		Where(squirrel.Eq{"csh.campaign_id": campaignIDs}).
		Where(squirrel.GtOrEq{"csh.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"csh.date": endDate.Format(time.DateOnly)}).
		OrderBy("csh.date ASC", "csh.campaign_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		stat := &domain.DailyStat{}
		err := rows.Scan(
			&stat.CampaignID,
			&stat.Date,
			&stat.Leads,
			&stat.Cases,
			&stat.Retainers,
			&stat.Revenue,
			&stat.AdSpend,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear estatística diária: %w", err)
		}

		stat.Date = domain.DateOf(stat.Date)
		stats = append(stats, stat)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stats, nil
}
