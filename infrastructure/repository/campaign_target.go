package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/tortshark/campaign-analyst/infrastructure/database/postgres"
	"github.com/tortshark/campaign-analyst/internal/domain"
)

const (
	campaignTargetsTable = "campaign_targets ct"
)

type CampaignTargetRepository interface {
	GetByCampaignIDs(ctx context.Context, campaignIDs []string) (map[string]*domain.CampaignTarget, error)
}

type campaignTargetRepository struct {
	conn postgres.Queryer
}

func NewCampaignTargetRepository(conn postgres.Queryer) CampaignTargetRepository {
	return &campaignTargetRepository{
		conn: conn,
	}
}

// GetByCampaignIDs retorna as metas indexadas por campaign_id; campanhas sem meta ficam fora do mapa
func (r *campaignTargetRepository) GetByCampaignIDs(ctx context.Context, campaignIDs []string) (map[string]*domain.CampaignTarget, error) {
	targets := make(map[string]*domain.CampaignTarget)
	if len(campaignIDs) == 0 {
		return targets, nil
	}

	query, args, err := squirrel.
		Select("ct.campaign_id, ct.target_leads_per_day, ct.case_payout_amount, ct.target_roas").
		From(campaignTargetsTable).
		Where(squirrel.Eq{"ct.campaign_id": campaignIDs}).
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
		var (
			target                          domain.CampaignTarget
			leadsPerDay, payout, targetROAS sql.NullFloat64
		)

		if err := rows.Scan(&target.CampaignID, &leadsPerDay, &payout, &targetROAS); err != nil {
			return nil, fmt.Errorf("erro ao escanear meta de campanha: %w", err)
		}

		target.TargetLeadsPerDay = nullFloat(leadsPerDay)
		target.CasePayoutAmount = nullFloat(payout)
		target.TargetROAS = nullFloat(targetROAS)
		targets[target.CampaignID] = &target
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return targets, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
