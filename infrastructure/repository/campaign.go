package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/tortshark/campaign-analyst/infrastructure/database/postgres"
	"github.com/tortshark/campaign-analyst/internal/domain"
)

const (
	campaignsTable = "campaigns c"
)

type CampaignRepository interface {
	ListByWorkspace(ctx context.Context, workspaceID string, onlyActive bool) ([]*domain.Campaign, error)
	ListWorkspaceIDs(ctx context.Context) ([]string, error)
}

type campaignRepository struct {
	conn postgres.Queryer
}

func NewCampaignRepository(conn postgres.Queryer) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) ListByWorkspace(ctx context.Context, workspaceID string, onlyActive bool) ([]*domain.Campaign, error) {
	builder := squirrel.
		Select("c.id, c.workspace_id, c.name, c.is_active").
		From(campaignsTable).
		Where(squirrel.Eq{"c.workspace_id": workspaceID}).
		OrderBy("c.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyActive {
		builder = builder.Where(squirrel.Eq{"c.is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign := &domain.Campaign{}
		if err := rows.Scan(&campaign.ID, &campaign.WorkspaceID, &campaign.Name, &campaign.IsActive); err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

// ListWorkspaceIDs retorna os workspaces que possuem ao menos uma campanha ativa
func (r *campaignRepository) ListWorkspaceIDs(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT c.workspace_id").
		From(campaignsTable).
		Where(squirrel.Eq{"c.is_active": true}).
		OrderBy("c.workspace_id ASC").
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

	workspaceIDs := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear workspace: %w", err)
		}
		workspaceIDs = append(workspaceIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return workspaceIDs, nil
}
