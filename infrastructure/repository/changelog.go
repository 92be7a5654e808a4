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
	changelogTable = "campaign_changelog cl"
)

type ChangelogRepository interface {
	ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.ChangelogEntry, error)
}

type changelogRepository struct {
	conn postgres.Queryer
}

func NewChangelogRepository(conn postgres.Queryer) ChangelogRepository {
	return &changelogRepository{
		conn: conn,
	}
}

// ListByWorkspace retorna todo o histórico de mudanças do workspace, da mais recente para a mais antiga
func (r *changelogRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.ChangelogEntry, error) {
	query, args, err := squirrel.
		Select("cl.id, cl.campaign_id, c.name, cl.change_type, cl.title, cl.description, cl.change_date").
		From(changelogTable).
		Join("campaigns c ON c.id = cl.campaign_id").
		Where(squirrel.Eq{"c.workspace_id": workspaceID}).
		OrderBy("cl.change_date DESC", "cl.id DESC").
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

	entries := make([]*domain.ChangelogEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear changelog: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *changelogRepository) scanEntry(rows *sql.Rows) (*domain.ChangelogEntry, error) {
	entry := &domain.ChangelogEntry{}
	var (
		changeType  string
		description sql.NullString
	)

	err := rows.Scan(
		&entry.ID,
		&entry.CampaignID,
		&entry.CampaignName,
		&changeType,
		&entry.Title,
		&description,
		&entry.ChangeDate,
	)
	if err != nil {
		return nil, err
	}

	entry.ChangeType = domain.ChangeType(changeType)
	entry.Description = description.String
	entry.ChangeDate = domain.TruncateDayUTC(entry.ChangeDate)

	return entry, nil
}
