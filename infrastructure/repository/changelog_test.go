package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tortshark/campaign-analyst/internal/domain"
)

func TestChangelogRepository_ListByWorkspace(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewChangelogRepository(db)

	est := time.FixedZone("EST", -5*3600)

	mock.ExpectQuery(`SELECT cl.id, cl.campaign_id, c.name, cl.change_type, cl.title, cl.description, cl.change_date FROM campaign_changelog cl JOIN campaigns c ON c.id = cl.campaign_id WHERE c.workspace_id = \$1 ORDER BY cl.change_date DESC, cl.id DESC`).
		WithArgs("ws-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "campaign_id", "name", "change_type", "title", "description", "change_date"}).
			AddRow("chg-2", "camp-1", "Camp Lejeune", "spend_increase", "Budget +20%", nil, time.Date(2024, 3, 8, 21, 30, 0, 0, est)).
			AddRow("chg-1", "camp-1", "Camp Lejeune", "ad_creative", "New video", "Swapped hero video", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))

	entries, err := repo.ListByWorkspace(context.Background(), "ws-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, domain.ChangeTypeSpendIncrease, entries[0].ChangeType)
	assert.Equal(t, "", entries[0].Description)
	// 21:30 EST é 02:30 UTC do dia seguinte
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), entries[0].ChangeDate)

	assert.Equal(t, "Camp Lejeune", entries[1].CampaignName)
	assert.Equal(t, "Swapped hero video", entries[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}
