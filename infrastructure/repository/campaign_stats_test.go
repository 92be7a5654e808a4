package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignStatsRepository_GetByDateRange(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCampaignStatsRepository(db)

	start := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT csh.campaign_id, csh.date, csh.leads, csh.cases, csh.retainers, csh.revenue, csh.ad_spend FROM campaign_stats_history csh WHERE csh.campaign_id IN \(\$1\) AND csh.date >= \$2 AND csh.date <= \$3 ORDER BY csh.date ASC, csh.campaign_id ASC`).
		WithArgs("camp-1", "2024-03-03", "2024-03-09").
		WillReturnRows(sqlmock.NewRows([]string{"campaign_id", "date", "leads", "cases", "retainers", "revenue", "ad_spend"}).
			AddRow("camp-1", time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), int64(7), int64(1), int64(0), 3500.0, 420.5).
			AddRow("camp-1", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), int64(5), int64(0), int64(1), 0.0, 380.0))

	stats, err := repo.GetByDateRange(context.Background(), []string{"camp-1"}, start, end)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, 7, stats[0].Leads)
	assert.Equal(t, 420.5, stats[0].AdSpend)
	assert.Equal(t, "2024-03-04", stats[1].Date.Format(time.DateOnly))
	assert.Equal(t, 1, stats[1].Retainers)
	assert.NoError(t, mock.ExpectationsWereMet())
}
