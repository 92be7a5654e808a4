package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignTargetRepository_GetByCampaignIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCampaignTargetRepository(db)

	mock.ExpectQuery(`SELECT ct.campaign_id, ct.target_leads_per_day, ct.case_payout_amount, ct.target_roas FROM campaign_targets ct WHERE ct.campaign_id IN \(\$1,\$2\)`).
		WithArgs("camp-1", "camp-2").
		WillReturnRows(sqlmock.NewRows([]string{"campaign_id", "target_leads_per_day", "case_payout_amount", "target_roas"}).
			AddRow("camp-1", 10.0, 3500.0, 2.5).
			AddRow("camp-2", nil, nil, nil))

	targets, err := repo.GetByCampaignIDs(context.Background(), []string{"camp-1", "camp-2"})
	require.NoError(t, err)
	require.Len(t, targets, 2)

	require.NotNil(t, targets["camp-1"].TargetLeadsPerDay)
	assert.Equal(t, 10.0, *targets["camp-1"].TargetLeadsPerDay)
	assert.Equal(t, 2.5, *targets["camp-1"].TargetROAS)
	assert.True(t, targets["camp-1"].HasLeadsTarget())

	assert.Nil(t, targets["camp-2"].TargetLeadsPerDay)
	assert.False(t, targets["camp-2"].HasLeadsTarget())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignTargetRepository_EmptyIDsSkipsQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	targets, err := NewCampaignTargetRepository(db).GetByCampaignIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, targets)
	assert.NoError(t, mock.ExpectationsWereMet())
}
