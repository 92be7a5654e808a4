package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNewAnalysisWindow(t *testing.T) {
	tests := []struct {
		name       string
		clientDate time.Time
		period     AnalysisPeriod
		start, end string
	}{
		{
			name:       "trailing7 termina ontem",
			clientDate: date("2024-03-10"),
			period:     AnalysisPeriodTrailing7,
			start:      "2024-03-03",
			end:        "2024-03-09",
		},
		{
			name:       "yesterday é um único dia",
			clientDate: date("2024-03-10"),
			period:     AnalysisPeriodYesterday,
			start:      "2024-03-09",
			end:        "2024-03-09",
		},
		{
			name:       "virada de ano",
			clientDate: date("2024-01-01"),
			period:     AnalysisPeriodTrailing7,
			start:      "2023-12-25",
			end:        "2023-12-31",
		},
		{
			name:       "dia do calendário do cliente, não de UTC",
			clientDate: time.Date(2024, 3, 10, 23, 30, 0, 0, time.FixedZone("PST", -8*3600)),
			period:     AnalysisPeriodYesterday,
			start:      "2024-03-09",
			end:        "2024-03-09",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := NewAnalysisWindow(tt.clientDate, tt.period)

			assert.Equal(t, date(tt.start), window.Start)
			assert.Equal(t, date(tt.end), window.End)
			assert.Equal(t, tt.period, window.Period)
		})
	}
}

func TestAnalysisWindow_NeverIncludesClientDate(t *testing.T) {
	clientDate := date("2023-12-20")

	for i := 0; i < 120; i++ {
		for _, period := range []AnalysisPeriod{AnalysisPeriodYesterday, AnalysisPeriodTrailing7} {
			window := NewAnalysisWindow(clientDate, period)

			require.Equal(t, clientDate.AddDate(0, 0, -1), window.End)
			require.True(t, window.End.Before(clientDate))
			require.Equal(t, clientDate, window.Today())
			require.False(t, window.Start.After(window.End))
		}
		clientDate = clientDate.AddDate(0, 0, 1)
	}
}

func TestAnalysisWindow_Days(t *testing.T) {
	assert.Equal(t, 7, NewAnalysisWindow(date("2024-03-10"), AnalysisPeriodTrailing7).Days())
	assert.Equal(t, 1, NewAnalysisWindow(date("2024-03-10"), AnalysisPeriodYesterday).Days())
	// horário de verão nos EUA começa em 10/03/2024
	assert.Equal(t, 7, NewAnalysisWindow(date("2024-03-14"), AnalysisPeriodTrailing7).Days())
}

func TestParseAnalysisPeriod(t *testing.T) {
	period, err := ParseAnalysisPeriod("")
	require.NoError(t, err)
	assert.Equal(t, AnalysisPeriodTrailing7, period)

	period, err = ParseAnalysisPeriod("yesterday")
	require.NoError(t, err)
	assert.Equal(t, AnalysisPeriodYesterday, period)

	_, err = ParseAnalysisPeriod("last30")
	assert.ErrorIs(t, err, ErrInvalidAnalysisPeriod)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 1, DaysBetween(date("2024-03-09"), date("2024-03-09")))
	assert.Equal(t, 3, DaysBetween(date("2024-02-28"), date("2024-03-01")))
	assert.Equal(t, 0, DaysBetween(date("2024-03-10"), date("2024-03-09")))
}

func TestTruncateDayUTC(t *testing.T) {
	local := time.Date(2024, 3, 9, 22, 0, 0, 0, time.FixedZone("EST", -5*3600))
	assert.Equal(t, date("2024-03-10"), TruncateDayUTC(local))
	assert.Equal(t, date("2024-03-09"), DateOf(local))
}

func TestAnalystRequest_Mode(t *testing.T) {
	assert.Equal(t, AnalysisModeReport, (&AnalystRequest{}).Mode())
	assert.Equal(t, AnalysisModeBriefing, (&AnalystRequest{BriefingMode: true}).Mode())
	assert.Equal(t, AnalysisModeChat, (&AnalystRequest{
		BriefingMode: true,
		Messages:     []ChatMessage{{Role: RoleUser, Content: "oi"}},
	}).Mode())
}

func TestCampaignTarget_HasLeadsTarget(t *testing.T) {
	five, zero := 5.0, 0.0

	assert.False(t, (*CampaignTarget)(nil).HasLeadsTarget())
	assert.False(t, (&CampaignTarget{}).HasLeadsTarget())
	assert.False(t, (&CampaignTarget{TargetLeadsPerDay: &zero}).HasLeadsTarget())
	assert.True(t, (&CampaignTarget{TargetLeadsPerDay: &five}).HasLeadsTarget())
}
