package utils

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateOr(t *testing.T) {
	fallback := time.Date(2024, 3, 11, 9, 30, 0, 0, time.UTC)

	date, err := ParseDateOr("2024-03-10", fallback)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), date)
	assert.Equal(t, "2024-03-10", FormatDate(date))

	empty, err := ParseDateOr("", fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, empty)

	_, err = ParseDateOr("10/03/2024", fallback)
	assert.ErrorContains(t, err, "10/03/2024")
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 10.13, RoundWithTwoDecimalPlace(10.126))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, -3.33, RoundWithTwoDecimalPlace(-3.3333))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(math.NaN()))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(math.Inf(1)))
}

func TestGenerateReportID(t *testing.T) {
	first, err := GenerateReportID()
	require.NoError(t, err)
	second, err := GenerateReportID()
	require.NoError(t, err)

	assert.Len(t, first, reportIDLength)
	assert.NotEqual(t, first, second)
	assert.Regexp(t, "^[A-Za-z0-9]+$", first)
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	require.NoError(t, WriteJSON(rec, http.StatusAccepted, map[string]string{"type": "briefing"}))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"type":"briefing"}`, rec.Body.String())
}
