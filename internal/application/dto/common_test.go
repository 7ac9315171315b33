package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estoque-api/internal/application/dto"
	"github.com/jhoicas/Estoque-api/internal/domain"
)

func inPeriod(at, start, end time.Time) bool {
	return !at.Before(start) && at.Before(end)
}

func TestParsePeriod_EndDayIsWhole(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	start, end, err := dto.ParsePeriod("2024-03-01", "2024-03-10", now)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), end)
	assert.True(t, inPeriod(time.Date(2024, 3, 10, 23, 59, 59, 500_000_000, time.UTC), start, end))
	assert.True(t, inPeriod(start, start, end))
	assert.False(t, inPeriod(end, start, end))
	assert.Equal(t, dto.PeriodDTO{StartDate: "2024-03-01", EndDate: "2024-03-10"}, dto.NewPeriodDTO(start, end))
}

func TestParsePeriod_Defaults(t *testing.T) {
	now := time.Date(2024, 3, 20, 23, 59, 59, 900_000_000, time.UTC)

	start, end, err := dto.ParsePeriod("", " ", now)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.True(t, inPeriod(now, start, end))
	assert.Equal(t, dto.PeriodDTO{StartDate: "2024-03-01", EndDate: "2024-03-20"}, dto.NewPeriodDTO(start, end))
}

func TestParsePeriod_SingleDay(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	start, end, err := dto.ParsePeriod("2024-03-10", "2024-03-10", now)

	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}

func TestParsePeriod_Invalid(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	cases := []struct{ name, start, end string }{
		{"start inválido", "01/03/2024", "2024-03-10"},
		{"end inválido", "2024-03-01", "amanhã"},
		{"start depois de end", "2024-03-11", "2024-03-10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := dto.ParsePeriod(tc.start, tc.end, now)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
