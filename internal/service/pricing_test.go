package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineDateHour(t *testing.T) {
	got, err := CombineDateHour("2024-06-01", 9)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), got)

	_, err = CombineDateHour("2024-06-01", 24)
	assert.Error(t, err)

	_, err = CombineDateHour("01/06/2024", 9)
	assert.Error(t, err)
}

func TestBilledHours(t *testing.T) {
	day := func(h int) time.Time {
		return time.Date(2024, 6, 1, h, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		want    int
		wantErr bool
	}{
		{name: "full day shift", start: day(9), end: day(17), want: 8},
		{name: "sub-hour rounds up to minimum", start: day(9), end: day(9).Add(30 * time.Minute), want: 1},
		{name: "partial hour rounds up", start: day(9), end: day(10).Add(time.Minute), want: 2},
		{name: "exact hour not rounded", start: day(9), end: day(10), want: 1},
		{name: "overnight", start: day(22), end: day(22).Add(9 * time.Hour), want: 9},
		{name: "end equals start", start: day(9), end: day(9), wantErr: true},
		{name: "end before start", start: time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC), end: day(9), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BilledHours(tt.start, tt.end)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrEndBeforeStart)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuote(t *testing.T) {
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	hours, total, err := Quote(start, start.Add(8*time.Hour), 100)
	require.NoError(t, err)
	assert.Equal(t, 8, hours)
	assert.Equal(t, 800, total)

	hours, total, err = Quote(start, start.Add(30*time.Minute), 150)
	require.NoError(t, err)
	assert.Equal(t, 1, hours)
	assert.Equal(t, 150, total)

	hours, total, err = Quote(start, start.Add(3*time.Hour), 0)
	require.NoError(t, err)
	assert.Equal(t, 3, hours)
	assert.Equal(t, 0, total)

	_, _, err = Quote(start, start.Add(-24*time.Hour), 100)
	assert.ErrorIs(t, err, ErrEndBeforeStart)
}

func TestQuoteDeterministic(t *testing.T) {
	start, err := CombineDateHour("2024-06-01", 9)
	require.NoError(t, err)
	end, err := CombineDateHour("2024-06-03", 14)
	require.NoError(t, err)

	h1, p1, err := Quote(start, end, 120)
	require.NoError(t, err)
	h2, p2, err := Quote(start, end, 120)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, 53, h1)
	assert.Equal(t, 53*120, p1)
}
