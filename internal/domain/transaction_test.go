package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPreviousPeriod(t *testing.T) {
	tests := []struct {
		name     string
		period   Period
		expected Period
	}{
		{
			name:     "mês comum recua um mês no mesmo ano",
			period:   Period{Year: 2024, Month: 7},
			expected: Period{Year: 2024, Month: 6},
		},
		{
			name:     "janeiro recua para dezembro do ano anterior",
			period:   Period{Year: 2024, Month: 1},
			expected: Period{Year: 2023, Month: 12},
		},
		{
			name:     "fevereiro recua para janeiro do mesmo ano",
			period:   Period{Year: 2024, Month: 2},
			expected: Period{Year: 2024, Month: 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PreviousPeriod(tc.period))
		})
	}
}

func TestCurrentPeriod(t *testing.T) {
	now := time.Date(2024, 1, 16, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, Period{Year: 2024, Month: 1}, CurrentPeriod(now))
}

func TestGrowthPercentage(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		expected *float64
	}{
		{
			name:     "período anterior zerado retorna nil, nunca divide por zero",
			current:  5,
			previous: 0,
			expected: nil,
		},
		{
			name:     "crescimento arredondado para duas casas",
			current:  5,
			previous: 3,
			expected: float64Ptr(66.67),
		},
		{
			name:     "queda resulta em percentual negativo",
			current:  3,
			previous: 6,
			expected: float64Ptr(-50),
		},
		{
			name:     "sem variação resulta em zero",
			current:  4,
			previous: 4,
			expected: float64Ptr(0),
		},
		{
			name:     "atual zerado com anterior positivo",
			current:  0,
			previous: 8,
			expected: float64Ptr(-100),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := GrowthPercentage(tc.current, tc.previous)
			if tc.expected == nil {
				assert.Nil(t, result)
				return
			}
			if assert.NotNil(t, result) {
				assert.InDelta(t, *tc.expected, *result, 0.001)
			}
		})
	}
}

func float64Ptr(f float64) *float64 {
	return &f
}
