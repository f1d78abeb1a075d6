package domain

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTransactionFilter_DateRangeShapes(t *testing.T) {
	tests := []struct {
		name     string
		params   url.Values
		expected DateRange
	}{
		{
			name:     "apenas startYear resolve para ano único",
			params:   url.Values{"startYear": {"2024"}},
			expected: YearRange{Year: 2024},
		},
		{
			name: "os quatro campos resolvem para intervalo completo",
			params: url.Values{
				"startYear":  {"2024"},
				"startMonth": {"3"},
				"endYear":    {"2024"},
				"endMonth":   {"5"},
			},
			expected: SpanRange{StartYear: 2024, StartMonth: 3, EndYear: 2024, EndMonth: 5},
		},
		{
			name: "startYear e startMonth sem campos finais resolvem para mês único",
			params: url.Values{
				"startYear":  {"2024"},
				"startMonth": {"3"},
			},
			expected: MonthRange{Year: 2024, Month: 3},
		},
		{
			name: "intervalo incompleto cai para mês único",
			params: url.Values{
				"startYear":  {"2024"},
				"startMonth": {"3"},
				"endYear":    {"2025"},
			},
			expected: MonthRange{Year: 2024, Month: 3},
		},
		{
			name:     "nenhum campo resolve para ausência de filtro",
			params:   url.Values{},
			expected: nil,
		},
		{
			name:     "startYear não numérico é tratado como ausente",
			params:   url.Values{"startYear": {"abc"}},
			expected: nil,
		},
		{
			name: "startMonth não numérico degrada para ano único",
			params: url.Values{
				"startYear":  {"2024"},
				"startMonth": {"x"},
			},
			expected: YearRange{Year: 2024},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			filter := ParseTransactionFilter(tc.params)
			assert.Equal(t, tc.expected, filter.Dates)
		})
	}
}

func TestParseTransactionFilter_Sort(t *testing.T) {
	tests := []struct {
		name     string
		params   url.Values
		expected Sort
	}{
		{
			name:     "sem sortBy aplica a ordenação padrão",
			params:   url.Values{},
			expected: Sort{Key: SortByTimestamp, Descending: true},
		},
		{
			name:     "coluna fora da allow-list cai na ordenação padrão",
			params:   url.Values{"sortBy": {"qty; DROP TABLE transactions"}},
			expected: Sort{Key: SortByTimestamp, Descending: true},
		},
		{
			name:     "coluna válida com desc exato ordena decrescente",
			params:   url.Values{"sortBy": {"platform"}, "sortDirection": {"desc"}},
			expected: Sort{Key: SortByPlatform, Descending: true},
		},
		{
			name:     "DESC maiúsculo não conta como decrescente",
			params:   url.Values{"sortBy": {"platform"}, "sortDirection": {"DESC"}},
			expected: Sort{Key: SortByPlatform, Descending: false},
		},
		{
			name:     "qualquer outra direção ordena crescente",
			params:   url.Values{"sortBy": {"total_quantity"}, "sortDirection": {"ascending"}},
			expected: Sort{Key: SortByQuantity, Descending: false},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			filter := ParseTransactionFilter(tc.params)
			assert.Equal(t, tc.expected, filter.Sort)
		})
	}
}

func TestParseTransactionFilter_PageBounds(t *testing.T) {
	filter := ParseTransactionFilter(url.Values{"limit": {"10"}, "offset": {"20"}})
	if assert.NotNil(t, filter.Limit) {
		assert.Equal(t, uint64(10), *filter.Limit)
	}
	if assert.NotNil(t, filter.Offset) {
		assert.Equal(t, uint64(20), *filter.Offset)
	}

	// Valores ausentes, não numéricos ou negativos viram ausência, nunca zero
	filter = ParseTransactionFilter(url.Values{"limit": {"abc"}, "offset": {"-5"}})
	assert.Nil(t, filter.Limit)
	assert.Nil(t, filter.Offset)

	// offset sem limit é aceito como veio
	filter = ParseTransactionFilter(url.Values{"offset": {"20"}})
	assert.Nil(t, filter.Limit)
	if assert.NotNil(t, filter.Offset) {
		assert.Equal(t, uint64(20), *filter.Offset)
	}
}

func TestParseTransactionFilter_DayAndTimeRanges(t *testing.T) {
	// Os dois limites são necessários para o recorte valer
	filter := ParseTransactionFilter(url.Values{"dayStart": {"1"}})
	assert.Nil(t, filter.Days)

	filter = ParseTransactionFilter(url.Values{"dayStart": {"1"}, "dayEnd": {"15"}})
	assert.Equal(t, &DayRange{Start: 1, End: 15}, filter.Days)

	filter = ParseTransactionFilter(url.Values{"startTime": {"08:00:00"}})
	assert.Nil(t, filter.Times)

	filter = ParseTransactionFilter(url.Values{"startTime": {"08:00:00"}, "endTime": {"12:00:00"}})
	assert.Equal(t, &TimeRange{Start: "08:00:00", End: "12:00:00"}, filter.Times)
}
