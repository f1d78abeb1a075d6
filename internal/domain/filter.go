package domain

import (
	"net/url"

	"github.com/LiCHihTseng/acs-dashboard/pkg/utils"
)

// SortKey é uma coluna de ordenação aceita pela listagem de transações
type SortKey string

const (
	SortByShoeModel SortKey = "shoe_model"
	SortByPlatform  SortKey = "platform"
	SortByQuantity  SortKey = "total_quantity"
	SortByTimestamp SortKey = "transactionTimestamp"
)

// validSortKeys é a allow-list de colunas de ordenação. Qualquer valor fora
// dela é descartado e a ordenação padrão se aplica.
var validSortKeys = map[SortKey]bool{
	SortByShoeModel: true,
	SortByPlatform:  true,
	SortByQuantity:  true,
	SortByTimestamp: true,
}

// Sort é a ordenação da listagem, sempre validada contra a allow-list
type Sort struct {
	Key        SortKey
	Descending bool
}

// DefaultSort é a ordenação padrão: transações mais recentes primeiro
func DefaultSort() Sort {
	return Sort{Key: SortByTimestamp, Descending: true}
}

// DateRange é o recorte de calendário da listagem. As três formas são
// mutuamente exclusivas e resolvidas por ParseTransactionFilter.
type DateRange interface {
	dateRange()
}

// YearRange filtra por um único ano
type YearRange struct {
	Year int
}

// MonthRange filtra por um único (ano, mês)
type MonthRange struct {
	Year  int
	Month int
}

// SpanRange filtra pelo intervalo inclusivo (startYear, startMonth) até
// (endYear, endMonth), comparando primeiro o ano e depois o mês.
type SpanRange struct {
	StartYear  int
	StartMonth int
	EndYear    int
	EndMonth   int
}

func (YearRange) dateRange()  {}
func (MonthRange) dateRange() {}
func (SpanRange) dateRange()  {}

// DayRange é o recorte inclusivo sobre o dia do mês
type DayRange struct {
	Start int
	End   int
}

// TimeRange é o recorte inclusivo sobre a hora do dia. Os valores são
// repassados como parâmetros vinculados, nunca interpolados.
type TimeRange struct {
	Start string
	End   string
}

// TransactionFilter é a especificação de filtro da listagem de transações.
// É imutável depois de construída e nunca carrega texto do usuário para
// dentro da query: apenas a coluna de ordenação, já validada, vira
// identificador literal.
type TransactionFilter struct {
	Platform string
	Dates    DateRange
	Days     *DayRange
	Times    *TimeRange
	Sort     Sort
	Limit    *uint64
	Offset   *uint64
}

// ParseTransactionFilter converte os parâmetros crus da query string em um
// TransactionFilter tipado. Campos numéricos malformados ou ausentes são
// tratados como ausentes, nunca como zero. Transformação pura, sem efeitos.
func ParseTransactionFilter(values url.Values) *TransactionFilter {
	filter := &TransactionFilter{
		Platform: values.Get("platform"),
		Dates:    parseDateRange(values),
		Days:     parseDayRange(values),
		Times:    parseTimeRange(values),
		Sort:     parseSort(values),
		Limit:    parsePageBound(values.Get("limit")),
		Offset:   parsePageBound(values.Get("offset")),
	}

	return filter
}

// parseDateRange resolve a forma do recorte de calendário, em ordem de
// prioridade: só ano, intervalo completo, (ano, mês), nenhum.
func parseDateRange(values url.Values) DateRange {
	startYear := utils.ParseQueryInt(values.Get("startYear"))
	startMonth := utils.ParseQueryInt(values.Get("startMonth"))
	endYear := utils.ParseQueryInt(values.Get("endYear"))
	endMonth := utils.ParseQueryInt(values.Get("endMonth"))

	switch {
	case startYear != nil && startMonth == nil:
		return YearRange{Year: *startYear}
	case startYear != nil && startMonth != nil && endYear != nil && endMonth != nil:
		return SpanRange{
			StartYear:  *startYear,
			StartMonth: *startMonth,
			EndYear:    *endYear,
			EndMonth:   *endMonth,
		}
	case startYear != nil && startMonth != nil:
		return MonthRange{Year: *startYear, Month: *startMonth}
	default:
		return nil
	}
}

// parseDayRange só produz o recorte quando ambos os limites estão presentes
func parseDayRange(values url.Values) *DayRange {
	start := utils.ParseQueryInt(values.Get("dayStart"))
	end := utils.ParseQueryInt(values.Get("dayEnd"))

	if start == nil || end == nil {
		return nil
	}

	return &DayRange{Start: *start, End: *end}
}

// parseTimeRange só produz o recorte quando ambos os limites estão presentes
func parseTimeRange(values url.Values) *TimeRange {
	start := values.Get("startTime")
	end := values.Get("endTime")

	if start == "" || end == "" {
		return nil
	}

	return &TimeRange{Start: start, End: end}
}

func parseSort(values url.Values) Sort {
	key := SortKey(values.Get("sortBy"))
	if !validSortKeys[key] {
		return DefaultSort()
	}

	// Apenas "desc" exato ordena de forma decrescente
	return Sort{
		Key:        key,
		Descending: values.Get("sortDirection") == "desc",
	}
}

// parsePageBound aceita apenas inteiros não negativos; o resto é ausência
func parsePageBound(raw string) *uint64 {
	value := utils.ParseQueryInt(raw)
	if value == nil || *value < 0 {
		return nil
	}

	bound := uint64(*value)
	return &bound
}
