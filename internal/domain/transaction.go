package domain

import (
	"time"

	"github.com/LiCHihTseng/acs-dashboard/pkg/utils"
)

// Deal é a transação mais recente registrada
type Deal struct {
	ShoeModel    string    `json:"shoe_model"`
	SKU          string    `json:"sku"`
	Qty          int       `json:"qty"`
	TotalPayment float64   `json:"totalPayment"`
	Currency     string    `json:"currency"`
	Timestamp    time.Time `json:"transactionTimestamp"`
}

// TransactionRow é uma linha da listagem paginada de transações
type TransactionRow struct {
	ShoeModel     string    `json:"shoe_model"`
	Platform      string    `json:"platform"`
	TotalQuantity int       `json:"total_quantity"`
	Timestamp     time.Time `json:"transactionTimestamp"`
}

// TransactionPage é uma página de transações acompanhada do total de registros
// que casam com o filtro, independente de limit/offset.
type TransactionPage struct {
	Data         []*TransactionRow `json:"data"`
	TotalRecords int64             `json:"totalRecords"`
}

// PlatformPeriodSales é o agregado bruto de vendas de uma plataforma nos
// períodos atual e anterior.
type PlatformPeriodSales struct {
	Platform      string
	CurrentSales  int64
	PreviousSales int64
}

// PlatformGrowth compara as vendas da plataforma entre o mês atual e o anterior
type PlatformGrowth struct {
	Platform           string   `json:"platform"`
	CurrentMonthSales  int64    `json:"current_month_sales"`
	PreviousMonthSales int64    `json:"previous_month_sales"`
	GrowthPercentage   *float64 `json:"growth_percentage"`
}

// OrderGrowth compara a quantidade de pedidos entre o mês atual e o anterior
type OrderGrowth struct {
	CurrentMonthOrders  int64    `json:"current_month_orders"`
	PreviousMonthOrders int64    `json:"previous_month_orders"`
	GrowthPercentage    *float64 `json:"growth_percentage"`
}

// ShoeModelSales é o total vendido de um modelo de tênis
type ShoeModelSales struct {
	ShoeModel     string `json:"shoe_model"`
	TotalQuantity int64  `json:"total_quantity"`
}

// PlatformSales é o total vendido por plataforma
type PlatformSales struct {
	Platform      string `json:"platform"`
	TotalQuantity int64  `json:"total_quantity"`
}

// MonthlySales é o total vendido por (ano, mês, plataforma)
type MonthlySales struct {
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	Platform      string `json:"platform"`
	TotalQuantity int64  `json:"total_quantity"`
}

// DailySales é o total vendido por (dia, plataforma) dentro de um mês
type DailySales struct {
	Day           int    `json:"day"`
	Platform      string `json:"platform"`
	DailyQuantity int64  `json:"daily_quantity"`
}

// Period identifica um mês calendário
type Period struct {
	Year  int
	Month int
}

// CurrentPeriod retorna o mês calendário de referência
func CurrentPeriod(now time.Time) Period {
	return Period{Year: now.Year(), Month: int(now.Month())}
}

// PreviousPeriod retorna o mês anterior, recuando o ano quando o mês de
// referência é janeiro.
func PreviousPeriod(p Period) Period {
	if p.Month == 1 {
		return Period{Year: p.Year - 1, Month: 12}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

// GrowthPercentage calcula a variação percentual entre dois períodos,
// arredondada para duas casas decimais. Retorna nil quando o período anterior
// é zero, para não dividir por zero.
func GrowthPercentage(current, previous int64) *float64 {
	if previous == 0 {
		return nil
	}

	growth := utils.RoundWithTwoDecimalPlace(float64(current-previous) / float64(previous) * 100)
	return &growth
}
