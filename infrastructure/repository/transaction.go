// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/LiCHihTseng/acs-dashboard/infrastructure/database/postgres"
	"github.com/LiCHihTseng/acs-dashboard/internal/domain"
)

const (
	transactionsTable = "transactions"

	// shoeModelExpr deriva o modelo principal do tênis a partir do SKU:
	// o primeiro token separado por vírgula, sem a chave inicial.
	shoeModelExpr = "REPLACE(SPLIT_PART(sku, ',', 1), '{', '')"

	yearExpr  = "EXTRACT(YEAR FROM transaction_timestamp)::int"
	monthExpr = "EXTRACT(MONTH FROM transaction_timestamp)::int"
	dayExpr   = "EXTRACT(DAY FROM transaction_timestamp)::int"
	timeExpr  = "transaction_timestamp::time"
)

type TransactionRepository interface {
	List(filter *domain.TransactionFilter) (*domain.TransactionPage, error)
	PlatformSalesByPeriod(current, previous domain.Period) ([]*domain.PlatformPeriodSales, error)
	OrderCountsByPeriod(current, previous domain.Period) (int64, int64, error)
	TopShoeModelsByPeriod(period domain.Period, limit uint64) ([]*domain.ShoeModelSales, error)
	TopShoeModels(platform string, limit uint64) ([]*domain.ShoeModelSales, error)
	LastDeal() (*domain.Deal, error)
	MonthlySales() ([]*domain.MonthlySales, error)
	DailySales(year, month int) ([]*domain.DailySales, error)
	Platforms() ([]string, error)
	TopPlatforms(year, month, day *int, limit uint64) ([]*domain.PlatformSales, error)
}

type transactionRepository struct {
	conn *postgres.Connection
}

func NewTransactionRepository(conn *postgres.Connection) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

// sortColumns mapeia as chaves de ordenação validadas para os identificadores
// reais das colunas. Valores fora do mapa caem na ordenação padrão, portanto
// nenhum texto do usuário chega à cláusula ORDER BY.
var sortColumns = map[domain.SortKey]string{
	domain.SortByShoeModel: "shoe_model",
	domain.SortByPlatform:  "platform",
	domain.SortByQuantity:  "total_quantity",
	domain.SortByTimestamp: "transaction_timestamp",
}

// List executa o par de queries de contagem e de dados sobre o mesmo conjunto
// de predicados. A contagem roda primeiro; zero registros é um resultado
// válido, não um erro. Não há transação entre as duas queries: para uma
// leitura analítica essa consistência relaxada é suficiente.
func (r *transactionRepository) List(filter *domain.TransactionFilter) (*domain.TransactionPage, error) {
	conds := buildConditions(filter)

	countQuery, countArgs, err := squirrel.
		Select("COUNT(*) AS total_records").
		From(transactionsTable).
		Where(conds).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de contagem: %w", err)
	}

	var totalRecords int64
	if err := r.conn.QueryRow(countQuery, countArgs...).Scan(&totalRecords); err != nil {
		if err == sql.ErrNoRows {
			totalRecords = 0
		} else {
			return nil, fmt.Errorf("erro ao executar a query de contagem: %w", err)
		}
	}

	queryBuilder := squirrel.
		Select(
			shoeModelExpr+" AS shoe_model",
			"platform",
			"qty AS total_quantity",
			"transaction_timestamp",
		).
		From(transactionsTable).
		Where(conds).
		OrderBy(orderClause(filter.Sort)).
		PlaceholderFormat(squirrel.Dollar)

	if filter.Limit != nil {
		queryBuilder = queryBuilder.Limit(*filter.Limit)
	}

	// OFFSET sem LIMIT é repassado como veio; o efeito fica a cargo do banco
	if filter.Offset != nil {
		queryBuilder = queryBuilder.Offset(*filter.Offset)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	data := make([]*domain.TransactionRow, 0)
	for rows.Next() {
		row := &domain.TransactionRow{}
		if err := rows.Scan(&row.ShoeModel, &row.Platform, &row.TotalQuantity, &row.Timestamp); err != nil {
			return nil, fmt.Errorf("erro ao escanear transação: %w", err)
		}
		data = append(data, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return &domain.TransactionPage{
		Data:         data,
		TotalRecords: totalRecords,
	}, nil
}

// buildConditions monta a conjunção de predicados a partir do filtro, na
// mesma ordem em que a normalização os produziu. O mesmo squirrel.And serve
// às queries de dados e de contagem, o que garante predicados e parâmetros
// idênticos nas duas.
func buildConditions(filter *domain.TransactionFilter) squirrel.And {
	conds := squirrel.And{}

	if filter.Platform != "" {
		conds = append(conds, squirrel.Eq{"platform": filter.Platform})
	}

	switch dates := filter.Dates.(type) {
	case domain.YearRange:
		conds = append(conds, squirrel.Expr(yearExpr+" = ?", dates.Year))
	case domain.MonthRange:
		conds = append(conds,
			squirrel.Expr(yearExpr+" = ?", dates.Year),
			squirrel.Expr(monthExpr+" = ?", dates.Month),
		)
	case domain.SpanRange:
		conds = append(conds, squirrel.Expr(
			"(("+yearExpr+" > ? OR ("+yearExpr+" = ? AND "+monthExpr+" >= ?))"+
				" AND ("+yearExpr+" < ? OR ("+yearExpr+" = ? AND "+monthExpr+" <= ?)))",
			dates.StartYear, dates.StartYear, dates.StartMonth,
			dates.EndYear, dates.EndYear, dates.EndMonth,
		))
	}

	if filter.Days != nil {
		conds = append(conds, squirrel.Expr(dayExpr+" BETWEEN ? AND ?", filter.Days.Start, filter.Days.End))
	}

	if filter.Times != nil {
		conds = append(conds, squirrel.Expr(timeExpr+" BETWEEN ?::time AND ?::time", filter.Times.Start, filter.Times.End))
	}

	return conds
}

func orderClause(sort domain.Sort) string {
	column, ok := sortColumns[sort.Key]
	if !ok {
		return "transaction_timestamp DESC"
	}

	direction := "ASC"
	if sort.Descending {
		direction = "DESC"
	}

	return column + " " + direction
}

// PlatformSalesByPeriod soma as quantidades vendidas por plataforma nos dois
// períodos informados, ordenado pelo período atual em ordem decrescente.
func (r *transactionRepository) PlatformSalesByPeriod(current, previous domain.Period) ([]*domain.PlatformPeriodSales, error) {
	query, args, err := squirrel.
		Select("platform").
		Column(squirrel.Expr(
			"SUM(CASE WHEN "+yearExpr+" = ? AND "+monthExpr+" = ? THEN qty ELSE 0 END) AS current_month_sales",
			current.Year, current.Month,
		)).
		Column(squirrel.Expr(
			"SUM(CASE WHEN "+yearExpr+" = ? AND "+monthExpr+" = ? THEN qty ELSE 0 END) AS previous_month_sales",
			previous.Year, previous.Month,
		)).
		From(transactionsTable).
		GroupBy("platform").
		OrderBy("current_month_sales DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.PlatformPeriodSales, 0)
	for rows.Next() {
		entry := &domain.PlatformPeriodSales{}
		if err := rows.Scan(&entry.Platform, &entry.CurrentSales, &entry.PreviousSales); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por plataforma: %w", err)
		}
		sales = append(sales, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

// OrderCountsByPeriod conta os pedidos dos dois períodos em uma única query
func (r *transactionRepository) OrderCountsByPeriod(current, previous domain.Period) (int64, int64, error) {
	query, args, err := squirrel.
		Select().
		Column(squirrel.Expr(
			"COUNT(*) FILTER (WHERE "+yearExpr+" = ? AND "+monthExpr+" = ?) AS current_month_orders",
			current.Year, current.Month,
		)).
		Column(squirrel.Expr(
			"COUNT(*) FILTER (WHERE "+yearExpr+" = ? AND "+monthExpr+" = ?) AS previous_month_orders",
			previous.Year, previous.Month,
		)).
		From(transactionsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var currentOrders, previousOrders int64
	if err := r.conn.QueryRow(query, args...).Scan(&currentOrders, &previousOrders); err != nil {
		return 0, 0, fmt.Errorf("erro ao escanear contagem de pedidos: %w", err)
	}

	return currentOrders, previousOrders, nil
}

// TopShoeModelsByPeriod agrupa as vendas de um mês pelo modelo derivado do SKU
func (r *transactionRepository) TopShoeModelsByPeriod(period domain.Period, limit uint64) ([]*domain.ShoeModelSales, error) {
	query, args, err := squirrel.
		Select(shoeModelExpr+" AS shoe_model", "SUM(qty) AS total_quantity").
		From(transactionsTable).
		Where(squirrel.Expr(yearExpr+" = ? AND "+monthExpr+" = ?", period.Year, period.Month)).
		GroupBy("shoe_model").
		OrderBy("total_quantity DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryShoeModelSales(query, args)
}

// TopShoeModels agrupa todas as vendas de uma plataforma pelo modelo derivado
func (r *transactionRepository) TopShoeModels(platform string, limit uint64) ([]*domain.ShoeModelSales, error) {
	query, args, err := squirrel.
		Select(shoeModelExpr+" AS shoe_model", "SUM(qty) AS total_quantity").
		From(transactionsTable).
		Where(squirrel.Eq{"platform": platform}).
		GroupBy("shoe_model").
		OrderBy("total_quantity DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryShoeModelSales(query, args)
}

func (r *transactionRepository) queryShoeModelSales(query string, args []interface{}) ([]*domain.ShoeModelSales, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.ShoeModelSales, 0)
	for rows.Next() {
		entry := &domain.ShoeModelSales{}
		if err := rows.Scan(&entry.ShoeModel, &entry.TotalQuantity); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por modelo: %w", err)
		}
		sales = append(sales, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

// LastDeal retorna a transação mais recente, ou nil quando a tabela está vazia
func (r *transactionRepository) LastDeal() (*domain.Deal, error) {
	query, args, err := squirrel.
		Select(
			shoeModelExpr+" AS shoe_model",
			"sku",
			"qty",
			"total_payment",
			"currency",
			"transaction_timestamp",
		).
		From(transactionsTable).
		OrderBy("transaction_timestamp DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	deal := &domain.Deal{}
	err = r.conn.QueryRow(query, args...).Scan(
		&deal.ShoeModel,
		&deal.SKU,
		&deal.Qty,
		&deal.TotalPayment,
		&deal.Currency,
		&deal.Timestamp,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear última transação: %w", err)
	}

	return deal, nil
}

// MonthlySales soma as quantidades por (ano, mês, plataforma). Linhas sem
// timestamp ficam de fora antes do agrupamento.
func (r *transactionRepository) MonthlySales() ([]*domain.MonthlySales, error) {
	query, args, err := squirrel.
		Select(
			yearExpr+" AS year",
			monthExpr+" AS month",
			"platform",
			"SUM(qty) AS total_quantity",
		).
		From(transactionsTable).
		Where("transaction_timestamp IS NOT NULL").
		GroupBy("year", "month", "platform").
		OrderBy("year", "month", "platform").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.MonthlySales, 0)
	for rows.Next() {
		entry := &domain.MonthlySales{}
		if err := rows.Scan(&entry.Year, &entry.Month, &entry.Platform, &entry.TotalQuantity); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas mensais: %w", err)
		}
		sales = append(sales, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

// DailySales soma as quantidades por (dia, plataforma) dentro do mês informado
func (r *transactionRepository) DailySales(year, month int) ([]*domain.DailySales, error) {
	query, args, err := squirrel.
		Select(
			dayExpr+" AS day",
			"platform",
			"SUM(qty) AS daily_quantity",
		).
		From(transactionsTable).
		Where("transaction_timestamp IS NOT NULL").
		Where(squirrel.Expr(yearExpr+" = ? AND "+monthExpr+" = ?", year, month)).
		GroupBy("day", "platform").
		OrderBy("day").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.DailySales, 0)
	for rows.Next() {
		entry := &domain.DailySales{}
		if err := rows.Scan(&entry.Day, &entry.Platform, &entry.DailyQuantity); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas diárias: %w", err)
		}
		sales = append(sales, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

// Platforms lista os valores distintos de plataforma
func (r *transactionRepository) Platforms() ([]string, error) {
	query, args, err := squirrel.
		Select("platform").
		Distinct().
		From(transactionsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	platforms := make([]string, 0)
	for rows.Next() {
		var platform string
		if err := rows.Scan(&platform); err != nil {
			return nil, fmt.Errorf("erro ao escanear plataforma: %w", err)
		}
		platforms = append(platforms, platform)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return platforms, nil
}

// TopPlatforms soma as quantidades por plataforma dentro de uma janela
// opcional de ano, mês e dia. Cada recorte só entra quando informado, sempre
// como parâmetro vinculado.
func (r *transactionRepository) TopPlatforms(year, month, day *int, limit uint64) ([]*domain.PlatformSales, error) {
	conds := squirrel.And{}
	if year != nil {
		conds = append(conds, squirrel.Expr(yearExpr+" = ?", *year))
	}
	if month != nil {
		conds = append(conds, squirrel.Expr(monthExpr+" = ?", *month))
	}
	if day != nil {
		conds = append(conds, squirrel.Expr(dayExpr+" = ?", *day))
	}

	query, args, err := squirrel.
		Select("platform", "SUM(qty) AS total_quantity").
		From(transactionsTable).
		Where(conds).
		GroupBy("platform").
		OrderBy("total_quantity DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.PlatformSales, 0)
	for rows.Next() {
		entry := &domain.PlatformSales{}
		if err := rows.Scan(&entry.Platform, &entry.TotalQuantity); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por plataforma: %w", err)
		}
		sales = append(sales, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}
