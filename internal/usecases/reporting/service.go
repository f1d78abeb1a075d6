// Package reporting calcula as métricas derivadas do dashboard: crescimento
// mês a mês, rankings top-N e os agrupamentos por período.
package reporting

import (
	"time"

	"github.com/pkg/errors"

	"github.com/LiCHihTseng/acs-dashboard/infrastructure/repository"
	"github.com/LiCHihTseng/acs-dashboard/internal/domain"
)

const (
	// defaultTopN é o tamanho do ranking quando o cliente não informa um
	// limite válido
	defaultTopN = 5

	// topPlatformsLimit é o tamanho fixo do ranking de plataformas
	topPlatformsLimit = 5
)

// noDataShoeModel é o marcador retornado quando o mês anterior não tem vendas
const noDataShoeModel = "No Data"

type ReportingService interface {
	BestPlatform() (*domain.PlatformGrowth, error)
	BestSeller() (*domain.ShoeModelSales, error)
	OrderGrowth() (*domain.OrderGrowth, error)
	LastDeal() (*domain.Deal, error)
	MonthlySales() ([]*domain.MonthlySales, error)
	DailySales(year, month int) ([]*domain.DailySales, error)
	Platforms() ([]string, error)
	TopShoeModels(platform string, limit int) ([]*domain.ShoeModelSales, error)
	TopPlatforms(year, month, day *int) ([]*domain.PlatformSales, error)
	ListTransactions(filter *domain.TransactionFilter) (*domain.TransactionPage, error)
}

type Service struct {
	transactionRepo repository.TransactionRepository
	now             func() time.Time
}

func NewService(transactionRepo repository.TransactionRepository) ReportingService {
	return &Service{
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// BestPlatform retorna a plataforma com mais vendas no mês atual, com o
// crescimento percentual sobre o mês anterior. Crescimento é nil quando o mês
// anterior não teve vendas.
func (s *Service) BestPlatform() (*domain.PlatformGrowth, error) {
	current := domain.CurrentPeriod(s.now())
	previous := domain.PreviousPeriod(current)

	sales, err := s.transactionRepo.PlatformSalesByPeriod(current, previous)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas por plataforma")
	}

	if len(sales) == 0 {
		return nil, nil
	}

	top := sales[0]
	return &domain.PlatformGrowth{
		Platform:           top.Platform,
		CurrentMonthSales:  top.CurrentSales,
		PreviousMonthSales: top.PreviousSales,
		GrowthPercentage:   domain.GrowthPercentage(top.CurrentSales, top.PreviousSales),
	}, nil
}

// BestSeller retorna o modelo mais vendido no mês anterior. Quando não há
// vendas no período, devolve o marcador "No Data" em vez de um conjunto vazio.
func (s *Service) BestSeller() (*domain.ShoeModelSales, error) {
	previous := domain.PreviousPeriod(domain.CurrentPeriod(s.now()))

	sales, err := s.transactionRepo.TopShoeModelsByPeriod(previous, 1)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar modelo mais vendido")
	}

	if len(sales) == 0 {
		return &domain.ShoeModelSales{
			ShoeModel:     noDataShoeModel,
			TotalQuantity: 0,
		}, nil
	}

	return sales[0], nil
}

// OrderGrowth compara a quantidade de pedidos do mês atual com a do anterior
func (s *Service) OrderGrowth() (*domain.OrderGrowth, error) {
	current := domain.CurrentPeriod(s.now())
	previous := domain.PreviousPeriod(current)

	currentOrders, previousOrders, err := s.transactionRepo.OrderCountsByPeriod(current, previous)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar contagem de pedidos")
	}

	return &domain.OrderGrowth{
		CurrentMonthOrders:  currentOrders,
		PreviousMonthOrders: previousOrders,
		GrowthPercentage:    domain.GrowthPercentage(currentOrders, previousOrders),
	}, nil
}

func (s *Service) LastDeal() (*domain.Deal, error) {
	deal, err := s.transactionRepo.LastDeal()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar última transação")
	}
	return deal, nil
}

// MonthlySales retorna o agregado mensal por plataforma. Grupos com ano ou
// mês zerados, resquício de timestamps nulos, ficam de fora como segunda
// barreira além do filtro da query.
func (s *Service) MonthlySales() ([]*domain.MonthlySales, error) {
	sales, err := s.transactionRepo.MonthlySales()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas mensais")
	}

	filtered := make([]*domain.MonthlySales, 0, len(sales))
	for _, entry := range sales {
		if entry.Year == 0 || entry.Month == 0 {
			continue
		}
		filtered = append(filtered, entry)
	}

	return filtered, nil
}

func (s *Service) DailySales(year, month int) ([]*domain.DailySales, error) {
	sales, err := s.transactionRepo.DailySales(year, month)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas diárias")
	}
	return sales, nil
}

func (s *Service) Platforms() ([]string, error) {
	platforms, err := s.transactionRepo.Platforms()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar plataformas")
	}
	return platforms, nil
}

// TopShoeModels retorna os N modelos mais vendidos de uma plataforma.
// Limites não positivos caem no padrão de 5.
func (s *Service) TopShoeModels(platform string, limit int) ([]*domain.ShoeModelSales, error) {
	if limit <= 0 {
		limit = defaultTopN
	}

	sales, err := s.transactionRepo.TopShoeModels(platform, uint64(limit))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar ranking de modelos")
	}
	return sales, nil
}

// TopPlatforms retorna as cinco plataformas com mais vendas na janela opcional
// de ano, mês e dia.
func (s *Service) TopPlatforms(year, month, day *int) ([]*domain.PlatformSales, error) {
	sales, err := s.transactionRepo.TopPlatforms(year, month, day, topPlatformsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar ranking de plataformas")
	}
	return sales, nil
}

func (s *Service) ListTransactions(filter *domain.TransactionFilter) (*domain.TransactionPage, error) {
	page, err := s.transactionRepo.List(filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar transações")
	}
	return page, nil
}
