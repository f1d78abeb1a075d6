package reporting

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/LiCHihTseng/acs-dashboard/infrastructure/repository/mocks"
	"github.com/LiCHihTseng/acs-dashboard/internal/domain"
)

// Data de referência dos testes: 16 de janeiro, para exercitar o recuo de ano
var referenceNow = time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC)

func newTestService(repo *mocks.MockTransactionRepository) *Service {
	return &Service{
		transactionRepo: repo,
		now:             func() time.Time { return referenceNow },
	}
}

func TestService_BestPlatform(t *testing.T) {
	currentPeriod := domain.Period{Year: 2024, Month: 1}
	previousPeriod := domain.Period{Year: 2023, Month: 12}

	tests := []struct {
		name     string
		setup    func(repo *mocks.MockTransactionRepository)
		validate func(t *testing.T, result *domain.PlatformGrowth, err error)
	}{
		{
			name: "mês anterior vazio resulta em crescimento nil",
			setup: func(repo *mocks.MockTransactionRepository) {
				repo.EXPECT().
					PlatformSalesByPeriod(currentPeriod, previousPeriod).
					Return([]*domain.PlatformPeriodSales{
						{Platform: "A", CurrentSales: 5, PreviousSales: 0},
						{Platform: "B", CurrentSales: 3, PreviousSales: 0},
					}, nil)
			},
			validate: func(t *testing.T, result *domain.PlatformGrowth, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "A", result.Platform)
				assert.Equal(t, int64(5), result.CurrentMonthSales)
				assert.Equal(t, int64(0), result.PreviousMonthSales)
				assert.Nil(t, result.GrowthPercentage)
			},
		},
		{
			name: "crescimento calculado sobre o mês anterior",
			setup: func(repo *mocks.MockTransactionRepository) {
				repo.EXPECT().
					PlatformSalesByPeriod(currentPeriod, previousPeriod).
					Return([]*domain.PlatformPeriodSales{
						{Platform: "Amazon", CurrentSales: 150, PreviousSales: 100},
					}, nil)
			},
			validate: func(t *testing.T, result *domain.PlatformGrowth, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "Amazon", result.Platform)
				if assert.NotNil(t, result.GrowthPercentage) {
					assert.InDelta(t, 50.0, *result.GrowthPercentage, 0.001)
				}
			},
		},
		{
			name: "base vazia retorna nil sem erro",
			setup: func(repo *mocks.MockTransactionRepository) {
				repo.EXPECT().
					PlatformSalesByPeriod(currentPeriod, previousPeriod).
					Return([]*domain.PlatformPeriodSales{}, nil)
			},
			validate: func(t *testing.T, result *domain.PlatformGrowth, err error) {
				assert.NoError(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name: "erro do banco é propagado",
			setup: func(repo *mocks.MockTransactionRepository) {
				repo.EXPECT().
					PlatformSalesByPeriod(currentPeriod, previousPeriod).
					Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, result *domain.PlatformGrowth, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockTransactionRepository(ctrl)
			tc.setup(repo)

			result, err := newTestService(repo).BestPlatform()
			tc.validate(t, result, err)
		})
	}
}

func TestService_BestSeller(t *testing.T) {
	// Em janeiro o mês anterior é dezembro do ano anterior
	previousPeriod := domain.Period{Year: 2023, Month: 12}

	t.Run("mês anterior sem vendas substitui pelo marcador", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockTransactionRepository(ctrl)
		repo.EXPECT().
			TopShoeModelsByPeriod(previousPeriod, uint64(1)).
			Return([]*domain.ShoeModelSales{}, nil)

		result, err := newTestService(repo).BestSeller()
		assert.NoError(t, err)
		assert.Equal(t, &domain.ShoeModelSales{ShoeModel: "No Data", TotalQuantity: 0}, result)
	})

	t.Run("retorna apenas o primeiro colocado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockTransactionRepository(ctrl)
		repo.EXPECT().
			TopShoeModelsByPeriod(previousPeriod, uint64(1)).
			Return([]*domain.ShoeModelSales{
				{ShoeModel: "AB123", TotalQuantity: 42},
			}, nil)

		result, err := newTestService(repo).BestSeller()
		assert.NoError(t, err)
		assert.Equal(t, "AB123", result.ShoeModel)
		assert.Equal(t, int64(42), result.TotalQuantity)
	})
}

func TestService_OrderGrowth(t *testing.T) {
	currentPeriod := domain.Period{Year: 2024, Month: 1}
	previousPeriod := domain.Period{Year: 2023, Month: 12}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTransactionRepository(ctrl)
	repo.EXPECT().
		OrderCountsByPeriod(currentPeriod, previousPeriod).
		Return(int64(120), int64(80), nil)

	result, err := newTestService(repo).OrderGrowth()
	assert.NoError(t, err)
	assert.Equal(t, int64(120), result.CurrentMonthOrders)
	assert.Equal(t, int64(80), result.PreviousMonthOrders)
	if assert.NotNil(t, result.GrowthPercentage) {
		assert.InDelta(t, 50.0, *result.GrowthPercentage, 0.001)
	}
}

func TestService_TopShoeModels_LimitFallback(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		expectedLimit uint64
	}{
		{name: "limite zero cai no padrão", limit: 0, expectedLimit: 5},
		{name: "limite negativo cai no padrão", limit: -3, expectedLimit: 5},
		{name: "limite válido é respeitado", limit: 7, expectedLimit: 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockTransactionRepository(ctrl)
			repo.EXPECT().
				TopShoeModels("Amazon", tc.expectedLimit).
				Return([]*domain.ShoeModelSales{}, nil)

			_, err := newTestService(repo).TopShoeModels("Amazon", tc.limit)
			assert.NoError(t, err)
		})
	}
}

func TestService_MonthlySales_FiltersZeroPeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTransactionRepository(ctrl)
	repo.EXPECT().
		MonthlySales().
		Return([]*domain.MonthlySales{
			{Year: 2024, Month: 1, Platform: "A", TotalQuantity: 10},
			{Year: 0, Month: 0, Platform: "B", TotalQuantity: 3},
			{Year: 2024, Month: 0, Platform: "C", TotalQuantity: 2},
		}, nil)

	result, err := newTestService(repo).MonthlySales()
	assert.NoError(t, err)
	if assert.Len(t, result, 1) {
		assert.Equal(t, "A", result[0].Platform)
	}
}

func TestService_TopPlatforms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	year := 2024
	month := 2

	repo := mocks.NewMockTransactionRepository(ctrl)
	repo.EXPECT().
		TopPlatforms(&year, &month, gomock.Nil(), uint64(5)).
		Return([]*domain.PlatformSales{
			{Platform: "Amazon", TotalQuantity: 30},
		}, nil)

	result, err := newTestService(repo).TopPlatforms(&year, &month, nil)
	assert.NoError(t, err)
	assert.Len(t, result, 1)
}
