package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/LiCHihTseng/acs-dashboard/internal/usecases/reporting"
	"github.com/LiCHihTseng/acs-dashboard/pkg/apiErrors"
	"github.com/LiCHihTseng/acs-dashboard/pkg/log"
	"github.com/LiCHihTseng/acs-dashboard/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetBestPlatform retorna a plataforma com mais vendas no mês, com o
// crescimento sobre o mês anterior
func GetBestPlatform(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		growth, err := service.BestPlatform()
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao buscar melhor plataforma")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar melhor plataforma", err.Error())
			return
		}

		writeJSON(w, logger, growth)
	})
}

// GetBestSeller retorna o modelo mais vendido no mês anterior
func GetBestSeller(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		seller, err := service.BestSeller()
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao buscar modelo mais vendido")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar modelo mais vendido", err.Error())
			return
		}

		writeJSON(w, logger, seller)
	})
}

// GetOrderGrowth retorna o crescimento da quantidade de pedidos entre o mês
// atual e o anterior
func GetOrderGrowth(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		growth, err := service.OrderGrowth()
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao buscar crescimento de pedidos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar crescimento de pedidos", err.Error())
			return
		}

		writeJSON(w, logger, growth)
	})
}

// GetLastDeal retorna a transação mais recente
func GetLastDeal(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		deal, err := service.LastDeal()
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao buscar última transação")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar última transação", err.Error())
			return
		}

		writeJSON(w, logger, deal)
	})
}

// GetMonthlySales retorna o agregado mensal de vendas por plataforma
func GetMonthlySales(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sales, err := service.MonthlySales()
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao buscar vendas mensais")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas mensais", err.Error())
			return
		}

		writeJSON(w, logger, sales)
	})
}

// GetPlatforms retorna as plataformas distintas presentes na base
func GetPlatforms(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		platforms, err := service.Platforms()
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao buscar plataformas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar plataformas", err.Error())
			return
		}

		writeJSON(w, logger, platforms)
	})
}

// GetDailySales retorna o agregado diário de um mês. Ano e mês são
// obrigatórios e a requisição é rejeitada antes de qualquer acesso ao banco.
func GetDailySales(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year := utils.ParseQueryInt(r.URL.Query().Get("year"))
		month := utils.ParseQueryInt(r.URL.Query().Get("month"))

		if year == nil || month == nil {
			logger.WithFields(log.Fields{
				"year":  r.URL.Query().Get("year"),
				"month": r.URL.Query().Get("month"),
			}).Warn("dashboard: parâmetros obrigatórios ausentes para vendas diárias")

			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar ano e mês nos parâmetros", nil)
			return
		}

		sales, err := service.DailySales(*year, *month)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"year":  *year,
				"month": *month,
			}).Error("dashboard: erro ao buscar vendas diárias")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas diárias", err.Error())
			return
		}

		writeJSON(w, logger, sales)
	})
}

// GetTopPlatforms retorna as cinco plataformas com mais vendas na janela
// opcional de ano, mês e dia
func GetTopPlatforms(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year := utils.ParseQueryInt(r.URL.Query().Get("year"))
		month := utils.ParseQueryInt(r.URL.Query().Get("month"))
		day := utils.ParseQueryInt(r.URL.Query().Get("day"))

		sales, err := service.TopPlatforms(year, month, day)
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao buscar ranking de plataformas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking de plataformas", err.Error())
			return
		}

		writeJSON(w, logger, sales)
	})
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("erro ao codificar resposta")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
