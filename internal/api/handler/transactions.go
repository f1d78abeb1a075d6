package handler

import (
	"net/http"

	"github.com/LiCHihTseng/acs-dashboard/internal/domain"
	"github.com/LiCHihTseng/acs-dashboard/internal/usecases/reporting"
	"github.com/LiCHihTseng/acs-dashboard/pkg/apiErrors"
	"github.com/LiCHihTseng/acs-dashboard/pkg/log"
	"github.com/LiCHihTseng/acs-dashboard/pkg/utils"
)

// ListTransactions retorna uma página de transações filtrada e ordenada,
// acompanhada do total de registros que casam com o filtro
func ListTransactions(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter := domain.ParseTransactionFilter(r.URL.Query())

		logger.WithFields(log.Fields{
			"platform": filter.Platform,
			"sort_by":  string(filter.Sort.Key),
		}).Debug("transactions: listando transações com filtros")

		page, err := service.ListTransactions(filter)
		if err != nil {
			logger.WithError(err).Error("transactions: erro ao listar transações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar transações", err.Error())
			return
		}

		writeJSON(w, logger, page)
	})
}

// GetTopShoeModels retorna os N modelos mais vendidos de uma plataforma.
// A plataforma é obrigatória; o limite cai no padrão quando inválido.
func GetTopShoeModels(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		platform := r.URL.Query().Get("platform")
		if platform == "" {
			logger.Warn("transactions: parâmetro platform ausente para ranking de modelos")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar a plataforma", nil)
			return
		}

		limit := 0
		if parsed := utils.ParseQueryInt(r.URL.Query().Get("limit")); parsed != nil {
			limit = *parsed
		}

		sales, err := service.TopShoeModels(platform, limit)
		if err != nil {
			logger.WithError(err).WithField("platform", platform).Error("transactions: erro ao buscar ranking de modelos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking de modelos", err.Error())
			return
		}

		writeJSON(w, logger, sales)
	})
}
