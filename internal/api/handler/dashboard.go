package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dealer-insights-api/internal/config"
	"github.com/vfg2006/dealer-insights-api/internal/domain"
	"github.com/vfg2006/dealer-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/dealer-insights-api/internal/usecases/scoping"
	"github.com/vfg2006/dealer-insights-api/pkg/apiErrors"
	"github.com/vfg2006/dealer-insights-api/pkg/middleware"
)

// Overview retorna o resumo geral do escopo do chamador
func Overview(service reporting.Reporter, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		start := time.Now()
		data, meta, err := service.Overview(r.Context(), identity)
		if err != nil {
			handleReportingError(w, err, "overview")
			return
		}

		writeEnvelope(w, cfg, data, meta, start)
	}
}

// StoreRanking retorna o ranking de lojas do período pedido
func StoreRanking(service reporting.Reporter, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		params := reporting.StoreRankingParams{
			Period: r.URL.Query().Get("period"),
		}

		limit, err := intQueryParam(r, "limit", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
			return
		}
		params.Limit = limit

		start := time.Now()
		data, meta, err := service.StoreRanking(r.Context(), identity, params)
		if err != nil {
			handleReportingError(w, err, "store_ranking")
			return
		}

		writeEnvelope(w, cfg, data, meta, start)
	}
}

// TopList retorna o top N de regionais ou lojas no período pedido
func TopList(service reporting.Reporter, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		params := reporting.TopListParams{
			Type:   r.URL.Query().Get("type"),
			Period: r.URL.Query().Get("period"),
		}

		limit, err := intQueryParam(r, "limit", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
			return
		}
		params.Limit = limit

		start := time.Now()
		data, meta, err := service.TopList(r.Context(), identity, params)
		if err != nil {
			handleReportingError(w, err, "top_list")
			return
		}

		writeEnvelope(w, cfg, data, meta, start)
	}
}

// SelfRank retorna a posição do próprio chamador no conjunto ordenado
func SelfRank(service reporting.Reporter, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		start := time.Now()
		data, meta, err := service.SelfRank(r.Context(), identity)
		if err != nil {
			handleReportingError(w, err, "self_rank")
			return
		}

		writeEnvelope(w, cfg, data, meta, start)
	}
}

// SalesTrend retorna a série diária de ativações e vendas
func SalesTrend(service reporting.Reporter, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		days, err := intQueryParam(r, "days", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro days inválido", nil)
			return
		}

		start := time.Now()
		data, meta, err := service.SalesTrend(r.Context(), identity, days)
		if err != nil {
			handleReportingError(w, err, "sales_trend")
			return
		}

		writeEnvelope(w, cfg, data, meta, start)
	}
}

// KPI retorna os indicadores consolidados da janela pedida
func KPI(service reporting.Reporter, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		days, err := intQueryParam(r, "days", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro days inválido", nil)
			return
		}

		params := reporting.KPIParams{Days: days}

		if raw := r.URL.Query().Get("store_id"); raw != "" {
			storeID, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro store_id inválido", nil)
				return
			}
			params.StoreID = &storeID
		}

		start := time.Now()
		data, meta, err := service.KPI(r.Context(), identity, params)
		if err != nil {
			handleReportingError(w, err, "kpi")
			return
		}

		writeEnvelope(w, cfg, data, meta, start)
	}
}

// writeEnvelope serializa a resposta de sucesso das facetas. O bloco de
// debug só é anexado quando habilitado na configuração; o núcleo nunca
// o produz.
func writeEnvelope(w http.ResponseWriter, cfg *config.Config, data interface{}, meta *reporting.ResultMeta, start time.Time) {
	envelope := domain.Envelope{
		Success: true,
		Data:    data,
		Meta: &domain.Meta{
			GeneratedAt: time.Now().UTC(),
			CachedAt:    meta.ComputedAt,
		},
	}

	if cfg.App.DebugResponses {
		traceID, err := gonanoid.New(12)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao gerar trace_id da resposta")
		}

		envelope.Meta.Debug = &domain.DebugInfo{
			TraceID:   traceID,
			CacheKey:  meta.CacheKey,
			CacheHit:  meta.CacheHit,
			ElapsedMs: time.Since(start).Milliseconds(),
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		logrus.WithError(err).Error("Erro ao serializar resposta do dashboard")
	}
}

// handleReportingError mapeia os erros do núcleo de relatórios para os
// códigos padronizados da API
func handleReportingError(w http.ResponseWriter, err error, facet string) {
	logrus.WithError(err).WithFields(logrus.Fields{
		"facet": facet,
	}).Error("Erro ao montar faceta do dashboard")

	switch {
	case errors.Is(err, reporting.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Período não reconhecido", nil)

	case errors.Is(err, reporting.ErrInvalidParameter):
		apiErrors.WriteError(w, apiErrors.ErrInvalidParameter, "Parâmetro inválido para o escopo do chamador", nil)

	case errors.Is(err, scoping.ErrUnauthorizedScope), errors.Is(err, scoping.ErrUnknownRole):
		apiErrors.WriteError(w, apiErrors.ErrUnusableScope, "Identidade sem escopo utilizável", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar dados do relatório", nil)
	}
}

// intQueryParam lê um parâmetro inteiro opcional da query string. Valor
// ausente devolve o padrão informado.
func intQueryParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
