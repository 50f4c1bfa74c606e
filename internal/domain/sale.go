// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// SaleRecord é o registro de venda persistido pela camada de importação.
// O núcleo de relatórios nunca altera esses registros, apenas agrega sobre eles.
type SaleRecord struct {
	ID               int       `json:"id"`
	StoreID          int       `json:"store_id"`
	BranchID         int       `json:"branch_id"`
	SaleDate         time.Time `json:"sale_date"`
	SettlementAmount float64   `json:"settlement_amount"`
	Agency           string    `json:"agency"`
	Carrier          string    `json:"carrier"`
	ActivationType   string    `json:"activation_type"`
}

// Tipos de alvo de meta
const (
	GoalTargetStore  = "store"
	GoalTargetBranch = "branch"
	GoalTargetSystem = "system"
)

// Goal é a meta cadastrada para uma loja, regional ou para a rede inteira
type Goal struct {
	ID               int       `json:"id"`
	TargetType       string    `json:"target_type"`
	TargetID         int       `json:"target_id"`
	PeriodType       string    `json:"period_type"`
	PeriodStart      time.Time `json:"period_start"`
	PeriodEnd        time.Time `json:"period_end"`
	SalesTarget      float64   `json:"sales_target"`
	ActivationTarget int       `json:"activation_target"`
	MarginTarget     float64   `json:"margin_target"`
	IsActive         bool      `json:"is_active"`
}

// TimeWindow é um intervalo fechado de dias de calendário.
// As duas pontas são inclusivas e normalizadas para dia inteiro,
// evitando dupla contagem em fronteiras de fuso horário.
type TimeWindow struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// Days retorna a quantidade de dias de calendário cobertos pela janela
func (w TimeWindow) Days() int {
	return int(w.EndDate.Sub(w.StartDate).Hours()/24) + 1
}

// Dimensões de agrupamento suportadas pelo motor de agregação
const (
	GroupByStore  = "store"
	GroupByBranch = "branch"
	GroupByAgency = "agency"
	GroupByNone   = "none"
)

// AggregateRow é uma linha agregada por entidade dentro de uma janela
type AggregateRow struct {
	EntityID    int     `json:"entity_id"`
	EntityLabel string  `json:"entity_label"`
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
	Average     float64 `json:"average"`
}

// RankedEntry é uma linha agregada anotada com posição densa (base 1)
type RankedEntry struct {
	AggregateRow
	Rank int `json:"rank"`
}

// DailyTotal é o total bruto de um dia de calendário, tal como retornado
// pelo repositório (apenas dias com movimento aparecem)
type DailyTotal struct {
	Date        time.Time `json:"date"`
	Activations int       `json:"activations"`
	Sales       float64   `json:"sales"`
}

// TrendPoint é um ponto da série diária, presente mesmo quando não houve
// nenhuma venda no dia (valores zerados)
type TrendPoint struct {
	Date        string  `json:"date"`
	Activations int     `json:"activations"`
	Sales       float64 `json:"sales"`
}

// TrendSummary resume a série completa. As médias dividem pelo tamanho
// da janela, não pela quantidade de dias com movimento.
type TrendSummary struct {
	TotalActivations        int     `json:"total_activations"`
	TotalSales              float64 `json:"total_sales"`
	AverageDailyActivations float64 `json:"average_daily_activations"`
	AverageDailySales       float64 `json:"average_daily_sales"`
}
