package domain

import "time"

// Envelope é o formato de resposta de todas as facetas de analytics
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// Meta carrega os carimbos de tempo da resposta. CachedAt preserva o
// computed_at original da entrada de cache, permitindo ao cliente medir
// a idade do resultado.
type Meta struct {
	GeneratedAt time.Time  `json:"generated_at"`
	CachedAt    time.Time  `json:"cached_at"`
	Debug       *DebugInfo `json:"debug,omitempty"`
}

// DebugInfo é o bloco de diagnóstico opcional anexado na borda de
// transporte quando DEBUG_RESPONSES está habilitado. Nunca é produzido
// dentro do núcleo de relatórios.
type DebugInfo struct {
	TraceID   string `json:"trace_id"`
	CacheKey  string `json:"cache_key"`
	CacheHit  bool   `json:"cache_hit"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

// OverviewData é o resumo geral do escopo do chamador
type OverviewData struct {
	TotalStores      int     `json:"total_stores"`
	TotalBranches    int     `json:"total_branches"`
	TotalUsers       int     `json:"total_users"`
	MonthActivations int     `json:"month_activations"`
	MonthSales       float64 `json:"month_sales"`
	TodayActivations int     `json:"today_activations"`
	TodaySales       float64 `json:"today_sales"`
	AchievementRate  float64 `json:"achievement_rate"`
}

// StoreRankingData é o ranking de lojas por valor liquidado no período
type StoreRankingData struct {
	Period  string        `json:"period"`
	Window  TimeWindow    `json:"window"`
	Ranking []RankedEntry `json:"ranking"`
}

// TopListData é o top N de regionais ou lojas no período pedido
type TopListData struct {
	Type    string        `json:"type"`
	Period  string        `json:"period"`
	Window  TimeWindow    `json:"window"`
	Entries []RankedEntry `json:"entries"`
}

// RankPosition é a posição do próprio chamador dentro de um conjunto
// ordenado. Ranked=false é um resultado de primeira classe: a entidade
// não teve movimento na janela, o que é diferente de estar em último.
type RankPosition struct {
	Ranked bool `json:"ranked"`
	Rank   int  `json:"rank,omitempty"`
	Total  int  `json:"total"`
}

// SelfRankData é a resposta da faceta de posição própria
type SelfRankData struct {
	BranchRank *RankPosition `json:"branch_rank,omitempty"`
	StoreRank  *RankPosition `json:"store_rank,omitempty"`
}

// SalesTrendData é a série diária de ativações e vendas
type SalesTrendData struct {
	Days    int          `json:"days"`
	Window  TimeWindow   `json:"window"`
	Series  []TrendPoint `json:"series"`
	Summary TrendSummary `json:"summary"`
}

// KPIData são os indicadores consolidados da janela pedida, com
// comparação contra a janela anterior de mesmo tamanho
type KPIData struct {
	Days              int            `json:"days"`
	Window            TimeWindow     `json:"window"`
	Activations       int            `json:"activations"`
	Sales             float64        `json:"sales"`
	AverageTicket     float64        `json:"average_ticket"`
	ActivationsGrowth float64        `json:"activations_growth"`
	SalesGrowth       float64        `json:"sales_growth"`
	AchievementRate   float64        `json:"achievement_rate"`
	ByAgency          []AggregateRow `json:"by_agency"`
}
