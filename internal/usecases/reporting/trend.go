package reporting

import (
	"time"

	"github.com/vfg2006/dealer-insights-api/internal/domain"
	"github.com/vfg2006/dealer-insights-api/pkg/utils"
)

// BuildDailySeries produz a série diária de tamanho fixo para os `days`
// dias terminando em endDate, do mais antigo para o mais recente. Dias sem
// movimento entram zerados. O resumo divide as médias pelo tamanho da
// janela, não pela quantidade de dias com venda.
func BuildDailySeries(totals []domain.DailyTotal, days int, endDate time.Time) ([]domain.TrendPoint, domain.TrendSummary) {
	endDate = truncateToDay(endDate)

	byDate := make(map[string]domain.DailyTotal, len(totals))
	for _, total := range totals {
		byDate[total.Date.Format(time.DateOnly)] = total
	}

	series := make([]domain.TrendPoint, 0, days)
	summary := domain.TrendSummary{}

	for i := days - 1; i >= 0; i-- {
		date := endDate.AddDate(0, 0, -i).Format(time.DateOnly)

		point := domain.TrendPoint{Date: date}
		if total, ok := byDate[date]; ok {
			point.Activations = total.Activations
			point.Sales = total.Sales
		}

		summary.TotalActivations += point.Activations
		summary.TotalSales += point.Sales
		series = append(series, point)
	}

	if days > 0 {
		summary.AverageDailyActivations = utils.RoundWithTwoDecimalPlace(float64(summary.TotalActivations) / float64(days))
		summary.AverageDailySales = utils.RoundWithTwoDecimalPlace(summary.TotalSales / float64(days))
	}

	return series, summary
}
