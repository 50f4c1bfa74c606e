package reporting

import (
	"github.com/vfg2006/dealer-insights-api/pkg/utils"
)

// AchievementRate é o valor realizado expresso como percentual da meta,
// arredondado para uma casa decimal. Meta zero ou negativa resulta em 0,
// nunca em divisão por zero, NaN ou infinito.
func AchievementRate(actual, target float64) float64 {
	if target <= 0 {
		return 0
	}

	return utils.RoundWithOneDecimalPlace(actual / target * 100)
}

// GrowthRate é a variação percentual entre o valor atual e o anterior,
// podendo ser negativa. Base zero ou negativa resulta em 0.
func GrowthRate(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}

	return utils.RoundWithOneDecimalPlace((current - previous) / previous * 100)
}
