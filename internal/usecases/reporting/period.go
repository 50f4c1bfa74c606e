package reporting

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/dealer-insights-api/internal/domain"
)

// Especificadores de período aceitos pelas facetas
const (
	PeriodDaily     = "daily"
	PeriodWeekly    = "weekly"
	PeriodMonthly   = "monthly"
	PeriodYearly    = "yearly"
	PeriodThisMonth = "this_month"
	PeriodLastMonth = "last_month"
)

// ErrInvalidPeriod indica um especificador de período não reconhecido
var ErrInvalidPeriod = errors.New("período inválido")

// ResolveWindow converte um especificador de período e uma data âncora na
// janela concreta de dias de calendário. Especificadores dinâmicos seguem
// o formato last_<n>_months e last_<n>_days (ex: last_3_months).
// As janelas relativas (this_month, last_month, last_n_*) ancoram em now.
func ResolveWindow(period string, anchor, now time.Time) (domain.TimeWindow, error) {
	anchor = truncateToDay(anchor)
	now = truncateToDay(now)

	switch period {
	case PeriodDaily:
		return domain.TimeWindow{StartDate: anchor, EndDate: anchor}, nil

	case PeriodWeekly:
		// Semana ISO: segunda a domingo contendo a âncora
		weekday := int(anchor.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start := anchor.AddDate(0, 0, -(weekday - 1))
		return domain.TimeWindow{StartDate: start, EndDate: start.AddDate(0, 0, 6)}, nil

	case PeriodMonthly:
		return monthWindow(anchor), nil

	case PeriodYearly:
		start := time.Date(anchor.Year(), time.January, 1, 0, 0, 0, 0, anchor.Location())
		end := time.Date(anchor.Year(), time.December, 31, 0, 0, 0, 0, anchor.Location())
		return domain.TimeWindow{StartDate: start, EndDate: end}, nil

	case PeriodThisMonth:
		return monthWindow(now), nil

	case PeriodLastMonth:
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return monthWindow(firstOfMonth.AddDate(0, -1, 0)), nil
	}

	if n, unit, ok := parseLastN(period); ok {
		switch unit {
		case "months":
			// Do primeiro dia do mês n-1 meses atrás até o fim do mês corrente
			firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
			start := firstOfMonth.AddDate(0, -(n - 1), 0)
			end := firstOfMonth.AddDate(0, 1, -1)
			return domain.TimeWindow{StartDate: start, EndDate: end}, nil

		case "days":
			// Os n dias de calendário terminando hoje, inclusive
			return domain.TimeWindow{StartDate: now.AddDate(0, 0, -(n - 1)), EndDate: now}, nil
		}
	}

	return domain.TimeWindow{}, errors.Wrapf(ErrInvalidPeriod, "especificador %q", period)
}

// LastNDaysWindow é o atalho usado pelas facetas de tendência e KPI
func LastNDaysWindow(days int, now time.Time) domain.TimeWindow {
	window, _ := ResolveWindow(fmt.Sprintf("last_%d_days", days), now, now)
	return window
}

func monthWindow(ref time.Time) domain.TimeWindow {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return domain.TimeWindow{StartDate: start, EndDate: start.AddDate(0, 1, -1)}
}

// parseLastN reconhece last_<n>_months e last_<n>_days com n positivo
func parseLastN(period string) (int, string, bool) {
	parts := strings.Split(period, "_")
	if len(parts) != 3 || parts[0] != "last" {
		return 0, "", false
	}

	if parts[2] != "months" && parts[2] != "days" {
		return 0, "", false
	}

	n, err := strconv.Atoi(parts[1])
	if err != nil || n <= 0 {
		return 0, "", false
	}

	return n, parts[2], true
}

// truncateToDay normaliza o instante para o dia de calendário, garantindo
// a semântica meia-noite a meia-noite das janelas
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
