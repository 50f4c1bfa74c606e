package reporting

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveWindow(t *testing.T) {
	now := day(2025, time.March, 15)

	tests := []struct {
		name      string
		period    string
		anchor    time.Time
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
		wantErr   error
	}{
		{
			name:      "daily cobre apenas o dia da âncora",
			period:    PeriodDaily,
			anchor:    day(2025, time.March, 10),
			now:       now,
			wantStart: day(2025, time.March, 10),
			wantEnd:   day(2025, time.March, 10),
		},
		{
			name:      "weekly vai de segunda a domingo",
			period:    PeriodWeekly,
			anchor:    day(2025, time.March, 12), // quarta-feira
			now:       now,
			wantStart: day(2025, time.March, 10),
			wantEnd:   day(2025, time.March, 16),
		},
		{
			name:      "weekly com âncora no domingo fecha a mesma semana",
			period:    PeriodWeekly,
			anchor:    day(2025, time.March, 16), // domingo
			now:       now,
			wantStart: day(2025, time.March, 10),
			wantEnd:   day(2025, time.March, 16),
		},
		{
			name:      "monthly cobre o mês de calendário da âncora",
			period:    PeriodMonthly,
			anchor:    day(2025, time.February, 10),
			now:       now,
			wantStart: day(2025, time.February, 1),
			wantEnd:   day(2025, time.February, 28),
		},
		{
			name:      "monthly em ano bissexto fecha no dia 29",
			period:    PeriodMonthly,
			anchor:    day(2024, time.February, 15),
			now:       now,
			wantStart: day(2024, time.February, 1),
			wantEnd:   day(2024, time.February, 29),
		},
		{
			name:      "yearly cobre o ano de calendário",
			period:    PeriodYearly,
			anchor:    day(2025, time.July, 4),
			now:       now,
			wantStart: day(2025, time.January, 1),
			wantEnd:   day(2025, time.December, 31),
		},
		{
			name:      "this_month ancora em now e ignora a âncora",
			period:    PeriodThisMonth,
			anchor:    day(2024, time.December, 25),
			now:       now,
			wantStart: day(2025, time.March, 1),
			wantEnd:   day(2025, time.March, 31),
		},
		{
			name:      "last_month é o mês anterior completo",
			period:    PeriodLastMonth,
			anchor:    now,
			now:       now,
			wantStart: day(2025, time.February, 1),
			wantEnd:   day(2025, time.February, 28),
		},
		{
			name:      "last_month a partir de janeiro volta para dezembro",
			period:    PeriodLastMonth,
			anchor:    now,
			now:       day(2025, time.January, 10),
			wantStart: day(2024, time.December, 1),
			wantEnd:   day(2024, time.December, 31),
		},
		{
			name:      "last_3_months começa no primeiro dia de dois meses atrás",
			period:    "last_3_months",
			anchor:    now,
			now:       now,
			wantStart: day(2025, time.January, 1),
			wantEnd:   day(2025, time.March, 31),
		},
		{
			name:      "last_7_days são os sete dias terminando hoje",
			period:    "last_7_days",
			anchor:    now,
			now:       now,
			wantStart: day(2025, time.March, 9),
			wantEnd:   day(2025, time.March, 15),
		},
		{
			name:    "especificador desconhecido é rejeitado",
			period:  "quarterly",
			anchor:  now,
			now:     now,
			wantErr: ErrInvalidPeriod,
		},
		{
			name:    "last com contagem zero é rejeitado",
			period:  "last_0_days",
			anchor:  now,
			now:     now,
			wantErr: ErrInvalidPeriod,
		},
		{
			name:    "last com contagem negativa é rejeitado",
			period:  "last_-2_months",
			anchor:  now,
			now:     now,
			wantErr: ErrInvalidPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveWindow(tt.period, tt.anchor, tt.now)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, got.StartDate)
			assert.Equal(t, tt.wantEnd, got.EndDate)
		})
	}
}

func TestResolveWindowTruncaHorario(t *testing.T) {
	anchor := time.Date(2025, time.March, 10, 17, 45, 12, 0, time.UTC)

	got, err := ResolveWindow(PeriodDaily, anchor, anchor)

	require.NoError(t, err)
	assert.Equal(t, day(2025, time.March, 10), got.StartDate)
	assert.Equal(t, day(2025, time.March, 10), got.EndDate)
}

func TestLastNDaysWindow(t *testing.T) {
	now := day(2025, time.March, 15)

	window := LastNDaysWindow(30, now)

	assert.Equal(t, day(2025, time.February, 14), window.StartDate)
	assert.Equal(t, day(2025, time.March, 15), window.EndDate)
	assert.Equal(t, 30, window.Days())
}
