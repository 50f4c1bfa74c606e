package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dealer-insights-api/internal/config"
	"github.com/vfg2006/dealer-insights-api/internal/usecases/caching"
)

// CacheSweepConfig representa a configuração do agendador de limpeza do cache
type CacheSweepConfig struct {
	CronSchedule string
	SweepEnabled bool
}

// CacheSweepService remove periodicamente as entradas expiradas do cache
// em memória. O backend Redis expira sozinho; este agendador só é útil
// quando o cache local está em uso.
type CacheSweepService struct {
	scheduler       *gocron.Scheduler
	config          CacheSweepConfig
	store           *caching.MemoryStore
	sweepRunning     bool
	sweepMutex       sync.Mutex
	lastSweepAt      time.Time
	lastSweepRemoved int
}

// NewCacheSweepService cria uma nova instância do serviço de limpeza do cache
func NewCacheSweepService(store *caching.MemoryStore, appConfig *config.Config) *CacheSweepService {
	sweepConfig := CacheSweepConfig{
		CronSchedule: appConfig.CacheSweep.CronSchedule,
		SweepEnabled: appConfig.CacheSweep.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
		"sweep_enabled": sweepConfig.SweepEnabled,
	}).Info("Configuração do agendador de limpeza do cache carregada")

	return &CacheSweepService{
		scheduler:    scheduler,
		config:       sweepConfig,
		store:        store,
		sweepRunning: false,
	}
}

// Start inicia o agendador
func (s *CacheSweepService) Start(ctx context.Context) error {
	if !s.config.SweepEnabled {
		logrus.Info("Limpeza periódica do cache desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza do cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sweep()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza do cache: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza do cache")
		s.scheduler.Stop()
	}()

	return nil
}

// sweep executa uma varredura de entradas expiradas
func (s *CacheSweepService) sweep() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Limpeza do cache já em andamento, ignorando")
		return
	}
	s.sweepRunning = true
	s.sweepMutex.Unlock()

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.sweepMutex.Unlock()
	}()

	removed := s.store.Sweep()
	s.lastSweepAt = time.Now()
	s.lastSweepRemoved = removed

	logrus.WithFields(logrus.Fields{
		"removed":   removed,
		"remaining": s.store.Len(),
	}).Info("Limpeza do cache concluída")
}
