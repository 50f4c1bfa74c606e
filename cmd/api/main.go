package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dealer-insights-api/infrastructure/cache"
	"github.com/vfg2006/dealer-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/dealer-insights-api/infrastructure/repository"
	"github.com/vfg2006/dealer-insights-api/internal/api"
	"github.com/vfg2006/dealer-insights-api/internal/config"
	"github.com/vfg2006/dealer-insights-api/internal/scheduler"
	"github.com/vfg2006/dealer-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/dealer-insights-api/internal/usecases/caching"
	"github.com/vfg2006/dealer-insights-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	saleRepo := repository.NewSaleRepository(pgConn)
	goalRepo := repository.NewGoalRepository(pgConn)
	networkRepo := repository.NewNetworkRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// Seleciona o backend de cache: Redis quando habilitado, memória
	// local caso contrário. A indisponibilidade do Redis na subida não
	// derruba a aplicação; o serviço degrada para recomputar sempre.
	store, memStore := cacheStore(ctx, cfg)
	reportingCache := caching.New(store)
	keys := caching.NewKeyBuilder(cfg.Cache.BucketWidth)

	reportingService := reporting.NewService(cfg, saleRepo, goalRepo, networkRepo, reportingCache, keys)

	// O agendador de limpeza só faz sentido para o cache em memória
	if memStore != nil {
		sweepService := scheduler.NewCacheSweepService(memStore, cfg)
		if err := sweepService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza do cache")
		} else {
			logrus.Info("Agendador de limpeza do cache iniciado com sucesso")
		}
	}

	server, err := api.New(
		cfg,
		reportingService,
		authenticator,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// cacheStore monta o backend de cache configurado. O segundo retorno só
// é preenchido quando o backend é o cache em memória.
func cacheStore(ctx context.Context, cfg *config.Config) (caching.Store, *caching.MemoryStore) {
	if cfg.Redis.Enabled {
		client, err := cache.NewClient(ctx, cfg.Redis)
		if err != nil {
			logrus.WithError(err).Warn("Redis indisponível, usando cache em memória")
		} else {
			logrus.WithField("addr", cfg.Redis.Addr).Info("Conexão com Redis estabelecida com sucesso")
			return cache.NewRedisStore(client), nil
		}
	}

	memStore := caching.NewMemoryStore()
	return memStore, memStore
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
