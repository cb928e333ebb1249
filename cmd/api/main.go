package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-ingestion-api/infrastructure/cache"
	"github.com/vfg2006/ads-ingestion-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-ingestion-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-ingestion-api/infrastructure/integrator/meta/metaqueue"
	"github.com/vfg2006/ads-ingestion-api/internal/api"
	"github.com/vfg2006/ads-ingestion-api/internal/config"
	"github.com/vfg2006/ads-ingestion-api/internal/publisher"
	"github.com/vfg2006/ads-ingestion-api/internal/usecases/commenting"
	"github.com/vfg2006/ads-ingestion-api/internal/usecases/hierarchy"
	"github.com/vfg2006/ads-ingestion-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-ingestion-api/pkg/metrics"
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

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	credentials := metaclient.StaticToken(cfg.Meta.AccessToken)
	if err := metaclient.Verify(ctx, credentials); err != nil {
		logrus.WithError(err).Fatal("META_ACCESS_TOKEN ausente ou inválido")
	}

	metaClient := metaclient.NewClient(cfg, credentials)

	// Todas as chamadas à Graph API passam por uma única fila
	requestScheduler := metaqueue.NewScheduler(metaClient, metaqueue.Config{
		InterCallDelay: cfg.RequestScheduler.InterCallDelay,
		BackoffDelay:   cfg.RequestScheduler.BackoffDelay,
		MaxAttempts:    cfg.RequestScheduler.MaxAttempts,
		TaskTimeout:    cfg.RequestScheduler.TaskTimeout,
	}, metaqueue.WithMetrics(m))

	resultCache := cache.New(cfg.Cache.TTL,
		cache.WithMaxEntries(cfg.Cache.MaxEntries),
		cache.WithMetrics(m),
	)

	metaIntegrator := meta.New(cfg, requestScheduler, resultCache)

	insightService := insighting.NewService(cfg, metaIntegrator)
	hierarchyService := hierarchy.NewService(metaIntegrator)

	var (
		commentManager commenting.CommentManager
		ingestor       *commenting.Ingestor
		pub            *publisher.RabbitMQ
	)

	if cfg.Comments.Enabled {
		ingestor = commenting.NewIngestor(cfg, metaIntegrator,
			commenting.WithClassifier(commenting.NewKeywordClassifier()),
			commenting.WithMetrics(m),
		)

		if cfg.RabbitMQ.Enabled {
			pub, err = publisher.NewRabbitMQ(cfg.RabbitMQ)
			if err != nil {
				logrus.WithError(err).Fatal("Erro ao conectar ao RabbitMQ")
			}

			ingestor.Subscribe(pub.CommentHandler(ctx))

			logrus.WithFields(logrus.Fields{
				"exchange":    cfg.RabbitMQ.Exchange,
				"routing_key": cfg.RabbitMQ.RoutingKey,
			}).Info("Publicação de comentários no RabbitMQ ativada")
		}

		if err := ingestor.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o polling de comentários")
		} else {
			logrus.Info("Polling de comentários iniciado com sucesso")
		}

		commentManager = ingestor
	}

	server, err := api.New(
		cfg,
		registry,
		insightService,
		hierarchyService,
		commentManager,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	// Ordem: para o polling, fecha o publisher e só então drena a fila da Graph API
	if ingestor != nil {
		server.OnShutdown("comment_ingestor", ingestor.Stop)
	}
	if pub != nil {
		server.OnShutdown("rabbitmq", func() {
			if err := pub.Close(); err != nil {
				logrus.WithError(err).Warn("Erro ao fechar conexão com RabbitMQ")
			}
		})
	}
	server.OnShutdown("request_scheduler", requestScheduler.Close)

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
