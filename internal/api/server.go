package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-ingestion-api/internal/api/handler"
	"github.com/vfg2006/ads-ingestion-api/internal/api/handler/router"
	"github.com/vfg2006/ads-ingestion-api/internal/config"
	"github.com/vfg2006/ads-ingestion-api/internal/usecases/commenting"
	"github.com/vfg2006/ads-ingestion-api/internal/usecases/hierarchy"
	"github.com/vfg2006/ads-ingestion-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-ingestion-api/pkg/middleware"
)

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration

	// executados em ordem depois que o HTTP para de aceitar conexões
	cleanups []cleanup
}

type cleanup struct {
	name string
	fn   func()
}

// New monta o servidor HTTP; comments pode ser nil quando o polling de comentários está desligado
func New(
	config *config.Config,
	gatherer prometheus.Gatherer,
	insightService insighting.Insighter,
	hierarchyService hierarchy.Orchestrator,
	comments commenting.CommentManager,
) (*Server, error) {
	configs := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics(gatherer)...),
		router.WithRoutes(handler.Insights(insightService)...),
		router.WithRoutes(handler.Hierarchy(hierarchyService)...),
	}

	if comments != nil {
		configs = append(configs, router.WithRoutes(handler.Comments(comments, config.Server.AllowedOrigins)...))
	}

	rt := router.New(configs...)
	logrus.WithField("routes", rt.Routes()).Debug("Rotas registradas")

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware("/healthcheck", "/metrics"),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		shutdownTimeout: config.Server.ShutdownTimeout,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// OnShutdown agenda uma liberação de recurso (ingestor, fila, publisher) para depois do HTTP
func (s *Server) OnShutdown(name string, fn func()) {
	s.cleanups = append(s.cleanups, cleanup{name: name, fn: fn})
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	timeout := s.shutdownTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logrus.WithField("timeout", timeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown para o HTTP e depois roda os cleanups na ordem de registro.
// Conexões websocket sequestradas não entram no Shutdown do net/http; elas caem com o processo.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)

	for _, c := range s.cleanups {
		logrus.WithField("resource", c.name).Debug("Liberando recurso")
		c.fn()
	}

	return err
}
