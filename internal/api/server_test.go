package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ads-ingestion-api/internal/config"
	commentmocks "github.com/vfg2006/ads-ingestion-api/internal/usecases/commenting/mocks"
	hierarchymocks "github.com/vfg2006/ads-ingestion-api/internal/usecases/hierarchy/mocks"
	insightmocks "github.com/vfg2006/ads-ingestion-api/internal/usecases/insighting/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.Server{
			Host:           "localhost",
			Port:           "0",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
	}
}

func TestNew_CommentRoutesOnlyWhenEnabled(t *testing.T) {
	tests := []struct {
		name         string
		withComments bool
		wantStatus   int
	}{
		{name: "polling desligado", withComments: false, wantStatus: http.StatusNotFound},
		{name: "polling ligado", withComments: true, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			var srv *Server
			var err error
			if tt.withComments {
				comments := commentmocks.NewMockCommentManager(ctrl)
				comments.EXPECT().GetComments(gomock.Any()).Return(nil)
				srv, err = New(testConfig(), prometheus.NewRegistry(),
					insightmocks.NewMockInsighter(ctrl), hierarchymocks.NewMockOrchestrator(ctrl), comments)
			} else {
				srv, err = New(testConfig(), prometheus.NewRegistry(),
					insightmocks.NewMockInsighter(ctrl), hierarchymocks.NewMockOrchestrator(ctrl), nil)
			}
			require.NoError(t, err)

			rec := httptest.NewRecorder()
			srv.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/comments", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestNew_GlobalMiddlewares(t *testing.T) {
	ctrl := gomock.NewController(t)

	srv, err := New(testConfig(), prometheus.NewRegistry(),
		insightmocks.NewMockInsighter(ctrl), hierarchymocks.NewMockOrchestrator(ctrl), nil)
	require.NoError(t, err)
	assert.Equal(t, "localhost:0", srv.httpServer.Addr)

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_ShutdownRunsCleanupsInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)

	srv, err := New(testConfig(), prometheus.NewRegistry(),
		insightmocks.NewMockInsighter(ctrl), hierarchymocks.NewMockOrchestrator(ctrl), nil)
	require.NoError(t, err)

	var order []string
	srv.OnShutdown("comment_ingestor", func() { order = append(order, "comment_ingestor") })
	srv.OnShutdown("request_scheduler", func() { order = append(order, "request_scheduler") })

	require.NoError(t, srv.Shutdown(context.Background()))
	assert.Equal(t, []string{"comment_ingestor", "request_scheduler"}, order)
}
