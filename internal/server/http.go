package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/shaladi/reuse/internal/core/port"
	"github.com/shaladi/reuse/internal/handler"
)

type HTTPServer struct {
	echo *echo.Echo
}

func NewHTTPServer(
	ingestionService port.IngestionService,
	itemsStorage port.ItemsStorage,
) *HTTPServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.WithFields(log.Fields{
				"method":    v.Method,
				"uri":       v.URI,
				"status":    v.Status,
				"latency":   v.Latency.String(),
				"requestID": v.RequestID,
			}).Info("HTTP request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	server := &HTTPServer{
		echo: e,
	}

	ingestionHandler := handler.NewIngestionHTTPHandler(ingestionService)
	itemsHandler := handler.NewItemsHTTPHandler(itemsStorage)

	e.GET("/health", server.healthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/emails", ingestionHandler.HandleJSON())
	api.POST("/emails/raw", ingestionHandler.HandleRaw())
	api.GET("/items", itemsHandler.Handle())

	return server
}

func (s *HTTPServer) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "reuse-ingestion",
	})
}

// Start blocks serving address until Shutdown is called.
func (s *HTTPServer) Start(address string) error {
	log.Infof("Starting HTTP server on %s", address)
	if err := s.echo.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
