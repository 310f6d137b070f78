// MIT License
//
// Copyright (c) 2021 TFG Co
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	metrics "github.com/slok/go-http-metrics/metrics/prometheus"
	"github.com/slok/go-http-metrics/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/topfreegames/gamehost/internal/adapters/tracing"
	"github.com/topfreegames/gamehost/internal/api/handlers"
	"github.com/topfreegames/gamehost/internal/config"
	"github.com/topfreegames/gamehost/internal/core/monitoring"
)

const (
	apiPortPath                    = "api.port"
	apiGracefulShutdownTimeoutPath = "api.gracefulShutdownTimeout"
	apiServiceName                 = "gameservers-api"
)

// ProvideAPIRouter builds the gin router of the public API with the HTTP
// metrics middleware installed.
func ProvideAPIRouter(configs config.Config, pingHandler *handlers.PingHandler, serversHandler *handlers.ServersHandler, authConfig handlers.AuthConfig) *gin.Engine {
	if configs.GetString("api.mode") != gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	mdlw := middleware.New(middleware.Config{
		Service: apiServiceName,
		Recorder: metrics.NewRecorder(metrics.Config{
			Prefix:          monitoring.Namespace,
			DurationBuckets: prometheus.DefBuckets,
		}),
	})

	return handlers.NewRouter(pingHandler, serversHandler, authConfig, httpMetricsMiddleware(mdlw))
}

const unmatchedRoute = "unmatched"

// httpMetricsMiddleware labels the measures with the route template instead
// of the raw path so server ids do not become label values.
func httpMetricsMiddleware(m middleware.Middleware) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.Measure("", &routeReporter{c: c}, c.Next)
	}
}

type routeReporter struct {
	c *gin.Context
}

func (r *routeReporter) Method() string { return r.c.Request.Method }

func (r *routeReporter) Context() context.Context { return r.c.Request.Context() }

func (r *routeReporter) URLPath() string {
	if route := r.c.FullPath(); route != "" {
		return route
	}
	return unmatchedRoute
}

func (r *routeReporter) StatusCode() int { return r.c.Writer.Status() }

func (r *routeReporter) BytesWritten() int64 { return int64(r.c.Writer.Size()) }

// ProvideAPIHandler wraps the router with the CORS policy and, when enabled,
// request tracing.
func ProvideAPIHandler(configs config.Config, router *gin.Engine) http.Handler {
	corsPolicy := cors.New(cors.Options{
		AllowedOrigins:   NewCorsAllowedOrigins(configs),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", handlers.RequestIDHeader},
		ExposedHeaders:   []string{handlers.RequestIDHeader},
		AllowCredentials: true,
	})

	var handler http.Handler = corsPolicy.Handler(router)
	if tracing.IsTracingEnabled(configs) {
		handler = otelhttp.NewHandler(handler, apiServiceName)
	}

	return handler
}

// RunAPIServer starts the public API in other goroutine, and returns a
// shutdown function.
func RunAPIServer(ctx context.Context, configs config.Config, handler http.Handler) func() error {
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", configs.GetString(apiPortPath)),
		Handler: handler,
	}

	go func() {
		zap.L().Info(fmt.Sprintf("started HTTP API at :%s", configs.GetString(apiPortPath)))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			zap.L().With(zap.Error(err)).Fatal("failed to start HTTP API server")
		}
	}()

	return func() error {
		shutdownCtx, cancelShutdownFn := context.WithTimeout(context.Background(), configs.GetDuration(apiGracefulShutdownTimeoutPath))
		defer cancelShutdownFn()

		zap.L().Info("stopping HTTP API server")
		return httpServer.Shutdown(shutdownCtx)
	}
}
