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

package gameserversapi

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/topfreegames/gamehost/cmd/commom"
	"github.com/topfreegames/gamehost/internal/adapters/tracing"
	"github.com/topfreegames/gamehost/internal/service"
)

const serviceName = "gameservers-api"

var (
	logConfig  string
	configPath string
)

var GameServersAPICmd = &cobra.Command{
	Use:     "api",
	Short:   "Starts gamehost game servers API",
	Example: "gamehost start api -c config/config.yaml -l production",
	Long: "Starts gamehost game servers API, a component that provides a REST API for " +
		"creating, listing, inspecting and deleting the game servers of the authenticated user",
	Run: func(cmd *cobra.Command, args []string) {
		runGameServersAPI()
	},
}

func init() {
	GameServersAPICmd.Flags().StringVarP(&logConfig, "log-config", "l", "production", "preset of configurations used by the logs. possible values are \"development\" or \"production\".")
	GameServersAPICmd.Flags().StringVarP(&configPath, "config-path", "c", "config/config.yaml", "path of the configuration YAML file")
}

// gameServersAPI holds what the component serves once its dependencies are
// wired.
type gameServersAPI struct {
	Handler    http.Handler
	HealthDeps *service.HealthDependencies
}

func runGameServersAPI() {
	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	config, err := commom.ServiceSetup(cancelFn, logConfig, configPath)
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("unable to setup service")
	}

	shutdownTracingFn, err := tracing.ConfigureTracing(serviceName, config)
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("failed to configure tracing")
	}

	app, err := initializeGameServersAPI(config)
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("failed to initialize game servers API")
	}

	shutdownInternalServerFn := service.RunInternalServer(ctx, config, app.HealthDeps)
	shutdownAPIServerFn := service.RunAPIServer(ctx, config, app.Handler)

	<-ctx.Done()

	shutdownGroup := new(errgroup.Group)
	shutdownGroup.Go(shutdownInternalServerFn)
	shutdownGroup.Go(shutdownAPIServerFn)
	if err := shutdownGroup.Wait(); err != nil {
		zap.L().With(zap.Error(err)).Error("failed to shutdown servers")
	}

	// spans are flushed after the API stops producing them
	if err := shutdownTracingFn(); err != nil {
		zap.L().With(zap.Error(err)).Error("failed to shutdown tracing")
	}
}
