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

package commom

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/topfreegames/gamehost/internal/config"
	"github.com/topfreegames/gamehost/internal/config/viper"
	"github.com/topfreegames/gamehost/internal/service"
	"github.com/topfreegames/gamehost/internal/validations"
)

// ServiceSetup configures the process wide concerns shared by every
// component: logging, request validations, configuration and the
// termination signal listener, which cancels ctx.
func ServiceSetup(cancelFn context.CancelFunc, logConfig, configPath string) (config.Config, error) {
	err := service.ConfigureLogging(logConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to configure logging: %w", err)
	}

	err = validations.RegisterValidations()
	if err != nil {
		return nil, fmt.Errorf("unable to register validations: %w", err)
	}

	viperConfig, err := viper.NewViperConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	launchTerminatingListenerGoroutine(cancelFn)

	return viperConfig, nil
}

func launchTerminatingListenerGoroutine(cancelFunc context.CancelFunc) {
	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

		<-sigs
		zap.L().Info("received termination")

		cancelFunc()
	}()
}
