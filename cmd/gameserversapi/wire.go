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

//go:build wireinject
// +build wireinject

package gameserversapi

import (
	"github.com/google/wire"

	"github.com/topfreegames/gamehost/internal/api/handlers"
	"github.com/topfreegames/gamehost/internal/config"
	"github.com/topfreegames/gamehost/internal/service"
)

func initializeGameServersAPI(conf config.Config) (*gameServersAPI, error) {
	wire.Build(
		// ports + adapters
		service.NewKubernetesClientSet,
		service.NewOrchestratorKubernetes,
		service.NewHealthDependencies,

		// services
		service.NewGameServerManagerConfig,
		service.NewGameServerManager,
		service.NewDefaultGameServerKind,

		// api handlers
		service.NewAuthConfig,
		handlers.ProvidePingHandler,
		handlers.ProvideServersHandler,
		service.ProvideAPIRouter,
		service.ProvideAPIHandler,
		wire.Struct(new(gameServersAPI), "*"),
	)

	return &gameServersAPI{}, nil
}
