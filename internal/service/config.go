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
	"fmt"

	"github.com/topfreegames/gamehost/internal/adapters/runtime/kubernetes"
	"github.com/topfreegames/gamehost/internal/api/handlers"
	"github.com/topfreegames/gamehost/internal/config"
	"github.com/topfreegames/gamehost/internal/core/entities/gameserver"
	"github.com/topfreegames/gamehost/internal/core/services/gameservers"
	"github.com/topfreegames/gamehost/internal/core/validations"
)

const (
	gameServersNamespacePrefixPath         = "gameServers.namespacePrefix"
	gameServersDefaultKindPath             = "gameServers.defaultKind"
	gameServersRollbackOnCreateFailurePath = "gameServers.rollbackOnCreateFailure"
	gameServersReadinessMaxAttemptsPath    = "gameServers.readiness.maxAttempts"
	gameServersReadinessInitialDelayPath   = "gameServers.readiness.initialDelay"
	gameServersReadinessMaxDelayPath       = "gameServers.readiness.maxDelay"

	apiAuthCookieNamePath     = "api.auth.cookieName"
	apiAuthUsersPath          = "api.auth.users"
	apiCorsAllowedOriginsPath = "api.cors.allowedOrigins"
	defaultCorsAllowedOrigin  = "http://localhost:3000"

	orchestratorRequestTimeoutPath = "adapters.orchestrator.kubernetes.requestTimeout"
)

// NewGameServerManagerConfig instantiate a new GameServerManagerConfig, keys
// missing from the configuration keep their defaults.
func NewGameServerManagerConfig(c config.Config) gameservers.GameServerManagerConfig {
	managerConfig := gameservers.DefaultConfig()

	if c.IsSet(gameServersNamespacePrefixPath) {
		managerConfig.NamespacePrefix = c.GetString(gameServersNamespacePrefixPath)
	}
	if c.IsSet(gameServersRollbackOnCreateFailurePath) {
		managerConfig.RollbackOnCreateFailure = c.GetBool(gameServersRollbackOnCreateFailurePath)
	}
	if c.IsSet(gameServersReadinessMaxAttemptsPath) {
		managerConfig.Readiness.MaxAttempts = c.GetInt(gameServersReadinessMaxAttemptsPath)
	}
	if c.IsSet(gameServersReadinessInitialDelayPath) {
		managerConfig.Readiness.InitialDelay = c.GetDuration(gameServersReadinessInitialDelayPath)
	}
	if c.IsSet(gameServersReadinessMaxDelayPath) {
		managerConfig.Readiness.MaxDelay = c.GetDuration(gameServersReadinessMaxDelayPath)
	}

	return managerConfig
}

// NewDefaultGameServerKind reads the kind provisioned when a request does not
// name one.
func NewDefaultGameServerKind(c config.Config) (gameserver.Kind, error) {
	if !c.IsSet(gameServersDefaultKindPath) {
		return gameserver.KindMinecraft, nil
	}

	kind, err := gameserver.ParseKind(c.GetString(gameServersDefaultKindPath))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", gameServersDefaultKindPath, err)
	}

	return kind, nil
}

// NewAuthConfig reads the user allow-list. Every user must produce a valid
// namespace name.
func NewAuthConfig(c config.Config) (handlers.AuthConfig, error) {
	authConfig := handlers.AuthConfig{
		CookieName: c.GetString(apiAuthCookieNamePath),
		Users:      c.GetStringSlice(apiAuthUsersPath),
	}
	if authConfig.CookieName == "" {
		authConfig.CookieName = handlers.DefaultAuthCookieName
	}

	prefix := NewGameServerManagerConfig(c).NamespacePrefix
	for _, user := range authConfig.Users {
		if !validations.IsNamespaceValid(prefix, user) {
			return handlers.AuthConfig{}, fmt.Errorf("user '%s' does not produce a valid namespace with prefix '%s'", user, prefix)
		}
	}

	return authConfig, nil
}

// NewCorsAllowedOrigins reads the origins allowed to call the API with
// credentials.
func NewCorsAllowedOrigins(c config.Config) []string {
	origins := c.GetStringSlice(apiCorsAllowedOriginsPath)
	if len(origins) == 0 {
		return []string{defaultCorsAllowedOrigin}
	}

	return origins
}

// NewKubernetesConfig instantiate the configuration of the kubernetes
// orchestrator adapter.
func NewKubernetesConfig(c config.Config) kubernetes.KubernetesConfig {
	return kubernetes.KubernetesConfig{
		RequestTimeout: c.GetDuration(orchestratorRequestTimeoutPath),
	}
}
