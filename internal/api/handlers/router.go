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

package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/topfreegames/gamehost/internal/core/logs"
)

// NewRouter builds the public API. Every /api/server route requires an
// authenticated user. Extra middlewares run before the request logger.
func NewRouter(pingHandler *PingHandler, serversHandler *ServersHandler, authConfig AuthConfig, middlewares ...gin.HandlerFunc) *gin.Engine {
	logger := zap.L().With(zap.String(logs.LogFieldComponent, "api"))

	router := gin.New()
	router.Use(middlewares...)
	router.Use(RequestLogger(logger), Recovery(logger))

	router.GET("/ping", pingHandler.GetPing)

	servers := router.Group("/api/server", CookieAuth(authConfig, logger))
	servers.GET("/", serversHandler.ListServers)
	servers.POST("/", serversHandler.CreateServer)
	servers.GET("/:id", serversHandler.GetServer)
	servers.DELETE("/:id", serversHandler.DeleteServer)

	return router
}
