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
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/topfreegames/gamehost/internal/api/handlers/requestadapters"
	"github.com/topfreegames/gamehost/internal/core/entities/gameserver"
	"github.com/topfreegames/gamehost/internal/core/logs"
	"github.com/topfreegames/gamehost/internal/core/ports"
	serviceerrors "github.com/topfreegames/gamehost/internal/core/services/errors"
	"github.com/topfreegames/gamehost/internal/validations"
)

type ServersHandler struct {
	gameServerManager ports.GameServerManager
	defaultKind       gameserver.Kind
	logger            *zap.Logger
}

func ProvideServersHandler(gameServerManager ports.GameServerManager, defaultKind gameserver.Kind) *ServersHandler {
	return &ServersHandler{
		gameServerManager: gameServerManager,
		defaultKind:       defaultKind,
		logger:            zap.L().With(zap.String(logs.LogFieldComponent, "handler"), zap.String(logs.LogFieldServiceName, "servers_handler")),
	}
}

func (h *ServersHandler) ListServers(c *gin.Context) {
	summaries, err := h.gameServerManager.ListServers(c.Request.Context(), Owner(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, requestadapters.FromSummaryEntitiesToResponse(summaries))
}

func (h *ServersHandler) CreateServer(c *gin.Context) {
	var request requestadapters.CreateServerRequest
	if err := c.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, requestadapters.ErrorResponse{Error: validations.TranslateError(err)})
		return
	}

	kind, err := requestadapters.FromApiCreateServerRequestToKind(&request, h.defaultKind)
	if err != nil {
		c.JSON(http.StatusBadRequest, requestadapters.ErrorResponse{Error: err.Error()})
		return
	}

	instance, err := h.gameServerManager.CreateServer(c.Request.Context(), Owner(c), kind)
	if err != nil {
		if errors.Is(err, serviceerrors.ErrReadinessTimeout) && instance != nil {
			c.JSON(http.StatusAccepted, requestadapters.FromInstanceEntityToProvisioningResponse(instance))
			return
		}

		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, requestadapters.FromInstanceEntityToCreateResponse(instance))
}

func (h *ServersHandler) GetServer(c *gin.Context) {
	var uri requestadapters.ServerURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, requestadapters.ErrorResponse{Error: validations.TranslateError(err)})
		return
	}

	instance, err := h.gameServerManager.GetServer(c.Request.Context(), Owner(c), uri.ID)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, requestadapters.FromInstanceEntityToResponse(instance))
}

func (h *ServersHandler) DeleteServer(c *gin.Context) {
	var uri requestadapters.ServerURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, requestadapters.ErrorResponse{Error: validations.TranslateError(err)})
		return
	}

	err := h.gameServerManager.DeleteServer(c.Request.Context(), Owner(c), uri.ID)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ServersHandler) abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusFromError(err), requestadapters.ErrorResponse{Error: err.Error()})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, serviceerrors.ErrUnknownKind):
		return http.StatusBadRequest
	case errors.Is(err, serviceerrors.ErrServerNotFound):
		return http.StatusNotFound
	case errors.Is(err, serviceerrors.ErrReadinessTimeout):
		return http.StatusAccepted
	default:
		return http.StatusInternalServerError
	}
}
