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

package requestadapters

import (
	"github.com/topfreegames/gamehost/internal/core/entities/gameserver"
)

type CreateServerRequest struct {
	Kind string `json:"kind" binding:"omitempty,gameserver_kind"`
}

type ServerURI struct {
	ID string `uri:"id" binding:"required,gameserver_id"`
}

type ServerSummaryResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Address   string `json:"address"`
	Port      int32  `json:"port"`
	Available bool   `json:"available"`
}

type CreateServerResponse struct {
	ID      string `json:"id"`
	Address string `json:"address"`
	Port    int32  `json:"port"`
}

type ProvisioningServerResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ServerResponse struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Status  string `json:"status"`
	Address string `json:"address"`
	Port    int32  `json:"port"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// FromApiCreateServerRequestToKind returns defaultKind when the request does
// not name one.
func FromApiCreateServerRequestToKind(request *CreateServerRequest, defaultKind gameserver.Kind) (gameserver.Kind, error) {
	if request == nil || request.Kind == "" {
		return defaultKind, nil
	}

	return gameserver.ParseKind(request.Kind)
}

func FromSummaryEntitiesToResponse(summaries []*gameserver.Summary) []ServerSummaryResponse {
	response := make([]ServerSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		response = append(response, ServerSummaryResponse{
			ID:        summary.ID,
			Kind:      summary.Kind,
			Address:   summary.Address,
			Port:      summary.Port,
			Available: summary.Available,
		})
	}

	return response
}

func FromInstanceEntityToCreateResponse(instance *gameserver.Instance) CreateServerResponse {
	return CreateServerResponse{
		ID:      instance.ID,
		Address: instance.Address,
		Port:    instance.Port,
	}
}

func FromInstanceEntityToProvisioningResponse(instance *gameserver.Instance) ProvisioningServerResponse {
	return ProvisioningServerResponse{
		ID:     instance.ID,
		Status: gameserver.StatusProvisioning.String(),
	}
}

func FromInstanceEntityToResponse(instance *gameserver.Instance) ServerResponse {
	return ServerResponse{
		ID:      instance.ID,
		Kind:    instance.Kind.String(),
		Status:  instance.Status.String(),
		Address: instance.Address,
		Port:    instance.Port,
	}
}
