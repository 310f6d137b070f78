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

//go:build unit
// +build unit

package requestadapters

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/topfreegames/gamehost/internal/core/entities/gameserver"
)

func TestFromApiCreateServerRequestToKind(t *testing.T) {
	t.Run("uses the default kind when none is requested", func(t *testing.T) {
		kind, err := FromApiCreateServerRequestToKind(&CreateServerRequest{}, gameserver.KindXonotic)
		require.NoError(t, err)
		require.Equal(t, gameserver.KindXonotic, kind)

		kind, err = FromApiCreateServerRequestToKind(nil, gameserver.KindMinecraft)
		require.NoError(t, err)
		require.Equal(t, gameserver.KindMinecraft, kind)
	})

	t.Run("parses the requested kind", func(t *testing.T) {
		kind, err := FromApiCreateServerRequestToKind(&CreateServerRequest{Kind: "xonotic"}, gameserver.KindMinecraft)
		require.NoError(t, err)
		require.Equal(t, gameserver.KindXonotic, kind)
	})

	t.Run("fails with unknown kind", func(t *testing.T) {
		_, err := FromApiCreateServerRequestToKind(&CreateServerRequest{Kind: "quake"}, gameserver.KindMinecraft)
		require.ErrorIs(t, err, gameserver.ErrUnknownKind)
	})
}

func TestFromSummaryEntitiesToResponse(t *testing.T) {
	require.Equal(t, []ServerSummaryResponse{}, FromSummaryEntitiesToResponse(nil))

	response := FromSummaryEntitiesToResponse([]*gameserver.Summary{
		{ID: "abcd", Kind: "minecraft", Address: "1.2.3.4", Port: 25565, Available: true},
		{ID: "efgh", Kind: "xonotic", Port: 26000},
	})
	require.Equal(t, []ServerSummaryResponse{
		{ID: "abcd", Kind: "minecraft", Address: "1.2.3.4", Port: 25565, Available: true},
		{ID: "efgh", Kind: "xonotic", Port: 26000},
	}, response)
}

func TestFromInstanceEntityToResponse(t *testing.T) {
	instance := &gameserver.Instance{
		ID:      "abcd",
		Kind:    gameserver.KindXonotic,
		Owner:   "franco",
		Address: "1.2.3.4",
		Port:    26000,
		Status:  gameserver.StatusReady,
	}

	require.Equal(t, ServerResponse{ID: "abcd", Kind: "xonotic", Status: "ready", Address: "1.2.3.4", Port: 26000}, FromInstanceEntityToResponse(instance))
	require.Equal(t, CreateServerResponse{ID: "abcd", Address: "1.2.3.4", Port: 26000}, FromInstanceEntityToCreateResponse(instance))
	require.Equal(t, ProvisioningServerResponse{ID: "abcd", Status: "provisioning"}, FromInstanceEntityToProvisioningResponse(instance))
}
