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

package ports

import (
	"context"

	"github.com/topfreegames/gamehost/internal/core/entities/gameserver"
)

// GameServerManager provisions, inspects and tears down the game servers of
// a user. The owner is expected to be already authenticated.
type GameServerManager interface {
	// CreateServer provisions a server of kind and waits for its external
	// address. When the address is not assigned in time the instance is
	// returned together with errors.ErrReadinessTimeout.
	CreateServer(ctx context.Context, owner string, kind gameserver.Kind) (*gameserver.Instance, error)
	// GetServer returns the current state of a server.
	GetServer(ctx context.Context, owner, id string) (*gameserver.Instance, error)
	// ListServers lists every server of owner.
	ListServers(ctx context.Context, owner string) ([]*gameserver.Summary, error)
	// DeleteServer deletes the workload and the service of a server.
	DeleteServer(ctx context.Context, owner, id string) error
}
