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

// Orchestrator is the only dependency allowed to read and mutate cluster
// state. Every method is a single round trip to the control plane, without
// retries, and returns errors from the ports/errors package.
type Orchestrator interface {
	// CreateWorkload creates the workload described by spec.
	CreateWorkload(ctx context.Context, namespace string, spec gameserver.WorkloadSpec) error
	// GetWorkload reads the workload called name.
	GetWorkload(ctx context.Context, namespace, name string) (*gameserver.Workload, error)
	// DeleteWorkload deletes the workload called name.
	DeleteWorkload(ctx context.Context, namespace, name string) error
	// CreateService creates the service described by spec.
	CreateService(ctx context.Context, namespace string, spec gameserver.ServiceSpec) error
	// GetService reads the service called name, including its ingress.
	GetService(ctx context.Context, namespace, name string) (*gameserver.Service, error)
	// DeleteService deletes the service called name.
	DeleteService(ctx context.Context, namespace, name string) error
	// CreateVolumeClaim creates the persistent volume claim described by spec.
	CreateVolumeClaim(ctx context.Context, namespace string, spec gameserver.VolumeClaimSpec) error
	// DeleteVolumeClaim deletes the persistent volume claim called name.
	DeleteVolumeClaim(ctx context.Context, namespace, name string) error
	// ListServices lists every service of the namespace.
	ListServices(ctx context.Context, namespace string) ([]*gameserver.Service, error)
}
