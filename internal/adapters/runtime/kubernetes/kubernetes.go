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

package kubernetes

import (
	"context"
	"time"

	"github.com/topfreegames/gamehost/internal/core/ports"
	kube "k8s.io/client-go/kubernetes"
)

var _ ports.Orchestrator = (*kubernetes)(nil)

type KubernetesConfig struct {
	// RequestTimeout bounds every call to the API server. Zero disables it.
	RequestTimeout time.Duration
}

type kubernetes struct {
	clientSet kube.Interface
	config    KubernetesConfig
}

func New(clientSet kube.Interface, config KubernetesConfig) *kubernetes {
	return &kubernetes{
		clientSet: clientSet,
		config:    config,
	}
}

func (k *kubernetes) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if k.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, k.config.RequestTimeout)
}
