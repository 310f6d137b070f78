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
	"context"
	"fmt"
	"time"

	"k8s.io/client-go/discovery"
	"k8s.io/client-go/kubernetes"
)

const readinessCheckTimeout = 2 * time.Second

type HealthDependencies struct {
	Discovery discovery.ServerVersionInterface
}

func NewHealthDependencies(clientSet kubernetes.Interface) *HealthDependencies {
	return &HealthDependencies{Discovery: clientSet.Discovery()}
}

// checkKubernetes asks the API server for its version, the cheapest call that
// proves the orchestrator is reachable with the configured credentials.
func checkKubernetes(ctx context.Context, client discovery.ServerVersionInterface) error {
	ctx, cancel := context.WithTimeout(ctx, readinessCheckTimeout)
	defer cancel()

	result := make(chan error, 1)
	go func() {
		_, err := client.ServerVersion()
		result <- err
	}()

	select {
	case err := <-result:
		if err != nil {
			return fmt.Errorf("kubernetes API is not reachable: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("kubernetes API did not answer in time: %w", ctx.Err())
	}
}
