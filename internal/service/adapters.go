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

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	kubernetesOrchestrator "github.com/topfreegames/gamehost/internal/adapters/runtime/kubernetes"
	"github.com/topfreegames/gamehost/internal/config"
	"github.com/topfreegames/gamehost/internal/core/ports"
	"github.com/topfreegames/gamehost/internal/core/services/gameservers"
)

// configurations paths for the adapters
const (
	orchestratorKubernetesMasterURLPath  = "adapters.orchestrator.kubernetes.masterUrl"
	orchestratorKubernetesKubeconfigPath = "adapters.orchestrator.kubernetes.kubeconfig"
	orchestratorKubernetesInClusterPath  = "adapters.orchestrator.kubernetes.inCluster"
	orchestratorKubernetesQPSPath        = "adapters.orchestrator.kubernetes.qps"
	orchestratorKubernetesBurstPath      = "adapters.orchestrator.kubernetes.burst"
)

// NewKubernetesClientSet creates the client used by the orchestrator and by
// the readiness check.
func NewKubernetesClientSet(c config.Config) (kubernetes.Interface, error) {
	var masterURL string
	var kubeConfigPath string

	if !c.GetBool(orchestratorKubernetesInClusterPath) {
		masterURL = c.GetString(orchestratorKubernetesMasterURLPath)
		kubeConfigPath = c.GetString(orchestratorKubernetesKubeconfigPath)
	}

	clientSet, err := createKubernetesClient(masterURL, kubeConfigPath, func(conf *rest.Config) {
		if qps := c.GetFloat64(orchestratorKubernetesQPSPath); qps > 0 {
			conf.QPS = float32(qps)
		}
		if burst := c.GetInt(orchestratorKubernetesBurstPath); burst > 0 {
			conf.Burst = burst
		}
		conf.Timeout = c.GetDuration(orchestratorRequestTimeoutPath)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kubernetes orchestrator: %w", err)
	}

	return clientSet, nil
}

// NewOrchestratorKubernetes instantiates kubernetes as orchestrator.
func NewOrchestratorKubernetes(clientSet kubernetes.Interface, c config.Config) ports.Orchestrator {
	return kubernetesOrchestrator.New(clientSet, NewKubernetesConfig(c))
}

// NewGameServerManager instantiates a game server manager.
func NewGameServerManager(orchestrator ports.Orchestrator, config gameservers.GameServerManagerConfig) ports.GameServerManager {
	return gameservers.New(orchestrator, config)
}

func createKubernetesClient(masterURL, kubeconfigPath string, opts ...func(*rest.Config)) (kubernetes.Interface, error) {
	// NOTE: if neither masterURL or kubeconfigPath are passed, this will
	// fallback to in cluster config.
	kubeconfig, err := clientcmd.BuildConfigFromFlags(masterURL, kubeconfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to construct kubernetes config: %w", err)
	}

	for _, opt := range opts {
		opt(kubeconfig)
	}

	client, err := kubernetes.NewForConfig(kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return client, nil
}
