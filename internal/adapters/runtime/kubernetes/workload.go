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

	"github.com/topfreegames/gamehost/internal/core/entities/gameserver"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func (k *kubernetes) CreateWorkload(ctx context.Context, namespace string, spec gameserver.WorkloadSpec) error {
	ctx, cancel := k.withTimeout(ctx)
	defer cancel()

	deployment := convertWorkloadSpec(namespace, spec)
	_, err := k.clientSet.AppsV1().Deployments(namespace).Create(ctx, deployment, metav1.CreateOptions{})
	if err != nil {
		return convertError("create_workload", err, "error creating workload '%s'", spec.Name)
	}

	return nil
}

func (k *kubernetes) GetWorkload(ctx context.Context, namespace, name string) (*gameserver.Workload, error) {
	ctx, cancel := k.withTimeout(ctx)
	defer cancel()

	deployment, err := k.clientSet.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, convertError("get_workload", err, "error getting workload '%s'", name)
	}

	return convertDeployment(deployment), nil
}

func (k *kubernetes) DeleteWorkload(ctx context.Context, namespace, name string) error {
	ctx, cancel := k.withTimeout(ctx)
	defer cancel()

	propagation := metav1.DeletePropagationForeground
	err := k.clientSet.AppsV1().Deployments(namespace).Delete(ctx, name, metav1.DeleteOptions{PropagationPolicy: &propagation})
	if err != nil {
		return convertError("delete_workload", err, "error deleting workload '%s'", name)
	}

	return nil
}
