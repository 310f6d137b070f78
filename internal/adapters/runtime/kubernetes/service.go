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

func (k *kubernetes) CreateService(ctx context.Context, namespace string, spec gameserver.ServiceSpec) error {
	ctx, cancel := k.withTimeout(ctx)
	defer cancel()

	service := convertServiceSpec(namespace, spec)
	_, err := k.clientSet.CoreV1().Services(namespace).Create(ctx, service, metav1.CreateOptions{})
	if err != nil {
		return convertError("create_service", err, "error creating service '%s'", spec.Name)
	}

	return nil
}

func (k *kubernetes) GetService(ctx context.Context, namespace, name string) (*gameserver.Service, error) {
	ctx, cancel := k.withTimeout(ctx)
	defer cancel()

	service, err := k.clientSet.CoreV1().Services(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, convertError("get_service", err, "error getting service '%s'", name)
	}

	return convertService(service), nil
}

func (k *kubernetes) DeleteService(ctx context.Context, namespace, name string) error {
	ctx, cancel := k.withTimeout(ctx)
	defer cancel()

	err := k.clientSet.CoreV1().Services(namespace).Delete(ctx, name, metav1.DeleteOptions{})
	if err != nil {
		return convertError("delete_service", err, "error deleting service '%s'", name)
	}

	return nil
}

func (k *kubernetes) ListServices(ctx context.Context, namespace string) ([]*gameserver.Service, error) {
	ctx, cancel := k.withTimeout(ctx)
	defer cancel()

	list, err := k.clientSet.CoreV1().Services(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, convertError("list_services", err, "error listing services of namespace '%s'", namespace)
	}

	services := make([]*gameserver.Service, 0, len(list.Items))
	for i := range list.Items {
		services = append(services, convertService(&list.Items[i]))
	}

	return services, nil
}
