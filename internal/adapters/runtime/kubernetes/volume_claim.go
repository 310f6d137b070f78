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
	porterrors "github.com/topfreegames/gamehost/internal/core/ports/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func (k *kubernetes) CreateVolumeClaim(ctx context.Context, namespace string, spec gameserver.VolumeClaimSpec) error {
	claim, err := convertVolumeClaimSpec(namespace, spec)
	if err != nil {
		return porterrors.NewErrInvalidArgument("invalid volume claim spec '%s'", spec.Name).WithError(err)
	}

	ctx, cancel := k.withTimeout(ctx)
	defer cancel()

	_, err = k.clientSet.CoreV1().PersistentVolumeClaims(namespace).Create(ctx, claim, metav1.CreateOptions{})
	if err != nil {
		return convertError("create_volume_claim", err, "error creating volume claim '%s'", spec.Name)
	}

	return nil
}

func (k *kubernetes) DeleteVolumeClaim(ctx context.Context, namespace, name string) error {
	ctx, cancel := k.withTimeout(ctx)
	defer cancel()

	err := k.clientSet.CoreV1().PersistentVolumeClaims(namespace).Delete(ctx, name, metav1.DeleteOptions{})
	if err != nil {
		return convertError("delete_volume_claim", err, "error deleting volume claim '%s'", name)
	}

	return nil
}
