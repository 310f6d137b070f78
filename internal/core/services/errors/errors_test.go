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

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	porterrors "github.com/topfreegames/gamehost/internal/core/ports/errors"
)

func TestServiceErrors(t *testing.T) {
	t.Run("matches errors of the same kind", func(t *testing.T) {
		err := NewErrReadinessTimeout("service %q has no ingress", "gameserver-service-ab12")
		require.ErrorIs(t, err, ErrReadinessTimeout)
		require.NotErrorIs(t, err, ErrPartialCreateFailure)
		require.Equal(t, `service "gameserver-service-ab12" has no ingress`, err.Error())
	})

	t.Run("keeps the wrapped error reachable", func(t *testing.T) {
		cause := porterrors.NewErrNotFound("service not found")
		err := fmt.Errorf("deleting: %w", NewErrOrchestratorRejected("failed to delete server").WithError(cause))

		require.ErrorIs(t, err, ErrOrchestratorRejected)
		require.ErrorIs(t, err, porterrors.ErrNotFound)
		require.Contains(t, err.Error(), "failed to delete server: service not found")
	})

	t.Run("uses the wrapped message when none was given", func(t *testing.T) {
		err := NewErrOrchestratorUnavailable("").WithError(errors.New("connection refused"))
		require.Equal(t, "connection refused", err.Error())
	})
}
