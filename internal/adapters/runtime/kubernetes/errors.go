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
	"errors"
	"fmt"

	porterrors "github.com/topfreegames/gamehost/internal/core/ports/errors"
	kerrors "k8s.io/apimachinery/pkg/api/errors"
)

const (
	reasonNotFound        = "not_found"
	reasonAlreadyExists   = "already_exists"
	reasonUnauthorized    = "unauthorized"
	reasonInvalidArgument = "invalid_argument"
	reasonUnavailable     = "unavailable"
	reasonUnexpected      = "unexpected"
)

// convertError classifies an API server error into a ports error kind and
// reports the failure of operation.
func convertError(operation string, err error, format string, args ...interface{}) error {
	message := fmt.Sprintf(format, args...)

	var converted error
	var reason string
	switch {
	case kerrors.IsNotFound(err):
		converted, reason = porterrors.NewErrNotFound("%s", message).WithError(err), reasonNotFound
	case kerrors.IsAlreadyExists(err), kerrors.IsConflict(err):
		converted, reason = porterrors.NewErrAlreadyExists("%s", message).WithError(err), reasonAlreadyExists
	case kerrors.IsUnauthorized(err), kerrors.IsForbidden(err):
		converted, reason = porterrors.NewErrUnauthorized("%s", message).WithError(err), reasonUnauthorized
	case kerrors.IsInvalid(err), kerrors.IsBadRequest(err):
		converted, reason = porterrors.NewErrInvalidArgument("%s", message).WithError(err), reasonInvalidArgument
	case isTransient(err):
		converted, reason = porterrors.NewErrUnavailable("%s", message).WithError(err), reasonUnavailable
	default:
		converted, reason = porterrors.NewErrUnexpected("%s", message).WithError(err), reasonUnexpected
	}

	reportRequestFailed(operation, reason)
	return converted
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	if kerrors.IsTimeout(err) ||
		kerrors.IsServerTimeout(err) ||
		kerrors.IsTooManyRequests(err) ||
		kerrors.IsServiceUnavailable(err) ||
		kerrors.IsInternalError(err) {
		return true
	}

	// anything without an API status never reached the API server.
	var status kerrors.APIStatus
	return !errors.As(err, &status)
}
