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

package gameservers

import (
	"context"
	"errors"
	"fmt"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"

	"github.com/topfreegames/gamehost/internal/core/entities/gameserver"
	"github.com/topfreegames/gamehost/internal/core/logs"
	"github.com/topfreegames/gamehost/internal/core/ports"
	serviceerrors "github.com/topfreegames/gamehost/internal/core/services/errors"
)

var errIngressNotAssigned = errors.New("ingress not assigned yet")

// ReadinessPoller reads a service until the orchestrator assigns it an
// external address or the attempts are exhausted.
type ReadinessPoller struct {
	Orchestrator ports.Orchestrator
	Config       ReadinessConfig
	Logger       *zap.Logger
}

func NewReadinessPoller(orchestrator ports.Orchestrator, config ReadinessConfig) *ReadinessPoller {
	return &ReadinessPoller{
		Orchestrator: orchestrator,
		Config:       config,
		Logger:       zap.L().With(zap.String(logs.LogFieldComponent, "service"), zap.String(logs.LogFieldServiceName, "readiness_poller")),
	}
}

// AwaitExternalAddress returns the first ingress entry of the service. Read
// failures count as attempts. After Config.MaxAttempts reads without an
// address it fails with errors.ErrReadinessTimeout.
func (p *ReadinessPoller) AwaitExternalAddress(ctx context.Context, namespace, serviceName string) (*gameserver.Address, error) {
	logger := p.Logger.With(zap.String(logs.LogFieldNamespace, namespace), zap.String("service_name", serviceName))
	maxAttempts := p.Config.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	attempts := 0
	address, err := retry.DoWithData(
		func() (*gameserver.Address, error) {
			attempts++
			service, err := p.Orchestrator.GetService(ctx, namespace, serviceName)
			if err != nil {
				return nil, err
			}

			address, ok := service.ExternalAddress()
			if !ok {
				return nil, errIngressNotAssigned
			}

			return &address, nil
		},
		append(p.delayOptions(),
			retry.Attempts(uint(maxAttempts)),
			retry.LastErrorOnly(true),
			retry.Context(ctx),
			retry.OnRetry(func(n uint, err error) {
				logger.Debug("service has no external address yet", zap.Uint("attempt", n+1), zap.Error(err))
			}),
		)...,
	)
	if err == nil {
		reportReadinessAttempts(outcomeReady, attempts)
		logger.Debug("external address assigned", zap.String("address", address.String()), zap.Int("attempts", attempts))
		return address, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(ctxErr, context.DeadlineExceeded) {
		reportReadinessAttempts(outcomeCanceled, attempts)
		return nil, fmt.Errorf("stopped waiting for service '%s' external address: %w", serviceName, ctxErr)
	}

	reportReadinessAttempts(outcomeTimeout, attempts)
	return nil, serviceerrors.NewErrReadinessTimeout("service '%s' has no external address after %d attempts", serviceName, attempts).WithError(err)
}

func (p *ReadinessPoller) delayOptions() []retry.Option {
	if p.Config.InitialDelay <= 0 {
		return []retry.Option{retry.Delay(0), retry.DelayType(retry.FixedDelay)}
	}

	maxDelay := p.Config.MaxDelay
	if maxDelay < p.Config.InitialDelay {
		maxDelay = p.Config.InitialDelay
	}

	return []retry.Option{
		retry.Delay(p.Config.InitialDelay),
		retry.MaxDelay(maxDelay),
		retry.DelayType(retry.BackOffDelay),
	}
}
