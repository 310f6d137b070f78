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
	"time"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
	utilrand "k8s.io/apimachinery/pkg/util/rand"

	"github.com/topfreegames/gamehost/internal/core/entities/gameserver"
	"github.com/topfreegames/gamehost/internal/core/logs"
	"github.com/topfreegames/gamehost/internal/core/ports"
	porterrors "github.com/topfreegames/gamehost/internal/core/ports/errors"
	serviceerrors "github.com/topfreegames/gamehost/internal/core/services/errors"
)

const idLength = 4

type GameServerManager struct {
	Orchestrator ports.Orchestrator
	Readiness    *ReadinessPoller
	// GenerateID returns the id of a new server. Collisions are not checked
	// here, the orchestrator rejects duplicated names.
	GenerateID func() string
	Config     GameServerManagerConfig
	Logger     *zap.Logger
}

var _ ports.GameServerManager = (*GameServerManager)(nil)

func New(orchestrator ports.Orchestrator, config GameServerManagerConfig) *GameServerManager {
	return &GameServerManager{
		Orchestrator: orchestrator,
		Readiness:    NewReadinessPoller(orchestrator, config.Readiness),
		GenerateID:   defaultIDGenerator,
		Config:       config,
		Logger:       zap.L().With(zap.String(logs.LogFieldComponent, "service"), zap.String(logs.LogFieldServiceName, "game_server_manager")),
	}
}

func defaultIDGenerator() string {
	return utilrand.String(idLength)
}

func (m *GameServerManager) namespace(owner string) string {
	return gameserver.Namespace(m.Config.NamespacePrefix, owner)
}

func (m *GameServerManager) CreateServer(ctx context.Context, owner string, kind gameserver.Kind) (*gameserver.Instance, error) {
	start := time.Now()
	id := m.GenerateID()
	namespace := m.namespace(owner)
	logger := m.Logger.With(
		zap.String(logs.LogFieldOwner, owner),
		zap.String(logs.LogFieldNamespace, namespace),
		zap.String(logs.LogFieldServerID, id),
		zap.String(logs.LogFieldServerKind, kind.String()),
	)

	descriptors, err := gameserver.BuildDescriptors(kind, id)
	if err != nil {
		reportProvisioning(kind.String(), outcomeUnknownKind, start)
		return nil, serviceerrors.NewErrUnknownKind("cannot provision server of kind '%s'", kind).WithError(err)
	}

	err = m.createResources(ctx, namespace, descriptors, logger)
	if err != nil {
		reportProvisioning(kind.String(), outcomeFailed, start)
		logger.Error("failed to create game server resources", zap.Error(err))
		return nil, err
	}

	instance := &gameserver.Instance{
		ID:     id,
		Kind:   kind,
		Owner:  owner,
		Status: gameserver.StatusProvisioning,
	}

	address, err := m.Readiness.AwaitExternalAddress(ctx, namespace, descriptors.Service.Name)
	if err != nil {
		if errors.Is(err, serviceerrors.ErrReadinessTimeout) {
			reportProvisioning(kind.String(), outcomeTimeout, start)
			logger.Warn("game server created but not ready yet", zap.Error(err))
			return instance, err
		}

		reportProvisioning(kind.String(), outcomeCanceled, start)
		return nil, fmt.Errorf("failed waiting for game server '%s': %w", id, err)
	}

	instance.Address = address.Host
	instance.Port = address.Port
	instance.Status = gameserver.StatusReady

	reportProvisioning(kind.String(), outcomeReady, start)
	logger.Info("game server provisioned", zap.String("address", address.String()))
	return instance, nil
}

// createResources submits the service, the workload and the volume claim in
// this order. When a submission fails the resources already created are
// deleted in reverse order if RollbackOnCreateFailure is set, otherwise they
// are left behind.
func (m *GameServerManager) createResources(ctx context.Context, namespace string, descriptors *gameserver.Descriptors, logger *zap.Logger) error {
	var rollbacks []func(context.Context) error

	steps := []struct {
		resource string
		create   func() error
		rollback func(context.Context) error
	}{
		{
			resource: "service",
			create: func() error {
				return m.Orchestrator.CreateService(ctx, namespace, descriptors.Service)
			},
			rollback: func(ctx context.Context) error {
				return m.Orchestrator.DeleteService(ctx, namespace, descriptors.Service.Name)
			},
		},
		{
			resource: "workload",
			create: func() error {
				return m.Orchestrator.CreateWorkload(ctx, namespace, descriptors.Workload)
			},
			rollback: func(ctx context.Context) error {
				return m.Orchestrator.DeleteWorkload(ctx, namespace, descriptors.Workload.Name)
			},
		},
	}

	if claim := descriptors.VolumeClaim; claim != nil {
		steps = append(steps, struct {
			resource string
			create   func() error
			rollback func(context.Context) error
		}{
			resource: "volume claim",
			create: func() error {
				return m.Orchestrator.CreateVolumeClaim(ctx, namespace, *claim)
			},
			rollback: func(ctx context.Context) error {
				return m.Orchestrator.DeleteVolumeClaim(ctx, namespace, claim.Name)
			},
		})
	}

	for _, step := range steps {
		err := step.create()
		if err == nil {
			rollbacks = append(rollbacks, step.rollback)
			continue
		}

		createErr := mapOrchestratorError(err, "failed to create %s", step.resource)
		if len(rollbacks) == 0 {
			return createErr
		}

		if !m.Config.RollbackOnCreateFailure {
			return serviceerrors.NewErrPartialCreateFailure("%d resources left behind after failing to create %s", len(rollbacks), step.resource).WithError(createErr)
		}

		rollbackErr := m.rollback(ctx, rollbacks, logger)
		if rollbackErr != nil {
			return serviceerrors.NewErrPartialCreateFailure("failed to create %s and rollback did not complete", step.resource).
				WithError(multierror.Append(createErr, rollbackErr))
		}

		return serviceerrors.NewErrPartialCreateFailure("failed to create %s, created resources were rolled back", step.resource).WithError(createErr)
	}

	return nil
}

// rollback runs the compensating deletes in reverse creation order. It keeps
// going when one of them fails and ignores the request cancellation so a
// disconnected client does not leave resources behind.
func (m *GameServerManager) rollback(ctx context.Context, rollbacks []func(context.Context) error, logger *zap.Logger) error {
	ctx = context.WithoutCancel(ctx)

	var result *multierror.Error
	for i := len(rollbacks) - 1; i >= 0; i-- {
		err := rollbacks[i](ctx)
		if err != nil && !errors.Is(err, porterrors.ErrNotFound) {
			result = multierror.Append(result, err)
		}
	}

	if result != nil {
		logger.Error("rollback of game server resources failed", zap.Error(result))
	} else {
		logger.Info("game server resources rolled back")
	}

	return result.ErrorOrNil()
}

func (m *GameServerManager) GetServer(ctx context.Context, owner, id string) (*gameserver.Instance, error) {
	namespace := m.namespace(owner)
	names := gameserver.NamesFor(id)

	service, err := m.Orchestrator.GetService(ctx, namespace, names.Service)
	if err != nil {
		if errors.Is(err, porterrors.ErrNotFound) {
			return nil, serviceerrors.NewErrServerNotFound("server '%s' not found", id).WithError(err)
		}

		return nil, mapOrchestratorError(err, "failed to get service of server '%s'", id)
	}

	instance := &gameserver.Instance{
		ID:     id,
		Owner:  owner,
		Status: gameserver.StatusProvisioning,
	}

	if kind, err := gameserver.ParseKind(service.Labels[gameserver.KindLabelKey]); err == nil {
		instance.Kind = kind
	}

	if address, ok := service.ExternalAddress(); ok {
		instance.Address = address.Host
		instance.Port = address.Port
		instance.Status = gameserver.StatusReady
	}

	_, err = m.Orchestrator.GetWorkload(ctx, namespace, names.Workload)
	if err != nil {
		if !errors.Is(err, porterrors.ErrNotFound) {
			return nil, mapOrchestratorError(err, "failed to get workload of server '%s'", id)
		}

		instance.Status = gameserver.StatusFailed
	}

	return instance, nil
}

func (m *GameServerManager) ListServers(ctx context.Context, owner string) ([]*gameserver.Summary, error) {
	namespace := m.namespace(owner)

	services, err := m.Orchestrator.ListServices(ctx, namespace)
	if err != nil {
		return nil, mapOrchestratorError(err, "failed to list servers of '%s'", owner)
	}

	summaries := make([]*gameserver.Summary, 0, len(services))
	for _, service := range services {
		summaries = append(summaries, summarize(service))
	}

	return summaries, nil
}

func summarize(service *gameserver.Service) *gameserver.Summary {
	summary := &gameserver.Summary{
		ID:   gameserver.IDFromServiceName(service.Name),
		Kind: service.Labels[gameserver.KindLabelKey],
		Port: service.FirstPort(),
	}

	switch service.Type {
	case gameserver.ServiceTypeLoadBalancer:
		if address, ok := service.ExternalAddress(); ok {
			summary.Address = address.Host
			summary.Port = address.Port
			summary.Available = true
		}
	default:
		if service.ClusterIP != "" && service.ClusterIP != "None" {
			summary.Address = service.ClusterIP
			summary.Available = true
		}
	}

	return summary
}

// DeleteServer deletes the workload and then the service of a server. The
// volume claim is kept so the game data survives the server.
func (m *GameServerManager) DeleteServer(ctx context.Context, owner, id string) error {
	namespace := m.namespace(owner)
	names := gameserver.NamesFor(id)
	logger := m.Logger.With(
		zap.String(logs.LogFieldOwner, owner),
		zap.String(logs.LogFieldNamespace, namespace),
		zap.String(logs.LogFieldServerID, id),
	)

	workloadErr := m.Orchestrator.DeleteWorkload(ctx, namespace, names.Workload)
	serviceErr := m.Orchestrator.DeleteService(ctx, namespace, names.Service)

	err := deletionResult(id, workloadErr, serviceErr)
	reportDeletion(err == nil)
	if err != nil {
		logger.Error("failed to delete game server", zap.Error(err))
		return err
	}

	logger.Info("game server deleted")
	return nil
}

func deletionResult(id string, workloadErr, serviceErr error) error {
	switch {
	case workloadErr == nil && serviceErr == nil:
		return nil
	case workloadErr != nil && serviceErr == nil:
		return serviceerrors.NewErrPartialDeleteFailure("service of server '%s' deleted but workload was not", id).
			WithError(fmt.Errorf("workload: %w", workloadErr))
	case workloadErr == nil && serviceErr != nil:
		return serviceerrors.NewErrPartialDeleteFailure("workload of server '%s' deleted but service was not", id).
			WithError(fmt.Errorf("service: %w", serviceErr))
	}

	both := multierror.Append(fmt.Errorf("workload: %w", workloadErr), fmt.Errorf("service: %w", serviceErr))
	switch {
	case errors.Is(workloadErr, porterrors.ErrNotFound) && errors.Is(serviceErr, porterrors.ErrNotFound):
		return serviceerrors.NewErrServerNotFound("server '%s' not found", id).WithError(both)
	case errors.Is(workloadErr, porterrors.ErrUnavailable) || errors.Is(serviceErr, porterrors.ErrUnavailable):
		return serviceerrors.NewErrOrchestratorUnavailable("failed to delete server '%s'", id).WithError(both)
	default:
		return serviceerrors.NewErrOrchestratorRejected("failed to delete server '%s'", id).WithError(both)
	}
}

func mapOrchestratorError(err error, format string, args ...interface{}) error {
	if errors.Is(err, porterrors.ErrUnavailable) {
		return serviceerrors.NewErrOrchestratorUnavailable(format, args...).WithError(err)
	}

	return serviceerrors.NewErrOrchestratorRejected(format, args...).WithError(err)
}
