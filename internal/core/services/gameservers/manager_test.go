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

package gameservers

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	runtimemock "github.com/topfreegames/gamehost/internal/adapters/runtime/mock"
	"github.com/topfreegames/gamehost/internal/core/entities/gameserver"
	porterrors "github.com/topfreegames/gamehost/internal/core/ports/errors"
	serviceerrors "github.com/topfreegames/gamehost/internal/core/services/errors"
)

func newTestManager(t *testing.T, config GameServerManagerConfig) (*GameServerManager, *runtimemock.MockOrchestrator) {
	mockCtrl := gomock.NewController(t)
	orchestrator := runtimemock.NewMockOrchestrator(mockCtrl)

	manager := New(orchestrator, config)
	manager.GenerateID = func() string { return "abcd" }

	return manager, orchestrator
}

func testConfig() GameServerManagerConfig {
	config := DefaultConfig()
	config.Readiness = ReadinessConfig{MaxAttempts: 3}
	return config
}

func mustBuildDescriptors(t *testing.T, kind gameserver.Kind, id string) *gameserver.Descriptors {
	descriptors, err := gameserver.BuildDescriptors(kind, id)
	require.NoError(t, err)
	return descriptors
}

func TestGameServerManager_CreateServer(t *testing.T) {
	ctx := context.Background()

	t.Run("minecraft server is created and becomes ready", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())
		descriptors := mustBuildDescriptors(t, gameserver.KindMinecraft, "abcd")

		var createdService gameserver.ServiceSpec
		var createdWorkload gameserver.WorkloadSpec
		gomock.InOrder(
			orchestrator.EXPECT().CreateService(ctx, "user-alice", descriptors.Service).
				Do(func(_ context.Context, _ string, spec gameserver.ServiceSpec) { createdService = spec }).
				Return(nil),
			orchestrator.EXPECT().CreateWorkload(ctx, "user-alice", descriptors.Workload).
				Do(func(_ context.Context, _ string, spec gameserver.WorkloadSpec) { createdWorkload = spec }).
				Return(nil),
			orchestrator.EXPECT().GetService(ctx, "user-alice", "gameserver-service-abcd").
				Return(readyService("gameserver-service-abcd", "1.2.3.4"), nil),
		)

		instance, err := manager.CreateServer(ctx, "alice", gameserver.KindMinecraft)
		require.NoError(t, err)
		require.Equal(t, &gameserver.Instance{
			ID:      "abcd",
			Kind:    gameserver.KindMinecraft,
			Owner:   "alice",
			Address: "1.2.3.4",
			Port:    25565,
			Status:  gameserver.StatusReady,
		}, instance)

		require.Equal(t, createdService.Selector, createdWorkload.Selector)
		for key, value := range createdService.Selector {
			require.Equal(t, value, createdWorkload.Labels[key])
		}
	})

	t.Run("xonotic server also claims a volume and exposes udp", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())
		descriptors := mustBuildDescriptors(t, gameserver.KindXonotic, "abcd")

		gomock.InOrder(
			orchestrator.EXPECT().CreateService(ctx, "user-alice", gomock.Any()).
				Do(func(_ context.Context, _ string, spec gameserver.ServiceSpec) {
					require.Len(t, spec.Ports, 1)
					require.Equal(t, gameserver.ProtocolUDP, spec.Ports[0].Protocol)
					require.Equal(t, int32(26000), spec.Ports[0].Port)
				}).
				Return(nil),
			orchestrator.EXPECT().CreateWorkload(ctx, "user-alice", descriptors.Workload).Return(nil),
			orchestrator.EXPECT().CreateVolumeClaim(ctx, "user-alice", *descriptors.VolumeClaim).Return(nil),
			orchestrator.EXPECT().GetService(ctx, "user-alice", "gameserver-service-abcd").
				Return(readyService("gameserver-service-abcd", "5.6.7.8"), nil),
		)

		instance, err := manager.CreateServer(ctx, "alice", gameserver.KindXonotic)
		require.NoError(t, err)
		require.Equal(t, "5.6.7.8", instance.Address)
		require.Equal(t, gameserver.StatusReady, instance.Status)
	})

	t.Run("server that never gets an address is returned as provisioning", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())

		orchestrator.EXPECT().CreateService(ctx, "user-alice", gomock.Any()).Return(nil)
		orchestrator.EXPECT().CreateWorkload(ctx, "user-alice", gomock.Any()).Return(nil)
		orchestrator.EXPECT().GetService(ctx, "user-alice", "gameserver-service-abcd").
			Return(pendingService("gameserver-service-abcd"), nil).
			Times(3)

		instance, err := manager.CreateServer(ctx, "alice", gameserver.KindMinecraft)
		require.ErrorIs(t, err, serviceerrors.ErrReadinessTimeout)
		require.Equal(t, &gameserver.Instance{
			ID:     "abcd",
			Kind:   gameserver.KindMinecraft,
			Owner:  "alice",
			Status: gameserver.StatusProvisioning,
		}, instance)
	})

	t.Run("unknown kind fails before touching the orchestrator", func(t *testing.T) {
		manager, _ := newTestManager(t, testConfig())

		instance, err := manager.CreateServer(ctx, "alice", gameserver.Kind(42))
		require.Nil(t, instance)
		require.ErrorIs(t, err, serviceerrors.ErrUnknownKind)
		require.ErrorIs(t, err, gameserver.ErrUnknownKind)
	})

	t.Run("failure on the first resource is mapped without rollback", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())

		orchestrator.EXPECT().CreateService(ctx, "user-alice", gomock.Any()).
			Return(porterrors.NewErrUnavailable("connection refused"))

		instance, err := manager.CreateServer(ctx, "alice", gameserver.KindMinecraft)
		require.Nil(t, instance)
		require.ErrorIs(t, err, serviceerrors.ErrOrchestratorUnavailable)
		require.ErrorIs(t, err, porterrors.ErrUnavailable)
		require.False(t, errors.Is(err, serviceerrors.ErrPartialCreateFailure))
	})

	t.Run("name collision is a rejected create", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())

		orchestrator.EXPECT().CreateService(ctx, "user-alice", gomock.Any()).
			Return(porterrors.NewErrAlreadyExists("service gameserver-service-abcd already exists"))

		_, err := manager.CreateServer(ctx, "alice", gameserver.KindMinecraft)
		require.ErrorIs(t, err, serviceerrors.ErrOrchestratorRejected)
		require.ErrorIs(t, err, porterrors.ErrAlreadyExists)
	})

	t.Run("workload failure rolls back the service", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())

		gomock.InOrder(
			orchestrator.EXPECT().CreateService(ctx, "user-alice", gomock.Any()).Return(nil),
			orchestrator.EXPECT().CreateWorkload(ctx, "user-alice", gomock.Any()).
				Return(porterrors.NewErrInvalidArgument("bad spec")),
			orchestrator.EXPECT().DeleteService(gomock.Any(), "user-alice", "gameserver-service-abcd").Return(nil),
		)

		instance, err := manager.CreateServer(ctx, "alice", gameserver.KindMinecraft)
		require.Nil(t, instance)
		require.ErrorIs(t, err, serviceerrors.ErrPartialCreateFailure)
		require.ErrorIs(t, err, serviceerrors.ErrOrchestratorRejected)
		require.ErrorIs(t, err, porterrors.ErrInvalidArgument)
	})

	t.Run("volume claim failure rolls back in reverse order", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())

		gomock.InOrder(
			orchestrator.EXPECT().CreateService(ctx, "user-alice", gomock.Any()).Return(nil),
			orchestrator.EXPECT().CreateWorkload(ctx, "user-alice", gomock.Any()).Return(nil),
			orchestrator.EXPECT().CreateVolumeClaim(ctx, "user-alice", gomock.Any()).
				Return(porterrors.NewErrUnavailable("timeout")),
			orchestrator.EXPECT().DeleteWorkload(gomock.Any(), "user-alice", "gameserver-deployment-abcd").Return(nil),
			orchestrator.EXPECT().DeleteService(gomock.Any(), "user-alice", "gameserver-service-abcd").Return(nil),
		)

		_, err := manager.CreateServer(ctx, "alice", gameserver.KindXonotic)
		require.ErrorIs(t, err, serviceerrors.ErrPartialCreateFailure)
		require.ErrorIs(t, err, serviceerrors.ErrOrchestratorUnavailable)
	})

	t.Run("failed rollback is reported with the create failure", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())

		orchestrator.EXPECT().CreateService(ctx, "user-alice", gomock.Any()).Return(nil)
		orchestrator.EXPECT().CreateWorkload(ctx, "user-alice", gomock.Any()).
			Return(porterrors.NewErrUnavailable("timeout"))
		orchestrator.EXPECT().DeleteService(gomock.Any(), "user-alice", "gameserver-service-abcd").
			Return(porterrors.NewErrUnauthorized("forbidden"))

		_, err := manager.CreateServer(ctx, "alice", gameserver.KindMinecraft)
		require.ErrorIs(t, err, serviceerrors.ErrPartialCreateFailure)
		require.ErrorIs(t, err, porterrors.ErrUnavailable)
		require.ErrorIs(t, err, porterrors.ErrUnauthorized)
	})

	t.Run("rollback ignores resources that are already gone", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())

		orchestrator.EXPECT().CreateService(ctx, "user-alice", gomock.Any()).Return(nil)
		orchestrator.EXPECT().CreateWorkload(ctx, "user-alice", gomock.Any()).
			Return(porterrors.NewErrUnavailable("timeout"))
		orchestrator.EXPECT().DeleteService(gomock.Any(), "user-alice", "gameserver-service-abcd").
			Return(porterrors.NewErrNotFound("gone"))

		_, err := manager.CreateServer(ctx, "alice", gameserver.KindMinecraft)
		require.ErrorIs(t, err, serviceerrors.ErrPartialCreateFailure)
		require.False(t, errors.Is(err, porterrors.ErrNotFound))
	})

	t.Run("resources are left behind when rollback is disabled", func(t *testing.T) {
		config := testConfig()
		config.RollbackOnCreateFailure = false
		manager, orchestrator := newTestManager(t, config)

		orchestrator.EXPECT().CreateService(ctx, "user-alice", gomock.Any()).Return(nil)
		orchestrator.EXPECT().CreateWorkload(ctx, "user-alice", gomock.Any()).
			Return(porterrors.NewErrUnavailable("timeout"))

		_, err := manager.CreateServer(ctx, "alice", gameserver.KindMinecraft)
		require.ErrorIs(t, err, serviceerrors.ErrPartialCreateFailure)
	})

	t.Run("rollback runs even if the request was canceled", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())
		canceledCtx, cancel := context.WithCancel(ctx)

		orchestrator.EXPECT().CreateService(canceledCtx, "user-alice", gomock.Any()).Return(nil)
		orchestrator.EXPECT().CreateWorkload(canceledCtx, "user-alice", gomock.Any()).
			DoAndReturn(func(context.Context, string, gameserver.WorkloadSpec) error {
				cancel()
				return porterrors.NewErrUnavailable("context canceled")
			})
		orchestrator.EXPECT().DeleteService(gomock.Any(), "user-alice", "gameserver-service-abcd").
			DoAndReturn(func(ctx context.Context, _, _ string) error {
				require.NoError(t, ctx.Err())
				return nil
			})

		_, err := manager.CreateServer(canceledCtx, "alice", gameserver.KindMinecraft)
		require.ErrorIs(t, err, serviceerrors.ErrPartialCreateFailure)
	})

	t.Run("default id generator returns four characters", func(t *testing.T) {
		require.Len(t, defaultIDGenerator(), 4)
	})
}

func TestGameServerManager_DeleteServer(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the workload and the service", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())

		gomock.InOrder(
			orchestrator.EXPECT().DeleteWorkload(ctx, "user-bob", "gameserver-deployment-abcd").Return(nil).Times(1),
			orchestrator.EXPECT().DeleteService(ctx, "user-bob", "gameserver-service-abcd").Return(nil).Times(1),
		)

		require.NoError(t, manager.DeleteServer(ctx, "bob", "abcd"))
	})

	t.Run("missing workload still deletes the service", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())

		orchestrator.EXPECT().DeleteWorkload(ctx, "user-bob", "gameserver-deployment-abcd").
			Return(porterrors.NewErrNotFound("deployment not found"))
		orchestrator.EXPECT().DeleteService(ctx, "user-bob", "gameserver-service-abcd").Return(nil)

		err := manager.DeleteServer(ctx, "bob", "abcd")
		require.ErrorIs(t, err, serviceerrors.ErrPartialDeleteFailure)
		require.ErrorIs(t, err, porterrors.ErrNotFound)
		require.Contains(t, err.Error(), "workload")
	})

	t.Run("service failure is reported after the workload is deleted", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())

		orchestrator.EXPECT().DeleteWorkload(ctx, "user-bob", "gameserver-deployment-abcd").Return(nil)
		orchestrator.EXPECT().DeleteService(ctx, "user-bob", "gameserver-service-abcd").
			Return(porterrors.NewErrUnavailable("timeout"))

		err := manager.DeleteServer(ctx, "bob", "abcd")
		require.ErrorIs(t, err, serviceerrors.ErrPartialDeleteFailure)
		require.ErrorIs(t, err, porterrors.ErrUnavailable)
	})

	t.Run("server without resources is not found", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())

		orchestrator.EXPECT().DeleteWorkload(ctx, "user-bob", "gameserver-deployment-abcd").
			Return(porterrors.NewErrNotFound("deployment not found"))
		orchestrator.EXPECT().DeleteService(ctx, "user-bob", "gameserver-service-abcd").
			Return(porterrors.NewErrNotFound("service not found"))

		err := manager.DeleteServer(ctx, "bob", "abcd")
		require.ErrorIs(t, err, serviceerrors.ErrServerNotFound)
		require.Contains(t, err.Error(), "deployment not found")
		require.Contains(t, err.Error(), "service not found")
	})

	t.Run("both failures are reported together", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())

		orchestrator.EXPECT().DeleteWorkload(ctx, "user-bob", "gameserver-deployment-abcd").
			Return(porterrors.NewErrUnauthorized("forbidden workload"))
		orchestrator.EXPECT().DeleteService(ctx, "user-bob", "gameserver-service-abcd").
			Return(porterrors.NewErrUnavailable("service timeout"))

		err := manager.DeleteServer(ctx, "bob", "abcd")
		require.ErrorIs(t, err, serviceerrors.ErrOrchestratorUnavailable)
		require.ErrorIs(t, err, porterrors.ErrUnauthorized)
		require.ErrorIs(t, err, porterrors.ErrUnavailable)
		require.False(t, errors.Is(err, serviceerrors.ErrPartialDeleteFailure))
	})

	t.Run("both rejected", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())

		orchestrator.EXPECT().DeleteWorkload(ctx, "user-bob", "gameserver-deployment-abcd").
			Return(porterrors.NewErrUnauthorized("forbidden"))
		orchestrator.EXPECT().DeleteService(ctx, "user-bob", "gameserver-service-abcd").
			Return(porterrors.NewErrNotFound("service not found"))

		err := manager.DeleteServer(ctx, "bob", "abcd")
		require.ErrorIs(t, err, serviceerrors.ErrOrchestratorRejected)
	})
}

func TestGameServerManager_ListServers(t *testing.T) {
	ctx := context.Background()

	t.Run("summarizes every service of the owner", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())

		ready := readyService("gameserver-service-abcd", "1.2.3.4")
		ready.Labels = map[string]string{gameserver.KindLabelKey: "minecraft"}
		pending := pendingService("gameserver-service-efgh")
		pending.Labels = map[string]string{gameserver.KindLabelKey: "xonotic"}
		pending.Ports[0].Port = 26000
		internal := &gameserver.Service{
			Name:      "lobby-ijkl",
			Type:      gameserver.ServiceTypeClusterIP,
			ClusterIP: "10.0.0.12",
			Ports:     []gameserver.ServicePort{{Port: 8080}},
		}
		headless := &gameserver.Service{
			Name:      "gameserver-service-mnop",
			Type:      gameserver.ServiceTypeClusterIP,
			ClusterIP: "None",
		}

		orchestrator.EXPECT().ListServices(ctx, "user-alice").
			Return([]*gameserver.Service{ready, pending, internal, headless}, nil)

		summaries, err := manager.ListServers(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, []*gameserver.Summary{
			{ID: "abcd", Kind: "minecraft", Address: "1.2.3.4", Port: 25565, Available: true},
			{ID: "efgh", Kind: "xonotic", Port: 26000},
			{ID: "ijkl", Address: "10.0.0.12", Port: 8080, Available: true},
			{ID: "mnop"},
		}, summaries)
	})

	t.Run("empty namespace returns an empty list", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())

		orchestrator.EXPECT().ListServices(ctx, "user-alice").Return(nil, nil)

		summaries, err := manager.ListServers(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, summaries)
		require.Empty(t, summaries)
	})

	t.Run("list failure is mapped", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())

		orchestrator.EXPECT().ListServices(ctx, "user-alice").Return(nil, porterrors.NewErrUnavailable("timeout"))

		_, err := manager.ListServers(ctx, "alice")
		require.ErrorIs(t, err, serviceerrors.ErrOrchestratorUnavailable)
	})
}

func TestGameServerManager_GetServer(t *testing.T) {
	ctx := context.Background()

	t.Run("ready server", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())

		service := readyService("gameserver-service-abcd", "1.2.3.4")
		service.Labels = map[string]string{gameserver.KindLabelKey: "xonotic"}
		orchestrator.EXPECT().GetService(ctx, "user-alice", "gameserver-service-abcd").Return(service, nil)
		orchestrator.EXPECT().GetWorkload(ctx, "user-alice", "gameserver-deployment-abcd").
			Return(&gameserver.Workload{Name: "gameserver-deployment-abcd", Replicas: 1, ReadyReplicas: 1}, nil)

		instance, err := manager.GetServer(ctx, "alice", "abcd")
		require.NoError(t, err)
		require.Equal(t, &gameserver.Instance{
			ID:      "abcd",
			Kind:    gameserver.KindXonotic,
			Owner:   "alice",
			Address: "1.2.3.4",
			Port:    25565,
			Status:  gameserver.StatusReady,
		}, instance)
	})

	t.Run("server without address is provisioning", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())

		orchestrator.EXPECT().GetService(ctx, "user-alice", "gameserver-service-abcd").
			Return(pendingService("gameserver-service-abcd"), nil)
		orchestrator.EXPECT().GetWorkload(ctx, "user-alice", "gameserver-deployment-abcd").
			Return(&gameserver.Workload{Name: "gameserver-deployment-abcd", Replicas: 1}, nil)

		instance, err := manager.GetServer(ctx, "alice", "abcd")
		require.NoError(t, err)
		require.Equal(t, gameserver.StatusProvisioning, instance.Status)
		require.Empty(t, instance.Address)
	})

	t.Run("server without workload is failed", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())

		orchestrator.EXPECT().GetService(ctx, "user-alice", "gameserver-service-abcd").
			Return(readyService("gameserver-service-abcd", "1.2.3.4"), nil)
		orchestrator.EXPECT().GetWorkload(ctx, "user-alice", "gameserver-deployment-abcd").
			Return(nil, porterrors.NewErrNotFound("deployment not found"))

		instance, err := manager.GetServer(ctx, "alice", "abcd")
		require.NoError(t, err)
		require.Equal(t, gameserver.StatusFailed, instance.Status)
	})

	t.Run("missing service is not found", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())

		orchestrator.EXPECT().GetService(ctx, "user-alice", "gameserver-service-abcd").
			Return(nil, porterrors.NewErrNotFound("service not found"))

		_, err := manager.GetServer(ctx, "alice", "abcd")
		require.ErrorIs(t, err, serviceerrors.ErrServerNotFound)
	})

	t.Run("workload read failure is mapped", func(t *testing.T) {
		manager, orchestrator := newTestManager(t, testConfig())

		orchestrator.EXPECT().GetService(ctx, "user-alice", "gameserver-service-abcd").
			Return(pendingService("gameserver-service-abcd"), nil)
		orchestrator.EXPECT().GetWorkload(ctx, "user-alice", "gameserver-deployment-abcd").
			Return(nil, porterrors.NewErrUnavailable("timeout"))

		_, err := manager.GetServer(ctx, "alice", "abcd")
		require.ErrorIs(t, err, serviceerrors.ErrOrchestratorUnavailable)
	})
}
