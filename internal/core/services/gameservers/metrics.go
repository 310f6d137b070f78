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
	"strconv"
	"time"

	"github.com/topfreegames/gamehost/internal/core/monitoring"
)

const (
	outcomeReady       = "ready"
	outcomeTimeout     = "timeout"
	outcomeFailed      = "failed"
	outcomeUnknownKind = "unknown_kind"
	outcomeCanceled    = "canceled"
)

var (
	provisioningCounterMetric = monitoring.CreateCounterMetric(&monitoring.MetricOpts{
		Namespace: monitoring.Namespace,
		Subsystem: monitoring.SubsystemGameServers,
		Name:      "provisioning",
		Help:      "Game server provisioning requests by outcome",
		Labels: []string{
			monitoring.LabelKind,
			monitoring.LabelOutcome,
		},
	})

	provisioningLatencyMetric = monitoring.CreateLatencyMetric(&monitoring.MetricOpts{
		Namespace: monitoring.Namespace,
		Subsystem: monitoring.SubsystemGameServers,
		Name:      "provisioning",
		Help:      "Time spent provisioning a game server",
		Labels: []string{
			monitoring.LabelKind,
			monitoring.LabelOutcome,
		},
	})

	readinessAttemptsMetric = monitoring.CreateHistogramMetric(&monitoring.MetricOpts{
		Namespace: monitoring.Namespace,
		Subsystem: monitoring.SubsystemGameServers,
		Name:      "readiness_attempts",
		Help:      "Service reads until an external address was observed",
		Labels: []string{
			monitoring.LabelOutcome,
		},
		Buckets: monitoring.AttemptBuckets,
	})

	deletionCounterMetric = monitoring.CreateCounterMetric(&monitoring.MetricOpts{
		Namespace: monitoring.Namespace,
		Subsystem: monitoring.SubsystemGameServers,
		Name:      "deletion",
		Help:      "Game server deletion requests",
		Labels: []string{
			monitoring.LabelSuccess,
		},
	})
)

func reportProvisioning(kind, outcome string, start time.Time) {
	provisioningCounterMetric.WithLabelValues(kind, outcome).Inc()
	monitoring.ReportLatencyMetricInMillis(provisioningLatencyMetric, start, kind, outcome)
}

func reportReadinessAttempts(outcome string, attempts int) {
	readinessAttemptsMetric.WithLabelValues(outcome).Observe(float64(attempts))
}

func reportDeletion(success bool) {
	deletionCounterMetric.WithLabelValues(strconv.FormatBool(success)).Inc()
}
