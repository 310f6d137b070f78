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

package monitoring

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestCounterCreation(t *testing.T) {
	counter := CreateCounterMetric(&MetricOpts{
		Namespace: Namespace,
		Subsystem: "test",
		Name:      "provisioned",
		Help:      "Test Counter",
		Labels:    []string{LabelKind},
	})

	counter.WithLabelValues("minecraft").Inc()
	counter.WithLabelValues("minecraft").Inc()
	counter.WithLabelValues("xonotic").Inc()

	metrics, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	metricFamily := FilterMetric(metrics, "gamehost_test_provisioned_counter")
	require.NotNil(t, metricFamily)
	require.Len(t, metricFamily.GetMetric(), 2)

	minecraft := metricFamily.GetMetric()[0]
	require.Equal(t, LabelKind, minecraft.GetLabel()[0].GetName())
	require.Equal(t, "minecraft", minecraft.GetLabel()[0].GetValue())
	require.Equal(t, float64(2), minecraft.GetCounter().GetValue())
	require.Equal(t, float64(1), metricFamily.GetMetric()[1].GetCounter().GetValue())
}

func TestLatencyCreation(t *testing.T) {
	latency := CreateLatencyMetric(&MetricOpts{
		Namespace: Namespace,
		Subsystem: "test",
		Name:      "readiness",
		Help:      "Test Latency",
		Labels:    []string{LabelOutcome},
	})

	ReportLatencyMetricInMillis(latency, time.Now().Add(-30*time.Millisecond), "ready")

	metrics, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	metricFamily := FilterMetric(metrics, "gamehost_test_readiness_latency")
	require.NotNil(t, metricFamily)

	histogram := metricFamily.GetMetric()[0].GetHistogram()
	require.Equal(t, uint64(1), histogram.GetSampleCount())
	require.GreaterOrEqual(t, histogram.GetSampleSum(), float64(30))
}

func TestFilterMetric(t *testing.T) {
	require.Nil(t, FilterMetric(nil, "gamehost_absent"))
}

func TestHistogramCreation(t *testing.T) {
	attempts := CreateHistogramMetric(&MetricOpts{
		Namespace: Namespace,
		Subsystem: "test",
		Name:      "attempts",
		Help:      "Test Attempts",
		Labels:    []string{LabelOutcome},
		Buckets:   AttemptBuckets,
	})

	attempts.WithLabelValues("ready").Observe(3)

	metrics, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	metricFamily := FilterMetric(metrics, "gamehost_test_attempts_histogram")
	require.NotNil(t, metricFamily)
	require.Len(t, metricFamily.GetMetric()[0].GetHistogram().GetBucket(), len(AttemptBuckets))
}
