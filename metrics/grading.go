/*
Copyright 2026 The Benchtab Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package metrics provides OpenTelemetry instrumentation for grading calls.
package metrics

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Grading provides counters for grading backend calls and failures, and a
// histogram of scores. Instruments degrade to no-ops if creation fails so a
// misconfigured meter provider never blocks grading.
type Grading struct {
	meter    metric.Meter
	calls    metric.Int64Counter
	failures metric.Int64Counter
	scores   metric.Float64Histogram
}

// NewGrading creates a Grading metrics instance on the named meter. The meter
// name should be shared across all grading backends, with the model name as a
// dimension on the recorded metrics.
func NewGrading(meterName string) *Grading {
	meter := otel.Meter(meterName, metric.WithInstrumentationVersion("1.0.0"))

	calls, err := meter.Int64Counter("grading.calls",
		metric.WithDescription("The number of grading backend invocations"),
		metric.WithUnit("{calls}"))
	if err != nil {
		slog.Warn("Failed to create grading call counter, metrics will be disabled", "error", err, "meter", meterName)
		calls = noop.Int64Counter{}
	}

	failures, err := meter.Int64Counter("grading.failures",
		metric.WithDescription("The number of failed grading backend invocations"),
		metric.WithUnit("{calls}"))
	if err != nil {
		slog.Warn("Failed to create grading failure counter, metrics will be disabled", "error", err, "meter", meterName)
		failures = noop.Int64Counter{}
	}

	scores, err := meter.Float64Histogram("grading.scores",
		metric.WithDescription("The distribution of scores returned by grading backends"),
		metric.WithUnit("1"))
	if err != nil {
		slog.Warn("Failed to create grading score histogram, metrics will be disabled", "error", err, "meter", meterName)
		scores = noop.Float64Histogram{}
	}

	return &Grading{
		meter:    meter,
		calls:    calls,
		failures: failures,
		scores:   scores,
	}
}

// RecordCall records one grading invocation against a model.
func (g *Grading) RecordCall(ctx context.Context, model string) {
	g.calls.Add(ctx, 1, metric.WithAttributes(attribute.String("model", model)))
}

// RecordFailure records one failed grading invocation against a model.
func (g *Grading) RecordFailure(ctx context.Context, model string) {
	g.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("model", model)))
}

// RecordScore records a score returned by a grading backend.
func (g *Grading) RecordScore(ctx context.Context, model string, score float64) {
	g.scores.Record(ctx, score, metric.WithAttributes(attribute.String("model", model)))
}
