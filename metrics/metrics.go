// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

var (
	lineOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gemstones_line_operation_duration_seconds",
			Help:    "Duration of line store operations in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"operation"},
	)

	lineOperationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gemstones_line_operations_total",
			Help: "Total number of line store operations",
		},
		[]string{"operation", "status"},
	)

	tagScanTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gemstones_tag_scans_total",
			Help: "Total number of enclosing tag scans by outcome",
		},
		[]string{"status"},
	)

	toolCallTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gemstones_mcp_tool_calls_total",
			Help: "Total number of MCP tool calls",
		},
		[]string{"tool", "status"},
	)
)

// RecordOperation records the duration and outcome of a line store operation.
func RecordOperation(operation string, elapsed time.Duration, err error) {
	lineOperationDuration.With(prometheus.Labels{"operation": operation}).Observe(elapsed.Seconds())
	lineOperationTotal.With(prometheus.Labels{
		"operation": operation,
		"status":    statusOf(err),
	}).Inc()
}

// RecordScan records the outcome of a tag scan ("balanced", "malformed", ...).
func RecordScan(status string) {
	tagScanTotal.With(prometheus.Labels{"status": status}).Inc()
}

// RecordToolCall records an MCP tool invocation.
func RecordToolCall(tool string, err error) {
	toolCallTotal.With(prometheus.Labels{
		"tool":   tool,
		"status": statusOf(err),
	}).Inc()
}

func statusOf(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusOK
}

// ServeMetrics starts a Prometheus metrics HTTP server.
func ServeMetrics(port int) error {
	server := CreateMetricsServer(port)
	return server.ListenAndServe()
}

// CreateMetricsServer creates a configured HTTP server for Prometheus metrics.
func CreateMetricsServer(port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	addr := fmt.Sprintf(":%d", port)

	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
