// Package metrics exposes the Prometheus collectors of the reporting backend.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "fleet_dashboard_"

	resultSuccess = "success"
	resultError   = "error"
)

// Exported result labels for callers.
const (
	ResultSuccess = resultSuccess
	ResultError   = resultError
)

var (
	registerOnce sync.Once

	datasetLoadTotal   *prometheus.CounterVec
	datasetLoadLatency *prometheus.HistogramVec
	datasetRecords     *prometheus.GaugeVec

	dashboardComputeTotal   *prometheus.CounterVec
	dashboardComputeLatency *prometheus.HistogramVec

	exportTotal *prometheus.CounterVec
)

// Init registers the collectors with the default registry. Safe to call more
// than once.
func Init() {
	registerOnce.Do(func() {
		datasetLoadTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "dataset_load_total",
				Help: "Total dataset loads by result",
			},
			[]string{"result"},
		)
		datasetLoadLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "dataset_load_latency_seconds",
				Help:    "Dataset load latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		datasetRecords = prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: metricPrefix + "dataset_records",
				Help: "Records in the current snapshot by collection",
			},
			[]string{"collection"},
		)

		dashboardComputeTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "compute_total",
				Help: "Total dashboard computations by result",
			},
			[]string{"result"},
		)
		dashboardComputeLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "compute_latency_seconds",
				Help:    "Dashboard computation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)

		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "export_total",
				Help: "Total dashboard exports by format and result",
			},
			[]string{"format", "result"},
		)

		prometheus.MustRegister(
			datasetLoadTotal,
			datasetLoadLatency,
			datasetRecords,
			dashboardComputeTotal,
			dashboardComputeLatency,
			exportTotal,
		)
	})
}

// Recorder adapts the package-level observers to the interfaces the
// application layer declares.
type Recorder struct{}

// ObserveDatasetLoad records dataset load duration and result.
func (Recorder) ObserveDatasetLoad(result string, duration time.Duration) {
	ObserveDatasetLoad(result, duration)
}

// SetDatasetRecords records the size of a loaded collection.
func (Recorder) SetDatasetRecords(collection string, count int) {
	SetDatasetRecords(collection, count)
}

// ObserveDashboardCompute records dashboard computation latency and result.
func (Recorder) ObserveDashboardCompute(result string, duration time.Duration) {
	ObserveDashboardCompute(result, duration)
}

// IncExport increments the export counter.
func (Recorder) IncExport(format, result string) {
	IncExport(format, result)
}

// ObserveDatasetLoad records dataset load duration and result.
func ObserveDatasetLoad(result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if datasetLoadTotal != nil {
		datasetLoadTotal.WithLabelValues(result).Inc()
	}
	if datasetLoadLatency != nil {
		datasetLoadLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// SetDatasetRecords sets the record gauge of a collection.
func SetDatasetRecords(collection string, count int) {
	if collection == "" {
		collection = "unknown"
	}
	if datasetRecords != nil {
		datasetRecords.WithLabelValues(collection).Set(float64(count))
	}
}

// ObserveDashboardCompute records dashboard computation latency and result.
func ObserveDashboardCompute(result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if dashboardComputeTotal != nil {
		dashboardComputeTotal.WithLabelValues(result).Inc()
	}
	if dashboardComputeLatency != nil {
		dashboardComputeLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// IncExport increments the export counter.
func IncExport(format, result string) {
	if format == "" {
		format = "unknown"
	}
	if result == "" {
		result = resultSuccess
	}
	if exportTotal != nil {
		exportTotal.WithLabelValues(format, result).Inc()
	}
}
