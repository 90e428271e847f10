package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "utility_bills_"

	ResultPassed  = "passed"
	ResultFailed  = "failed"
	ResultError   = "error"
	ResultSuccess = "success"
)

var (
	registerOnce sync.Once

	reconcileDocuments *prometheus.CounterVec
	reconcileChecks    *prometheus.CounterVec
	reconcileLatency   *prometheus.HistogramVec
	corrections        *prometheus.CounterVec

	llmRequests *prometheus.CounterVec
	llmLatency  *prometheus.HistogramVec

	pipelineJobs    *prometheus.CounterVec
	pipelineLatency *prometheus.HistogramVec
	queueDepth      prometheus.Gauge
)

// Init registers the metrics with the default registry. Observe functions are
// no-ops until Init runs, so libraries and tests need not call it.
func Init() {
	registerOnce.Do(func() {
		reconcileDocuments = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "reconcile_documents_total",
				Help: "Reconciled documents by provider and gate result",
			},
			[]string{"provider", "result"},
		)
		reconcileChecks = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "reconcile_checks_total",
				Help: "Reconciliation checks by provider, check and outcome",
			},
			[]string{"provider", "check", "outcome"},
		)
		reconcileLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "reconcile_latency_seconds",
				Help:    "Reconciliation latency in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"result"},
		)
		corrections = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "corrections_total",
				Help: "In-place corrections applied by provider",
			},
			[]string{"provider"},
		)
		llmRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "llm_requests_total",
				Help: "LLM requests by operation and result",
			},
			[]string{"operation", "result"},
		)
		llmLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "llm_latency_seconds",
				Help:    "LLM request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		)
		pipelineJobs = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "pipeline_jobs_total",
				Help: "Pipeline jobs by final status",
			},
			[]string{"status"},
		)
		pipelineLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "pipeline_latency_seconds",
				Help:    "End-to-end document latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"status"},
		)
		queueDepth = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: metricPrefix + "queue_depth",
				Help: "Jobs waiting in the processing queue",
			},
		)

		prometheus.MustRegister(
			reconcileDocuments,
			reconcileChecks,
			reconcileLatency,
			corrections,
			llmRequests,
			llmLatency,
			pipelineJobs,
			pipelineLatency,
			queueDepth,
		)
	})
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveReconcile records one reconciled document.
func ObserveReconcile(provider, result string, duration time.Duration) {
	if provider == "" {
		provider = "unknown"
	}
	if result == "" {
		result = ResultPassed
	}
	if reconcileDocuments != nil {
		reconcileDocuments.WithLabelValues(provider, result).Inc()
	}
	if reconcileLatency != nil {
		reconcileLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// IncCheck counts one check outcome.
func IncCheck(provider, check, outcome string) {
	if reconcileChecks != nil {
		reconcileChecks.WithLabelValues(provider, check, outcome).Inc()
	}
}

// AddCorrections counts in-place corrections.
func AddCorrections(provider string, n int) {
	if n <= 0 {
		return
	}
	if corrections != nil {
		corrections.WithLabelValues(provider).Add(float64(n))
	}
}

// ObserveLLM records an LLM call.
func ObserveLLM(operation, result string, duration time.Duration) {
	if result == "" {
		result = ResultSuccess
	}
	if llmRequests != nil {
		llmRequests.WithLabelValues(operation, result).Inc()
	}
	if llmLatency != nil {
		llmLatency.WithLabelValues(operation).Observe(duration.Seconds())
	}
}

// ObserveJob records a finished pipeline job.
func ObserveJob(status string, duration time.Duration) {
	if status == "" {
		status = "unknown"
	}
	if pipelineJobs != nil {
		pipelineJobs.WithLabelValues(status).Inc()
	}
	if pipelineLatency != nil {
		pipelineLatency.WithLabelValues(status).Observe(duration.Seconds())
	}
}

// SetQueueDepth reports pending jobs.
func SetQueueDepth(n int) {
	if queueDepth != nil {
		queueDepth.Set(float64(n))
	}
}
