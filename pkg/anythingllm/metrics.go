package anythingllm

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	retries  *prometheus.CounterVec
}

// newMetrics registers the client collectors on reg. A nil reg disables metrics.
// Collectors already registered by another client are reused.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	if reg == nil {
		return nil, nil
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "anythingllm",
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "Attempts sent to the AnythingLLM API by method and outcome.",
	}, []string{"method", "outcome", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "anythingllm",
		Subsystem: "client",
		Name:      "request_duration_seconds",
		Help:      "Duration of single attempts against the AnythingLLM API.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
	retries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "anythingllm",
		Subsystem: "client",
		Name:      "retries_total",
		Help:      "Retries scheduled by the AnythingLLM client.",
	}, []string{"method"})

	var err error
	if requests, err = register(reg, requests); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if retries, err = register(reg, retries); err != nil {
		return nil, err
	}
	return &metrics{requests: requests, duration: duration, retries: retries}, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *metrics) observe(method string, e *Error, d time.Duration) {
	if m == nil {
		return
	}
	outcome, status := "success", ""
	if e != nil {
		outcome = e.Kind.String()
		if e.StatusCode != 0 {
			status = strconv.Itoa(e.StatusCode)
		}
	}
	m.requests.WithLabelValues(method, outcome, status).Inc()
	m.duration.WithLabelValues(method).Observe(d.Seconds())
}

func (m *metrics) retried(method string) {
	if m == nil {
		return
	}
	m.retries.WithLabelValues(method).Inc()
}
