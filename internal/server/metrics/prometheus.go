// Package metrics exports storage and lifecycle metrics to Prometheus.
package metrics

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/memoryvault/internal/server/privacy"
	"github.com/dmitrijs2005/memoryvault/internal/server/storage"
	promclient "github.com/prometheus/client_golang/prometheus"
)

const defaultNamespace = "memoryvault"

// Orphan reasons.
const (
	OrphanDeleteFailed       = "delete_failed"
	OrphanCompensationFailed = "compensation_failed"
)

// Observer records storage call latency, failures, uploaded bytes and
// objects left behind in storage. A nil *Observer is a valid no-op.
type Observer struct {
	callDuration  *promclient.HistogramVec
	callErrors    *promclient.CounterVec
	uploadedBytes *promclient.CounterVec
	orphans       *promclient.CounterVec
}

// NewObserver registers the collectors on reg, reusing collectors that are
// already registered under the same name.
func NewObserver(namespace string, reg promclient.Registerer) (*Observer, error) {
	if namespace == "" {
		namespace = defaultNamespace
	}
	if reg == nil {
		reg = promclient.DefaultRegisterer
	}

	o := &Observer{
		callDuration: promclient.NewHistogramVec(promclient.HistogramOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "call_duration_seconds",
			Help:      "Latency of object storage calls.",
			Buckets:   promclient.DefBuckets,
		}, []string{"level", "op"}),
		callErrors: promclient.NewCounterVec(promclient.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "call_errors_total",
			Help:      "Count of failed object storage calls.",
		}, []string{"level", "op"}),
		uploadedBytes: promclient.NewCounterVec(promclient.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "uploaded_bytes_total",
			Help:      "Bytes stored successfully.",
		}, []string{"level"}),
		orphans: promclient.NewCounterVec(promclient.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "orphaned_objects_total",
			Help:      "Objects left in storage without a descriptor row.",
		}, []string{"level", "reason"}),
	}

	var err error
	if o.callDuration, err = register(reg, o.callDuration); err != nil {
		return nil, err
	}
	if o.callErrors, err = register(reg, o.callErrors); err != nil {
		return nil, err
	}
	if o.uploadedBytes, err = register(reg, o.uploadedBytes); err != nil {
		return nil, err
	}
	if o.orphans, err = register(reg, o.orphans); err != nil {
		return nil, err
	}
	return o, nil
}

func register[C promclient.Collector](reg promclient.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(promclient.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("register collector: %w", err)
	}
	return c, nil
}

// ObserveStorageCall implements storage.Observer.
func (o *Observer) ObserveStorageCall(level privacy.Level, op string, d time.Duration, err error) {
	if o == nil {
		return
	}
	o.callDuration.WithLabelValues(string(level), op).Observe(d.Seconds())
	if err != nil {
		o.callErrors.WithLabelValues(string(level), op).Inc()
	}
}

// RecordUpload adds size to the uploaded bytes of level.
func (o *Observer) RecordUpload(level privacy.Level, size int64) {
	if o == nil {
		return
	}
	o.uploadedBytes.WithLabelValues(string(level)).Add(float64(size))
}

// RecordOrphan counts an object that is still in storage but has no row.
func (o *Observer) RecordOrphan(level privacy.Level, reason string) {
	if o == nil {
		return
	}
	o.orphans.WithLabelValues(string(level), reason).Inc()
}

var _ storage.Observer = (*Observer)(nil)
