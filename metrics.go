package booklist

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// duplicate reports whether the insert was suppressed as a duplicate,
	// err is nil if successful.
	RecordInsert(duplicate bool, err error)

	// RecordRemove is called after each remove operation.
	// removed reports whether an element was actually removed.
	RecordRemove(removed bool, err error)

	// RecordMoveToTop is called after each move-to-top operation.
	RecordMoveToTop(err error)

	// RecordConsistencyCheck is called after every oracle invocation.
	RecordConsistencyCheck(ok bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(bool, error)    {}
func (NoopMetricsCollector) RecordRemove(bool, error)    {}
func (NoopMetricsCollector) RecordMoveToTop(error)       {}
func (NoopMetricsCollector) RecordConsistencyCheck(bool) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount         atomic.Int64
	InsertDuplicates    atomic.Int64
	InsertErrors        atomic.Int64
	RemoveCount         atomic.Int64
	RemoveNoops         atomic.Int64
	RemoveErrors        atomic.Int64
	MoveToTopCount      atomic.Int64
	MoveToTopErrors     atomic.Int64
	ConsistencyChecks   atomic.Int64
	ConsistencyFailures atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duplicate bool, err error) {
	b.InsertCount.Add(1)
	if duplicate {
		b.InsertDuplicates.Add(1)
	}
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(removed bool, err error) {
	b.RemoveCount.Add(1)
	if !removed {
		b.RemoveNoops.Add(1)
	}
	if err != nil {
		b.RemoveErrors.Add(1)
	}
}

// RecordMoveToTop implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMoveToTop(err error) {
	b.MoveToTopCount.Add(1)
	if err != nil {
		b.MoveToTopErrors.Add(1)
	}
}

// RecordConsistencyCheck implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConsistencyCheck(ok bool) {
	b.ConsistencyChecks.Add(1)
	if !ok {
		b.ConsistencyFailures.Add(1)
	}
}
