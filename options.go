package booklist

// DefaultCapacity is the capacity of the fixed-size store when no
// WithCapacity option is given.
const DefaultCapacity = 11

type options struct {
	capacity int
	logger   *Logger
	metrics  MetricsCollector
}

// Option configures List construction.
type Option func(*options)

// WithCapacity sets the hard capacity of the fixed-size store. The capacity
// never grows; inserting into a full collection returns
// *CapacityExceededError.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// WithLogger configures structured logging for collection operations.
//
// If nil is passed, logging stays disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics configures a metrics collector for collection operations.
//
// If nil is passed, metrics stay disabled.
func WithMetrics(collector MetricsCollector) Option {
	return func(o *options) {
		if collector != nil {
			o.metrics = collector
		}
	}
}

func defaultOptions() options {
	return options{
		capacity: DefaultCapacity,
		logger:   NoopLogger(),
		metrics:  NoopMetricsCollector{},
	}
}
