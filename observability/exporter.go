package observability

// https://opentelemetry.io/docs/languages/go/exporters/

import (
	"context"
	"io"
	"os"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type exporterConfig struct {
	interval   time.Duration
	timeout    time.Duration
	writer     io.Writer
	registerer promclient.Registerer
}

type ExporterOption func(*exporterConfig)

// WithExportInterval is the console exporter push interval.
func WithExportInterval(interval time.Duration) ExporterOption {
	return func(cfg *exporterConfig) {
		if interval > 0 {
			cfg.interval = interval
		}
	}
}

func WithExportTimeout(timeout time.Duration) ExporterOption {
	return func(cfg *exporterConfig) {
		if timeout > 0 {
			cfg.timeout = timeout
		}
	}
}

func WithConsoleWriter(w io.Writer) ExporterOption {
	return func(cfg *exporterConfig) {
		if w != nil {
			cfg.writer = w
		}
	}
}

// WithPrometheusRegisterer replaces the prometheus default registerer.
func WithPrometheusRegisterer(reg promclient.Registerer) ExporterOption {
	return func(cfg *exporterConfig) {
		if reg != nil {
			cfg.registerer = reg
		}
	}
}

func newExporterConfig(opts ...ExporterOption) *exporterConfig {
	cfg := &exporterConfig{
		interval: time.Minute,
		timeout:  30 * time.Second,
		writer:   os.Stdout,
	}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	return cfg
}

// NewConsoleMetricsExporter serves for test/dev environment. It
// installs the global meter provider, the tree stats are pushed to
// the writer periodically and flushed by the returned shutdown.
func NewConsoleMetricsExporter(opts ...ExporterOption) (func(ctx context.Context) error, error) {
	cfg := newExporterConfig(opts...)
	exporter, err := stdoutmetric.New(stdoutmetric.WithWriter(cfg.writer))
	if err != nil {
		return nil, err
	}
	mp := metric.NewMeterProvider(metric.WithReader(metric.NewPeriodicReader(
		exporter,
		metric.WithInterval(cfg.interval),
		metric.WithTimeout(cfg.timeout),
	)))
	callback := mp.Shutdown
	otel.SetMeterProvider(mp)
	return callback, nil
}

// NewPrometheusMetricsExporter serves for the product environment,
// the stats metrics are fetched by HTTP from the registry.
func NewPrometheusMetricsExporter(opts ...ExporterOption) (func(ctx context.Context) error, error) {
	cfg := newExporterConfig(opts...)
	promOpts := make([]otelprom.Option, 0, 1)
	if cfg.registerer != nil {
		promOpts = append(promOpts, otelprom.WithRegisterer(cfg.registerer))
	}
	exporter, err := otelprom.New(promOpts...)
	if err != nil {
		return nil, err
	}
	mp := metric.NewMeterProvider(metric.WithReader(exporter))
	callback := mp.Shutdown
	otel.SetMeterProvider(mp)
	return callback, nil
}
