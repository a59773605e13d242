// Package ifc opens and reads IFC module-interface files: the binary
// container produced by a C++ front end to carry one translation unit's
// Abstract Semantics Graph across a module boundary.
//
// Grounded on the teacher's libravdb.Database/libravdb.New functional-
// options façade (database.go, options.go): a root package that wires
// internal subsystems together and re-exports just the types a caller
// needs, rather than exposing internal/container, internal/reader and
// internal/dom directly.
package ifc

import (
	"fmt"
	"time"

	"github.com/ifcreader/ifc/internal/bytespan"
	"github.com/ifcreader/ifc/internal/container"
	"github.com/ifcreader/ifc/internal/dom"
	"github.com/ifcreader/ifc/internal/obs"
	"github.com/ifcreader/ifc/internal/reader"
)

// Re-exported structural error types (spec.md §6.3), so callers can
// errors.As against them without importing internal/container.
type (
	MissingIfcHeaderError        = container.MissingIfcHeaderError
	UnsupportedFormatVersionError = container.UnsupportedFormatVersionError
	IntegrityCheckFailedError    = container.IntegrityCheckFailedError
	IfcArchMismatchError         = container.IfcArchMismatchError
	IfcReadFailureError          = container.IfcReadFailureError
	InvalidPartitionNameError    = container.InvalidPartitionNameError
)

// UnitSort selects which designator-matching rule Open applies.
type UnitSort = container.UnitSort

const (
	UnitSortPrimary    = container.UnitSortPrimary
	UnitSortPartition  = container.UnitSortPartition
	UnitSortHeader     = container.UnitSortHeader
	UnitSortExportedTU = container.UnitSortExportedTU
)

// Arch is the target architecture Open checks the header against.
type Arch = container.Arch

const ArchUnknown = container.ArchUnknown

// Config collects the options an Open call applies; built up via Option
// functions, mirroring the teacher's functional-options Config/Option pair.
type Config struct {
	unitSort                 UnitSort
	runDesignatorCheck        bool
	designator                string
	allowAnyPrimaryInterface  bool
	targetArch                Arch
	integrityCheck             bool
	metrics                   *obs.Metrics
	onUnexpected              reader.OnUnexpectedFunc
	useMmap                   bool
}

// Option configures one call to Open.
type Option func(*Config) error

// WithDesignator requires the opened unit to match name under the given
// sort's rule (spec.md §4.3.1), enabling designator matching.
func WithDesignator(sort UnitSort, name string) Option {
	return func(c *Config) error {
		c.unitSort = sort
		c.designator = name
		c.runDesignatorCheck = true
		return nil
	}
}

// WithAllowAnyPrimaryInterface accepts any Primary/ExportedTU unit
// regardless of WithDesignator's name.
func WithAllowAnyPrimaryInterface() Option {
	return func(c *Config) error {
		c.allowAnyPrimaryInterface = true
		return nil
	}
}

// WithTargetArch enables the architecture check against arch.
func WithTargetArch(arch Arch) Option {
	return func(c *Config) error {
		c.targetArch = arch
		return nil
	}
}

// WithIntegrityCheck enables the SHA-256 digest verification.
func WithIntegrityCheck() Option {
	return func(c *Config) error {
		c.integrityCheck = true
		return nil
	}
}

// WithMetrics attaches Prometheus counters/histograms to this Open call.
func WithMetrics(m *obs.Metrics) Option {
	return func(c *Config) error {
		c.metrics = m
		return nil
	}
}

// WithOnUnexpected installs the callback invoked when a Visit dispatch
// reaches a reserved sort (spec.md §4.4, §7).
func WithOnUnexpected(f reader.OnUnexpectedFunc) Option {
	return func(c *Config) error {
		c.onUnexpected = f
		return nil
	}
}

// WithMmap opens the file with a memory-mapped span instead of reading it
// fully into the heap (spec.md §3.7's "externally-owned byte span").
func WithMmap() Option {
	return func(c *Config) error {
		c.useMmap = true
		return nil
	}
}

// Unit is an opened, validated IFC file: its container, a typed reader over
// its partitions, and a DOM loader for lazily materializing its graph.
type Unit struct {
	Container *container.InputIfc
	Reader    *reader.Reader
	Dom       *dom.Loader
	span      bytespan.Span
	metrics   *obs.Metrics
}

// Open validates path as an IFC file (spec.md §4.3's full seven-step
// pipeline) and returns a Unit ready for reading. The caller must call
// Close when done.
func Open(path string, opts ...Option) (*Unit, error) {
	cfg := &Config{targetArch: ArchUnknown}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("ifc: applying option: %w", err)
		}
	}

	var span bytespan.Span
	var err error
	if cfg.useMmap {
		span, err = bytespan.Open(path)
	} else {
		span, err = bytespan.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("ifc: opening %s: %w", path, err)
	}

	copts := container.Options{
		UnitSort:                 cfg.unitSort,
		RunDesignatorCheck:        cfg.runDesignatorCheck,
		Designator:                cfg.designator,
		AllowAnyPrimaryInterface:  cfg.allowAnyPrimaryInterface,
		TargetArch:                cfg.targetArch,
		IntegrityCheck:            cfg.integrityCheck,
	}

	start := time.Now()
	c, err := container.Open(path, span, copts)
	cfg.metrics.ObserveValidationLatency(time.Since(start).Seconds())
	if err != nil {
		cfg.metrics.RejectedKind(fmt.Sprintf("%T", err))
		_ = span.Close()
		return nil, err
	}
	cfg.metrics.Ok()

	r, err := reader.New(c, cfg.onUnexpected)
	if err != nil {
		_ = span.Close()
		return nil, fmt.Errorf("ifc: building reader: %w", err)
	}
	r.SetMetrics(cfg.metrics)

	d := dom.New(r)
	d.SetMetrics(cfg.metrics)

	return &Unit{Container: c, Reader: r, Dom: d, span: span, metrics: cfg.metrics}, nil
}

// Close releases the underlying byte span (unmapping it, if mmapped).
func (u *Unit) Close() error {
	return u.span.Close()
}

// Path returns the file path this Unit was opened from.
func (u *Unit) Path() string { return u.Container.Path }
