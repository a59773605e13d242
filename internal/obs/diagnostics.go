package obs

import (
	"fmt"

	"github.com/ifcreader/ifc/internal/container"
)

// Snapshot is a non-authoritative, read-only set of facts about an
// already-validated container: partition count, string table size, and
// format version. It carries no retry or circuit-breaker machinery — spec.md
// §7 mandates no retries — unlike the teacher's HealthChecker.Check, which
// this is trimmed from.
type Snapshot struct {
	Path             string
	State            string
	FormatVersion    string
	PartitionCount   int
	StringTableBytes uint32
}

// Diagnostics produces Snapshots for validated containers.
type Diagnostics struct{}

// NewDiagnostics returns a Diagnostics instance; it holds no state.
func NewDiagnostics() *Diagnostics { return &Diagnostics{} }

// Snapshot inspects c and reports the facts a batch tool or dashboard would
// want without re-running validation.
func (d *Diagnostics) Snapshot(c *container.InputIfc) Snapshot {
	v := c.Header.FormatVersion()
	return Snapshot{
		Path:             c.Path,
		State:            c.State().String(),
		FormatVersion:    fmt.Sprintf("%d.%d", v.Major, v.Minor),
		PartitionCount:   len(c.Toc),
		StringTableBytes: c.Header.StringTableSize,
	}
}
