// Package container implements InputIfc: signature and integrity checking,
// header and table-of-contents decoding, string-table access, and
// designator matching (spec.md §4.3).
//
// Grounded on the teacher's internal/index/hnsw/persistence.go validation
// pipeline (readHeader / validateFileFormat / magic-and-version checks) and
// calculateCRC32, generalized from CRC32 framing to the SHA-256-digest-plus-
// table-of-contents framing spec.md describes.
package container

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/ifcreader/ifc/internal/bytespan"
	"github.com/ifcreader/ifc/internal/catalog"
	"github.com/ifcreader/ifc/internal/prim"
)

// State names the stops of the validation state machine in spec.md §4.3.
type State int

const (
	StateUnvalidated State = iota
	StateSigned
	StateVerified
	StateHeaded
	StateArchOK
	StateLoaded
	StateValidated
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateUnvalidated:
		return "Unvalidated"
	case StateSigned:
		return "Signed"
	case StateVerified:
		return "Verified"
	case StateHeaded:
		return "Headed"
	case StateArchOK:
		return "ArchOK"
	case StateLoaded:
		return "Loaded"
	case StateValidated:
		return "Validated"
	default:
		return "Rejected"
	}
}

// ValidateUnitSort is an alias of UnitSort used by callers constructing Options; the
// concrete type lives in header.go alongside Header.
type ValidateUnitSort = UnitSort

// Format version bounds the reader accepts. EDGFormatVersion is carried
// verbatim from the original implementation (spec.md's "Open questions"):
// it is not part of the ordinary [minimum..current] range but must still be
// accepted for interoperability with EDG-produced files.
var (
	MinimumFormatVersion = prim.FormatVersion{Major: 0, Minor: 1}
	CurrentFormatVersion = prim.FormatVersion{Major: 0, Minor: 43}
	EDGFormatVersion     = prim.FormatVersion{Major: 0, Minor: 0}
)

// Options configures one call to Open.
type Options struct {
	// UnitSort selects which designator-matching rule applies (Primary and
	// ExportedTU share one rule; Partition and Header have their own); any
	// other value makes designator matching fail. Matching runs only when
	// RunDesignatorCheck is set.
	UnitSort ValidateUnitSort
	// RunDesignatorCheck enables step 7 of spec.md §4.3; when false the
	// container still loads fully but designator matching is skipped.
	RunDesignatorCheck bool
	// Designator is the external name (module name, or "module:partition"
	// for partition units) to match against the header's recorded unit.
	Designator string
	// AllowAnyPrimaryInterface makes a Primary/ExportedTU match accept the
	// unit whatever its recorded name or sort (spec.md §4.3.1).
	AllowAnyPrimaryInterface bool
	// TargetArch is the architecture the caller requires; ArchUnknown
	// disables the architecture check.
	TargetArch Arch
	// IntegrityCheck enables the SHA-256 digest verification in step 2.
	IntegrityCheck bool
}

// InputIfc is the validated, in-memory view of one .ifc file: borrowed
// header, table of contents, and string table over an externally-owned
// byte span (spec.md §3.7).
type InputIfc struct {
	Path    string
	span    bytespan.Span
	state   State
	Header  Header
	Toc     []PartitionSummary
	strings []byte // the string table sub-slice of span.Bytes()
}

// Span returns the full underlying byte span, for callers (the reader) that
// need to slice partitions directly.
func (c *InputIfc) Span() bytespan.Span { return c.span }

// State reports where in the validation state machine this container
// currently sits.
func (c *InputIfc) State() State { return c.state }

// Open wraps an already-opened byte span and runs validation against it.
// The caller retains ownership of span; Open never closes it.
func Open(path string, span bytespan.Span, opts Options) (*InputIfc, error) {
	c := &InputIfc{Path: path, span: span, state: StateUnvalidated}
	if err := c.validate(opts); err != nil {
		c.state = StateRejected
		return nil, err
	}
	return c, nil
}

func (c *InputIfc) validate(opts Options) error {
	data := c.span.Bytes()

	// Step 1: signature.
	if len(data) < 4 || [4]byte{data[0], data[1], data[2], data[3]} != Signature {
		return &MissingIfcHeaderError{Path: c.Path}
	}
	c.state = StateSigned

	if len(data) < 4+digestSize {
		return &IfcReadFailureError{Path: c.Path, Err: fmt.Errorf("file too short for integrity digest")}
	}
	storedDigest := data[4 : 4+digestSize]

	// Step 2: integrity check, optional.
	if opts.IntegrityCheck {
		sum := sha256.Sum256(data[4+digestSize:])
		var expected [32]byte
		copy(expected[:], storedDigest)
		if sum != expected {
			return &IntegrityCheckFailedError{Path: c.Path, Expected: expected, Actual: sum}
		}
	}
	c.state = StateVerified

	// Step 3: header.
	headerBytes := data[4+digestSize:]
	h, err := decodeHeader(headerBytes)
	if err != nil {
		return &IfcReadFailureError{Path: c.Path, Err: err}
	}
	version := h.FormatVersion()
	if (version.Less(MinimumFormatVersion) && version != EDGFormatVersion) || CurrentFormatVersion.Less(version) {
		return &UnsupportedFormatVersionError{
			Path:    c.Path,
			Version: FormatVersionPair{Major: uint8(h.MajorVersion), Minor: uint8(h.MinorVersion)},
		}
	}
	c.Header = h
	c.state = StateHeaded

	// Step 4: architecture.
	if opts.TargetArch != ArchUnknown && !ArchCompatible(h.Arch, opts.TargetArch) {
		return &IfcArchMismatchError{Name: fmt.Sprintf("have=%d want=%d", h.Arch, opts.TargetArch), Path: c.Path}
	}
	c.state = StateArchOK

	// Steps 5-6: TOC and string table.
	toc, err := readToc(data, h)
	if err != nil {
		return &IfcReadFailureError{Path: c.Path, Err: err}
	}
	c.Toc = toc

	stEnd := int(h.StringTableBytes) + int(h.StringTableSize)
	if int(h.StringTableBytes) < 0 || stEnd > len(data) {
		return &IfcReadFailureError{Path: c.Path, Err: fmt.Errorf("string table out of range")}
	}
	c.strings = data[h.StringTableBytes:stEnd]
	c.state = StateLoaded

	// Every named partition must resolve through the catalog; unknown
	// names outside the vendor fallback are a structural error at TOC
	// build time (spec.md §6.1: "canonical set is closed...").
	for _, ps := range c.Toc {
		name := c.Get(ps.Name)
		if name == "" {
			continue
		}
		if _, err := catalog.SortOf(name); err != nil {
			return &InvalidPartitionNameError{Name: name}
		}
	}

	// Step 7: designator matching.
	if opts.RunDesignatorCheck {
		if !matchDesignator(c, h.Unit, opts) {
			return &IfcReadFailureError{Path: c.Path, Err: fmt.Errorf("designator %q did not match unit", opts.Designator)}
		}
	}

	c.state = StateValidated
	return nil
}

func readToc(data []byte, h Header) ([]PartitionSummary, error) {
	start := int(h.Toc)
	need := start + int(h.PartitionCount)*partitionSummarySize
	if start < 0 || need > len(data) {
		return nil, fmt.Errorf("table of contents out of range (need %d bytes, have %d)", need, len(data))
	}
	toc := make([]PartitionSummary, h.PartitionCount)
	for i := range toc {
		off := start + i*partitionSummarySize
		toc[i] = decodePartitionSummary(data[off : off+partitionSummarySize])
	}
	return toc, nil
}

// matchDesignator implements spec.md §4.3.1, mirroring the original
// designator_matches_ifc_unit_sort (_examples/original_source/include/ifc/
// file.hxx) case by case rather than the looser "accept when the caller
// gave us nothing to compare against" reading.
func matchDesignator(c *InputIfc, unit UnitDesignator, opts Options) bool {
	switch opts.UnitSort {
	case UnitSortPrimary, UnitSortExportedTU:
		// A non-empty designator accepts the unit when its actual sort is
		// Primary/ExportedTU and its recorded name equals the designator;
		// otherwise (name mismatch, empty designator, or a sort mismatch)
		// the only way through is the explicit "accept anything" escape
		// hatch.
		if opts.Designator != "" && (unit.Sort == UnitSortPrimary || unit.Sort == UnitSortExportedTU) {
			if c.Get(unit.Name) == opts.Designator {
				return true
			}
		}
		return opts.AllowAnyPrimaryInterface
	case UnitSortPartition:
		if opts.Designator == "" || unit.Sort != UnitSortPartition {
			return false
		}
		moduleName, partitionName, ok := strings.Cut(c.Get(unit.Name), ":")
		if !ok || moduleName == "" || partitionName == "" {
			return false
		}
		wantModule, wantPartition, ok := strings.Cut(opts.Designator, ":")
		if !ok || wantModule == "" || wantPartition == "" {
			return false
		}
		return moduleName == wantModule && partitionName == wantPartition
	case UnitSortHeader:
		return unit.Sort == UnitSortHeader
	default:
		return false
	}
}

// Get resolves a NUL-terminated string in the string table; the null offset
// denotes the empty string (spec.md §4.3 "get(text_offset)").
func (c *InputIfc) Get(t prim.TextOffset) string {
	if t.IsNull() {
		return ""
	}
	start := int(t)
	if start >= len(c.strings) {
		return ""
	}
	end := start
	for end < len(c.strings) && c.strings[end] != 0 {
		end++
	}
	return string(c.strings[start:end])
}

// ViewPartition returns the byte range of summary as a subslice of the
// container's span, bounds-checked per spec.md §4.3 ("view_partition<T>").
func (c *InputIfc) ViewPartition(summary PartitionSummary) ([]byte, error) {
	data := c.span.Bytes()
	start := int(summary.Offset)
	need := start + int(summary.Cardinality)*int(summary.EntrySize)
	if start < 0 || need > len(data) {
		return nil, fmt.Errorf("container: partition out of range (need %d bytes, have %d)", need, len(data))
	}
	return data[start:need], nil
}
