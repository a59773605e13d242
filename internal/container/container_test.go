package container

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/ifcreader/ifc/internal/bytespan"
)

// buildMinimalIfc constructs a well-formed, minimal IFC byte image: no
// partitions, an empty string table, global_scope null. Used across tests
// that only need a container that validates cleanly.
func buildMinimalIfc(t *testing.T, withHash bool) []byte {
	t.Helper()

	header := make([]byte, headerSize)
	header[0] = byte(CurrentFormatVersion.Major)
	header[1] = byte(CurrentFormatVersion.Minor)
	header[2] = 0 // abi
	header[3] = byte(ArchX64)
	binary.LittleEndian.PutUint32(header[4:8], 202002) // cplusplus
	// string_table_bytes / string_table_size: empty table right after header.
	stringTableOffset := uint32(4 + digestSize + headerSize)
	binary.LittleEndian.PutUint32(header[8:12], stringTableOffset)
	binary.LittleEndian.PutUint32(header[12:16], 0)
	binary.LittleEndian.PutUint32(header[16:20], 0) // unit: Primary, null name
	binary.LittleEndian.PutUint32(header[20:24], 0) // src_path
	binary.LittleEndian.PutUint32(header[24:28], 0) // global_scope
	binary.LittleEndian.PutUint32(header[28:32], stringTableOffset) // toc == right after (empty) string table
	binary.LittleEndian.PutUint32(header[32:36], 0)                 // partition_count
	header[36] = 0                                                  // internal_partition

	buf := make([]byte, 0, 4+digestSize+len(header))
	buf = append(buf, Signature[:]...)
	buf = append(buf, make([]byte, digestSize)...) // placeholder digest
	buf = append(buf, header...)

	if withHash {
		sum := sha256.Sum256(buf[4+digestSize:])
		copy(buf[4:4+digestSize], sum[:])
	}
	return buf
}

func TestValidateMinimalContainer(t *testing.T) {
	data := buildMinimalIfc(t, true)
	span := bytespan.FromBytes(data)

	c, err := Open("minimal.ifc", span, Options{IntegrityCheck: true})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if c.State() != StateValidated {
		t.Fatalf("State() = %v, want Validated", c.State())
	}
	if len(c.Toc) != 0 {
		t.Fatalf("expected empty TOC, got %d entries", len(c.Toc))
	}
}

func TestValidateRejectsBadSignature(t *testing.T) {
	data := buildMinimalIfc(t, true)
	data[0] = 0x00
	span := bytespan.FromBytes(data)

	_, err := Open("bad-sig.ifc", span, Options{})
	if err == nil {
		t.Fatal("expected an error for a corrupt signature")
	}
	if _, ok := err.(*MissingIfcHeaderError); !ok {
		t.Errorf("expected *MissingIfcHeaderError, got %T: %v", err, err)
	}
}

func TestValidateRejectsBadIntegrityHash(t *testing.T) {
	data := buildMinimalIfc(t, false) // digest left as zero, won't match
	span := bytespan.FromBytes(data)

	_, err := Open("bad-hash.ifc", span, Options{IntegrityCheck: true})
	if err == nil {
		t.Fatal("expected an error for a mismatched integrity hash")
	}
	if _, ok := err.(*IntegrityCheckFailedError); !ok {
		t.Errorf("expected *IntegrityCheckFailedError, got %T: %v", err, err)
	}
}

func TestValidateRejectsTruncatedToc(t *testing.T) {
	data := buildMinimalIfc(t, false)
	// Claim one partition exists even though the file has no room for it.
	binary.LittleEndian.PutUint32(data[4+digestSize+32:4+digestSize+36], 1)
	span := bytespan.FromBytes(data)

	_, err := Open("truncated.ifc", span, Options{})
	if err == nil {
		t.Fatal("expected an error for a truncated table of contents")
	}
	if _, ok := err.(*IfcReadFailureError); !ok {
		t.Errorf("expected *IfcReadFailureError, got %T: %v", err, err)
	}
}

func TestValidateRejectsArchMismatch(t *testing.T) {
	data := buildMinimalIfc(t, true)
	span := bytespan.FromBytes(data)

	_, err := Open("arch.ifc", span, Options{TargetArch: ArchARM64})
	if err == nil {
		t.Fatal("expected an architecture mismatch error")
	}
	if _, ok := err.(*IfcArchMismatchError); !ok {
		t.Errorf("expected *IfcArchMismatchError, got %T: %v", err, err)
	}
}

func TestArchCompatibleHybridException(t *testing.T) {
	if !ArchCompatible(ArchHybridX86ARM64, ArchX86) {
		t.Error("HybridX86ARM64 source must be compatible with an X86 target")
	}
	if ArchCompatible(ArchHybridX86ARM64, ArchARM64) {
		t.Error("HybridX86ARM64 source must not be silently compatible with ARM64")
	}
	if !ArchCompatible(ArchX64, ArchX64) {
		t.Error("identical architectures must be compatible")
	}
}

func TestGetTextOffset(t *testing.T) {
	data := buildMinimalIfc(t, false)
	span := bytespan.FromBytes(data)
	c, err := Open("empty-strings.ifc", span, Options{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := c.Get(0); got != "" {
		t.Errorf("Get(0) = %q, want empty string for the null offset", got)
	}
}

// buildIfcWithUnit builds a well-formed, partition-less IFC image whose
// header.unit records unitSort and, if unitName is non-empty, a string
// table entry for it. Offset 0 is always the empty string, so a non-empty
// name starts at offset 1.
func buildIfcWithUnit(t *testing.T, unitSort UnitSort, unitName string) []byte {
	t.Helper()

	strs := []byte{0}
	var nameOffset uint32
	if unitName != "" {
		nameOffset = uint32(len(strs))
		strs = append(strs, unitName...)
		strs = append(strs, 0)
	}
	for len(strs)%4 != 0 {
		strs = append(strs, 0)
	}

	header := make([]byte, headerSize)
	header[0] = byte(CurrentFormatVersion.Major)
	header[1] = byte(CurrentFormatVersion.Minor)
	header[2] = 0 // abi
	header[3] = byte(ArchX64)
	binary.LittleEndian.PutUint32(header[4:8], 202002) // cplusplus
	stringTableOffset := uint32(4 + digestSize + headerSize)
	binary.LittleEndian.PutUint32(header[8:12], stringTableOffset)
	binary.LittleEndian.PutUint32(header[12:16], uint32(len(strs)))
	unitField := (nameOffset << unitTagBits) | uint32(unitSort)
	binary.LittleEndian.PutUint32(header[16:20], unitField)
	binary.LittleEndian.PutUint32(header[20:24], 0) // src_path
	binary.LittleEndian.PutUint32(header[24:28], 0) // global_scope
	tocOffset := stringTableOffset + uint32(len(strs))
	binary.LittleEndian.PutUint32(header[28:32], tocOffset)
	binary.LittleEndian.PutUint32(header[32:36], 0) // partition_count
	header[36] = 0                                  // internal_partition

	buf := make([]byte, 0, 4+digestSize+len(header)+len(strs))
	buf = append(buf, Signature[:]...)
	buf = append(buf, make([]byte, digestSize)...)
	buf = append(buf, header...)
	buf = append(buf, strs...)
	return buf
}

func openWithDesignator(t *testing.T, unitSort UnitSort, unitName string, opts Options) error {
	t.Helper()
	data := buildIfcWithUnit(t, unitSort, unitName)
	span := bytespan.FromBytes(data)
	opts.RunDesignatorCheck = true
	_, err := Open("designator.ifc", span, opts)
	return err
}

func TestMatchDesignatorPrimaryRejectsEmptyDesignator(t *testing.T) {
	// spec.md §4.3.1: an empty designator against a Primary unit must be
	// rejected unless AllowAnyPrimaryInterface is set — mirrors the
	// original designator_matches_ifc_unit_sort's "failed to have a valid
	// designator ... if we do not allow any arbitrary interface, exit."
	err := openWithDesignator(t, UnitSortPrimary, "Mod", Options{UnitSort: UnitSortPrimary})
	if err == nil {
		t.Fatal("expected rejection for an empty designator without AllowAnyPrimaryInterface")
	}
}

func TestMatchDesignatorPrimaryAcceptsMatchingName(t *testing.T) {
	err := openWithDesignator(t, UnitSortPrimary, "Mod", Options{UnitSort: UnitSortPrimary, Designator: "Mod"})
	if err != nil {
		t.Fatalf("expected a matching module name to validate, got: %v", err)
	}
}

func TestMatchDesignatorPrimaryRejectsMismatchedName(t *testing.T) {
	err := openWithDesignator(t, UnitSortPrimary, "Mod", Options{UnitSort: UnitSortPrimary, Designator: "Other"})
	if err == nil {
		t.Fatal("expected rejection for a mismatched module name")
	}
}

func TestMatchDesignatorPrimaryAllowAnyAcceptsSortMismatch(t *testing.T) {
	// The file is actually a Partition unit; asking for Primary with
	// AllowAnyPrimaryInterface set must still accept it, since the sort
	// mismatch falls through to the escape hatch rather than the name
	// comparison.
	err := openWithDesignator(t, UnitSortPartition, "Mod:Part", Options{
		UnitSort: UnitSortPrimary, Designator: "Mod", AllowAnyPrimaryInterface: true,
	})
	if err != nil {
		t.Fatalf("expected AllowAnyPrimaryInterface to accept a sort mismatch, got: %v", err)
	}
}

func TestMatchDesignatorPrimaryRejectsSortMismatchWithoutAllowAny(t *testing.T) {
	err := openWithDesignator(t, UnitSortPartition, "Mod:Part", Options{
		UnitSort: UnitSortPrimary, Designator: "Mod",
	})
	if err == nil {
		t.Fatal("expected rejection: unit sort does not match Primary/ExportedTU and AllowAnyPrimaryInterface is unset")
	}
}

func TestMatchDesignatorPartitionAcceptsMatchingHalves(t *testing.T) {
	err := openWithDesignator(t, UnitSortPartition, "Mod:Part", Options{
		UnitSort: UnitSortPartition, Designator: "Mod:Part",
	})
	if err != nil {
		t.Fatalf("expected matching module:partition halves to validate, got: %v", err)
	}
}

func TestMatchDesignatorPartitionRejectsMismatch(t *testing.T) {
	err := openWithDesignator(t, UnitSortPartition, "Mod:Part", Options{
		UnitSort: UnitSortPartition, Designator: "Mod:Other",
	})
	if err == nil {
		t.Fatal("expected rejection for a mismatched partition half")
	}
}

func TestMatchDesignatorPartitionRejectsMalformedDesignator(t *testing.T) {
	err := openWithDesignator(t, UnitSortPartition, "Mod:Part", Options{
		UnitSort: UnitSortPartition, Designator: "NoColonHere",
	})
	if err == nil {
		t.Fatal("expected rejection for a designator with no module:partition separator")
	}
}

func TestMatchDesignatorPartitionRejectsSortMismatchEvenWithAllowAny(t *testing.T) {
	// Unlike Primary/ExportedTU, Partition matching has no
	// AllowAnyPrimaryInterface escape hatch in the original.
	err := openWithDesignator(t, UnitSortPrimary, "Mod", Options{
		UnitSort: UnitSortPartition, Designator: "Mod:Part", AllowAnyPrimaryInterface: true,
	})
	if err == nil {
		t.Fatal("expected rejection: Partition designator matching has no AllowAnyPrimaryInterface escape")
	}
}

func TestMatchDesignatorHeaderAcceptsHeaderSort(t *testing.T) {
	err := openWithDesignator(t, UnitSortHeader, "", Options{UnitSort: UnitSortHeader})
	if err != nil {
		t.Fatalf("expected a Header-sort unit to validate under UnitSortHeader, got: %v", err)
	}
}

func TestMatchDesignatorHeaderRejectsNonHeaderSort(t *testing.T) {
	err := openWithDesignator(t, UnitSortPrimary, "Mod", Options{UnitSort: UnitSortHeader})
	if err == nil {
		t.Fatal("expected rejection: unit sort is Primary, not Header")
	}
}
