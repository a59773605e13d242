package container

import (
	"encoding/binary"
	"fmt"

	"github.com/ifcreader/ifc/internal/prim"
)

// Signature is the fixed 4-byte pattern every IFC file must begin with
// (spec.md §6.1).
var Signature = [4]byte{0x54, 0x51, 0x45, 0x1A}

// digestSize is the width of the stored SHA-256 integrity hash.
const digestSize = 32

// headerSize is the encoded size in bytes of Header, matching the field
// layout in spec.md §6.1 exactly (all fields already 4-byte aligned).
const headerSize = 1 + 1 + 1 + 1 + 4 + 4 + 4 + 4 + 4 + 4 + 4 + 4 + 1 + 3 // trailing 3 bytes pad internal_partition to a 4-byte boundary

// partitionSummarySize is the encoded size of one PartitionSummary record.
const partitionSummarySize = 16

// Arch enumerates the target architectures recorded in the header (spec.md
// §3, referenced by §4.3 step 4's compatibility rule).
type Arch uint8

const (
	ArchUnknown Arch = iota
	ArchX86
	ArchX64
	ArchARM32
	ArchARM64
	ArchHybridX86ARM64
)

// UnitSort distinguishes the kind of translation unit a file records, used
// by designator matching (spec.md §4.3.1).
type UnitSort uint8

const (
	UnitSortPrimary UnitSort = iota
	UnitSortPartition
	UnitSortHeader
	UnitSortExportedTU
)

// unitTagBits is the number of low bits of the header's packed `unit` field
// reserved for UnitSort; the remaining bits carry the TextOffset of the
// unit's name. Four sorts need two bits.
const unitTagBits = 2

// UnitDesignator is the decoded form of the header's packed `unit` field.
type UnitDesignator struct {
	Sort UnitSort
	Name prim.TextOffset
}

func decodeUnit(raw uint32) UnitDesignator {
	return UnitDesignator{
		Sort: UnitSort(raw & ((1 << unitTagBits) - 1)),
		Name: prim.TextOffset(raw >> unitTagBits),
	}
}

// Header is the fixed-layout record immediately following the signature and
// integrity digest (spec.md §6.1).
type Header struct {
	MajorVersion      prim.Version
	MinorVersion      prim.Version
	Abi               uint8
	Arch              Arch
	Cplusplus         uint32
	StringTableBytes  prim.ByteOffset
	StringTableSize   uint32
	Unit              UnitDesignator
	SrcPath           prim.TextOffset
	GlobalScope       uint32 // ScopeIndex, kept raw to avoid an import cycle with ixsort users
	Toc               prim.ByteOffset
	PartitionCount    uint32
	InternalPartition bool
}

// FormatVersion returns the header's (major, minor) pair as a prim.FormatVersion.
func (h Header) FormatVersion() prim.FormatVersion {
	return prim.FormatVersion{Major: h.MajorVersion, Minor: h.MinorVersion}
}

func decodeHeader(b []byte) (Header, error) {
	if len(b) < headerSize {
		return Header{}, fmt.Errorf("container: header truncated: need %d bytes, have %d", headerSize, len(b))
	}
	var h Header
	h.MajorVersion = prim.Version(b[0])
	h.MinorVersion = prim.Version(b[1])
	h.Abi = b[2]
	h.Arch = Arch(b[3])
	h.Cplusplus = binary.LittleEndian.Uint32(b[4:8])
	h.StringTableBytes = prim.ByteOffset(binary.LittleEndian.Uint32(b[8:12]))
	h.StringTableSize = binary.LittleEndian.Uint32(b[12:16])
	h.Unit = decodeUnit(binary.LittleEndian.Uint32(b[16:20]))
	h.SrcPath = prim.TextOffset(binary.LittleEndian.Uint32(b[20:24]))
	h.GlobalScope = binary.LittleEndian.Uint32(b[24:28])
	h.Toc = prim.ByteOffset(binary.LittleEndian.Uint32(b[28:32]))
	h.PartitionCount = binary.LittleEndian.Uint32(b[32:36])
	h.InternalPartition = b[36] != 0
	return h, nil
}

// PartitionSummary locates and describes one partition (spec.md §3.6/§6.1).
type PartitionSummary struct {
	Name        prim.TextOffset
	Offset      prim.ByteOffset
	Cardinality prim.Cardinality
	EntrySize   prim.EntitySize
}

func decodePartitionSummary(b []byte) PartitionSummary {
	return PartitionSummary{
		Name:        prim.TextOffset(binary.LittleEndian.Uint32(b[0:4])),
		Offset:      prim.ByteOffset(binary.LittleEndian.Uint32(b[4:8])),
		Cardinality: prim.Cardinality(binary.LittleEndian.Uint32(b[8:12])),
		EntrySize:   prim.EntitySize(binary.LittleEndian.Uint32(b[12:16])),
	}
}

// ArchCompatible implements the compatibility rule of spec.md §4.3 step 4:
// equal architectures are always compatible, and a HybridX86ARM64 source
// file additionally satisfies a request for plain X86.
func ArchCompatible(have, want Arch) bool {
	if want == ArchUnknown || have == want {
		return true
	}
	return have == ArchHybridX86ARM64 && want == ArchX86
}
