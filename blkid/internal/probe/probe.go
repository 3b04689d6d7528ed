// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package probe contains the interfaces and types for the probers.
package probe

import (
	"io"

	"github.com/google/uuid"

	"github.com/siderolabs/go-blkid/blkid/internal/magic"
)

// Reader is the interface to read the probed device.
type Reader interface {
	io.ReaderAt

	GetSectorSize() uint
	GetSize() uint64

	// GetZoneSize returns the zone size in bytes, 0 for non-zoned devices.
	GetZoneSize() uint64
	// GetZones reports count zones starting with the zone containing the byte offset.
	GetZones(offset uint64, count int) ([]Zone, error)
}

// Zone describes a single zone of a zoned block device.
//
// All offsets and lengths are in bytes.
type Zone struct {
	Start        uint64
	Length       uint64
	WritePointer uint64

	Conventional bool
	Empty        bool
	Full         bool
}

// Prober is an interface for a filesystem/volume manager/partition table prober.
type Prober interface {
	// Name returns the name of the filesystem or volume manager.
	Name() string
	// Magic returns the list of magic values for the prober.
	Magic() []*magic.Magic
	// Probe verifies the superblock at the matched magic and extracts the result.
	//
	// Probe returns nil Result and nil error to reject the candidate without
	// failing the scan.
	Probe(Reader, magic.Magic) (*Result, error)
}

// Usage category of a prober.
type Usage int

// Usage categories.
const (
	UsageFilesystem Usage = iota
	UsageRAID
	UsageCrypto
	UsageOther
)

// String implements fmt.Stringer.
func (u Usage) String() string {
	switch u {
	case UsageFilesystem:
		return "filesystem"
	case UsageRAID:
		return "raid"
	case UsageCrypto:
		return "crypto"
	case UsageOther:
		return "other"
	default:
		return "unknown"
	}
}

// Entry is a registry entry: a prober with its scanning constraints.
type Entry struct {
	Prober

	Usage Usage

	// MinSize excludes devices smaller than the given size from probing.
	MinSize uint64

	// Tolerant formats may co-exist with another match without being
	// reported as an ambivalent probe.
	Tolerant bool

	// PartitionTable probers report the PTTYPE tag set and follow
	// different wipe safety rules.
	PartitionTable bool
}

// Result is a probe result from a single prober.
type Result struct {
	UUID *uuid.UUID
	// SubUUID is the per-device UUID for multi-device filesystems.
	SubUUID *uuid.UUID
	// Serial is the volume identifier for filesystems whose IDs are not
	// 16-byte UUIDs; it is reported in place of the UUID.
	Serial string

	// Label is whitespace-trimmed, RawLabel keeps the bytes as read.
	Label    *string
	RawLabel []byte
	// BootLabel is the FAT boot sector label when it differs from the
	// root directory label.
	BootLabel *string
	// BootSystemID is the boot record system identifier (iso9660).
	BootSystemID *string

	Version string
	SecType string

	BlockSize           uint32
	FilesystemBlockSize uint32
	ProbedSize          uint64
	FilesystemLastBlock uint64

	Parts []Partition

	// SBMagic overrides the matched magic value for signature reporting
	// (used by probers with no fixed on-disk magic).
	SBMagic       []byte
	SBMagicOffset uint64
}

// Partition is a single partition entry of a partition table.
type Partition struct {
	UUID     *uuid.UUID
	TypeUUID *uuid.UUID
	Label    *string

	// Index is the partition index, 1-based.
	Index uint

	// Offset and Size in bytes.
	Offset uint64
	Size   uint64
}
