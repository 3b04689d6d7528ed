// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package blkid probes blockdevices for filesystem, RAID, encryption and
// partition table signatures.
package blkid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/siderolabs/gen/xslices"
	"go.uber.org/zap"

	"github.com/siderolabs/go-blkid/blkid/internal/probe"
	"github.com/siderolabs/go-blkid/block"
)

// Common errors.
var (
	// ErrFailedLock is returned when the device lock can't be acquired.
	ErrFailedLock = errors.New("failed to acquire shared lock while probing blockdevice")
	// ErrNotFound is returned when the scan is exhausted without a match.
	ErrNotFound = errors.New("no signature found")
	// ErrAmbivalent is returned when more than one incompatible signature is found.
	//
	// The returned error unwraps to *AmbivalentError listing the conflicting matches.
	ErrAmbivalent = errors.New("ambivalent probe result")
	// ErrRefuseScan is returned for devices too small to contain any signature.
	ErrRefuseScan = errors.New("device refused for scanning")
	// ErrWipeRefused is returned when wiping a partition table signature on a
	// device which is itself a partition.
	ErrWipeRefused = errors.New("refusing to wipe a partition table signature on a partition")
)

// AmbivalentMatch is one of the conflicting matches of an ambivalent probe.
type AmbivalentMatch struct {
	Name   string
	Offset uint64
}

// AmbivalentError reports more than one incompatible signature on a device.
//
// It is a data integrity signal, not an I/O failure: the device should be
// wiped before use.
type AmbivalentError struct {
	Matches []AmbivalentMatch
}

// Error implements the error interface.
func (e *AmbivalentError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAmbivalent,
		strings.Join(
			xslices.Map(e.Matches, func(m AmbivalentMatch) string {
				return fmt.Sprintf("%s at offset %#x", m.Name, m.Offset)
			}),
			", ",
		),
	)
}

// Unwrap makes the error match ErrAmbivalent via errors.Is.
func (e *AmbivalentError) Unwrap() error {
	return ErrAmbivalent
}

// Usage is the category of the matched format.
type Usage = probe.Usage

// Usage categories.
const (
	UsageFilesystem = probe.UsageFilesystem
	UsageRAID       = probe.UsageRAID
	UsageCrypto     = probe.UsageCrypto
	UsageOther      = probe.UsageOther
)

// ParseUsage parses the string form of a usage category.
func ParseUsage(s string) (Usage, error) {
	switch s {
	case "filesystem":
		return UsageFilesystem, nil
	case "raid":
		return UsageRAID, nil
	case "crypto":
		return UsageCrypto, nil
	case "other":
		return UsageOther, nil
	default:
		return 0, fmt.Errorf("unknown usage category %q", s)
	}
}

// Tag is a single name/value pair of a probe result.
//
// Tag names follow the libblkid conventions: TYPE, USAGE, LABEL, UUID,
// VERSION, and so on; partition table matches use the PTTYPE/PTUUID/PTMAGIC
// family instead.
type Tag struct {
	Name  string
	Value string
}

// Signature locates one matched signature on the device.
type Signature struct {
	// Offset of the raw signature bytes on the device.
	Offset uint64
	// Length of the raw signature bytes.
	Length int
	// Magic is the raw signature value.
	Magic []byte

	// Name of the matched format.
	Name string
	// Usage category of the matched format.
	Usage Usage
	// PartitionTable is set for partition table signatures, which follow
	// stricter wipe safety rules.
	PartitionTable bool
}

// Result is a single successful probe of one registry entry.
type Result struct {
	// Signature of the match.
	Signature Signature

	// Tags extracted by the prober, insertion-ordered and unique by name.
	Tags []Tag
}

// Info represents the result of the probe.
type Info struct { //nolint:govet
	// Link to the block device, only if the probed file is a blockdevice.
	BlockDevice *block.Device

	// DevNo is the device number of the probed device.
	//
	// Only available if the probed file is a blockdevice.
	DevNo uint64

	// WholeDisk is true if the probed device is a whole disk.
	//
	// Only available if the probed file is a blockdevice.
	WholeDisk bool

	// Overall size of the probed device (in bytes).
	Size uint64

	// Sector size of the device (in bytes).
	SectorSize uint

	// Optimal I/O size for the device (in bytes).
	IOSize uint

	// ProbeResult is the result of probing the device.
	ProbeResult

	// Tags of the top-level match in libblkid naming.
	Tags []Tag

	// Parts is the result of probing the nested filesystem/partitions.
	Parts []NestedProbeResult

	charDevice bool
}

// ProbeResult is a result of probing a single filesystem/partition.
type ProbeResult struct { //nolint:govet
	Name  string
	UUID  *uuid.UUID
	Label *string

	BlockSize           uint32
	FilesystemBlockSize uint32
	ProbedSize          uint64
}

// NestedResult is result of probing a nested filesystem/partition.
//
// It annotates the ProbeResult with the partition information.
type NestedResult struct {
	PartitionUUID  *uuid.UUID
	PartitionType  *uuid.UUID
	PartitionLabel *string
	PartitionIndex uint // 1-based index

	PartitionOffset, PartitionSize uint64
}

// NestedProbeResult is a result of probing a nested filesystem/partition.
type NestedProbeResult struct { //nolint:govet
	NestedResult
	ProbeResult

	Parts []NestedProbeResult
}

// ProbeOptions is the options for probing.
type ProbeOptions struct {
	// Logger to use for logging.
	Logger *zap.Logger
	// SkipLocking blockdevices in shared mode.
	SkipLocking bool
	// Writable locks the blockdevice exclusively (used by wiping sessions).
	Writable bool

	// Names restricts the scan to the registry entries with the given names.
	Names []string
	// Usages restricts the scan to the registry entries with the given usages.
	Usages []Usage
}

// ProbeOption is an option for probing.
type ProbeOption func(*ProbeOptions)

// WithProbeLogger sets the logger for the probe.
func WithProbeLogger(logger *zap.Logger) ProbeOption {
	return func(o *ProbeOptions) {
		o.Logger = logger
	}
}

// WithSkipLocking skips locking blockdevices in shared mode.
func WithSkipLocking(skip bool) ProbeOption {
	return func(o *ProbeOptions) {
		o.SkipLocking = skip
	}
}

// WithWritable locks the blockdevice exclusively instead of shared.
func WithWritable(writable bool) ProbeOption {
	return func(o *ProbeOptions) {
		o.Writable = writable
	}
}

// WithOnlyNames restricts the scan to the registry entries with the given names.
func WithOnlyNames(names ...string) ProbeOption {
	return func(o *ProbeOptions) {
		o.Names = append(o.Names, names...)
	}
}

// WithOnlyUsages restricts the scan to the registry entries with the given usages.
func WithOnlyUsages(usages ...Usage) ProbeOption {
	return func(o *ProbeOptions) {
		o.Usages = append(o.Usages, usages...)
	}
}

func applyProbeOptions(opts ...ProbeOption) ProbeOptions {
	o := ProbeOptions{
		Logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WipeOptions is the options for wiping a single signature.
type WipeOptions struct {
	// DryRun hides the signature from the session instead of writing to the device.
	DryRun bool
	// Force allows wiping a partition table signature on a partition.
	Force bool
	// BackupDir, when set, stores the erased bytes in a backup file before wiping.
	BackupDir string
}

// WipeOption is an option for wiping.
type WipeOption func(*WipeOptions)

// WithWipeDryRun hides the signature from the session instead of writing to the device.
func WithWipeDryRun(dryRun bool) WipeOption {
	return func(o *WipeOptions) {
		o.DryRun = dryRun
	}
}

// WithWipeForce allows wiping a partition table signature on a partition.
func WithWipeForce(force bool) WipeOption {
	return func(o *WipeOptions) {
		o.Force = force
	}
}

// WithWipeBackup stores the erased bytes in a backup file in the given directory.
func WithWipeBackup(dir string) WipeOption {
	return func(o *WipeOptions) {
		o.BackupDir = dir
	}
}

func applyWipeOptions(opts ...WipeOption) WipeOptions {
	var o WipeOptions

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
