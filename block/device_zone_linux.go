// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package block

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Zoned blockdevice ioctls.
//
// Hardcoded here to avoid CGo dependency (include/uapi/linux/blkzoned.h).
//
//nolint:revive,stylecheck
const (
	BLKREPORTZONE = 0xc0101282
	BLKRESETZONE  = 0x40101283
	BLKGETZONESZ  = 0x80041284
)

// The kernel zone interface counts in 512-byte sectors regardless of the
// logical sector size of the device.
const sectorShift = 9

const (
	blkZoneTypeConventional = 0x1

	blkZoneCondEmpty = 0x1
	blkZoneCondFull  = 0xe
)

// blkZone mirrors struct blk_zone.
type blkZone struct {
	Start    uint64
	Len      uint64
	Wp       uint64
	Type     uint8
	Cond     uint8
	NonSeq   uint8
	Reset    uint8
	_        [4]uint8
	Capacity uint64
	_        [24]uint8
}

const reportZonesChunk = 64

// blkZoneReport mirrors struct blk_zone_report followed by the zone array.
type blkZoneReport struct {
	Sector  uint64
	NrZones uint32
	_       uint32
	Zones   [reportZonesChunk]blkZone
}

// Zone describes a single zone of a zoned blockdevice.
//
// All quantities are in bytes.
type Zone struct {
	Start        uint64
	Length       uint64
	WritePointer uint64

	Conventional bool
	Empty        bool
	Full         bool
}

// GetZoneSize returns the zone size of a zoned blockdevice in bytes.
//
// Non-zoned blockdevices return zero size.
func (d *Device) GetZoneSize() (uint64, error) {
	var sectors uint32

	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, d.f.Fd(), BLKGETZONESZ, uintptr(unsafe.Pointer(&sectors))); errno != 0 {
		if errno == unix.ENOTTY || errno == unix.EINVAL {
			// no zone support in the device or the kernel
			return 0, nil
		}

		return 0, errno
	}

	runtime.KeepAlive(d)

	return uint64(sectors) << sectorShift, nil
}

// ReportZones returns count zones starting with the zone containing the byte offset.
//
// Fewer zones are returned when the device ends.
func (d *Device) ReportZones(offset uint64, count int) ([]Zone, error) {
	zones := make([]Zone, 0, count)

	sector := offset >> sectorShift

	for len(zones) < count {
		report := blkZoneReport{
			Sector:  sector,
			NrZones: uint32(min(count-len(zones), reportZonesChunk)),
		}

		if _, _, errno := unix.Syscall(unix.SYS_IOCTL, d.f.Fd(), BLKREPORTZONE, uintptr(unsafe.Pointer(&report))); errno != 0 {
			return nil, errno
		}

		runtime.KeepAlive(d)

		if report.NrZones == 0 {
			break
		}

		for _, zone := range report.Zones[:report.NrZones] {
			zones = append(zones, Zone{
				Start:        zone.Start << sectorShift,
				Length:       zone.Len << sectorShift,
				WritePointer: zone.Wp << sectorShift,

				Conventional: zone.Type == blkZoneTypeConventional,
				Empty:        zone.Cond == blkZoneCondEmpty,
				Full:         zone.Cond == blkZoneCondFull,
			})

			sector = zone.Start + zone.Len
		}
	}

	return zones, nil
}

// ResetZone rewinds the write pointer of the sequential write zones overlapping the byte range.
//
// The range must be aligned to zone boundaries.
func (d *Device) ResetZone(start, length uint64) error {
	rng := [2]uint64{start >> sectorShift, length >> sectorShift}

	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, d.f.Fd(), BLKRESETZONE, uintptr(unsafe.Pointer(&rng[0]))); errno != 0 {
		return errno
	}

	runtime.KeepAlive(d)

	return nil
}
