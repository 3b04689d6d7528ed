// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package magic implements the magic number detection for files and block devices.
package magic

import "bytes"

// Magic defines a filesystem/volume manager/etc magic value.
//
// The absolute offset of the value is KiloOffset*1024 + Offset; Offset values
// beyond 1024 fold their upper bits into the kilobyte base, so signature
// tables can declare e.g. Offset 0xff6 with KiloOffset 0.
//
// Zoned magics are declared relative to a zone of a zoned block device:
// ZoneNumber selects the zone, ZoneKiloOffset is the kilobyte offset within
// that zone. Zoned magics never match on devices without zones.
//
// An empty Value matches any device (used by probers which have no fixed
// signature and do all verification themselves).
type Magic struct {
	// Value to search for.
	Value []byte

	// Offset of the magic value within its 1024-byte block.
	Offset int64

	// KiloOffset of the block in 1024-byte units from the device start.
	KiloOffset int64

	// Zoned magics resolve the kilobyte base against a device zone.
	Zoned          bool
	ZoneNumber     int64
	ZoneKiloOffset int64
}

// BlockBase resolves the offset of the 1024-byte block containing the value.
//
// Returns false for zoned magics when the device has no zones.
func (magic *Magic) BlockBase(zoneSize uint64) (int64, bool) {
	kiloOff := magic.KiloOffset

	if magic.Zoned {
		if zoneSize == 0 {
			return 0, false
		}

		kiloOff = magic.ZoneNumber*int64(zoneSize>>10) + magic.ZoneKiloOffset
	}

	return (kiloOff + magic.Offset>>10) << 10, true
}

// Matches returns true if the magic value is found in a block read at BlockBase.
func (magic *Magic) Matches(block []byte) bool {
	offset := int(magic.Offset & 0x3ff)

	if len(block) < offset+len(magic.Value) {
		return false
	}

	return bytes.Equal(block[offset:offset+len(magic.Value)], magic.Value)
}

// ResolvedOffset returns the absolute offset of the value for a base
// previously resolved with BlockBase.
func (magic *Magic) ResolvedOffset(base int64) uint64 {
	return uint64(base + magic.Offset&0x3ff)
}
