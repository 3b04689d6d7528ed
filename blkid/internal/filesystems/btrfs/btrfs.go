// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package btrfs probes btrfs filesystems.
package btrfs

//go:generate go run ../../../../internal/cstruct/cstruct.go -pkg btrfs -struct SuperBlock -input superblock.h -endianness LittleEndian

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/siderolabs/go-pointer"
	"golang.org/x/crypto/blake2b"

	"github.com/siderolabs/go-blkid/blkid/internal/magic"
	"github.com/siderolabs/go-blkid/blkid/internal/probe"
	"github.com/siderolabs/go-blkid/blkid/internal/utils"
	"github.com/siderolabs/go-blkid/internal/ioutil"
)

// The superblock copy at 64KiB is authoritative on regular devices; zoned
// devices keep a superblock log in the first two zones instead.
const (
	superblockOffset = 64 * 1024
	superInfoSize    = 4096
	logZones         = 2
)

var (
	btrfsMagic1 = magic.Magic{
		Offset:     0x40,
		KiloOffset: 64,
		Value:      []byte("_BHRfS_M"),
	}

	btrfsMagic2 = magic.Magic{
		Offset:     0x40,
		Zoned:      true,
		ZoneNumber: 0,
		Value:      []byte("_BHRfS_M"),
	}

	btrfsMagic3 = magic.Magic{
		Offset:     0x40,
		Zoned:      true,
		ZoneNumber: 1,
		Value:      []byte("_BHRfS_M"),
	}
)

// Checksum algorithms by the on-disk csum_type.
const (
	csumTypeCRC32c  = 0
	csumTypeXXHash  = 1
	csumTypeSHA256  = 2
	csumTypeBlake2b = 3
)

var (
	// errNoSuperblock means both superblock log zones are still empty.
	errNoSuperblock = errors.New("no superblock in log zones")

	// errUncleanZones means the log zone states are inconsistent.
	errUncleanZones = errors.New("unclean superblock log zones")
)

// Probe for the filesystem.
type Probe struct{}

// Magic returns the magic value for the filesystem.
func (p *Probe) Magic() []*magic.Magic {
	return []*magic.Magic{
		&btrfsMagic1,
		&btrfsMagic2,
		&btrfsMagic3,
	}
}

// Name returns the name of the filesystem.
func (p *Probe) Name() string {
	return "btrfs"
}

// Probe runs the further inspection and returns the result if successful.
func (p *Probe) Probe(r probe.Reader, _ magic.Magic) (*probe.Result, error) {
	offset := uint64(superblockOffset)

	if r.GetZoneSize() != 0 {
		logOffset, ok, err := sbLogOffset(r)
		if err != nil {
			return nil, err
		}

		if !ok {
			return nil, nil //nolint:nilnil
		}

		offset = logOffset
	}

	buf := make([]byte, superInfoSize)

	if err := ioutil.ReadFullAt(r, buf, int64(offset)); err != nil {
		return nil, err
	}

	sb := SuperBlock(buf)

	if !csumValid(sb.Get_csum_type(), buf) {
		return nil, nil //nolint:nilnil
	}

	fsUUID, err := uuid.FromBytes(sb.Get_fsid())
	if err != nil {
		return nil, err
	}

	devUUID, err := uuid.FromBytes(sb.Get_dev_item_uuid())
	if err != nil {
		return nil, err
	}

	res := &probe.Result{
		UUID:    &fsUUID,
		SubUUID: &devUUID,

		BlockSize:           sb.Get_sectorsize(),
		FilesystemBlockSize: sb.Get_sectorsize(),
		ProbedSize:          sb.Get_total_bytes(),
	}

	if lbl := sb.Get_label(); lbl[0] != 0 {
		res.Label = pointer.To(string(utils.CutLabel(lbl)))
	}

	return res, nil
}

// csumValid verifies the superblock checksum over everything past the csum
// field itself.
func csumValid(csumType uint16, buf []byte) bool {
	csum, data := buf[:32], buf[32:]

	switch csumType {
	case csumTypeCRC32c:
		// the on-disk crc32c carries the final inversion, utils.CRC32c does not
		return binary.LittleEndian.Uint32(csum) == ^utils.CRC32c(data)
	case csumTypeXXHash:
		return binary.LittleEndian.Uint64(csum) == xxhash.Sum64(data)
	case csumTypeSHA256:
		sum := sha256.Sum256(data)

		return bytes.Equal(csum, sum[:])
	case csumTypeBlake2b:
		sum := blake2b.Sum256(data)

		return bytes.Equal(csum, sum[:])
	default:
		return false
	}
}

// sbLogOffset locates the active superblock of a zoned device.
func sbLogOffset(r probe.Reader) (uint64, bool, error) {
	zones, err := r.GetZones(0, logZones)
	if err != nil {
		return 0, false, err
	}

	if len(zones) < logZones {
		return 0, false, nil
	}

	// A conventional zone pins the superblock at its head.
	for _, zone := range zones[:logZones] {
		if zone.Conventional {
			return zone.Start, true, nil
		}
	}

	wp, err := sbWritePointer(r, zones)

	switch {
	case errors.Is(err, errNoSuperblock):
		// Nothing written yet, probe the head of the first zone.
		return wp, true, nil
	case errors.Is(err, errUncleanZones):
		return 0, false, nil
	case err != nil:
		return 0, false, err
	}

	if wp == zones[0].Start {
		wp = zones[1].Start + zones[1].Length
	}

	return wp - superInfoSize, true, nil
}

// sbWritePointer picks the byte position right past the most recently written
// superblock from the state of the two log zones.
//
// Both zones empty is reported via errNoSuperblock. Zone 1 in use while
// zone 0 is not full yet cannot happen on a clean log and is reported via
// errUncleanZones. When both zones are full the generation of the last
// superblock in each decides.
func sbWritePointer(r probe.Reader, zones []probe.Zone) (uint64, error) {
	empty0, full0 := zones[0].Empty, zones[0].Full
	empty1, full1 := zones[1].Empty, zones[1].Full

	switch {
	case empty0 && empty1:
		return zones[0].Start, errNoSuperblock
	case full0 && full1:
		gen := make([]uint64, logZones)

		for i := range logZones {
			buf := make([]byte, superInfoSize)

			if err := ioutil.ReadFullAt(r, buf, int64(zones[i].Start+zones[i].Length-superInfoSize)); err != nil {
				return 0, err
			}

			gen[i] = SuperBlock(buf).Get_generation()
		}

		if gen[0] > gen[1] {
			return zones[1].Start, nil
		}

		return zones[0].Start, nil
	case !full0 && (empty1 || full1):
		return zones[0].WritePointer, nil
	case full0:
		return zones[1].WritePointer, nil
	default:
		return 0, errUncleanZones
	}
}
