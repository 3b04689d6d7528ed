// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package zfs probes ZFS pool member devices.
package zfs

//go:generate go run ../../../../internal/cstruct/cstruct.go -pkg zfs -struct ZFSUB -input zfs.h -endianness LittleEndian

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"slices"
	"strconv"

	"github.com/siderolabs/go-pointer"

	"github.com/siderolabs/go-blkid/blkid/internal/magic"
	"github.com/siderolabs/go-blkid/blkid/internal/probe"
	"github.com/siderolabs/go-blkid/internal/ioutil"
)

// https://github.com/util-linux/util-linux/blob/c0207d354ee47fb56acfa64b03b5b559bb301280/libblkid/src/superblocks/zfs.c
//
// Each device carries four 256KiB vdev labels, two at the front and two at
// the tail. The uberblock ring occupies the second half of a label, the
// nvlist with the pool configuration starts 16KiB in.
const (
	zfsUberblockCount  = 128
	zfsUberblockSize   = 1024
	zfsVdevLabelSize   = 1024 * 256
	zfsUberblockOffset = 1024 * 128
	zfsNVListOffset    = 1024 * 16
	zfsMinUberblocks   = 4 // Number of uberblocks to be found
)

const (
	zfsMagic     = uint64(0x00bab10c)
	zfsMagicSwap = uint64(0x0cb1ba0000000000) // endian-swapped
)

// nvlist value types.
const (
	nvDataTypeUint64 = 8
	nvDataTypeString = 9
)

// nullMagic matches always.
var nullMagic = magic.Magic{}

// Probe for the filesystem.
type Probe struct{}

// Magic returns the magic value for the filesystem.
func (p *Probe) Magic() []*magic.Magic {
	return []*magic.Magic{&nullMagic}
}

// Name returns the name of the filesystem.
func (p *Probe) Name() string {
	return "zfs"
}

// Probe runs the further inspection and returns the result if successful.
func (p *Probe) Probe(r probe.Reader, _ magic.Magic) (*probe.Result, error) {
	size := r.GetSize()
	// How many bytes between end of last label and the end of the block dev.
	blkAlign := size % zfsVdevLabelSize

	var (
		ub        ZFSUB
		ubOffset  uint64
		labelBase uint64
		swapped   bool
	)

	found := 0

	for _, labelOffset := range []uint64{
		0,
		zfsVdevLabelSize,
		size - 2*zfsVdevLabelSize - blkAlign,
		size - zfsVdevLabelSize - blkAlign,
	} {
		labelBuf := make([]byte, zfsVdevLabelSize)
		if err := ioutil.ReadFullAt(r, labelBuf, int64(labelOffset)); err != nil {
			return nil, err
		}

		foundInLabel := 0

		for i := range zfsUberblockCount {
			offset := zfsUberblockOffset + uint64(i)*zfsUberblockSize
			candidate := ZFSUB(labelBuf[offset : offset+ZFSUB_SIZE])

			switch candidate.Get_ub_magic() {
			case zfsMagic:
				ub, ubOffset, swapped = candidate, offset, false
				foundInLabel++
			case zfsMagicSwap:
				ub, ubOffset, swapped = candidate, offset, true
				foundInLabel++
			}
		}

		if foundInLabel > 0 {
			found += foundInLabel
			ubOffset += labelOffset
			labelBase = labelOffset

			if found >= zfsMinUberblocks {
				break
			}
		}
	}

	if found < zfsMinUberblocks {
		// Not enough uberblocks
		return nil, nil //nolint:nilnil
	}

	version := ub.Get_ub_version()
	guidSum := ub.Get_ub_guid_sum()

	if swapped {
		version = bits.ReverseBytes64(version)
		guidSum = bits.ReverseBytes64(guidSum)
	}

	res := &probe.Result{
		Serial:  fmt.Sprintf("%016x", guidSum),
		Version: strconv.FormatUint(version, 10),

		SBMagic:       slices.Clone([]byte(ub[:8])),
		SBMagicOffset: ubOffset,
	}

	nvlistBuf := make([]byte, 4096)
	if err := ioutil.ReadFullAt(r, nvlistBuf, int64(labelBase&^(zfsVdevLabelSize-1)+zfsNVListOffset)); err == nil {
		extractPoolName(res, nvlistBuf)
	}

	return res, nil
}

// extractPoolName walks the label nvlist looking for the pool name.
//
// The name pair sits within the first 4KiB of the nvlist for every pool seen
// in the wild, so a single buffer is enough and no nvpair ever crosses its
// boundary.
func extractPoolName(res *probe.Result, buf []byte) {
	// skip the 12-byte nvlist header
	p := buf[12:]

	for len(p) > 12 {
		nvpSize := binary.BigEndian.Uint32(p[0:4])
		nameLen := binary.BigEndian.Uint32(p[8:12])

		if nvpSize == 0 {
			break
		}

		nameSize := (uint64(nameLen) + 3) &^ 3

		// nvpair fits in the buffer and the name fits in the nvpair?
		if uint64(nvpSize) > uint64(len(p)) || nameSize+12 > uint64(nvpSize) {
			break
		}

		if string(p[12:12+nameLen]) == "name" {
			value := p[12+nameSize : nvpSize]

			if len(value) >= 12 && binary.BigEndian.Uint32(value[0:4]) == nvDataTypeString {
				strLen := binary.BigEndian.Uint32(value[8:12])

				if uint64(strLen)+12 <= uint64(len(value)) {
					res.Label = pointer.To(string(value[12 : 12+strLen]))
				}
			}

			break
		}

		p = p[nvpSize:]
	}
}
