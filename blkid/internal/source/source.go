// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package source implements the buffered byte source the probers read through.
package source

import (
	"errors"
	"io"

	"github.com/siderolabs/go-blkid/blkid/internal/probe"
	"github.com/siderolabs/go-blkid/internal/ioutil"
)

// ErrNoZones is returned by GetZones when the device has no zone information.
var ErrNoZones = errors.New("device has no zone information")

// ZoneReporter reports zones of a zoned block device.
//
// The first reported zone is the one containing the byte offset.
type ZoneReporter func(offset uint64, count int) ([]probe.Zone, error)

// Source is a read-only view of the device or image being probed.
//
// It caches previously read ranges and masks hidden ranges, so a signature
// which was already claimed can be skipped on a re-scan. A source belongs to
// a single probing session and is not safe for concurrent use.
type Source struct {
	r io.ReaderAt

	size       uint64
	sectorSize uint

	zoneSize uint64
	zones    ZoneReporter

	charDevice bool
	cdrom      bool

	buffers  []*buffer
	hidden   []hiddenRange
	modified bool
}

type buffer struct {
	offset uint64
	data   []byte
}

type hiddenRange struct {
	offset, length uint64
}

// New creates a source over the reader with the declared size and sector size.
func New(r io.ReaderAt, size uint64, sectorSize uint) *Source {
	return &Source{
		r:          r,
		size:       size,
		sectorSize: sectorSize,
	}
}

// SetZones attaches zone information of a zoned block device.
func (src *Source) SetZones(zoneSize uint64, reporter ZoneReporter) {
	src.zoneSize = zoneSize
	src.zones = reporter
}

// SetCharDevice marks the source as backed by a character device.
func (src *Source) SetCharDevice(charDevice bool) {
	src.charDevice = charDevice
}

// SetCDROM marks the source as backed by a CD-ROM class device.
func (src *Source) SetCDROM(cdrom bool) {
	src.cdrom = cdrom
}

// Read returns length bytes at the offset, serving from the cache when possible.
//
// The returned slice is owned by the source and is valid until the cache is
// reset. Reads past the declared size fail with io.ErrUnexpectedEOF without
// returning partial data.
func (src *Source) Read(offset, length uint64) ([]byte, error) {
	if length == 0 {
		return nil, nil
	}

	if length > src.size || offset > src.size-length {
		return nil, io.ErrUnexpectedEOF
	}

	for _, b := range src.buffers {
		if offset >= b.offset && offset+length <= b.offset+uint64(len(b.data)) {
			return b.data[offset-b.offset : offset-b.offset+length], nil
		}
	}

	data := make([]byte, length)

	if err := ioutil.ReadFullAt(src.r, data, int64(offset)); err != nil {
		return nil, err
	}

	for _, h := range src.hidden {
		zeroOverlap(data, offset, h)
	}

	src.buffers = append(src.buffers, &buffer{offset: offset, data: data})

	return data, nil
}

// Hide marks the range as logically absent: cached copies are zeroed out and
// all future reads return zeros for the range until the source is reset.
func (src *Source) Hide(offset, length uint64) {
	h := hiddenRange{offset: offset, length: length}

	for _, b := range src.buffers {
		zeroOverlap(b.data, b.offset, h)
	}

	src.hidden = append(src.hidden, h)
	src.modified = true
}

// Modified reports whether cached buffers were modified by Hide.
func (src *Source) Modified() bool {
	return src.modified
}

// ResetCache drops the cached buffers keeping the hidden ranges in effect.
func (src *Source) ResetCache() {
	src.buffers = nil
	src.modified = false
}

// Reset drops the cached buffers and the hidden ranges.
func (src *Source) Reset() {
	src.buffers = nil
	src.hidden = nil
	src.modified = false
}

// ReadAt implements io.ReaderAt via the cache.
func (src *Source) ReadAt(p []byte, off int64) (int, error) {
	data, err := src.Read(uint64(off), uint64(len(p)))
	if err != nil {
		return 0, err
	}

	return copy(p, data), nil
}

// GetSectorSize implements probe.Reader.
func (src *Source) GetSectorSize() uint {
	return src.sectorSize
}

// GetSize implements probe.Reader.
func (src *Source) GetSize() uint64 {
	return src.size
}

// GetZoneSize implements probe.Reader.
func (src *Source) GetZoneSize() uint64 {
	return src.zoneSize
}

// GetZones implements probe.Reader.
func (src *Source) GetZones(offset uint64, count int) ([]probe.Zone, error) {
	if src.zones == nil {
		return nil, ErrNoZones
	}

	return src.zones(offset, count)
}

// IsCharDevice reports whether the source is backed by a character device.
func (src *Source) IsCharDevice() bool {
	return src.charDevice
}

// IsCDROM reports whether the source is backed by a CD-ROM class device.
func (src *Source) IsCDROM() bool {
	return src.cdrom
}

func zeroOverlap(data []byte, dataOffset uint64, h hiddenRange) {
	start := max(dataOffset, h.offset)
	end := min(dataOffset+uint64(len(data)), h.offset+h.length)

	for i := start; i < end; i++ {
		data[i-dataOffset] = 0
	}
}
