// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package iso9660 probes ISO9660 filesystems.
package iso9660

//go:generate go run ../../../../internal/cstruct/cstruct.go -pkg iso9660 -struct VolumeDescriptor -input volume.h -endianness NativeEndian

//go:generate go run ../../../../internal/cstruct/cstruct.go -pkg iso9660 -struct BootRecord -input bootrecord.h -endianness NativeEndian

//go:generate go run ../../../../internal/cstruct/cstruct.go -pkg iso9660 -struct HighSierra -input highsierra.h -endianness NativeEndian

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/siderolabs/go-pointer"
	"golang.org/x/text/encoding/unicode"

	"github.com/siderolabs/go-blkid/blkid/internal/magic"
	"github.com/siderolabs/go-blkid/blkid/internal/probe"
	"github.com/siderolabs/go-blkid/blkid/internal/utils"
	"github.com/siderolabs/go-blkid/internal/ioutil"
)

const (
	superblockOffset = 0x8000
	sectorSize       = 2048
	vdOffset         = superblockOffset + sectorSize

	vdMax           = 16
	vdEnd           = 0xff
	vdBootRecord    = 0
	vdPrimary       = 1
	vdSupplementary = 2
)

var (
	isoMagic = magic.Magic{
		Offset: superblockOffset + 1,
		Value:  []byte("CD001"),
	}

	highSierraMagic = magic.Magic{
		Offset: superblockOffset + 9,
		Value:  []byte("CDROM"),
	}
)

// Probe for the filesystem.
type Probe struct{}

// Magic returns the magic value for the filesystem.
func (p *Probe) Magic() []*magic.Magic {
	return []*magic.Magic{
		&isoMagic,
		&highSierraMagic,
	}
}

// Name returns the name of the filesystem.
func (p *Probe) Name() string {
	return "iso9660"
}

// Probe runs the further inspection and returns the result if successful.
//
//nolint:gocyclo
func (p *Probe) Probe(r probe.Reader, m magic.Magic) (*probe.Result, error) {
	if bytes.Equal(m.Value, []byte("CDROM")) {
		return p.probeHighSierra(r)
	}

	buf := make([]byte, VOLUMEDESCRIPTOR_SIZE)

	if err := ioutil.ReadFullAt(r, buf, superblockOffset); err != nil {
		return nil, err
	}

	pvd := VolumeDescriptor(buf)

	logicalBlockSize := isonum723(pvd.Get_logical_block_size())
	spaceSize := isonum733(pvd.Get_space_size())

	res := &probe.Result{
		BlockSize:           uint32(logicalBlockSize),
		FilesystemBlockSize: uint32(logicalBlockSize),
		ProbedSize:          uint64(spaceSize) * uint64(logicalBlockSize),
		FilesystemLastBlock: uint64(spaceSize),
	}

	isoLabel := pvd.Get_volume_id()
	res.RawLabel = utils.CutLabel(isoLabel)

	// identify the volume by the modification or creation timestamp
	res.Serial = dateSerial(pvd.Get_modified())
	if res.Serial == "" {
		res.Serial = dateSerial(pvd.Get_created())
	}

	// walk the descriptors after the PVD looking for the boot record and
	// the Joliet supplementary descriptor
	for i := range vdMax {
		vdBuf := make([]byte, VOLUMEDESCRIPTOR_SIZE)

		if err := ioutil.ReadFullAt(r, vdBuf, vdOffset+sectorSize*int64(i)); err != nil {
			break
		}

		vd := VolumeDescriptor(vdBuf)

		if vd.Get_vd_type() == vdEnd {
			break
		}

		if vd.Get_vd_type() == vdBootRecord {
			if bootID := BootRecord(vdBuf).Get_boot_system_id(); !isStrEmpty(bootID) {
				res.BootSystemID = pointer.To(utils.TrimLabel(bootID))
			}

			continue
		}

		if vd.Get_vd_type() != vdSupplementary {
			continue
		}

		esc := vd.Get_escape_sequences()

		if bytes.HasPrefix(esc, []byte("%/@")) || bytes.HasPrefix(esc, []byte("%/C")) || bytes.HasPrefix(esc, []byte("%/E")) {
			res.Version = "Joliet Extension"

			// the Joliet label might be trimmed, prefer the primary label
			// when both are the same
			if asciiEqUTF16BE(isoLabel, vd.Get_volume_id()) {
				break
			}

			if label, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(vd.Get_volume_id()); err == nil {
				res.Label = pointer.To(utils.TrimLabel(label))
			}

			break
		}
	}

	if res.Label == nil {
		res.Label = pointer.To(utils.TrimLabel(isoLabel))
	}

	return res, nil
}

// probeHighSierra inspects the pre-ISO9660 High Sierra format.
func (p *Probe) probeHighSierra(r probe.Reader) (*probe.Result, error) {
	buf := make([]byte, HIGHSIERRA_SIZE)

	if err := ioutil.ReadFullAt(r, buf, superblockOffset); err != nil {
		return nil, err
	}

	vd := HighSierra(buf)

	res := &probe.Result{
		BlockSize:           sectorSize,
		FilesystemBlockSize: sectorSize,
		Version:             "High Sierra",
	}

	if label := vd.Get_volume_id(); !isStrEmpty(label) {
		res.Label = pointer.To(utils.TrimLabel(label))
		res.RawLabel = utils.CutLabel(label)
	}

	return res, nil
}

// isonum723 decodes a 16-bit value recorded in both byte orders.
func isonum723(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b[0:2])
}

// isonum733 decodes a 32-bit value recorded in both byte orders.
func isonum733(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b[0:4])
}

// dateSerial formats an ISO timestamp as the volume identifier; an all-zero
// date with a zero offset is not set.
func dateSerial(date []byte) string {
	digits := date[:16]

	zeros := 0

	for _, b := range digits {
		if b == '0' {
			zeros++
		}
	}

	if zeros == len(digits) && date[16] == 0 {
		return ""
	}

	return fmt.Sprintf("%c%c%c%c-%c%c-%c%c-%c%c-%c%c-%c%c-%c%c",
		digits[0], digits[1], digits[2], digits[3],
		digits[4], digits[5],
		digits[6], digits[7],
		digits[8], digits[9],
		digits[10], digits[11],
		digits[12], digits[13],
		digits[14], digits[15])
}

// asciiEqUTF16BE reports whether the UTF-16BE string matches the ASCII one.
func asciiEqUTF16BE(ascii, utf16 []byte) bool {
	for a, u := 0, 0; u+1 < len(utf16); a, u = a+1, u+2 {
		if utf16[u] != 0 || ascii[a] != utf16[u+1] {
			return false
		}
	}

	return true
}

func isStrEmpty(s []byte) bool {
	if len(s) == 0 || s[0] == 0 {
		return true
	}

	return len(bytes.TrimSpace(s)) == 0
}
