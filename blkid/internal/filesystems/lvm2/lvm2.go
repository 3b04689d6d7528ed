// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package lvm2 probes LVM2 PVs.
package lvm2

//go:generate go run ../../../../internal/cstruct/cstruct.go -pkg lvm2 -struct LVM2Header -input lvm2_header.h -endianness LittleEndian

import (
	"github.com/siderolabs/go-blkid/blkid/internal/magic"
	"github.com/siderolabs/go-blkid/blkid/internal/probe"
	"github.com/siderolabs/go-blkid/internal/ioutil"
)

// The label sector: the LABELONE header can live in any of the first
// four 512-byte sectors of the PV.
const labelSize = 512

var (
	lvmMagic1 = magic.Magic{
		Offset: 0x018,
		Value:  []byte("LVM2 001"),
	}

	lvmMagic2 = magic.Magic{
		Offset: 0x218,
		Value:  []byte("LVM2 001"),
	}

	lvmMagic3 = magic.Magic{
		KiloOffset: 1,
		Offset:     0x018,
		Value:      []byte("LVM2 001"),
	}

	lvmMagic4 = magic.Magic{
		KiloOffset: 1,
		Offset:     0x218,
		Value:      []byte("LVM2 001"),
	}
)

// Probe for the filesystem.
type Probe struct{}

// Magic returns the magic value for the filesystem.
func (p *Probe) Magic() []*magic.Magic {
	return []*magic.Magic{
		&lvmMagic1,
		&lvmMagic2,
		&lvmMagic3,
		&lvmMagic4,
	}
}

// Name returns the name of the filesystem.
func (p *Probe) Name() string {
	return "lvm2-pv"
}

// Probe runs the further inspection and returns the result if successful.
func (p *Probe) Probe(r probe.Reader, m magic.Magic) (*probe.Result, error) {
	base, _ := m.BlockBase(r.GetZoneSize())

	for s := range 2 {
		buf := make([]byte, labelSize)

		if err := ioutil.ReadFullAt(r, buf, base+int64(s)*labelSize); err != nil {
			return nil, err
		}

		hdr := LVM2Header(buf[:LVM2HEADER_SIZE])

		if string(hdr.Get_id()) != "LABELONE" || string(hdr.Get_type()) != "LVM2 001" {
			continue
		}

		// the label records the sector it lives in
		if hdr.Get_sector_xl() != uint64(base)/labelSize+uint64(s) {
			continue
		}

		if labelChecksum(buf[20:]) != hdr.Get_crc_xl() {
			continue
		}

		res := &probe.Result{
			Version: string(hdr.Get_type()),
		}

		// LVM2 UUIDs aren't 16 bytes thus are treated as labels
		labelUUID := string(hdr.Get_pv_uuid())
		labelUUID = labelUUID[:6] + "-" + labelUUID[6:10] + "-" + labelUUID[10:14] +
			"-" + labelUUID[14:18] + "-" + labelUUID[18:22] +
			"-" + labelUUID[22:26] + "-" + labelUUID[26:]
		res.Label = &labelUUID

		return res, nil
	}

	return nil, nil //nolint:nilnil
}
