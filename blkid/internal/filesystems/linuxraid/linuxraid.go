// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package linuxraid probes Linux software RAID (md) array members.
package linuxraid

//go:generate go run ../../../../internal/cstruct/cstruct.go -pkg linuxraid -struct SuperBlock -input superblock.h -endianness LittleEndian

import (
	"github.com/google/uuid"
	"github.com/siderolabs/go-pointer"

	"github.com/siderolabs/go-blkid/blkid/internal/magic"
	"github.com/siderolabs/go-blkid/blkid/internal/probe"
	"github.com/siderolabs/go-blkid/blkid/internal/utils"
	"github.com/siderolabs/go-blkid/internal/ioutil"
)

var (
	// version 1.2 superblock, 4KiB into the device.
	raidMagic12 = magic.Magic{
		KiloOffset: 4,
		Value:      []byte("\xfc\x4e\x2b\xa9"),
	}

	// version 1.1 superblock, at the start of the device.
	raidMagic11 = magic.Magic{
		Value: []byte("\xfc\x4e\x2b\xa9"),
	}
)

// Probe for md array members.
type Probe struct{}

// Magic returns the magic value for the RAID member.
func (p *Probe) Magic() []*magic.Magic {
	return []*magic.Magic{
		&raidMagic12,
		&raidMagic11,
	}
}

// Name returns the name of the RAID member type.
func (p *Probe) Name() string {
	return "linux_raid_member"
}

// Probe runs the further inspection and returns the result if successful.
func (p *Probe) Probe(r probe.Reader, m magic.Magic) (*probe.Result, error) {
	base, _ := m.BlockBase(r.GetZoneSize())

	buf := make([]byte, SUPERBLOCK_SIZE)

	if err := ioutil.ReadFullAt(r, buf, base); err != nil {
		return nil, err
	}

	sb := SuperBlock(buf)

	if sb.Get_major_version() != 1 {
		return nil, nil //nolint:nilnil
	}

	setUUID, err := uuid.FromBytes(sb.Get_set_uuid())
	if err != nil {
		return nil, err
	}

	version := "1.1"
	if m.KiloOffset != 0 {
		version = "1.2"
	}

	res := &probe.Result{
		UUID:    &setUUID,
		Version: version,
	}

	if label := utils.TrimLabel(sb.Get_set_name()); label != "" {
		res.Label = pointer.To(label)
		res.RawLabel = utils.CutLabel(sb.Get_set_name())
	}

	return res, nil
}
