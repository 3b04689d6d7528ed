// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package luks probes LUKS encrypted filesystems.
package luks

//go:generate go run ../../../../internal/cstruct/cstruct.go -pkg luks -struct Luks2Header -input luks2_header.h -endianness BigEndian

import (
	"github.com/google/uuid"
	"github.com/siderolabs/go-pointer"

	"github.com/siderolabs/go-blkid/blkid/internal/magic"
	"github.com/siderolabs/go-blkid/blkid/internal/probe"
	"github.com/siderolabs/go-blkid/blkid/internal/utils"
	"github.com/siderolabs/go-blkid/internal/ioutil"
)

var luksMagic = magic.Magic{
	Offset: 0,
	Value:  []byte("LUKS\xba\xbe"),
}

// Probe for the filesystem.
type Probe struct{}

// Magic returns the magic value for the filesystem.
func (p *Probe) Magic() []*magic.Magic {
	return []*magic.Magic{&luksMagic}
}

// Name returns the name of the filesystem.
func (p *Probe) Name() string {
	return "luks"
}

// Probe runs the further inspection and returns the result if successful.
func (p *Probe) Probe(r probe.Reader, _ magic.Magic) (*probe.Result, error) {
	buf := make([]byte, LUKS2HEADER_SIZE)

	if err := ioutil.ReadFullAt(r, buf, 0); err != nil {
		return nil, err
	}

	hdr := Luks2Header(buf)

	res := &probe.Result{}

	switch hdr.Get_version() {
	case 1:
		res.Version = "1"
	case 2:
		res.Version = "2"

		if label := utils.TrimLabel(hdr.Get_label()); label != "" {
			res.Label = pointer.To(label)
			res.RawLabel = utils.CutLabel(hdr.Get_label())
		}
	default:
		return nil, nil //nolint:nilnil
	}

	// both versions keep the UUID string at the same offset
	if fsUUID, err := uuid.ParseBytes(utils.CutLabel(hdr.Get_uuid())); err == nil {
		res.UUID = &fsUUID
	}

	return res, nil
}
