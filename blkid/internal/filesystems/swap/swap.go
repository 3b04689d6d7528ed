// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package swap probes Linux swapspaces and hibernation images written over them.
package swap

//go:generate go run ../../../../internal/cstruct/cstruct.go -pkg swap -struct SwapHeader -input swap_header.h -endianness LittleEndian

import (
	"bytes"
	"math/bits"

	"github.com/google/uuid"
	"github.com/siderolabs/go-pointer"

	"github.com/siderolabs/go-blkid/blkid/internal/magic"
	"github.com/siderolabs/go-blkid/blkid/internal/probe"
	"github.com/siderolabs/go-blkid/blkid/internal/utils"
	"github.com/siderolabs/go-blkid/internal/ioutil"
)

// The signature sits in the last ten bytes of the first page, one magic
// per supported page size.
var (
	swapMagic1 = magic.Magic{
		Offset: 0xff6,
		Value:  []byte("SWAP-SPACE"),
	}

	swapMagic2 = magic.Magic{
		Offset: 0xff6,
		Value:  []byte("SWAPSPACE2"),
	}

	swapMagic3 = magic.Magic{
		Offset: 0x1ff6,
		Value:  []byte("SWAP-SPACE"),
	}

	swapMagic4 = magic.Magic{
		Offset: 0x1ff6,
		Value:  []byte("SWAPSPACE2"),
	}

	swapMagic5 = magic.Magic{
		Offset: 0x3ff6,
		Value:  []byte("SWAP-SPACE"),
	}

	swapMagic6 = magic.Magic{
		Offset: 0x3ff6,
		Value:  []byte("SWAPSPACE2"),
	}

	swapMagic7 = magic.Magic{
		Offset: 0x7ff6,
		Value:  []byte("SWAP-SPACE"),
	}

	swapMagic8 = magic.Magic{
		Offset: 0x7ff6,
		Value:  []byte("SWAPSPACE2"),
	}

	swapMagic9 = magic.Magic{
		Offset: 0xfff6,
		Value:  []byte("SWAP-SPACE"),
	}

	swapMagic10 = magic.Magic{
		Offset: 0xfff6,
		Value:  []byte("SWAPSPACE2"),
	}
)

// toiMagic marks a TuxOnIce hibernation image at the start of the device.
var toiMagic = []byte{0xed, 0xc3, 0x02, 0xe9, 0x98, 0x56, 0xe5, 0x0c}

// Probe for the filesystem.
type Probe struct{}

// Magic returns the magic value for the filesystem.
func (p *Probe) Magic() []*magic.Magic {
	return []*magic.Magic{
		&swapMagic1,
		&swapMagic2,
		&swapMagic3,
		&swapMagic4,
		&swapMagic5,
		&swapMagic6,
		&swapMagic7,
		&swapMagic8,
		&swapMagic9,
		&swapMagic10,
	}
}

// Name returns the name of the filesystem.
func (p *Probe) Name() string {
	return "swap"
}

// Probe runs the further inspection and returns the result if successful.
func (p *Probe) Probe(r probe.Reader, m magic.Magic) (*probe.Result, error) {
	buf := make([]byte, len(toiMagic))

	if err := ioutil.ReadFullAt(r, buf, 0); err != nil {
		return nil, err
	}

	// TuxOnIce keeps a valid swap header in place, leave the signature to
	// the swsuspend prober
	if bytes.Equal(buf, toiMagic) {
		return nil, nil //nolint:nilnil
	}

	if bytes.Equal(m.Value, []byte("SWAP-SPACE")) {
		// swap v0 has no label or UUID
		pageSize := m.Offset + int64(len(m.Value))

		return &probe.Result{
			Version:             "0",
			BlockSize:           uint32(pageSize),
			FilesystemBlockSize: uint32(pageSize),
		}, nil
	}

	return probeInfo(r, m.Offset+int64(len(m.Value)), "1")
}

// probeInfo inspects the swap header at offset 1024 shared by swapspaces
// and hibernation images.
func probeInfo(r probe.Reader, pageSize int64, version string) (*probe.Result, error) {
	buf := make([]byte, SWAPHEADER_SIZE)

	if err := ioutil.ReadFullAt(r, buf, 1024); err != nil {
		return nil, err
	}

	hdr := SwapHeader(buf)

	lastPage := hdr.Get_lastpage()

	if version == "1" {
		// mkswap writes the header in host byte order
		ver := hdr.Get_version()
		if ver != 1 {
			ver = bits.ReverseBytes32(ver)
			lastPage = bits.ReverseBytes32(lastPage)
		}

		if ver != 1 || lastPage == 0 {
			return nil, nil //nolint:nilnil
		}
	}

	res := &probe.Result{
		Version: version,
	}

	// is there any garbage down there?
	padding := hdr.Get_padding()
	if isZero(padding[128:136]) {
		if vol := hdr.Get_volume(); vol[0] != 0 {
			res.Label = pointer.To(string(utils.CutLabel(vol)))
		}

		if fsUUID, err := uuid.FromBytes(hdr.Get_uuid()); err == nil {
			res.UUID = &fsUUID
		}
	}

	if pageSize != 0 {
		res.BlockSize = uint32(pageSize)
		res.FilesystemBlockSize = uint32(pageSize)

		if lastPage != 0 {
			res.ProbedSize = uint64(pageSize) * uint64(lastPage)
		}
	}

	return res, nil
}

func isZero(buf []byte) bool {
	for _, b := range buf {
		if b != 0 {
			return false
		}
	}

	return true
}
