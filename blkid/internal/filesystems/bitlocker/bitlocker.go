// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package bitlocker probes BitLocker encrypted volumes.
package bitlocker

//go:generate go run ../../../../internal/cstruct/cstruct.go -pkg bitlocker -struct Win7Header -input win7_header.h -endianness LittleEndian

//go:generate go run ../../../../internal/cstruct/cstruct.go -pkg bitlocker -struct ToGoHeader -input togo_header.h -endianness LittleEndian

//go:generate go run ../../../../internal/cstruct/cstruct.go -pkg bitlocker -struct FveHeader -input fve_header.h -endianness LittleEndian

import (
	"bytes"
	"strconv"

	"github.com/siderolabs/go-blkid/blkid/internal/magic"
	"github.com/siderolabs/go-blkid/blkid/internal/probe"
	"github.com/siderolabs/go-blkid/internal/ioutil"
)

var (
	vistaMagic = magic.Magic{
		Value: []byte("\xeb\x52\x90-FVE-FS-"),
	}

	win7Magic = magic.Magic{
		Value: []byte("\xeb\x58\x90-FVE-FS-"),
	}

	togoMagic = magic.Magic{
		Value: []byte("\xeb\x58\x90MSWIN4.1"),
	}
)

const (
	headerSize   = 512
	fveSignature = "-FVE-FS-"
)

// Volume layout kinds.
const (
	kindNone = iota
	kindVista
	kindWin7
	kindToGo
)

// detect reads the boot sector, follows the FVE metadata offset for the
// layouts which have one, and verifies the metadata block signature.
func detect(r probe.Reader) (int, FveHeader, error) {
	buf := make([]byte, headerSize)

	if err := ioutil.ReadFullAt(r, buf, 0); err != nil {
		return kindNone, nil, err
	}

	var (
		kind           int
		metadataOffset uint64
	)

	switch {
	case bytes.HasPrefix(buf, vistaMagic.Value):
		// Vista keeps no metadata pointer in the boot sector
		return kindVista, nil, nil
	case bytes.HasPrefix(buf, win7Magic.Value):
		kind = kindWin7
		metadataOffset = Win7Header(buf).Get_fve_metadata_offset()
	case bytes.HasPrefix(buf, togoMagic.Value):
		kind = kindToGo
		metadataOffset = ToGoHeader(buf).Get_fve_metadata_offset()
	default:
		return kindNone, nil, nil
	}

	if metadataOffset == 0 || metadataOffset > r.GetSize() {
		return kindNone, nil, nil
	}

	fveBuf := make([]byte, FVEHEADER_SIZE)

	if err := ioutil.ReadFullAt(r, fveBuf, int64(metadataOffset)); err != nil {
		return kindNone, nil, err
	}

	fve := FveHeader(fveBuf)

	if string(fve.Get_signature()) != fveSignature {
		return kindNone, nil, nil
	}

	return kind, fve, nil
}

// IsBitlocker reports whether the device holds a BitLocker volume.
//
// The vfat prober uses it to reject BitLocker volumes which keep a FAT-like
// boot sector.
func IsBitlocker(r probe.Reader) bool {
	kind, _, err := detect(r)

	return err == nil && kind != kindNone
}

// Probe for the encrypted volume.
type Probe struct{}

// Magic returns the magic value for the encrypted volume.
func (p *Probe) Magic() []*magic.Magic {
	return []*magic.Magic{
		&vistaMagic,
		&win7Magic,
		&togoMagic,
	}
}

// Name returns the name of the encryption system.
func (p *Probe) Name() string {
	return "BitLocker"
}

// Probe runs the further inspection and returns the result if successful.
func (p *Probe) Probe(r probe.Reader, _ magic.Magic) (*probe.Result, error) {
	kind, fve, err := detect(r)
	if err != nil {
		return nil, err
	}

	if kind == kindNone {
		return nil, nil //nolint:nilnil
	}

	res := &probe.Result{}

	if fve != nil {
		res.Version = strconv.Itoa(int(fve.Get_version()))
	}

	return res, nil
}
