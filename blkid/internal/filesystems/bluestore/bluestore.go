// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package bluestore probes Ceph bluestore devices.
package bluestore

import (
	"github.com/google/uuid"

	"github.com/siderolabs/go-blkid/blkid/internal/magic"
	"github.com/siderolabs/go-blkid/blkid/internal/probe"
	"github.com/siderolabs/go-blkid/internal/ioutil"
)

var blueStoreMagic = magic.Magic{
	Offset: 0,
	Value:  []byte("bluestore block device"),
}

// The device label starts with the magic line followed by the OSD UUID in
// text form and a newline; the binary encoded label follows.
const (
	uuidOffset = 23
	uuidLen    = 36
)

// Probe for the bluestore.
type Probe struct{}

// Magic returns the magic value for the filesystem.
func (p *Probe) Magic() []*magic.Magic {
	return []*magic.Magic{&blueStoreMagic}
}

// Name returns the name of the filesystem.
func (p *Probe) Name() string {
	return "bluestore"
}

// Probe runs the further inspection and returns the result if successful.
func (p *Probe) Probe(r probe.Reader, _ magic.Magic) (*probe.Result, error) {
	buf := make([]byte, uuidOffset+uuidLen+1)

	if err := ioutil.ReadFullAt(r, buf, 0); err != nil {
		return nil, err
	}

	if buf[uuidOffset-1] != '\n' {
		return nil, nil //nolint:nilnil
	}

	res := &probe.Result{}

	if buf[uuidOffset+uuidLen] == '\n' {
		if osdUUID, err := uuid.ParseBytes(buf[uuidOffset : uuidOffset+uuidLen]); err == nil {
			res.UUID = &osdUUID
		}
	}

	return res, nil
}
