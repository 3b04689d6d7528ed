// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package swap

import (
	"bytes"
	"strings"

	"github.com/siderolabs/go-blkid/blkid/internal/magic"
	"github.com/siderolabs/go-blkid/blkid/internal/probe"
)

// Hibernation tools replace the swap signature with their own, keeping the
// rest of the header intact; TuxOnIce instead marks the start of the device.
var suspendMagics = func() []*magic.Magic {
	magics := []*magic.Magic{
		{
			Offset: 0,
			Value:  toiMagic,
		},
	}

	for _, offset := range []int64{0xff6, 0x1ff6, 0x3ff6, 0x7ff6, 0xfff6} {
		for _, value := range []string{"S1SUSPEND", "S2SUSPEND", "ULSUSPEND", "LINHIB0001"} {
			magics = append(magics, &magic.Magic{
				Offset: offset,
				Value:  []byte(value),
			})
		}
	}

	return magics
}()

// SuspendProbe matches hibernation images written over a swapspace.
type SuspendProbe struct{}

// Magic returns the magic value for the filesystem.
func (p *SuspendProbe) Magic() []*magic.Magic {
	return suspendMagics
}

// Name returns the name of the filesystem.
func (p *SuspendProbe) Name() string {
	return "swsuspend"
}

// Probe runs the further inspection and returns the result if successful.
func (p *SuspendProbe) Probe(r probe.Reader, m magic.Magic) (*probe.Result, error) {
	version := "tuxonice"
	if !bytes.Equal(m.Value, toiMagic) {
		version = strings.ToLower(string(m.Value))
	}

	var pageSize int64

	if m.Offset != 0 {
		// the signature field occupies the last ten bytes of the first page
		pageSize = m.Offset + 10
	}

	return probeInfo(r, pageSize, version)
}
