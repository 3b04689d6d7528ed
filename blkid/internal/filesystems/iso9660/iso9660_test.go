// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package iso9660_test

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/siderolabs/go-blkid/blkid/internal/chain"
	"github.com/siderolabs/go-blkid/blkid/internal/filesystems/iso9660"
	"github.com/siderolabs/go-blkid/blkid/internal/probe"
	"github.com/siderolabs/go-blkid/blkid/internal/source"
)

func putIsonum723(b []byte, v uint16) {
	binary.LittleEndian.PutUint16(b[0:2], v)
	binary.BigEndian.PutUint16(b[2:4], v)
}

func putIsonum733(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b[0:4], v)
	binary.BigEndian.PutUint32(b[4:8], v)
}

func utf16Label(s string) []byte {
	out := make([]byte, 0, 32)

	for _, c := range s {
		out = append(out, 0, byte(c))
	}

	for len(out) < 32 {
		out = append(out, 0, ' ')
	}

	return out
}

// buildISO builds an image with a PVD, a boot record, a Joliet
// supplementary descriptor and a terminator.
func buildISO() []byte {
	img := make([]byte, 0xa000)

	pvd := img[0x8000:]
	pvd[0] = 1
	copy(pvd[1:6], "CD001")
	pvd[6] = 1
	copy(pvd[40:72], "TALOS_V1"+strings.Repeat(" ", 24))
	putIsonum733(pvd[80:88], 1500)
	putIsonum723(pvd[128:132], 2048)
	copy(pvd[813:830], "2024082310305900\x08")
	copy(pvd[830:847], "0000000000000000\x00")

	boot := img[0x8800:]
	boot[0] = 0
	copy(boot[1:6], "CD001")
	boot[6] = 1
	copy(boot[7:39], "EL TORITO SPECIFICATION")

	svd := img[0x9000:]
	svd[0] = 2
	copy(svd[1:6], "CD001")
	svd[6] = 1
	copy(svd[40:72], utf16Label("TALOS_V1_EXT"))
	copy(svd[88:91], "%/E")

	end := img[0x9800:]
	end[0] = 0xff
	copy(end[1:6], "CD001")

	return img
}

func probeISO(t *testing.T, img []byte) *chain.Match {
	t.Helper()

	src := source.New(bytes.NewReader(img), uint64(len(img)), 512)

	ch := chain.New(src, zaptest.NewLogger(t), []probe.Entry{
		{Prober: &iso9660.Probe{}, Usage: probe.UsageFilesystem, Tolerant: true},
	})

	match, err := ch.ProbeNext()
	require.NoError(t, err)

	return match
}

func TestProbeJoliet(t *testing.T) {
	match := probeISO(t, buildISO())
	require.NotNil(t, match)

	assert.Equal(t, "iso9660", match.Name)
	assert.EqualValues(t, 0x8001, match.MagicOffset)

	assert.Equal(t, "Joliet Extension", match.Result.Version)
	assert.EqualValues(t, 2048, match.Result.BlockSize)
	assert.EqualValues(t, 2048, match.Result.FilesystemBlockSize)
	assert.EqualValues(t, 1500*2048, match.Result.ProbedSize)
	assert.EqualValues(t, 1500, match.Result.FilesystemLastBlock)

	require.NotNil(t, match.Result.Label)
	assert.Equal(t, "TALOS_V1_EXT", *match.Result.Label)
	assert.Equal(t, []byte("TALOS_V1"+strings.Repeat(" ", 24)), match.Result.RawLabel)

	require.NotNil(t, match.Result.BootSystemID)
	assert.Equal(t, "EL TORITO SPECIFICATION", *match.Result.BootSystemID)

	assert.Equal(t, "2024-08-23-10-30-59-00", match.Result.Serial)
}

func TestProbeJolietSameLabel(t *testing.T) {
	img := buildISO()

	copy(img[0x9000+40:0x9000+72], utf16Label("TALOS_V1"))

	match := probeISO(t, img)
	require.NotNil(t, match)

	// the primary label wins when the Joliet label matches it
	assert.Equal(t, "Joliet Extension", match.Result.Version)

	require.NotNil(t, match.Result.Label)
	assert.Equal(t, "TALOS_V1", *match.Result.Label)
}

func TestProbePlain(t *testing.T) {
	img := buildISO()

	// not a supplementary descriptor anymore
	img[0x9000] = 1

	match := probeISO(t, img)
	require.NotNil(t, match)

	assert.Empty(t, match.Result.Version)

	require.NotNil(t, match.Result.Label)
	assert.Equal(t, "TALOS_V1", *match.Result.Label)

	require.NotNil(t, match.Result.BootSystemID)
	assert.Equal(t, "EL TORITO SPECIFICATION", *match.Result.BootSystemID)
}

func TestProbeHighSierra(t *testing.T) {
	img := make([]byte, 0x9000)

	vd := img[0x8000:]
	vd[8] = 1
	copy(vd[9:14], "CDROM")
	vd[14] = 1
	copy(vd[48:80], "OLDDISC")

	match := probeISO(t, img)
	require.NotNil(t, match)

	assert.EqualValues(t, 0x8009, match.MagicOffset)
	assert.Equal(t, "High Sierra", match.Result.Version)

	require.NotNil(t, match.Result.Label)
	assert.Equal(t, "OLDDISC", *match.Result.Label)
}
