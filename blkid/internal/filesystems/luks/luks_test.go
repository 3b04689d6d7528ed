// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package luks_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/siderolabs/go-blkid/blkid/internal/chain"
	"github.com/siderolabs/go-blkid/blkid/internal/filesystems/luks"
	"github.com/siderolabs/go-blkid/blkid/internal/probe"
	"github.com/siderolabs/go-blkid/blkid/internal/source"
)

func buildLuks(version uint16, label string) []byte {
	img := make([]byte, 2*1024*1024)

	copy(img[0:6], "LUKS\xba\xbe")
	binary.BigEndian.PutUint16(img[6:8], version)
	copy(img[24:72], label)
	copy(img[168:208], "17a60d40-e768-4fc4-93a1-9e61b0b21d49")

	return img
}

func probeLuks(t *testing.T, img []byte) *chain.Match {
	t.Helper()

	src := source.New(bytes.NewReader(img), uint64(len(img)), 512)

	ch := chain.New(src, zaptest.NewLogger(t), []probe.Entry{
		{Prober: &luks.Probe{}, Usage: probe.UsageCrypto},
	})

	match, err := ch.ProbeNext()
	require.NoError(t, err)

	return match
}

func TestProbeVersion2(t *testing.T) {
	match := probeLuks(t, buildLuks(2, "cryptroot"))
	require.NotNil(t, match)

	assert.Equal(t, "luks", match.Name)
	assert.Equal(t, probe.UsageCrypto, match.Usage)
	assert.Equal(t, "2", match.Result.Version)

	require.NotNil(t, match.Result.Label)
	assert.Equal(t, "cryptroot", *match.Result.Label)

	require.NotNil(t, match.Result.UUID)
	assert.Equal(t, "17a60d40-e768-4fc4-93a1-9e61b0b21d49", match.Result.UUID.String())
}

func TestProbeVersion1(t *testing.T) {
	match := probeLuks(t, buildLuks(1, ""))
	require.NotNil(t, match)

	assert.Equal(t, "1", match.Result.Version)
	assert.Nil(t, match.Result.Label)

	require.NotNil(t, match.Result.UUID)
	assert.Equal(t, "17a60d40-e768-4fc4-93a1-9e61b0b21d49", match.Result.UUID.String())
}

func TestProbeUnknownVersion(t *testing.T) {
	assert.Nil(t, probeLuks(t, buildLuks(3, "")))
}
