// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package talosmeta_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/siderolabs/go-blkid/blkid/internal/chain"
	"github.com/siderolabs/go-blkid/blkid/internal/filesystems/talosmeta"
	"github.com/siderolabs/go-blkid/blkid/internal/probe"
	"github.com/siderolabs/go-blkid/blkid/internal/source"
)

const metaLength = 256 * 1024

func buildMeta(slot int) []byte {
	img := make([]byte, 2*metaLength)

	offset := slot * metaLength

	binary.BigEndian.PutUint32(img[offset:], 0x5a4b3c2d)
	binary.BigEndian.PutUint32(img[offset+metaLength-4:], 0xa5b4c3d2)

	return img
}

func probeMeta(t *testing.T, img []byte) *chain.Match {
	t.Helper()

	src := source.New(bytes.NewReader(img), uint64(len(img)), 512)

	ch := chain.New(src, zaptest.NewLogger(t), []probe.Entry{
		{Prober: &talosmeta.Probe{}, Usage: probe.UsageOther},
	})

	match, err := ch.ProbeNext()
	require.NoError(t, err)

	return match
}

func TestProbe(t *testing.T) {
	match := probeMeta(t, buildMeta(0))
	require.NotNil(t, match)

	assert.Equal(t, "talosmeta", match.Name)
	assert.Equal(t, probe.UsageOther, match.Usage)
	assert.Equal(t, uint64(0), match.MagicOffset)
	assert.Equal(t, uint64(2*metaLength), match.Result.ProbedSize)
}

func TestProbeSecondSlot(t *testing.T) {
	img := buildMeta(1)

	// the magic of the first slot must be present for the device to be
	// considered at all, the trailing magic2 of slot 0 is gone
	binary.BigEndian.PutUint32(img[0:], 0x5a4b3c2d)

	match := probeMeta(t, img)
	require.NotNil(t, match)

	assert.Equal(t, uint64(2*metaLength), match.Result.ProbedSize)
}

func TestProbeTruncated(t *testing.T) {
	img := buildMeta(0)

	// wipe the trailing magic2
	binary.BigEndian.PutUint32(img[metaLength-4:], 0)

	match := probeMeta(t, img)
	assert.Nil(t, match)
}
