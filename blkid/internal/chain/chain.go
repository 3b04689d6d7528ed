// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package chain implements the ordered registry of probers and the scan loop over it.
package chain

import (
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/siderolabs/go-blkid/blkid/internal/magic"
	"github.com/siderolabs/go-blkid/blkid/internal/probe"
	"github.com/siderolabs/go-blkid/blkid/internal/source"
)

// Devices at most this size are considered tiny (floppy-class) and get
// lenient ambivalence handling.
const tinyDeviceSize = 1440 * 1024

// Match is a successful probe of a single registry entry.
type Match struct {
	Name           string
	Usage          probe.Usage
	Tolerant       bool
	PartitionTable bool

	// MagicOffset and Magic are the resolved absolute signature offset and
	// its raw on-disk value.
	MagicOffset uint64
	Magic       []byte

	Result *probe.Result
}

// Chain is a single probing session: the ordered registry, the resumable
// scan cursor and the source being scanned.
//
// The registry order is the priority tie-break: RAID and crypto containers
// come before filesystems, partition tables come last.
type Chain struct {
	src    *source.Source
	logger *zap.Logger

	entries []probe.Entry
	filter  Filter

	cursor int
}

// New creates a probing session over the source with the given registry.
func New(src *source.Source, logger *zap.Logger, entries []probe.Entry) *Chain {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Chain{
		src:     src,
		logger:  logger,
		entries: entries,
		cursor:  -1,
	}
}

// SetFilter restricts which registry entries are scanned.
func (chain *Chain) SetFilter(filter Filter) {
	chain.filter = filter
}

// Source returns the source the chain scans.
func (chain *Chain) Source() *source.Source {
	return chain.src
}

// Rewind resets the scan cursor to the beginning of the registry.
func (chain *Chain) Rewind() {
	chain.cursor = -1
}

// StepBack moves the cursor one entry back, so the next ProbeNext call
// retries the entry which produced the last match.
//
// Cached buffers are dropped unless they were modified by hiding a range, so
// the retry sees current device contents.
func (chain *Chain) StepBack() {
	if !chain.src.Modified() {
		chain.src.ResetCache()
	}

	if chain.cursor >= 0 {
		chain.cursor--
	}
}

// ProbeNext resumes scanning from the cursor and returns the next match.
//
// Repeated calls iterate over all signatures present on the device. When the
// registry is exhausted, ProbeNext returns nil match and resets the cursor,
// so the next call starts over.
func (chain *Chain) ProbeNext() (*Match, error) {
	if !chain.Scannable() {
		return nil, nil
	}

	for chain.cursor++; chain.cursor < len(chain.entries); chain.cursor++ {
		entry := chain.entries[chain.cursor]

		if !chain.filter.Admits(entry) {
			chain.logger.Debug("filtered out", zap.String("prober", entry.Name()))

			continue
		}

		if reason := chain.skipReason(entry); reason != "" {
			chain.logger.Debug("skipped", zap.String("prober", entry.Name()), zap.String("reason", reason))

			continue
		}

		mag, magicOffset, err := chain.matchMagic(entry)
		if err != nil {
			return nil, err
		}

		if mag == nil {
			continue
		}

		res, err := entry.Probe(chain.src, *mag)
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
				chain.logger.Debug("short read treated as no match", zap.String("prober", entry.Name()))

				continue
			}

			return nil, err
		}

		if res == nil {
			chain.logger.Debug("no match", zap.String("prober", entry.Name()))

			continue
		}

		match := &Match{
			Name:           entry.Name(),
			Usage:          entry.Usage,
			Tolerant:       entry.Tolerant,
			PartitionTable: entry.PartitionTable,

			MagicOffset: magicOffset,
			Magic:       mag.Value,

			Result: res,
		}

		if res.SBMagic != nil {
			match.Magic = res.SBMagic
			match.MagicOffset = res.SBMagicOffset
		}

		chain.logger.Debug("matched", zap.String("prober", entry.Name()), zap.Uint64("offset", match.MagicOffset))

		return match, nil
	}

	chain.cursor = -1

	return nil, nil
}

// SafeProbe scans the whole registry and resolves conflicting matches.
//
// Tiny devices accept the first match immediately. Scanning stops at the
// first RAID or crypto container match. Otherwise more than one intolerant
// match makes the result ambivalent: no match is returned, and the
// conflicting matches are reported instead.
func (chain *Chain) SafeProbe() (*Match, []*Match, error) {
	chain.Rewind()
	defer chain.Rewind()

	var (
		first      *Match
		intolerant []*Match
	)

	for {
		match, err := chain.ProbeNext()
		if err != nil {
			return nil, nil, err
		}

		if match == nil {
			break
		}

		if chain.tiny() {
			// floppy-class media: first match wins without ambivalence checks
			return match, nil, nil
		}

		if first == nil {
			first = match
		}

		if match.Usage == probe.UsageRAID || match.Usage == probe.UsageCrypto {
			// the first container match wins, nested filesystems are not probed
			break
		}

		if !match.Tolerant {
			intolerant = append(intolerant, match)
		}
	}

	if len(intolerant) > 1 {
		return nil, intolerant, nil
	}

	return first, nil, nil
}

// Scannable reports whether the source is large enough to be scanned at all.
func (chain *Chain) Scannable() bool {
	size := chain.src.GetSize()

	if size == 0 || (size <= 1024 && !chain.src.IsCharDevice()) {
		// very small block devices or regular files, e.g. extended partitions
		chain.logger.Debug("device too small to scan", zap.Uint64("size", size))

		return false
	}

	return true
}

func (chain *Chain) tiny() bool {
	return chain.src.GetSize() <= tinyDeviceSize && !chain.src.IsCharDevice()
}

func (chain *Chain) skipReason(entry probe.Entry) string {
	if entry.MinSize > 0 && entry.MinSize > chain.src.GetSize() {
		return "device smaller than the minimum size"
	}

	if entry.PartitionTable {
		return ""
	}

	if entry.Usage != probe.UsageFilesystem && chain.src.IsCDROM() {
		return "non-filesystem probing disabled on CD-ROM"
	}

	if entry.Usage == probe.UsageRAID && chain.tiny() {
		return "RAID probing disabled on tiny devices"
	}

	return ""
}

func (chain *Chain) matchMagic(entry probe.Entry) (*magic.Magic, uint64, error) {
	size := chain.src.GetSize()
	zoneSize := chain.src.GetZoneSize()

	for _, mag := range entry.Magic() {
		base, ok := mag.BlockBase(zoneSize)
		if !ok || base < 0 || uint64(base) >= size {
			continue
		}

		length := min(uint64(1024), size-uint64(base))

		block, err := chain.src.Read(uint64(base), length)
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
				continue
			}

			return nil, 0, err
		}

		if mag.Matches(block) {
			return mag, mag.ResolvedOffset(base), nil
		}
	}

	return nil, 0, nil
}
