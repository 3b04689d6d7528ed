// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//go:build linux

package blkid

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/siderolabs/go-blkid/blkid/internal/chain"
	"github.com/siderolabs/go-blkid/blkid/internal/source"
	"github.com/siderolabs/go-blkid/block"
)

// Session is a resumable probing session over a single device or image file.
//
// In contrast to Probe, a session keeps the scan cursor and the device lock
// between calls, so the signatures present on a device can be walked one by
// one and wiped in place.
type Session struct {
	info *Info

	f   *os.File
	src *source.Source
	ch  *chain.Chain

	logger *zap.Logger
	filter chain.Filter

	lockedDisk *block.Device

	refuse        bool
	rereadPending bool
}

// NewSession opens a probing session over the file.
//
// The file stays owned by the caller; the session must be closed to release
// the device lock.
func NewSession(f *os.File, opts ...ProbeOption) (*Session, error) {
	options := applyProbeOptions(opts...)

	info, err := statInfo(f)
	if err != nil {
		return nil, err
	}

	s := &Session{
		info:   info,
		f:      f,
		logger: options.Logger,
		filter: chain.Filter{Names: options.Names, Usages: options.Usages},
	}

	if info.BlockDevice != nil {
		if private, err := info.BlockDevice.IsPrivateDeviceMapper(); private && err == nil {
			s.refuse = true
		}
	}

	if info.WholeDisk && info.BlockDevice.IsCD() && info.BlockDevice.IsCDNoMedia() {
		s.refuse = true
	}

	s.src, err = info.newSource(f)
	if err != nil {
		return nil, err
	}

	s.ch = chain.New(s.src, s.logger, chain.Default())
	s.ch.SetFilter(s.filter)

	if !options.SkipLocking && info.BlockDevice != nil {
		// probing locks the whole disk shared, wiping locks it exclusively
		wholeDisk, err := info.BlockDevice.GetWholeDisk()
		if err != nil {
			return nil, fmt.Errorf("failed to get whole disk: %w", err)
		}

		if err = wholeDisk.TryLock(options.Writable); err != nil {
			wholeDisk.Close() //nolint:errcheck

			if errors.Is(err, unix.EWOULDBLOCK) {
				return nil, ErrFailedLock
			}

			return nil, fmt.Errorf("failed to lock whole disk: %w", err)
		}

		s.lockedDisk = wholeDisk
	}

	return s, nil
}

// Info returns the device metadata of the probed file.
func (s *Session) Info() *Info {
	return s.info
}

// ProbeNext returns the next match, resuming after the previous one.
//
// When the registry is exhausted, ProbeNext returns ErrNotFound and the next
// call starts over.
func (s *Session) ProbeNext() (*Result, error) {
	if err := s.scanGuard(); err != nil {
		return nil, err
	}

	match, err := s.ch.ProbeNext()
	if err != nil {
		return nil, err
	}

	if match == nil {
		return nil, ErrNotFound
	}

	return resultFromMatch(match), nil
}

// SafeProbe scans the whole registry and resolves conflicting matches.
//
// More than one incompatible match is reported as *AmbivalentError, no match
// as ErrNotFound.
func (s *Session) SafeProbe() (*Result, error) {
	if err := s.scanGuard(); err != nil {
		return nil, err
	}

	match, ambivalent, err := s.ch.SafeProbe()
	if err != nil {
		return nil, err
	}

	if ambivalent != nil {
		return nil, ambivalentError(ambivalent)
	}

	if match == nil {
		return nil, ErrNotFound
	}

	return resultFromMatch(match), nil
}

// Signatures scans the whole registry and returns all signatures found.
//
// The scan runs on its own cursor over the shared source, so Signatures does
// not disturb a ProbeNext iteration.
func (s *Session) Signatures() ([]Signature, error) {
	if err := s.scanGuard(); err != nil {
		return nil, err
	}

	ch := chain.New(s.src, s.logger, chain.Default())
	ch.SetFilter(s.filter)

	var sigs []Signature

	for {
		match, err := ch.ProbeNext()
		if err != nil {
			return nil, err
		}

		if match == nil {
			return sigs, nil
		}

		sigs = append(sigs, signatureFromMatch(match))
	}
}

// StepBack moves the scan cursor one entry back, so the next ProbeNext call
// retries the entry which produced the last match.
func (s *Session) StepBack() {
	s.ch.StepBack()
}

// Rewind resets the scan cursor to the beginning of the registry.
func (s *Session) Rewind() {
	s.ch.Rewind()
}

func (s *Session) scanGuard() error {
	if s.refuse || !s.ch.Scannable() {
		return ErrRefuseScan
	}

	return nil
}

// RereadPending reports whether a wiped partition table signature awaits a
// kernel partition table re-read.
func (s *Session) RereadPending() bool {
	return s.rereadPending
}

// RereadPartitionTable asks the kernel to pick up the changed partition table.
func (s *Session) RereadPartitionTable() error {
	if s.info.BlockDevice == nil {
		s.rereadPending = false

		return nil
	}

	if err := s.info.BlockDevice.RereadPartitionTable(); err != nil {
		return err
	}

	s.rereadPending = false

	return nil
}

// Close releases the device lock.
//
// The underlying file stays open, it is owned by the caller.
func (s *Session) Close() error {
	if s.lockedDisk == nil {
		return nil
	}

	s.lockedDisk.Unlock() //nolint:errcheck

	err := s.lockedDisk.Close()

	s.lockedDisk = nil

	return err
}
