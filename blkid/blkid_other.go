// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//go:build !linux

package blkid

import (
	"fmt"
	"os"
)

// ProbePath returns the probe information for the specified path.
func ProbePath(devpath string, opts ...ProbeOption) (*Info, error) {
	return nil, fmt.Errorf("not implemented")
}

// Probe returns the probe information for the specified file.
func Probe(f *os.File, opts ...ProbeOption) (*Info, error) {
	return nil, fmt.Errorf("not implemented")
}

// Session is a resumable probing session over a single device or image file.
//
// Only implemented on Linux.
type Session struct{}

// NewSession opens a probing session over the file.
func NewSession(f *os.File, opts ...ProbeOption) (*Session, error) {
	return nil, fmt.Errorf("not implemented")
}

// Info returns the device metadata of the probed file.
func (s *Session) Info() *Info {
	return nil
}

// ProbeNext returns the next match, resuming after the previous one.
func (s *Session) ProbeNext() (*Result, error) {
	return nil, fmt.Errorf("not implemented")
}

// SafeProbe scans the whole registry and resolves conflicting matches.
func (s *Session) SafeProbe() (*Result, error) {
	return nil, fmt.Errorf("not implemented")
}

// Signatures scans the whole registry and returns all signatures found.
func (s *Session) Signatures() ([]Signature, error) {
	return nil, fmt.Errorf("not implemented")
}

// StepBack moves the scan cursor one entry back.
func (s *Session) StepBack() {}

// Rewind resets the scan cursor to the beginning of the registry.
func (s *Session) Rewind() {}

// WipeSignature erases a single signature from the device.
func (s *Session) WipeSignature(sig Signature, opts ...WipeOption) error {
	return fmt.Errorf("not implemented")
}

// RereadPending reports whether a partition table re-read is pending.
func (s *Session) RereadPending() bool {
	return false
}

// RereadPartitionTable asks the kernel to pick up the changed partition table.
func (s *Session) RereadPartitionTable() error {
	return fmt.Errorf("not implemented")
}

// Close releases the session resources.
func (s *Session) Close() error {
	return nil
}
