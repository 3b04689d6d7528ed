// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//go:build linux

package blkid

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/siderolabs/go-blkid/internal/ioutil"
)

// WipeSignature erases a single signature from the device.
//
// The erased bytes can be backed up first; in dry-run mode the signature is
// hidden from the session instead of touching the device. In both cases the
// scan cursor steps back, so the next ProbeNext call re-evaluates the same
// registry entry against the masked device.
//
// Wiping a partition table signature on a device which is itself a partition
// is refused unless forced, as it corrupts the partitioning of the parent.
func (s *Session) WipeSignature(sig Signature, opts ...WipeOption) error {
	options := applyWipeOptions(opts...)

	if sig.PartitionTable && s.info.BlockDevice != nil && !s.info.WholeDisk && !options.Force {
		return fmt.Errorf("%w: %s", ErrWipeRefused, s.f.Name())
	}

	if options.BackupDir != "" {
		if err := s.backupSignature(sig, options.BackupDir); err != nil {
			return fmt.Errorf("failed to back up signature: %w", err)
		}
	}

	if options.DryRun {
		s.src.Hide(sig.Offset, uint64(sig.Length))
		s.ch.StepBack()

		return nil
	}

	if err := s.eraseSignature(sig); err != nil {
		return err
	}

	if sig.PartitionTable {
		s.rereadPending = true
	}

	// drop the cached buffers so the re-probe sees the on-disk zeroes
	s.src.ResetCache()
	s.ch.StepBack()

	return nil
}

// backupSignature stores the raw signature bytes in
// <dir>/<device-basename>0x<offset>.bak before they are erased.
func (s *Session) backupSignature(sig Signature, dir string) error {
	buf := make([]byte, sig.Length)

	if err := ioutil.ReadFullAt(s.f, buf, int64(sig.Offset)); err != nil {
		return err
	}

	path := filepath.Join(dir, fmt.Sprintf("%s%#x.bak", filepath.Base(s.f.Name()), sig.Offset))

	bak, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return err
	}

	if _, err = bak.Write(buf); err != nil {
		bak.Close() //nolint:errcheck

		return err
	}

	return bak.Close()
}

// eraseSignature zeroes the signature bytes on the device.
//
// On zoned devices a signature in a sequential write zone cannot be
// overwritten in place, the whole containing zone is reset instead.
func (s *Session) eraseSignature(sig Signature) error {
	if zoneSize := s.src.GetZoneSize(); zoneSize != 0 {
		zoneStart := sig.Offset &^ (zoneSize - 1)

		zones, err := s.src.GetZones(zoneStart, 1)
		if err != nil {
			return fmt.Errorf("failed to query the zone at %#x: %w", zoneStart, err)
		}

		if len(zones) > 0 && !zones[0].Conventional {
			if err := s.info.BlockDevice.ResetZone(zoneStart, zoneSize); err != nil {
				return fmt.Errorf("failed to reset the zone at %#x: %w", zoneStart, err)
			}

			return nil
		}
	}

	if _, err := s.f.WriteAt(make([]byte, sig.Length), int64(sig.Offset)); err != nil {
		return fmt.Errorf("failed to write zeroes at %#x: %w", sig.Offset, err)
	}

	return s.f.Sync()
}
