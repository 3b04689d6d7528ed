// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package block

import (
	"io"
	"os"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// FastWipeRange is the size of the head and tail areas zeroed out by FastWipe.
const FastWipeRange = 1024 * 1024

// Wipe zeroes out the whole device.
//
// The fastest available method is used, in order of preference:
//   - secure discard
//   - discard with zeroes
//   - zero out via ioctl
//   - zero out from userland
//
// The name of the method used is returned.
func (d *Device) Wipe() (string, error) {
	size, err := d.GetSize()
	if err != nil {
		return "", err
	}

	return d.WipeRange(0, size)
}

// FastWipe discards the device contents and zeroes out the head and the tail.
//
// This method is much faster than Wipe(), but it doesn't guarantee
// that the device is zeroed out completely: discard is advisory, while
// the head and the tail of the device are zeroed out explicitly to
// destroy any partition tables and signatures stored there.
func (d *Device) FastWipe() error {
	size, err := d.GetSize()
	if err != nil {
		return err
	}

	// BLKDISCARD is implemented via TRIM on SSDs, it might or might not zero out device contents.
	r := [2]uint64{0, size}

	// ignoring the error here as DISCARD might be not supported by the device
	unix.Syscall(unix.SYS_IOCTL, d.f.Fd(), unix.BLKDISCARD, uintptr(unsafe.Pointer(&r[0]))) //nolint:errcheck

	if _, err = d.WipeRange(0, min(size, uint64(FastWipeRange))); err != nil {
		return err
	}

	if size >= FastWipeRange*2 {
		if _, err = d.WipeRange(size-FastWipeRange, FastWipeRange); err != nil {
			return err
		}
	}

	return nil
}

// WipeRange zeroes out the device range [start, start+length).
func (d *Device) WipeRange(start, length uint64) (string, error) {
	r := [2]uint64{start, length}

	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, d.f.Fd(), unix.BLKSECDISCARD, uintptr(unsafe.Pointer(&r[0]))); errno == 0 {
		runtime.KeepAlive(d)

		return "blksecdiscard", nil
	}

	var zeroes int

	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, d.f.Fd(), unix.BLKDISCARDZEROES, uintptr(unsafe.Pointer(&zeroes))); errno == 0 && zeroes != 0 {
		if _, _, errno = unix.Syscall(unix.SYS_IOCTL, d.f.Fd(), unix.BLKDISCARD, uintptr(unsafe.Pointer(&r[0]))); errno == 0 {
			runtime.KeepAlive(d)

			return "blkdiscardzeros", nil
		}
	}

	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, d.f.Fd(), unix.BLKZEROOUT, uintptr(unsafe.Pointer(&r[0]))); errno == 0 {
		runtime.KeepAlive(d)

		return "blkzeroout", nil
	}

	return "writezeroes", d.writeZeroes(start, length)
}

// writeZeroes is the fallback for devices which don't support any of the zeroing ioctls.
func (d *Device) writeZeroes(start, length uint64) error {
	if _, err := d.f.Seek(int64(start), io.SeekStart); err != nil {
		return err
	}

	zero, err := os.Open("/dev/zero")
	if err != nil {
		return err
	}

	defer zero.Close() //nolint:errcheck

	if _, err = io.CopyN(d.f, zero, int64(length)); err != nil {
		return err
	}

	return d.f.Sync()
}
