// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package block

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"syscall"
	"time"
	"unsafe"

	"github.com/siderolabs/go-retry/retry"
	"golang.org/x/sys/unix"
)

// KernelPartitionAdd invokes the BLKPG_ADD_PARTITION ioctl.
func (d *Device) KernelPartitionAdd(no int, start, length uint64) error {
	return d.inform(unix.BLKPG_ADD_PARTITION, int32(no), int64(start), int64(length))
}

// KernelPartitionResize invokes the BLKPG_RESIZE_PARTITION ioctl.
func (d *Device) KernelPartitionResize(no int, first, length uint64) error {
	return d.inform(unix.BLKPG_RESIZE_PARTITION, int32(no), int64(first), int64(length))
}

// KernelPartitionDelete invokes the BLKPG_DEL_PARTITION ioctl.
func (d *Device) KernelPartitionDelete(no int) error {
	return d.inform(unix.BLKPG_DEL_PARTITION, int32(no), 0, 0)
}

func (d *Device) inform(op int32, no int32, start, length int64) error {
	data := &unix.BlkpgPartition{
		Start:  start,
		Length: length,
		Pno:    no,
	}

	arg := &unix.BlkpgIoctlArg{
		Op:      op,
		Datalen: int32(unsafe.Sizeof(*data)),
		Data:    (*byte)(unsafe.Pointer(data)),
	}

	_, _, errno := syscall.Syscall(
		syscall.SYS_IOCTL,
		d.f.Fd(),
		unix.BLKPG,
		uintptr(unsafe.Pointer(arg)),
	)

	runtime.KeepAlive(d)

	if errno == 0 {
		return nil
	}

	return errno
}

// RereadPartitionTable invokes the BLKRRPART ioctl to have the kernel read the
// partition table.
//
// The kernel refuses with EBUSY while any partition of the device is in use,
// so the ioctl is retried for a short period.
func (d *Device) RereadPartitionTable() error {
	if err := d.f.Sync(); err != nil {
		return err
	}

	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, d.f.Fd(), unix.BLKFLSBUF, 0); errno != 0 {
		return fmt.Errorf("failed to flush blockdevice buffers: %w", errno)
	}

	if err := retry.Constant(5*time.Second, retry.WithUnits(50*time.Millisecond)).Retry(func() error {
		if _, _, errno := unix.Syscall(unix.SYS_IOCTL, d.f.Fd(), unix.BLKRRPART, 0); errno != 0 {
			if errno == unix.EBUSY {
				return retry.ExpectedError(errno)
			}

			return errno
		}

		return nil
	}); err != nil {
		return fmt.Errorf("failed to re-read partition table: %w", err)
	}

	runtime.KeepAlive(d)

	return nil
}

// GetKernelLastPartitionNum returns the maximum partition number in the kernel.
func (d *Device) GetKernelLastPartitionNum() (int, error) {
	sysFsPath, err := d.sysFsPath()
	if err != nil {
		return 0, err
	}

	contents, err := os.ReadDir(sysFsPath)
	if err != nil {
		return 0, err
	}

	var lastPartNum int

	for _, entry := range contents {
		if !entry.IsDir() {
			continue
		}

		contents := readSysFsFile(filepath.Join(sysFsPath, entry.Name(), "partition"))
		if len(contents) == 0 {
			continue
		}

		partNum, err := strconv.Atoi(contents)
		if err != nil {
			continue
		}

		if partNum > lastPartNum {
			lastPartNum = partNum
		}
	}

	return lastPartNum, nil
}
