// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package chain

import (
	"github.com/siderolabs/go-blkid/blkid/internal/filesystems/bitlocker"
	"github.com/siderolabs/go-blkid/blkid/internal/filesystems/bluestore"
	"github.com/siderolabs/go-blkid/blkid/internal/filesystems/btrfs"
	"github.com/siderolabs/go-blkid/blkid/internal/filesystems/ext"
	"github.com/siderolabs/go-blkid/blkid/internal/filesystems/iso9660"
	"github.com/siderolabs/go-blkid/blkid/internal/filesystems/linuxraid"
	"github.com/siderolabs/go-blkid/blkid/internal/filesystems/luks"
	"github.com/siderolabs/go-blkid/blkid/internal/filesystems/lvm2"
	"github.com/siderolabs/go-blkid/blkid/internal/filesystems/squashfs"
	"github.com/siderolabs/go-blkid/blkid/internal/filesystems/swap"
	"github.com/siderolabs/go-blkid/blkid/internal/filesystems/talosmeta"
	"github.com/siderolabs/go-blkid/blkid/internal/filesystems/vfat"
	"github.com/siderolabs/go-blkid/blkid/internal/filesystems/xfs"
	"github.com/siderolabs/go-blkid/blkid/internal/filesystems/zfs"
	"github.com/siderolabs/go-blkid/blkid/internal/partitions/gpt"
	"github.com/siderolabs/go-blkid/blkid/internal/probe"
)

// Default returns the default registry of probers.
//
// The order is fixed: RAID members and crypto containers are probed before
// filesystems, the partition table comes last. Tolerant and minimum size
// assignments are per-format properties of the registry.
func Default() []probe.Entry {
	return []probe.Entry{
		{Prober: &linuxraid.Probe{}, Usage: probe.UsageRAID},
		{Prober: &bluestore.Probe{}, Usage: probe.UsageOther},
		{Prober: &lvm2.Probe{}, Usage: probe.UsageRAID},
		{Prober: &luks.Probe{}, Usage: probe.UsageCrypto},
		{Prober: &bitlocker.Probe{}, Usage: probe.UsageCrypto},
		{Prober: &vfat.Probe{}, Usage: probe.UsageFilesystem},
		{Prober: &swap.SuspendProbe{}, Usage: probe.UsageOther, MinSize: 10 * 4096},
		{Prober: &swap.Probe{}, Usage: probe.UsageOther, MinSize: 10 * 4096},
		{Prober: &xfs.Probe{}, Usage: probe.UsageFilesystem},
		{Prober: &ext.Probe{}, Usage: probe.UsageFilesystem},
		{Prober: &iso9660.Probe{}, Usage: probe.UsageFilesystem, Tolerant: true},
		{Prober: &zfs.Probe{}, Usage: probe.UsageFilesystem, MinSize: 64 * 1024 * 1024},
		{Prober: &squashfs.Probe{}, Usage: probe.UsageFilesystem},
		{Prober: &btrfs.Probe{}, Usage: probe.UsageFilesystem, MinSize: 1024 * 1024},
		{Prober: &talosmeta.Probe{}, Usage: probe.UsageOther},
		{Prober: &gpt.Probe{}, Usage: probe.UsageOther, PartitionTable: true},
	}
}
