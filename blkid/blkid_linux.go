// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//go:build linux

package blkid

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/siderolabs/gen/xslices"
	"golang.org/x/sys/unix"

	"github.com/siderolabs/go-blkid/blkid/internal/chain"
	"github.com/siderolabs/go-blkid/blkid/internal/probe"
	"github.com/siderolabs/go-blkid/blkid/internal/source"
	"github.com/siderolabs/go-blkid/block"
)

// ProbePath returns the probe information for the specified path.
func ProbePath(devpath string, opts ...ProbeOption) (*Info, error) {
	f, err := os.OpenFile(devpath, os.O_RDONLY|unix.O_CLOEXEC|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, err
	}

	defer f.Close() //nolint:errcheck

	return Probe(f, opts...)
}

// Probe returns the probe information for the specified file.
func Probe(f *os.File, opts ...ProbeOption) (*Info, error) {
	options := applyProbeOptions(opts...)

	info, err := statInfo(f)
	if err != nil {
		return nil, err
	}

	if info.BlockDevice != nil {
		if private, err := info.BlockDevice.IsPrivateDeviceMapper(); private && err == nil {
			// don't probe device-mapper devices
			options.Logger.Debug("skipping private device-mapper device")

			return info, nil
		}
	}

	if info.WholeDisk && info.BlockDevice.IsCD() && info.BlockDevice.IsCDNoMedia() {
		// don't probe CD-ROM devices without media
		options.Logger.Debug("skipping CD-ROM device without media")

		return info, nil
	}

	if !options.SkipLocking && info.BlockDevice != nil {
		// we need to lock the whole disk device (if probing a partition, we lock the whole disk)
		wholeDisk, err := info.BlockDevice.GetWholeDisk()
		if err != nil {
			return nil, fmt.Errorf("failed to get whole disk: %w", err)
		}

		defer wholeDisk.Close() //nolint:errcheck

		if err = wholeDisk.TryLock(false); err != nil {
			if errors.Is(err, unix.EWOULDBLOCK) {
				return nil, ErrFailedLock
			}

			return nil, fmt.Errorf("failed to lock whole disk: %w", err)
		}

		defer wholeDisk.Unlock() //nolint:errcheck
	}

	if err := info.fillProbeResult(f, options); err != nil {
		return nil, fmt.Errorf("failed to probe: %w", err)
	}

	return info, nil
}

// statInfo gathers the device metadata of the probed file.
//
//nolint:cyclop
func statInfo(f *os.File) (*Info, error) {
	unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_RANDOM) //nolint:errcheck // best-effort: we don't care if this fails

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat: %w", err)
	}

	info := &Info{}

	sysStat := st.Sys().(*syscall.Stat_t) //nolint:errcheck,forcetypeassert // we know it's a syscall.Stat_t

	switch sysStat.Mode & unix.S_IFMT {
	case unix.S_IFBLK:
		// block device, initialize full support
		info.BlockDevice = block.NewFromFile(f)

		info.DevNo, err = info.BlockDevice.GetDevNo()
		if err != nil {
			return nil, fmt.Errorf("failed to get device number: %w", err)
		}

		var (
			size   uint64
			ioSize uint
		)

		if size, err = info.BlockDevice.GetSize(); err == nil {
			info.Size = size
		} else {
			return nil, fmt.Errorf("failed to get block device size: %w", err)
		}

		if ioSize, err = info.BlockDevice.GetIOSize(); err == nil {
			info.IOSize = ioSize
		} else {
			return nil, fmt.Errorf("failed to get block device I/O size: %w", err)
		}

		info.SectorSize = info.BlockDevice.GetSectorSize()

		info.WholeDisk, err = info.BlockDevice.IsWholeDisk()
		if err != nil {
			return nil, fmt.Errorf("failed to check if block device is whole disk: %w", err)
		}
	case unix.S_IFREG:
		// regular file (an image?), so use different settings
		info.Size = uint64(st.Size())
		info.IOSize = block.DefaultBlockSize
		info.SectorSize = block.DefaultBlockSize
	case unix.S_IFCHR:
		// character device (e.g. an UBI volume), the size comes from a seek to the end
		size, err := f.Seek(0, io.SeekEnd)
		if err != nil {
			return nil, fmt.Errorf("failed to seek: %w", err)
		}

		info.Size = uint64(size)
		info.IOSize = block.DefaultBlockSize
		info.SectorSize = block.DefaultBlockSize
		info.charDevice = true
	default:
		return nil, fmt.Errorf("unsupported file type: %s", st.Mode().Type())
	}

	return info, nil
}

// newSource builds the probing source over the file with the device quirks applied.
func (i *Info) newSource(f *os.File) (*source.Source, error) {
	src := source.New(f, i.Size, i.SectorSize)

	if i.charDevice {
		src.SetCharDevice(true)
	}

	if i.BlockDevice == nil {
		return src, nil
	}

	if i.BlockDevice.IsCD() {
		src.SetCDROM(true)
	}

	zoneSize, err := i.BlockDevice.GetZoneSize()
	if err != nil {
		return nil, fmt.Errorf("failed to get zone size: %w", err)
	}

	if zoneSize != 0 {
		dev := i.BlockDevice

		src.SetZones(zoneSize, func(offset uint64, count int) ([]probe.Zone, error) {
			zones, err := dev.ReportZones(offset, count)
			if err != nil {
				return nil, err
			}

			return xslices.Map(zones, func(zone block.Zone) probe.Zone {
				return probe.Zone{
					Start:        zone.Start,
					Length:       zone.Length,
					WritePointer: zone.WritePointer,

					Conventional: zone.Conventional,
					Empty:        zone.Empty,
					Full:         zone.Full,
				}
			}), nil
		})
	}

	return src, nil
}

func (i *Info) fillProbeResult(f *os.File, options ProbeOptions) error {
	src, err := i.newSource(f)
	if err != nil {
		return err
	}

	ch := chain.New(src, options.Logger, chain.Default())
	ch.SetFilter(chain.Filter{Names: options.Names, Usages: options.Usages})

	match, ambivalent, err := ch.SafeProbe()
	if err != nil {
		return err
	}

	if ambivalent != nil {
		return ambivalentError(ambivalent)
	}

	if match == nil {
		return nil
	}

	i.ProbeResult = probeResultFromMatch(match)
	i.Tags = tagsFromMatch(match)

	if len(match.Result.Parts) > 0 {
		i.Parts, err = i.fillNested(f, match.Result.Parts, options)
		if err != nil {
			return err
		}
	}

	return nil
}

// fillNested probes each partition of a partition table match.
//
// Nested partition tables are not descended into.
func (i *Info) fillNested(f *os.File, parts []probe.Partition, options ProbeOptions) ([]NestedProbeResult, error) {
	results := make([]NestedProbeResult, 0, len(parts))

	for _, part := range parts {
		nested := NestedProbeResult{
			NestedResult: NestedResult{
				PartitionUUID:  part.UUID,
				PartitionType:  part.TypeUUID,
				PartitionLabel: part.Label,
				PartitionIndex: part.Index,

				PartitionOffset: part.Offset,
				PartitionSize:   part.Size,
			},
		}

		if part.Offset+part.Size > i.Size {
			// partition points past the device end, skip probing
			results = append(results, nested)

			continue
		}

		src := source.New(io.NewSectionReader(f, int64(part.Offset), int64(part.Size)), part.Size, i.SectorSize)

		ch := chain.New(src, options.Logger, chain.Default())
		ch.SetFilter(chain.Filter{Names: options.Names, Usages: options.Usages, NoPartitionTables: true})

		match, _, err := ch.SafeProbe()
		if err != nil {
			return nil, fmt.Errorf("failed to probe partition %d: %w", part.Index, err)
		}

		// an ambivalent partition is reported as no match
		if match != nil {
			nested.ProbeResult = probeResultFromMatch(match)
		}

		results = append(results, nested)
	}

	return results, nil
}
