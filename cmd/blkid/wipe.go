// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/siderolabs/gen/xslices"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/siderolabs/go-blkid/blkid"
	"github.com/siderolabs/go-blkid/block"
)

type wipeFlags struct {
	all       bool
	types     []string
	dryRun    bool
	force     bool
	backupDir string
	verbose   bool
}

func newWipeCommand() *cobra.Command {
	var flags wipeFlags

	cmd := &cobra.Command{
		Use:   "wipe <device>...",
		Short: "Erase signatures from devices",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if !flags.all && len(flags.types) == 0 {
				return errors.New("either --all or --types must be specified")
			}

			return runWipe(args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.all, "all", "a", false, "wipe all discovered signatures")
	cmd.Flags().StringSliceVarP(&flags.types, "types", "t", nil, "wipe only the given signature types")
	cmd.Flags().BoolVarP(&flags.dryRun, "no-act", "n", false, "report what would be wiped without writing to the device")
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "wipe partition table signatures even on partitions")
	cmd.Flags().StringVarP(&flags.backupDir, "backup", "b", "", "back up each signature to the given directory before erasing it")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func runWipe(devices []string, flags wipeFlags) error {
	logger := verboseLogger(flags.verbose)

	wiped := 0

	var rereads []string

	for _, device := range devices {
		count, rereadPending, err := wipeDevice(device, flags, logger)
		if err != nil {
			return fmt.Errorf("%s: %w", device, err)
		}

		wiped += count

		if rereadPending {
			rereads = append(rereads, device)
		}
	}

	// partition table re-reads are deferred until all devices are wiped, so a parent
	// disk is not re-read while its partition is still being processed
	for _, device := range rereads {
		if err := rereadPartitionTable(device); err != nil {
			return fmt.Errorf("%s: %w", device, err)
		}
	}

	if wiped == 0 {
		return blkid.ErrNotFound
	}

	return nil
}

//nolint:cyclop
func wipeDevice(device string, flags wipeFlags, logger *zap.Logger) (int, bool, error) {
	mode := os.O_RDWR | os.O_EXCL

	if flags.dryRun {
		mode = os.O_RDONLY
	}

	f, err := os.OpenFile(device, mode|unix.O_CLOEXEC, 0)
	if err != nil {
		return 0, false, err
	}

	defer f.Close() //nolint:errcheck

	probeOpts := []blkid.ProbeOption{
		blkid.WithProbeLogger(logger),
		blkid.WithWritable(!flags.dryRun),
	}

	if len(flags.types) > 0 {
		probeOpts = append(probeOpts, blkid.WithOnlyNames(flags.types...))
	}

	session, err := blkid.NewSession(f, probeOpts...)
	if err != nil {
		return 0, false, err
	}

	defer session.Close() //nolint:errcheck

	wipeOpts := []blkid.WipeOption{
		blkid.WithWipeDryRun(flags.dryRun),
		blkid.WithWipeForce(flags.force),
	}

	if flags.backupDir != "" {
		wipeOpts = append(wipeOpts, blkid.WithWipeBackup(flags.backupDir))
	}

	wiped := 0

	for {
		res, err := session.ProbeNext()
		if err != nil {
			if errors.Is(err, blkid.ErrNotFound) {
				break
			}

			return wiped, session.RereadPending(), err
		}

		if err = session.WipeSignature(res.Signature, wipeOpts...); err != nil {
			return wiped, session.RereadPending(), err
		}

		reportWipe(device, res.Signature, flags.dryRun)

		wiped++
	}

	return wiped, session.RereadPending(), nil
}

func reportWipe(device string, sig blkid.Signature, dryRun bool) {
	verb := "were"

	if dryRun {
		verb = "would be"
	}

	hexBytes := xslices.Map(sig.Magic, func(b byte) string {
		return fmt.Sprintf("%02x", b)
	})

	fmt.Printf("%s: %d bytes %s erased at offset %#010x (%s): %s\n",
		device, sig.Length, verb, sig.Offset, sig.Name, strings.Join(hexBytes, " "))
}

func rereadPartitionTable(device string) error {
	dev, err := block.NewFromPath(device, block.OpenForWrite())
	if err != nil {
		return err
	}

	defer dev.Close() //nolint:errcheck

	return dev.RereadPartitionTable()
}
