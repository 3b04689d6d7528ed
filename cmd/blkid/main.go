// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Command blkid probes blockdevices for filesystem, RAID, encryption and
// partition table signatures, and wipes them.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/siderolabs/go-blkid/blkid"
)

// Exit codes, following the util-linux blkid convention.
const (
	exitSuccess    = 0
	exitError      = 1
	exitNotFound   = 2
	exitAmbivalent = 8
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := &cobra.Command{
		Use:           "blkid",
		Short:         "blockdevice signature probing and wiping",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newProbeCommand(), newWipeCommand())

	err := rootCmd.Execute()
	if err == nil {
		return exitSuccess
	}

	switch {
	case errors.Is(err, blkid.ErrNotFound):
		// no signature found is reported via the exit code only
		return exitNotFound
	case errors.Is(err, blkid.ErrAmbivalent):
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "use 'blkid wipe' to erase the conflicting signatures")

		return exitAmbivalent
	default:
		fmt.Fprintln(os.Stderr, err)

		return exitError
	}
}

func verboseLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}
