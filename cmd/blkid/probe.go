// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"
	"strings"

	"github.com/siderolabs/gen/xslices"
	"github.com/spf13/cobra"

	"github.com/siderolabs/go-blkid/blkid"
)

func newProbeCommand() *cobra.Command {
	var (
		output  string
		usages  []string
		names   []string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "probe <device>...",
		Short: "Probe devices for signatures and print the discovered tags",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			opts, err := probeOptions(usages, names, verbose)
			if err != nil {
				return err
			}

			return runProbe(args, output, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "full", "output format: full, value or export")
	cmd.Flags().StringSliceVarP(&usages, "usages", "u", nil, "probe only the given usage categories (filesystem, raid, crypto, other)")
	cmd.Flags().StringSliceVarP(&names, "match-types", "n", nil, "probe only the given signature types")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func probeOptions(usages, names []string, verbose bool) ([]blkid.ProbeOption, error) {
	opts := []blkid.ProbeOption{
		blkid.WithProbeLogger(verboseLogger(verbose)),
	}

	if len(names) > 0 {
		opts = append(opts, blkid.WithOnlyNames(names...))
	}

	for _, s := range usages {
		usage, err := blkid.ParseUsage(s)
		if err != nil {
			return nil, err
		}

		opts = append(opts, blkid.WithOnlyUsages(usage))
	}

	return opts, nil
}

func runProbe(devices []string, output string, opts []blkid.ProbeOption) error {
	found := false

	for _, device := range devices {
		info, err := blkid.ProbePath(device, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", device, err)
		}

		if len(info.Tags) == 0 {
			continue
		}

		found = true

		if err := printTags(device, info.Tags, output); err != nil {
			return err
		}
	}

	if !found {
		return blkid.ErrNotFound
	}

	return nil
}

func printTags(device string, tags []blkid.Tag, output string) error {
	switch output {
	case "full":
		values := xslices.Map(tags, func(tag blkid.Tag) string {
			return fmt.Sprintf("%s=%q", tag.Name, tag.Value)
		})

		fmt.Printf("%s: %s\n", device, strings.Join(values, " "))
	case "value":
		for _, tag := range tags {
			fmt.Println(tag.Value)
		}
	case "export":
		for _, tag := range tags {
			fmt.Printf("%s=%s\n", tag.Name, tag.Value)
		}

		fmt.Println()
	default:
		return fmt.Errorf("unknown output format %q", output)
	}

	return nil
}
