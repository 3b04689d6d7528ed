// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package chain

import (
	"slices"

	"github.com/siderolabs/go-blkid/blkid/internal/probe"
)

// FilterMode selects the filter polarity.
type FilterMode int

// Filter modes.
const (
	// FilterOnly probes only the matching entries.
	FilterOnly FilterMode = iota
	// FilterExclude skips the matching entries.
	FilterExclude
)

// Filter restricts which registry entries are scanned.
//
// The zero value admits every entry. An entry matches the filter when its
// name or its usage is listed.
type Filter struct {
	Mode FilterMode

	Names  []string
	Usages []probe.Usage

	// NoPartitionTables skips partition table entries regardless of Mode,
	// used when scanning inside a partition.
	NoPartitionTables bool
}

// Admits reports whether the entry passes the filter.
func (f Filter) Admits(entry probe.Entry) bool {
	if f.NoPartitionTables && entry.PartitionTable {
		return false
	}

	if len(f.Names) == 0 && len(f.Usages) == 0 {
		return true
	}

	matches := slices.Contains(f.Names, entry.Name()) || slices.Contains(f.Usages, entry.Usage)

	if f.Mode == FilterExclude {
		return !matches
	}

	return matches
}
