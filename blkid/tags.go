// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package blkid

import (
	"slices"
	"strconv"

	"github.com/siderolabs/gen/xslices"

	"github.com/siderolabs/go-blkid/blkid/internal/chain"
)

type tagList []Tag

// add appends the tag unless the name is already present.
func (l *tagList) add(name, value string) {
	for _, tag := range *l {
		if tag.Name == name {
			return
		}
	}

	*l = append(*l, Tag{Name: name, Value: value})
}

// tagsFromMatch flattens a chain match into the libblkid tag set.
//
// Partition table matches use the PTTYPE/PTUUID/PTMAGIC/PTMAGIC_OFFSET names
// in place of TYPE/UUID/SBMAGIC/SBMAGIC_OFFSET.
func tagsFromMatch(match *chain.Match) []Tag {
	typeTag, uuidTag, magicTag, magicOffsetTag := "TYPE", "UUID", "SBMAGIC", "SBMAGIC_OFFSET"
	if match.PartitionTable {
		typeTag, uuidTag, magicTag, magicOffsetTag = "PTTYPE", "PTUUID", "PTMAGIC", "PTMAGIC_OFFSET"
	}

	res := match.Result

	var tags tagList

	tags.add(typeTag, match.Name)
	tags.add("USAGE", match.Usage.String())

	if res.Label != nil && *res.Label != "" {
		tags.add("LABEL", *res.Label)
	}

	if len(res.RawLabel) > 0 {
		tags.add("LABEL_RAW", string(res.RawLabel))
	}

	if res.BootLabel != nil && *res.BootLabel != "" {
		tags.add("LABEL_FATBOOT", *res.BootLabel)
	}

	if res.BootSystemID != nil && *res.BootSystemID != "" {
		tags.add("BOOT_SYSTEM_ID", *res.BootSystemID)
	}

	switch {
	case res.UUID != nil:
		tags.add(uuidTag, res.UUID.String())
	case res.Serial != "":
		tags.add(uuidTag, res.Serial)
	}

	if res.SubUUID != nil {
		tags.add("UUID_SUB", res.SubUUID.String())
	}

	if res.Version != "" {
		tags.add("VERSION", res.Version)
	}

	if res.SecType != "" {
		tags.add("SEC_TYPE", res.SecType)
	}

	if len(match.Magic) > 0 {
		tags.add(magicTag, string(match.Magic))
	}

	tags.add(magicOffsetTag, strconv.FormatUint(match.MagicOffset, 10))

	if res.BlockSize != 0 {
		tags.add("BLOCK_SIZE", strconv.FormatUint(uint64(res.BlockSize), 10))
	}

	if res.FilesystemBlockSize != 0 {
		tags.add("FSBLOCKSIZE", strconv.FormatUint(uint64(res.FilesystemBlockSize), 10))
	}

	if res.ProbedSize != 0 {
		tags.add("FSSIZE", strconv.FormatUint(res.ProbedSize, 10))
	}

	if res.FilesystemLastBlock != 0 {
		tags.add("FSLASTBLOCK", strconv.FormatUint(res.FilesystemLastBlock, 10))
	}

	return tags
}

func probeResultFromMatch(match *chain.Match) ProbeResult {
	return ProbeResult{
		Name:  match.Name,
		UUID:  match.Result.UUID,
		Label: match.Result.Label,

		BlockSize:           match.Result.BlockSize,
		FilesystemBlockSize: match.Result.FilesystemBlockSize,
		ProbedSize:          match.Result.ProbedSize,
	}
}

func signatureFromMatch(match *chain.Match) Signature {
	return Signature{
		Offset: match.MagicOffset,
		Length: len(match.Magic),
		Magic:  slices.Clone(match.Magic),

		Name:           match.Name,
		Usage:          match.Usage,
		PartitionTable: match.PartitionTable,
	}
}

func resultFromMatch(match *chain.Match) *Result {
	return &Result{
		Signature: signatureFromMatch(match),
		Tags:      tagsFromMatch(match),
	}
}

func ambivalentError(matches []*chain.Match) *AmbivalentError {
	return &AmbivalentError{
		Matches: xslices.Map(matches, func(match *chain.Match) AmbivalentMatch {
			return AmbivalentMatch{
				Name:   match.Name,
				Offset: match.MagicOffset,
			}
		}),
	}
}
