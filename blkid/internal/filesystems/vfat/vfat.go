// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package vfat probes FAT12/FAT16/FAT32 filesystems.
package vfat

//go:generate go run ../../../../internal/cstruct/cstruct.go -pkg vfat -struct MSDOSSB -input msdos.h -endianness LittleEndian

//go:generate go run ../../../../internal/cstruct/cstruct.go -pkg vfat -struct VFATSB -input vfat.h -endianness LittleEndian

//go:generate go run ../../../../internal/cstruct/cstruct.go -pkg vfat -struct DirEntry -input direntry.h -endianness LittleEndian

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/siderolabs/go-pointer"

	"github.com/siderolabs/go-blkid/blkid/internal/filesystems/bitlocker"
	"github.com/siderolabs/go-blkid/blkid/internal/magic"
	"github.com/siderolabs/go-blkid/blkid/internal/probe"
	"github.com/siderolabs/go-blkid/blkid/internal/utils"
	"github.com/siderolabs/go-blkid/internal/ioutil"
)

var (
	fatMagic1 = magic.Magic{
		Offset: 0x52,
		Value:  []byte("MSWIN"),
	}

	fatMagic2 = magic.Magic{
		Offset: 0x52,
		Value:  []byte("FAT32   "),
	}

	fatMagic3 = magic.Magic{
		Offset: 0x36,
		Value:  []byte("MSDOS"),
	}

	fatMagic4 = magic.Magic{
		Offset: 0x36,
		Value:  []byte("FAT16   "),
	}

	fatMagic5 = magic.Magic{
		Offset: 0x36,
		Value:  []byte("FAT12   "),
	}

	fatMagic6 = magic.Magic{
		Offset: 0x36,
		Value:  []byte("FAT     "),
	}

	// boot sector jump instructions, the weakest evidence of a FAT
	fatMagic7 = magic.Magic{
		Offset: 0,
		Value:  []byte{0xeb},
	}

	fatMagic8 = magic.Magic{
		Offset: 0,
		Value:  []byte{0xe9},
	}

	fatMagic9 = magic.Magic{
		Offset: 0x1fe,
		Value:  []byte{0x55, 0xaa},
	}
)

// Cluster count bounds and directory entry attributes.
//
//nolint:stylecheck,revive
const (
	FAT12_MAX = 0xff4
	FAT16_MAX = 0xfff4
	FAT32_MAX = 0x0ffffff6

	FAT_ATTR_VOLUME_ID = 0x08
	FAT_ATTR_DIR       = 0x10
	FAT_ATTR_LONG_NAME = 0x0f
	FAT_ATTR_MASK      = 0x3f

	FAT_ENTRY_FREE = 0xe5
)

const noName = "NO NAME    "

// Probe for the filesystem.
type Probe struct{}

// Magic returns the magic value for the filesystem.
func (p *Probe) Magic() []*magic.Magic {
	return []*magic.Magic{
		&fatMagic1,
		&fatMagic2,
		&fatMagic3,
		&fatMagic4,
		&fatMagic5,
		&fatMagic6,
		&fatMagic7,
		&fatMagic8,
		&fatMagic9,
	}
}

// Name returns the name of the filesystem.
func (p *Probe) Name() string {
	return "vfat"
}

// Probe runs the further inspection and returns the result if successful.
//
//nolint:gocyclo,cyclop
func (p *Probe) Probe(r probe.Reader, m magic.Magic) (*probe.Result, error) {
	buf := make([]byte, VFATSB_SIZE)

	if err := ioutil.ReadFullAt(r, buf, 0); err != nil {
		return nil, err
	}

	// two views over the same boot sector
	vfatSB := VFATSB(buf)
	msdosSB := MSDOSSB(buf)

	clusterCount, fatSize, ok := validSuperblock(r, m, msdosSB, vfatSB)
	if !ok {
		return nil, nil //nolint:nilnil
	}

	sectorSize := uint32(msdosSB.Get_ms_sector_size())
	reserved := uint32(msdosSB.Get_ms_reserved())

	sectCount := uint32(msdosSB.Get_ms_sectors())
	if sectCount == 0 {
		sectCount = msdosSB.Get_ms_total_sect()
	}

	res := &probe.Result{
		BlockSize:           sectorSize,
		FilesystemBlockSize: uint32(msdosSB.Get_ms_cluster_size()) * sectorSize,
		ProbedSize:          uint64(sectCount) * uint64(sectorSize),
		FilesystemLastBlock: uint64(sectCount),
	}

	var volLabel, bootLabel, serno []byte

	switch {
	case msdosSB.Get_ms_fat_length() != 0:
		// FAT12/FAT16: the label may be an attribute in the root directory
		rootStart := (reserved + fatSize) * sectorSize
		rootDirEntries := uint32(msdosSB.Get_ms_dir_entries())

		volLabel = searchFATLabel(r, int64(rootStart), rootDirEntries)

		if msdosSB.Get_ms_ext_boot_sign() == 0x29 {
			bootLabel = msdosSB.Get_ms_label()
		}

		if sign := msdosSB.Get_ms_ext_boot_sign(); sign == 0x28 || sign == 0x29 {
			serno = msdosSB.Get_ms_serno()
		}

		res.SecType = "msdos"

		switch {
		case clusterCount < FAT12_MAX:
			res.Version = "FAT12"
		case clusterCount < FAT16_MAX:
			res.Version = "FAT16"
		}
	case vfatSB.Get_vs_fat32_length() != 0:
		volLabel = searchFAT32Label(r, vfatSB, reserved, fatSize, sectorSize)

		if vfatSB.Get_vs_ext_boot_sign() == 0x29 {
			bootLabel = vfatSB.Get_vs_label()
		}

		serno = vfatSB.Get_vs_serno()
		res.Version = "FAT32"

		ok, err := validFSInfo(r, vfatSB, sectorSize)
		if err != nil {
			return nil, err
		}

		if !ok {
			return nil, nil //nolint:nilnil
		}
	}

	if volLabel != nil {
		res.Label = pointer.To(utils.TrimLabel(volLabel))
		res.RawLabel = volLabel
	}

	if bootLabel != nil && string(bootLabel) != noName {
		res.BootLabel = pointer.To(utils.TrimLabel(bootLabel))
	}

	// the serial number bytes are stored reversed
	if serno != nil {
		res.Serial = fmt.Sprintf("%02X%02X-%02X%02X", serno[3], serno[2], serno[1], serno[0])
	}

	return res, nil
}

//nolint:gocyclo,cyclop
func validSuperblock(r probe.Reader, m magic.Magic, msdosSB MSDOSSB, vfatSB VFATSB) (clusterCount, fatSize uint32, ok bool) {
	if len(m.Value) <= 2 {
		// old floppies have a valid MBR signature in place of a name string
		if !bytes.Equal(msdosSB.Get_ms_pmagic(), []byte{0x55, 0xaa}) {
			return 0, 0, false
		}

		// OS/2 places a FAT-like pseudo-superblock in front of JFS and HPFS
		if mag := string(msdosSB.Get_ms_magic()); mag == "JFS     " || mag == "HPFS    " {
			return 0, 0, false
		}
	}

	if msdosSB.Get_ms_fats() == 0 {
		return 0, 0, false
	}

	if msdosSB.Get_ms_reserved() == 0 {
		return 0, 0, false
	}

	if !(0xf8 <= msdosSB.Get_ms_media() || msdosSB.Get_ms_media() == 0xf0) {
		return 0, 0, false
	}

	if !utils.IsPowerOf2(msdosSB.Get_ms_cluster_size()) {
		return 0, 0, false
	}

	sectorSize := msdosSB.Get_ms_sector_size()

	if !utils.IsPowerOf2(sectorSize) || sectorSize < 512 || sectorSize > 4096 {
		return 0, 0, false
	}

	sectCount := uint32(msdosSB.Get_ms_sectors())
	if sectCount == 0 {
		sectCount = msdosSB.Get_ms_total_sect()
	}

	fatLength := uint32(msdosSB.Get_ms_fat_length())
	if fatLength == 0 {
		fatLength = vfatSB.Get_vs_fat32_length()
	}

	fatSize = fatLength * uint32(msdosSB.Get_ms_fats())
	dirSize := (uint32(msdosSB.Get_ms_dir_entries())*DIRENTRY_SIZE + uint32(sectorSize) - 1) / uint32(sectorSize)

	clusterCount = (sectCount - (uint32(msdosSB.Get_ms_reserved()) + fatSize + dirSize)) / uint32(msdosSB.Get_ms_cluster_size())

	var maxCount uint32

	switch {
	case msdosSB.Get_ms_fat_length() == 0 && vfatSB.Get_vs_fat32_length() != 0:
		maxCount = FAT32_MAX
	case clusterCount > FAT12_MAX:
		maxCount = FAT16_MAX
	default:
		maxCount = FAT12_MAX
	}

	if clusterCount > maxCount {
		return 0, 0, false
	}

	// BitLocker volumes keep a FAT-like boot sector
	if bitlocker.IsBitlocker(r) {
		return 0, 0, false
	}

	return clusterCount, fatSize, true
}

// searchFATLabel scans directory entries for the volume label: a volume-ID
// attribute entry which is not deleted, has no cluster assigned and is not a
// long-name continuation.
func searchFATLabel(r probe.Reader, offset int64, entries uint32) []byte {
	// the label is usually among the first entries, read the directory in one go
	dir := make([]byte, entries*DIRENTRY_SIZE)

	if err := ioutil.ReadFullAt(r, dir, offset); err != nil {
		return nil
	}

	for i := range entries {
		ent := DirEntry(dir[i*DIRENTRY_SIZE : (i+1)*DIRENTRY_SIZE])

		name := ent.Get_name()

		if name[0] == 0x00 {
			break
		}

		if name[0] == FAT_ENTRY_FREE ||
			ent.Get_cluster_high() != 0 || ent.Get_cluster_low() != 0 ||
			ent.Get_attr()&FAT_ATTR_MASK == FAT_ATTR_LONG_NAME {
			continue
		}

		if ent.Get_attr()&(FAT_ATTR_VOLUME_ID|FAT_ATTR_DIR) == FAT_ATTR_VOLUME_ID {
			label := slices.Clone(name)

			// 0x05 escapes an initial 0xe5 in a live entry
			if label[0] == 0x05 {
				label[0] = 0xe5
			}

			return label
		}
	}

	return nil
}

// searchFAT32Label walks the FAT32 root directory cluster chain looking for
// the volume label entry.
func searchFAT32Label(r probe.Reader, vfatSB VFATSB, reserved, fatSize, sectorSize uint32) []byte {
	bufSize := uint32(vfatSB.Get_vs_cluster_size()) * sectorSize
	startDataSect := reserved + fatSize
	entries := uint32(uint64(vfatSB.Get_vs_fat32_length()) * uint64(sectorSize) / 4)
	next := vfatSB.Get_vs_root_cluster()

	for maxloop := 100; next != 0 && next < entries && maxloop > 0; maxloop-- {
		nextSectOff := (next - 2) * uint32(vfatSB.Get_vs_cluster_size())
		nextOff := uint64(startDataSect+nextSectOff) * uint64(sectorSize)

		if label := searchFATLabel(r, int64(nextOff), bufSize/DIRENTRY_SIZE); label != nil {
			return label
		}

		// follow the cluster chain through the FAT
		fatEntryOff := uint64(reserved)*uint64(sectorSize) + uint64(next)*4

		fatEntry := make([]byte, 4)
		if err := ioutil.ReadFullAt(r, fatEntry, int64(fatEntryOff)); err != nil {
			return nil
		}

		next = binary.LittleEndian.Uint32(fatEntry) & 0x0fffffff
	}

	return nil
}

// validFSInfo verifies the FAT32 fsinfo block signatures; all-zero
// signatures are accepted since some volumes do not set them at all.
func validFSInfo(r probe.Reader, vfatSB VFATSB, sectorSize uint32) (bool, error) {
	fsinfoSector := vfatSB.Get_vs_fsinfo_sector()
	if fsinfoSector == 0 {
		return true, nil
	}

	buf := make([]byte, 488)

	if err := ioutil.ReadFullAt(r, buf, int64(uint64(fsinfoSector)*uint64(sectorSize))); err != nil {
		return false, err
	}

	var zero [4]byte

	sig1 := buf[0:4]
	if !bytes.Equal(sig1, []byte("RRaA")) && !bytes.Equal(sig1, []byte("RRdA")) && !bytes.Equal(sig1, zero[:]) {
		return false, nil
	}

	sig2 := buf[484:488]
	if !bytes.Equal(sig2, []byte("rrAa")) && !bytes.Equal(sig2, zero[:]) {
		return false, nil
	}

	return true, nil
}
