// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package lvm2

// LVM2 label checksum, as computed by the LVM2 userspace tools: a nibble-wise
// CRC-32 variant seeded with 0xf597a6cf and without final inversion.
var crcTable = [16]uint32{
	0x00000000, 0x1db71064, 0x3b6e20c8, 0x26d930ac,
	0x76dc4190, 0x6b6b51f4, 0x4db26158, 0x5005713c,
	0xedb88320, 0xf00f9344, 0xd6d6a3e8, 0xcb61b38c,
	0x9b64c2b0, 0x86d3d2d4, 0xa00ae278, 0xbdbdf21c,
}

const initialCRC = 0xf597a6cf

func labelChecksum(buf []byte) uint32 {
	crc := uint32(initialCRC)

	for _, b := range buf {
		crc ^= uint32(b)
		crc = (crc >> 4) ^ crcTable[crc&0xf]
		crc = (crc >> 4) ^ crcTable[crc&0xf]
	}

	return crc
}
