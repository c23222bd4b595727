package entry

import "hash/crc32"

var crcTable = crc32.MakeTable(crc32.Castagnoli)

func CRC32(b []byte) uint32 {
	return crc32.Checksum(b, crcTable)
}

func CRC32Valid(b []byte, expected uint32) bool {
	return CRC32(b) == expected
}
