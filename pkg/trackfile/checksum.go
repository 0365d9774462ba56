package trackfile

import (
	"encoding/binary"
	"math/bits"
)

// ChecksumLen is the size of the checksum trailer.
const ChecksumLen = 4

// StoredChecksum returns the little endian u32 stored in the last four bytes.
func StoredChecksum(data []byte) (uint32, error) {
	if len(data) < ChecksumLen {
		return 0, ErrFileTooSmall
	}
	return binary.LittleEndian.Uint32(data[len(data)-ChecksumLen:]), nil
}

// ComputeChecksum calculates the checksum over all bytes except the trailer.
// The low word is the 16 bit byte sum, the high word a 16 bit accumulator
// that is rotated left by 3 before each byte is added.
// The value is informational, decoding does not verify it.
func ComputeChecksum(data []byte) uint32 {
	if len(data) < ChecksumLen {
		return 0
	}
	var sum, rot uint16
	for _, b := range data[:len(data)-ChecksumLen] {
		sum += uint16(b)
		rot = bits.RotateLeft16(rot, 3) + uint16(b)
	}
	return uint32(sum) | uint32(rot)<<16
}
