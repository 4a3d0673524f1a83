package chacha

import "encoding/binary"

// blocksSerial generates the batch one lane at a time with the scalar block
// function. This is the fallback backend and the reference semantics that
// every other backend must match byte for byte.
func blocksSerial(s *State, buf *[BufLen]byte) {
	for l := uint32(0); l < Lanes; l++ {
		block(s, l, (*[BlockLen]byte)(buf[l*BlockLen:(l+1)*BlockLen]))
	}
}

// block computes the keystream block for lane l of s: 16 state words passed
// through dr double-rounds, the pre-round state added back, and the result
// serialized little-endian.
func block(s *State, l uint32, out *[BlockLen]byte) {
	row := s.laneRow(l)

	var (
		c0, c1, c2, c3     uint32 = const0, const1, const2, const3
		c4, c5, c6, c7            = s.key[0], s.key[1], s.key[2], s.key[3]
		c8, c9, c10, c11          = s.key[4], s.key[5], s.key[6], s.key[7]
		c12, c13, c14, c15        = row[0], row[1], row[2], row[3]
	)

	x0, x1, x2, x3 := c0, c1, c2, c3
	x4, x5, x6, x7 := c4, c5, c6, c7
	x8, x9, x10, x11 := c8, c9, c10, c11
	x12, x13, x14, x15 := c12, c13, c14, c15

	for r := 0; r < s.dr; r++ {
		// Column round.
		x0, x4, x8, x12 = quarterRound(x0, x4, x8, x12)
		x1, x5, x9, x13 = quarterRound(x1, x5, x9, x13)
		x2, x6, x10, x14 = quarterRound(x2, x6, x10, x14)
		x3, x7, x11, x15 = quarterRound(x3, x7, x11, x15)

		// Diagonal round.
		x0, x5, x10, x15 = quarterRound(x0, x5, x10, x15)
		x1, x6, x11, x12 = quarterRound(x1, x6, x11, x12)
		x2, x7, x8, x13 = quarterRound(x2, x7, x8, x13)
		x3, x4, x9, x14 = quarterRound(x3, x4, x9, x14)
	}

	binary.LittleEndian.PutUint32(out[0:4], x0+c0)
	binary.LittleEndian.PutUint32(out[4:8], x1+c1)
	binary.LittleEndian.PutUint32(out[8:12], x2+c2)
	binary.LittleEndian.PutUint32(out[12:16], x3+c3)
	binary.LittleEndian.PutUint32(out[16:20], x4+c4)
	binary.LittleEndian.PutUint32(out[20:24], x5+c5)
	binary.LittleEndian.PutUint32(out[24:28], x6+c6)
	binary.LittleEndian.PutUint32(out[28:32], x7+c7)
	binary.LittleEndian.PutUint32(out[32:36], x8+c8)
	binary.LittleEndian.PutUint32(out[36:40], x9+c9)
	binary.LittleEndian.PutUint32(out[40:44], x10+c10)
	binary.LittleEndian.PutUint32(out[44:48], x11+c11)
	binary.LittleEndian.PutUint32(out[48:52], x12+c12)
	binary.LittleEndian.PutUint32(out[52:56], x13+c13)
	binary.LittleEndian.PutUint32(out[56:60], x14+c14)
	binary.LittleEndian.PutUint32(out[60:64], x15+c15)
}
