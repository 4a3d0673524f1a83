package chacha

import "encoding/binary"

// blocksWide generates all four lanes together in a structure-of-arrays
// layout: word w of lane l lives at x[w][l], so each quarter-round operation
// runs across the four lanes in lockstep. The lane loops are fixed-width and
// branch-free, which keeps them friendly to vector units.
func blocksWide(s *State, buf *[BufLen]byte) {
	var x [stateWords][Lanes]uint32

	for l := uint32(0); l < Lanes; l++ {
		row := s.laneRow(l)
		x[0][l], x[1][l], x[2][l], x[3][l] = const0, const1, const2, const3
		x[4][l], x[5][l], x[6][l], x[7][l] = s.key[0], s.key[1], s.key[2], s.key[3]
		x[8][l], x[9][l], x[10][l], x[11][l] = s.key[4], s.key[5], s.key[6], s.key[7]
		x[12][l], x[13][l], x[14][l], x[15][l] = row[0], row[1], row[2], row[3]
	}

	pre := x

	for r := 0; r < s.dr; r++ {
		// Column round.
		laneQuarterRound(&x, 0, 4, 8, 12)
		laneQuarterRound(&x, 1, 5, 9, 13)
		laneQuarterRound(&x, 2, 6, 10, 14)
		laneQuarterRound(&x, 3, 7, 11, 15)

		// Diagonal round.
		laneQuarterRound(&x, 0, 5, 10, 15)
		laneQuarterRound(&x, 1, 6, 11, 12)
		laneQuarterRound(&x, 2, 7, 8, 13)
		laneQuarterRound(&x, 3, 4, 9, 14)
	}

	// Feed-forward and serialization. The batch is lane-major: lane l
	// occupies buf[l*64 : (l+1)*64], each word little-endian.
	for w := 0; w < stateWords; w++ {
		for l := 0; l < Lanes; l++ {
			binary.LittleEndian.PutUint32(buf[l*BlockLen+w*4:], x[w][l]+pre[w][l])
		}
	}
}

// laneQuarterRound applies the quarter-round to words a, b, c, d of every
// lane.
func laneQuarterRound(x *[stateWords][Lanes]uint32, a, b, c, d int) {
	for l := 0; l < Lanes; l++ {
		x[a][l], x[b][l], x[c][l], x[d][l] = quarterRound(x[a][l], x[b][l], x[c][l], x[d][l])
	}
}
