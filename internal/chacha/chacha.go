// Package chacha implements the ChaCha block function as a four-lane batch
// generator. Each call to Blocks produces four consecutive 64-byte keystream
// blocks and advances the stored counter by four, so successive calls emit
// non-overlapping segments of the cipher stream.
//
// Two counter/nonce layouts are supported: the original djb layout (64-bit
// counter in words 12-13, 64-bit nonce in words 14-15) and the IETF layout
// from RFC 8439 (32-bit counter in word 12, 96-bit nonce in words 13-15).
package chacha

import "math/bits"

const (
	// BlockLen is the length of a single keystream block in bytes.
	BlockLen = 64
	// Lanes is the number of blocks generated per batch.
	Lanes = 4
	// BufLen is the length of a batch in bytes.
	BufLen = BlockLen * Lanes

	stateWords = 16
)

// The "expand 32-byte k" constants, words 0-3 of every ChaCha state.
const (
	const0 = 0x61707865 // "expa"
	const1 = 0x3320646e // "nd 3"
	const2 = 0x79622d32 // "2-by"
	const3 = 0x6b206574 // "te k"
)

// A State holds the mutable rows of a ChaCha matrix: the 256-bit key and the
// counter/nonce row. The constant row is identical for all instances and is
// loaded at generation time. The key and nonce words never change after
// construction; the counter is the only word mutated by consumption.
type State struct {
	key [8]uint32
	row [4]uint32 // words 12-15: counter and nonce, split per layout
	djb bool
	dr  int // double-rounds: 4, 6, or 10
}

// NewDjb returns a State using the original djb layout: a 64-bit counter in
// words 12-13 and a 64-bit nonce in words 14-15. The third nonce word is
// accepted for symmetry with the IETF layout and discarded; it has no effect
// on output.
func NewDjb(rounds int, key *[8]uint32, counter uint64, nonce *[3]uint32) State {
	return State{
		key: *key,
		row: [4]uint32{uint32(counter), uint32(counter >> 32), nonce[0], nonce[1]},
		djb: true,
		dr:  rounds / 2,
	}
}

// NewIETF returns a State using the RFC 8439 layout: a 32-bit counter in
// word 12 and a 96-bit nonce in words 13-15.
func NewIETF(rounds int, key *[8]uint32, counter uint32, nonce *[3]uint32) State {
	return State{
		key: *key,
		row: [4]uint32{counter, nonce[0], nonce[1], nonce[2]},
		dr:  rounds / 2,
	}
}

// Blocks fills buf with four consecutive keystream blocks for counters
// ctr, ctr+1, ctr+2, ctr+3, then advances the stored counter by four.
func (s *State) Blocks(buf *[BufLen]byte) {
	if useWide {
		blocksWide(s, buf)
	} else {
		blocksSerial(s, buf)
	}
	s.advance(Lanes)
}

// advance increments the counter by n, wrapping at the layout's counter
// width. The wrap is deterministic and never carries into the nonce words.
func (s *State) advance(n uint64) {
	if s.djb {
		c := uint64(s.row[0]) | uint64(s.row[1])<<32
		c += n
		s.row[0], s.row[1] = uint32(c), uint32(c>>32)
	} else {
		s.row[0] += uint32(n)
	}
}

// laneRow returns the counter/nonce row for lane l: the stored row with the
// counter offset by l, wrapped at the layout's counter width.
func (s *State) laneRow(l uint32) [4]uint32 {
	d := s.row
	if s.djb {
		c := (uint64(d[0]) | uint64(d[1])<<32) + uint64(l)
		d[0], d[1] = uint32(c), uint32(c>>32)
	} else {
		d[0] += l
	}
	return d
}

// quarterRound is the ChaCha diffusion primitive. The rotation amounts
// (16, 12, 8, 7) are fixed by the cipher definition.
func quarterRound(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 16)
	c += d
	b ^= c
	b = bits.RotateLeft32(b, 12)
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 8)
	c += d
	b ^= c
	b = bits.RotateLeft32(b, 7)
	return a, b, c, d
}
