package chacha //nolint:testpackage // testing backend internals

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"
	"time"
)

// RFC 8439, section 2.1.1.
func TestQuarterRound(t *testing.T) {
	a, b, c, d := quarterRound(0x11111111, 0x01020304, 0x9b8d6f43, 0x01234567)

	if a != 0xea2a92f4 || b != 0xcb1cf8ce || c != 0x4581472e || d != 0x5881c4bb {
		t.Errorf("quarterRound = %08x %08x %08x %08x, want ea2a92f4 cb1cf8ce 4581472e 5881c4bb", a, b, c, d)
	}
}

func TestWideMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, rounds := range []int{8, 12, 20} {
		for _, djb := range []bool{true, false} {
			t.Run(fmt.Sprintf("rounds=%d/djb=%v", rounds, djb), func(t *testing.T) {
				for i := 0; i < 50; i++ {
					var key [8]uint32
					var nonce [3]uint32
					for j := range key {
						key[j] = rng.Uint32()
					}
					for j := range nonce {
						nonce[j] = rng.Uint32()
					}

					// Half the runs start the counter just below the 32-bit
					// boundary, where the two layouts diverge: the IETF
					// counter wraps word 12 alone while the djb counter
					// carries into word 13.
					counter := uint64(rng.Uint32())
					if i >= 25 {
						counter = (1 << 32) - 3
					}

					var s1, s2 State
					if djb {
						s1 = NewDjb(rounds, &key, counter, &nonce)
					} else {
						s1 = NewIETF(rounds, &key, uint32(counter), &nonce)
					}
					s2 = s1

					var buf1, buf2 [BufLen]byte
					for batch := 0; batch < 16; batch++ {
						blocksWide(&s1, &buf1)
						s1.advance(Lanes)
						blocksSerial(&s2, &buf2)
						s2.advance(Lanes)

						if !bytes.Equal(buf1[:], buf2[:]) {
							t.Fatalf("iteration %d batch %d: wide mismatches serial", i, batch)
						}
					}
				}
			})
		}
	}
}

func TestLaneRowDjbCarry(t *testing.T) {
	var key [8]uint32
	nonce := [3]uint32{0xaabbccdd, 0x11223344, 0}
	s := NewDjb(20, &key, (1<<32)-2, &nonce)

	// Lanes 2 and 3 cross the low-word boundary and must carry into word 13,
	// never into the nonce words.
	for l, want := range [][4]uint32{
		{0xfffffffe, 0, 0xaabbccdd, 0x11223344},
		{0xffffffff, 0, 0xaabbccdd, 0x11223344},
		{0, 1, 0xaabbccdd, 0x11223344},
		{1, 1, 0xaabbccdd, 0x11223344},
	} {
		if got := s.laneRow(uint32(l)); got != want {
			t.Errorf("laneRow(%d) = %08x, want %08x", l, got, want)
		}
	}
}

func TestLaneRowIETFWrap(t *testing.T) {
	var key [8]uint32
	nonce := [3]uint32{1, 2, 3}
	s := NewIETF(20, &key, 0xffffffff, &nonce)

	// The 32-bit counter wraps to zero in isolation.
	for l, want := range [][4]uint32{
		{0xffffffff, 1, 2, 3},
		{0, 1, 2, 3},
		{1, 1, 2, 3},
		{2, 1, 2, 3},
	} {
		if got := s.laneRow(uint32(l)); got != want {
			t.Errorf("laneRow(%d) = %08x, want %08x", l, got, want)
		}
	}
}

func TestAdvanceWraps(t *testing.T) {
	var key [8]uint32
	var nonce [3]uint32

	djb := NewDjb(8, &key, ^uint64(0)-1, &nonce)
	djb.advance(Lanes)
	if got, want := djb.row, [4]uint32{2, 0, 0, 0}; got != want {
		t.Errorf("djb counter after wrap = %08x, want %08x", got, want)
	}

	ietf := NewIETF(8, &key, ^uint32(0)-1, &nonce)
	ietf.advance(Lanes)
	if got, want := ietf.row, [4]uint32{2, 0, 0, 0}; got != want {
		t.Errorf("ietf counter after wrap = %08x, want %08x", got, want)
	}
}

func BenchmarkBlocksWide(b *testing.B) {
	var key [8]uint32
	var nonce [3]uint32
	s := NewDjb(8, &key, 0, &nonce)

	var buf [BufLen]byte
	b.SetBytes(int64(len(buf)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		blocksWide(&s, &buf)
		s.advance(Lanes)
	}
}

func BenchmarkBlocksSerial(b *testing.B) {
	var key [8]uint32
	var nonce [3]uint32
	s := NewDjb(8, &key, 0, &nonce)

	var buf [BufLen]byte
	b.SetBytes(int64(len(buf)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		blocksSerial(&s, &buf)
		s.advance(Lanes)
	}
}
