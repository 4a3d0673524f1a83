// Package chacha4x implements the ChaCha stream cipher family as a four-lane
// batch keystream generator, intended as the core of a cryptographically
// strong random number generator.
//
// A Cipher is parameterized at construction by round count (8, 12, or 20) and
// counter/nonce layout: the original djb layout (64-bit counter, 64-bit
// nonce) or the IETF layout from RFC 8439 (32-bit counter, 96-bit nonce).
// Each call to NextBlock produces four consecutive 64-byte keystream blocks
// and advances the counter by four, so repeated calls walk the cipher stream
// without overlap.
//
// The package generates keystream only. It does not XOR plaintext, compute
// MACs, or manage keys.
package chacha4x

import (
	"encoding/binary"

	"github.com/codahale/chacha4x/internal/chacha"
)

const (
	// BlockLen is the length of a single keystream block in bytes.
	BlockLen = chacha.BlockLen
	// Lanes is the number of blocks generated per batch, and the amount the
	// counter advances per NextBlock call.
	Lanes = chacha.Lanes
	// BufLen is the length of a batch in bytes.
	BufLen = chacha.BufLen
	// BufLenWords is the length of a batch in 64-bit words.
	BufLenWords = BufLen / 8
	// KeyWords is the length of a key in 32-bit words.
	KeyWords = 8
	// NonceWords is the number of caller-supplied nonce words. Djb-layout
	// ciphers store only the first two; the third is accepted and discarded.
	NonceWords = 3
)

// A Cipher is a ChaCha keystream generator. The key and nonce are fixed for
// the cipher's lifetime; the counter advances by Lanes per batch produced.
//
// A Cipher is not safe for concurrent use. Callers sharing one across
// goroutines must provide their own synchronization; most usages are better
// served by a Cipher per goroutine.
type Cipher struct {
	state chacha.State
}

// New8Djb returns a ChaCha8 cipher with the djb counter/nonce layout.
func New8Djb(key [KeyWords]uint32, counter uint64, nonce [NonceWords]uint32) *Cipher {
	return &Cipher{state: chacha.NewDjb(8, &key, counter, &nonce)}
}

// New12Djb returns a ChaCha12 cipher with the djb counter/nonce layout.
func New12Djb(key [KeyWords]uint32, counter uint64, nonce [NonceWords]uint32) *Cipher {
	return &Cipher{state: chacha.NewDjb(12, &key, counter, &nonce)}
}

// New20Djb returns a ChaCha20 cipher with the djb counter/nonce layout.
func New20Djb(key [KeyWords]uint32, counter uint64, nonce [NonceWords]uint32) *Cipher {
	return &Cipher{state: chacha.NewDjb(20, &key, counter, &nonce)}
}

// New8IETF returns a ChaCha8 cipher with the RFC 8439 counter/nonce layout.
func New8IETF(key [KeyWords]uint32, counter uint32, nonce [NonceWords]uint32) *Cipher {
	return &Cipher{state: chacha.NewIETF(8, &key, counter, &nonce)}
}

// New12IETF returns a ChaCha12 cipher with the RFC 8439 counter/nonce layout.
func New12IETF(key [KeyWords]uint32, counter uint32, nonce [NonceWords]uint32) *Cipher {
	return &Cipher{state: chacha.NewIETF(12, &key, counter, &nonce)}
}

// New20IETF returns a ChaCha20 cipher with the RFC 8439 counter/nonce layout.
func New20IETF(key [KeyWords]uint32, counter uint32, nonce [NonceWords]uint32) *Cipher {
	return &Cipher{state: chacha.NewIETF(20, &key, counter, &nonce)}
}

// NextBlock returns the next batch of keystream: four consecutive 64-byte
// blocks for counters ctr, ctr+1, ctr+2, ctr+3. The counter advances by
// Lanes. Incrementing past the counter's width wraps modulo that width; the
// nonce is never disturbed.
func (c *Cipher) NextBlock() [BufLen]byte {
	var buf [BufLen]byte
	c.state.Blocks(&buf)
	return buf
}

// NextWords returns the next batch of keystream as 64-bit little-endian
// words. It consumes the same keystream as NextBlock.
func (c *Cipher) NextWords() [BufLenWords]uint64 {
	var buf [BufLen]byte
	c.state.Blocks(&buf)

	var words [BufLenWords]uint64
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	return words
}

// Fill fills p with keystream. Generation proceeds in whole batches: if
// len(p) is not a multiple of BufLen, the tail of the final batch is
// discarded and the counter still advances by Lanes for it. Fill consumes
// the same stream as repeated NextBlock calls of the same total batch count.
func (c *Cipher) Fill(p []byte) {
	for len(p) >= BufLen {
		c.state.Blocks((*[BufLen]byte)(p))
		p = p[BufLen:]
	}
	if len(p) > 0 {
		var buf [BufLen]byte
		c.state.Blocks(&buf)
		copy(p, buf[:])
	}
}
