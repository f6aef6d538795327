package cryptography

import (
	"fmt"
	"math/big"
	"sort"
	"unicode/utf8"

	"github.com/thaikhuong62000/RSA/internal/domain/cryptoalg"
)

// span is a half-open byte range of a message.
type span struct {
	lo, hi int
}

// ToBlocks encodes message as big-endian integers that are each strictly
// smaller than modulus. A message whose whole encoding already fits is a
// single block. Otherwise the message is halved at its middle character (the
// first half takes the extra one) and every half that still does not fit is
// halved again on its own. Valid UTF-8 is split on rune boundaries; a single
// multi-byte rune that does not fit is split further on bytes, and input that
// is not UTF-8 is split on bytes from the start.
//
// A single byte whose value is not below the modulus fails with
// ErrBlockTooLarge. Leading NUL bytes of a block do not survive decoding.
func ToBlocks(message []byte, modulus *big.Int) ([]cryptoalg.Block, error) {
	if modulus == nil || modulus.Cmp(bigOne) <= 0 {
		return nil, fmt.Errorf("modulus must be greater than 1: %w", cryptoalg.ErrInvalidModulus)
	}

	whole := new(big.Int).SetBytes(message)
	if whole.Cmp(modulus) < 0 {
		return []cryptoalg.Block{whole}, nil
	}

	starts := characterStarts(message)
	var blocks []cryptoalg.Block

	// worklist; the first half is pushed last so blocks come out in message order
	stack := []span{{lo: 0, hi: len(message)}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		value := new(big.Int).SetBytes(message[s.lo:s.hi])
		if value.Cmp(modulus) < 0 {
			blocks = append(blocks, value)
			continue
		}
		if s.hi-s.lo <= 1 {
			return nil, fmt.Errorf("%w: byte %d encodes to %s, modulus is %s",
				cryptoalg.ErrBlockTooLarge, s.lo, value, modulus)
		}

		mid := splitPoint(starts, s)
		stack = append(stack, span{lo: mid, hi: s.hi}, span{lo: s.lo, hi: mid})
	}

	return blocks, nil
}

// FromBlocks concatenates the minimal big-endian bytes of every block in order.
func FromBlocks(blocks []cryptoalg.Block) ([]byte, error) {
	out := make([]byte, 0, len(blocks)*8)
	for i, b := range blocks {
		if b == nil || b.Sign() < 0 {
			return nil, fmt.Errorf("block %d: %w", i, cryptoalg.ErrInvalidBlock)
		}
		out = append(out, b.Bytes()...)
	}
	return out, nil
}

// splitPoint returns the byte offset of the middle character of s, rounding
// up, or the middle byte when s holds a single character or part of one.
func splitPoint(starts []int, s span) int {
	i := sort.SearchInts(starts, s.lo)
	j := sort.SearchInts(starts, s.hi)
	if chars := j - i; chars >= 2 && starts[i] == s.lo {
		return starts[i+(chars+1)/2]
	}
	return s.lo + (s.hi-s.lo+1)/2
}

// characterStarts returns the byte offset of every character. Bytes that are
// not valid UTF-8 count as one character each.
func characterStarts(message []byte) []int {
	starts := make([]int, 0, len(message))
	if !utf8.Valid(message) {
		for i := range message {
			starts = append(starts, i)
		}
		return starts
	}
	for i := range string(message) {
		starts = append(starts, i)
	}
	return starts
}
