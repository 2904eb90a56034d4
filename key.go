package radixsort

// ByteKey maps an element to its 8-bit sort key for one radix round.
//
// A ByteKey must be pure: the counting pass and the permutation pass call it
// on the same elements and must see the same bucket for each. An extractor
// that disagrees with itself leaves the buffer in an unspecified order.
type ByteKey[T any] func(T) uint8

// WordKey maps an element to an intermediate 16-bit word that a further
// byte extractor splits into rounds (see Compose).
type WordKey[T any] func(T) uint16

// Compose returns the byte extractor f(g(x)). A 32-bit key becomes four
// byte rounds by composing HighByte/LowByte with HighWord/LowWord, and a
// 16-bit character becomes two rounds by composing HighByte/LowByte with a
// character accessor.
func Compose[T any](f func(uint16) uint8, g WordKey[T]) ByteKey[T] {
	return func(x T) uint8 {
		return f(g(x))
	}
}

// Identity is the extractor for 8-bit elements.
func Identity(v uint8) uint8 { return v }

// HighByte returns bits 8-15 of a word.
func HighByte(v uint16) uint8 { return uint8(v >> 8) }

// LowByte returns bits 0-7 of a word.
func LowByte(v uint16) uint8 { return uint8(v) }

// HighWord returns bits 16-31.
func HighWord(v uint32) uint16 { return uint16(v >> 16) }

// LowWord returns bits 0-15.
func LowWord(v uint32) uint16 { return uint16(v) }

// Word16Rounds returns the two rounds of a 16-bit key, most significant first.
func Word16Rounds() []ByteKey[uint16] {
	return []ByteKey[uint16]{HighByte, LowByte}
}

// Word32Rounds returns the four rounds of a 32-bit key, most significant
// first: high word's high byte, high word's low byte, low word's high byte,
// low word's low byte.
func Word32Rounds() []ByteKey[uint32] {
	return []ByteKey[uint32]{
		Compose[uint32](HighByte, HighWord),
		Compose[uint32](LowByte, HighWord),
		Compose[uint32](HighByte, LowWord),
		Compose[uint32](LowByte, LowWord),
	}
}

// CharAt returns the extractor for character i of a narrow string.
// The caller guarantees i < len(s) for every element it is applied to.
func CharAt(i int) ByteKey[string] {
	return func(s string) uint8 {
		return s[i]
	}
}

// WideCharAt returns the accessor for code unit i of a wide string, to be
// split into its two byte rounds with Compose.
// The caller guarantees i < len(s) for every element it is applied to.
func WideCharAt(i int) WordKey[[]uint16] {
	return func(s []uint16) uint16 {
		return s[i]
	}
}
