// Package bits converts between byte buffers and sequences of 11-bit word
// indices, most-significant-bit first. It performs no allocation; callers
// provide both buffers, sized for one of the five defined entropy classes.
package bits

// PerWord is the number of bits carried by one word index.
const PerWord = 11

// IndexMask masks a uint16 down to a valid 11-bit index.
const IndexMask = 1<<PerWord - 1

// Pack reads consecutive 11-bit big-endian groups from data and writes them
// to indices. It consumes len(indices)*11 bits; trailing bits of data beyond
// that are ignored. data must hold at least that many bits.
func Pack(data []byte, indices []uint16) {
	var acc uint32
	var have uint
	k := 0
	for _, b := range data {
		if k == len(indices) {
			break
		}
		acc = acc<<8 | uint32(b)
		have += 8
		if have >= PerWord {
			have -= PerWord
			indices[k] = uint16(acc>>have) & IndexMask
			k++
		}
	}
}

// Unpack writes the 11-bit groups of indices back into data, MSB first.
// data must hold at least len(indices)*11 bits; a trailing partial byte is
// written left-aligned with zero padding.
func Unpack(indices []uint16, data []byte) {
	var acc uint32
	var have uint
	k := 0
	for _, ix := range indices {
		acc = acc<<PerWord | uint32(ix&IndexMask)
		have += PerWord
		for have >= 8 {
			have -= 8
			data[k] = byte(acc >> have)
			k++
		}
	}
	if have > 0 {
		data[k] = byte(acc << (8 - have))
	}
}
