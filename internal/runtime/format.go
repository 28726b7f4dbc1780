package runtime

import "strconv"

// numberWidth is the column width the line number is right-aligned in.
// Numbers wider than the field are printed in full.
const numberWidth = 6

// appendNumberPrefix appends the right-aligned line number and a TAB.
func appendNumberPrefix(dst []byte, n int64) []byte {
	var digits [20]byte
	num := strconv.AppendInt(digits[:0], n, 10)
	for pad := numberWidth - len(num); pad > 0; pad-- {
		dst = append(dst, ' ')
	}
	dst = append(dst, num...)
	return append(dst, '\t')
}

// AppendVisible appends the caret/meta notation of b to dst.
//
//	0-8, 11-31   ^@ .. ^_
//	127          ^?
//	128-159      M-^@ .. M-^_
//	160-254      M-<space> .. M-~
//	255          M-^?
//
// TAB, LF and printable ASCII are appended unchanged.
func AppendVisible(dst []byte, b byte) []byte {
	switch {
	case b == '\t' || b == '\n':
		return append(dst, b)
	case b < 32:
		return append(dst, '^', b+64)
	case b < 127:
		return append(dst, b)
	case b == 127:
		return append(dst, '^', '?')
	case b < 160:
		return append(dst, 'M', '-', '^', b-64)
	case b < 255:
		return append(dst, 'M', '-', b-128)
	default:
		return append(dst, 'M', '-', '^', '?')
	}
}
