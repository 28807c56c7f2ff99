package hexconv

// Halfbyte maps a hexadecimal digit onto its value. Any other character maps onto 0xFF.
var Halfbyte = func() (table [256]byte) {
	for i := range table {
		table[i] = 0xFF
	}

	for c := '0'; c <= '9'; c++ {
		table[c] = byte(c - '0')
	}

	for c := 'a'; c <= 'f'; c++ {
		table[c] = byte(c-'a') + 10
		table[c-'a'+'A'] = byte(c-'a') + 10
	}

	return table
}()

// Parse decodes a hexadecimal number of at most maxDigits digits. Ok is false if the
// input is empty, too long or contains a non-hex character.
func Parse(digits []byte, maxDigits int) (value uint64, ok bool) {
	if len(digits) == 0 || len(digits) > maxDigits || maxDigits > 16 {
		return 0, false
	}

	for _, char := range digits {
		halfbyte := Halfbyte[char]
		if halfbyte == 0xFF {
			return 0, false
		}

		value = (value << 4) | uint64(halfbyte)
	}

	return value, true
}
