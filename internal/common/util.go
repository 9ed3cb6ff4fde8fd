package common

// WipeByteArray zeroes b in place. Used on passwords read from the terminal
// once they have been sent. Nil is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
