package randtok

const (
	// StdLen is a reasonable default token length for identifiers.
	StdLen = 16
)

// Common alphabets. All are plain ASCII, so they work identically for byte
// and rune generators.
const (
	// Digits are the decimal digits.
	Digits = "0123456789"

	// Letters are all lower- and uppercase ASCII letters.
	Letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Alphanumeric is Letters plus Digits, the usual identifier alphabet.
	Alphanumeric = Letters + Digits

	// Hex are the lowercase hexadecimal digits.
	Hex = "0123456789abcdef"
)
