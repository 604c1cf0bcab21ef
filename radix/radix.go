package radix

// Digits shared by every base up to 16.
const digits = "0123456789ABCDEF"

// Conversion pairs a number with its binary and hexadecimal representations.
type Conversion struct {
	Number      int64
	Binary      string
	Hexadecimal string
}

// toBase converts by repeated division, prepending the remainder digit each
// round. Zero is special-cased to a single digit.
func toBase(number, base int64) string {
	if number == 0 {
		return "0"
	}

	out := ""
	for temp := number; temp > 0; temp /= base {
		out = string(digits[temp%base]) + out
	}
	return out
}

// ToBinary converts a non-negative integer to its binary representation.
func ToBinary(number int64) string {
	return toBase(number, 2)
}

// ToHexadecimal converts a non-negative integer to uppercase hexadecimal.
func ToHexadecimal(number int64) string {
	return toBase(number, 16)
}

// ConvertAll converts every number, preserving file order.
func ConvertAll(numbers []int64) []Conversion {
	conversions := make([]Conversion, 0, len(numbers))
	for _, n := range numbers {
		conversions = append(conversions, Conversion{
			Number:      n,
			Binary:      ToBinary(n),
			Hexadecimal: ToHexadecimal(n),
		})
	}
	return conversions
}
