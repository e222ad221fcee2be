package bankaccount

import "strings"

// maskChar replaces every digit of an account number except the last four.
const maskChar = "*"

// revealDigits is how many trailing digits stay visible after masking.
const revealDigits = 4

// MaskAccountNumber masks an account number for display: every character
// before the last four is replaced with the mask character and the total
// length is preserved. Numbers of four digits or fewer are returned unchanged
// rather than producing a negative-length mask.
//
// Example:
//
//	MaskAccountNumber("1234567890123") // "*********0123"
//	MaskAccountNumber("123")           // "123"
func MaskAccountNumber(number string) string {
	if len(number) <= revealDigits {
		return number
	}
	return strings.Repeat(maskChar, len(number)-revealDigits) + number[len(number)-revealDigits:]
}
