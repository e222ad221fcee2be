package bankaccount_test

import (
	"fmt"
	"testing"

	"marketplace/internal/core/domain/model/bankaccount"

	"github.com/stretchr/testify/assert"
)

func TestMaskAccountNumber(t *testing.T) {
	testCases := []struct {
		number   string
		expected string
	}{
		{"1234567890123", "*********0123"},
		{"12345", "*2345"},
		{"1234", "1234"},
		{"123", "123"},
		{"1", "1"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%q", tc.number), func(t *testing.T) {
			masked := bankaccount.MaskAccountNumber(tc.number)

			assert.Equal(t, tc.expected, masked)
			assert.Len(t, masked, len(tc.number))
		})
	}

	t.Run("should keep only the last four digits visible", func(t *testing.T) {
		masked := bankaccount.MaskAccountNumber("9876543210")

		assert.Equal(t, "******3210", masked)
		assert.NotContains(t, masked[:6], "9")
	})
}
