package utils

import (
	"strconv"
	"testing"
)

func TestGenerateResetCode_Bounds(t *testing.T) {
	for i := 0; i < 10000; i++ {
		code := GenerateResetCode()
		if len(code) != 5 {
			t.Fatalf("код не пятизначный: %q", code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("код не числовой: %q", code)
		}
		if n < 10000 || n > 99999 {
			t.Fatalf("код вне диапазона [10000, 99999]: %d", n)
		}
	}
}
