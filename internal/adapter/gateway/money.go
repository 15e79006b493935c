package gateway

import (
	"fmt"
	"strconv"
	"strings"
)

// parseMoneyMicros converts a decimal currency string such as "120.50"
// into micros (120_500_000). The Meta side of the gateway reports money as
// strings; fractions beyond six digits are rejected rather than rounded.
func parseMoneyMicros(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty money value")
	}
	whole, frac, _ := strings.Cut(s, ".")
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("money %q: %w", s, err)
	}
	if w < 0 || strings.HasPrefix(whole, "-") {
		return 0, fmt.Errorf("money %q: negative amount", s)
	}
	micros := w * 1_000_000
	if frac == "" {
		return micros, nil
	}
	if len(frac) > 6 {
		return 0, fmt.Errorf("money %q: more than 6 fraction digits", s)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("money %q: %w", s, err)
	}
	for i := len(frac); i < 6; i++ {
		f *= 10
	}
	return micros + f, nil
}

// formatMoneyMicros renders micros back into the decimal string form the
// Meta side of the gateway expects, trimming trailing zeros.
func formatMoneyMicros(micros int64) string {
	whole := micros / 1_000_000
	frac := micros % 1_000_000
	if frac == 0 {
		return strconv.FormatInt(whole, 10)
	}
	s := fmt.Sprintf("%d.%06d", whole, frac)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
