package command

import (
	"errors"
	"strconv"
	"strings"
)

// decimalInt is a flag.Value for base-10 integers.
// Unlike flag.Int it rejects 0x/0o/0b prefixes and reads "010" as ten.
type decimalInt struct {
	value int
	set   bool
}

func (d *decimalInt) Set(s string) error {
	n, err := parseDecimal(s)
	if err != nil {
		return err
	}
	d.value, d.set = n, true
	return nil
}

func (d *decimalInt) String() string {
	if d == nil || !d.set {
		return ""
	}
	return strconv.Itoa(d.value)
}

// parseDecimal accepts surrounding whitespace, an optional sign and
// digits with single underscores between them ("1_000").
func parseDecimal(s string) (int, error) {
	trimmed := strings.TrimSpace(s)

	digits := strings.TrimLeft(trimmed, "+-")
	if len(trimmed)-len(digits) > 1 {
		return 0, ErrNotInteger
	}
	if digits == "" || digits[0] == '_' || digits[len(digits)-1] == '_' || strings.Contains(digits, "__") {
		return 0, ErrNotInteger
	}
	for _, r := range digits {
		if r != '_' && (r < '0' || r > '9') {
			return 0, ErrNotInteger
		}
	}

	n, err := strconv.ParseInt(strings.ReplaceAll(trimmed, "_", ""), 10, strconv.IntSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrOutOfRange
		}
		return 0, ErrNotInteger
	}

	return int(n), nil
}
