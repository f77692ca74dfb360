package ops

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	binaryFactor  = 1024
	decimalFactor = 1000
)

// sizePrefixes are the unit prefixes in ascending order of magnitude.
// Binary units append "iB" ("KiB"), decimal units append "B" ("KB").
var sizePrefixes = [...]byte{'K', 'M', 'G', 'T', 'P', 'E', 'Z', 'Y'}

// ParseSize parses a human-readable size string such as "123.45 MB" or
// "123.45 MiB" into a byte count.
//
// The unit suffix style is authoritative: an "iB"-style suffix ("MiB")
// selects the 1024 factor and a plain "B"-style suffix ("MB") selects the
// 1000 factor, regardless of the binary argument. The binary argument
// decides only bare prefixes such as "2 K". A bare number or a "B" suffix
// is taken as a plain byte count.
//
// Malformed strings, unknown unit symbols, and values outside the int64
// range return an error.
func ParseSize(s string, binary bool) (int64, error) {
	fields := strings.Fields(s)

	var valStr, sym string
	switch len(fields) {
	case 1:
		valStr = fields[0]
	case 2:
		valStr, sym = fields[0], fields[1]
	default:
		return 0, fmt.Errorf("ops: malformed size string %q", s)
	}

	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0, fmt.Errorf("ops: parsing size value in %q: %w", s, err)
	}

	multiplier, err := unitMultiplier(sym, binary)
	if err != nil {
		return 0, fmt.Errorf("ops: %w in %q", err, s)
	}

	bytes := val * multiplier
	if bytes > math.MaxInt64 || bytes < math.MinInt64 {
		return 0, fmt.Errorf("ops: size %q out of int64 range", s)
	}

	return int64(math.Trunc(bytes)), nil
}

// unitMultiplier resolves a unit symbol to its byte multiplier. An empty
// symbol or plain "B" means bytes.
func unitMultiplier(sym string, binary bool) (float64, error) {
	if sym == "" {
		return 1, nil
	}

	factor := float64(decimalFactor)
	if binary {
		factor = binaryFactor
	}

	// An explicit suffix style overrides the caller's preference:
	// "MiB" forces 1024, "MB" forces 1000.
	if len(sym) >= 2 {
		if sym[1] == 'i' || sym[1] == 'I' {
			factor = binaryFactor
		} else if last := sym[len(sym)-1]; last == 'B' || last == 'b' {
			factor = decimalFactor
		}
	}

	prefix := sym[0] &^ 0x20 // uppercase ASCII
	if prefix == 'B' {
		return 1, nil
	}

	for i, p := range sizePrefixes {
		if prefix == p {
			return math.Pow(factor, float64(i+1)), nil
		}
	}

	return 0, fmt.Errorf("unknown size unit %q", sym)
}

// FormatSize renders a byte count as a human-readable string such as
// "123.45 MiB" (binary, 1024-based units) or "129.45 MB" (decimal,
// 1000-based units). The magnitude is repeatedly divided by the factor
// until it falls below it, and the remainder is rendered with the given
// number of decimal places. The sign of negative inputs is preserved.
func FormatSize(size float64, binary bool, precision int) string {
	factor := float64(decimalFactor)
	suffix := "B"
	if binary {
		factor = binaryFactor
		suffix = "iB"
	}

	negative := size < 0
	v := math.Abs(size)

	unit := "B"
	for i := 0; v >= factor && i < len(sizePrefixes); i++ {
		v /= factor
		unit = string(sizePrefixes[i]) + suffix
	}

	formatted := strconv.FormatFloat(v, 'f', precision, 64)
	if negative {
		formatted = "-" + formatted
	}

	return formatted + " " + unit
}
