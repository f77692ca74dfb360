package textkit

import (
	"fmt"
	"strconv"
	"strings"
)

// numeralValue holds the scale multiplier and increment contributed by
// one English numeral word.
type numeralValue struct {
	scale     int
	increment int
}

var englishNumerals = buildEnglishNumerals()

func buildEnglishNumerals() map[string]numeralValue {
	m := map[string]numeralValue{
		"and": {1, 0},
		"a":   {1, 1},
	}

	units := []string{
		"zero", "one", "two", "three", "four", "five", "six", "seven",
		"eight", "nine", "ten", "eleven", "twelve", "thirteen",
		"fourteen", "fifteen", "sixteen", "seventeen", "eighteen",
		"nineteen",
	}
	for i, word := range units {
		m[word] = numeralValue{1, i}
	}

	tens := []string{
		"twenty", "thirty", "forty", "fifty", "sixty", "seventy",
		"eighty", "ninety",
	}
	for i, word := range tens {
		m[word] = numeralValue{1, (i + 2) * 10}
	}

	m["hundred"] = numeralValue{100, 0}
	scale := 1000
	for _, word := range []string{"thousand", "million", "billion", "trillion"} {
		m[word] = numeralValue{scale, 0}
		scale *= 1000
	}
	return m
}

// EnglishNumeralToArabic converts a number written in English words,
// such as "a thousand two hundred and three", to its integer value.
// Digit tokens are accepted alongside words. An unrecognized word
// yields an error.
func EnglishNumeralToArabic(s string) (int, error) {
	current, result := 0, 0

	words := strings.Fields(strings.ReplaceAll(strings.ToLower(s), "-", " "))
	for _, word := range words {
		var v numeralValue
		if n, err := strconv.Atoi(word); err == nil {
			v = numeralValue{1, n}
		} else {
			var ok bool
			v, ok = englishNumerals[word]
			if !ok {
				return 0, fmt.Errorf("illegal word %q", word)
			}
		}

		current = current*v.scale + v.increment
		if v.scale > 100 {
			result += current
			current = 0
		}
	}

	return result + current, nil
}
