// Package numspell spells out monetary amounts in French, as printed on the
// "net à payer" line of a payslip.
package numspell

import (
	"strings"

	"github.com/shopspring/decimal"
)

var under17 = []string{
	"zéro", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit",
	"neuf", "dix", "onze", "douze", "treize", "quatorze", "quinze", "seize",
}

var tens = map[int64]string{
	20: "vingt",
	30: "trente",
	40: "quarante",
	50: "cinquante",
	60: "soixante",
}

func below100(n int64) string {
	switch {
	case n < 17:
		return under17[n]
	case n < 20:
		return "dix-" + under17[n-10]
	case n < 70:
		t := n / 10 * 10
		r := n % 10
		if r == 0 {
			return tens[t]
		}
		if r == 1 {
			return tens[t] + " et un"
		}
		return tens[t] + "-" + under17[r]
	case n < 80:
		// 70..79 compose on soixante
		if n == 71 {
			return "soixante et onze"
		}
		return "soixante-" + below100(n-60)
	default:
		// 80..99 compose on quatre-vingt
		if n == 80 {
			return "quatre-vingts"
		}
		return "quatre-vingt-" + below100(n-80)
	}
}

func below1000(n int64) string {
	h := n / 100
	r := n % 100
	if h == 0 {
		return below100(r)
	}
	hundreds := "cent"
	if h > 1 {
		hundreds = below100(h) + " cent"
	}
	if r == 0 {
		if h > 1 {
			hundreds += "s"
		}
		return hundreds
	}
	return hundreds + " " + below100(r)
}

// vingt and cent only take their plural "s" at the end of the numeral; a
// following "mille" strips it (quatre-vingt mille, deux cent mille).
func beforeMille(s string) string {
	if strings.HasSuffix(s, "vingts") || strings.HasSuffix(s, "cents") {
		return strings.TrimSuffix(s, "s")
	}
	return s
}

// Int spells a number in French words. Negative input is prefixed with
// "moins".
func Int(n int64) string {
	if n == 0 {
		return "zéro"
	}
	if n < 0 {
		return "moins " + Int(-n)
	}

	var parts []string

	if b := n / 1_000_000_000; b > 0 {
		word := " milliards"
		if b == 1 {
			word = " milliard"
		}
		parts = append(parts, below1000(b)+word)
	}
	if m := n / 1_000_000 % 1000; m > 0 {
		word := " millions"
		if m == 1 {
			word = " million"
		}
		parts = append(parts, below1000(m)+word)
	}
	if k := n / 1000 % 1000; k > 0 {
		if k == 1 {
			parts = append(parts, "mille")
		} else {
			parts = append(parts, beforeMille(below1000(k))+" mille")
		}
	}
	if u := n % 1000; u > 0 {
		parts = append(parts, below1000(u))
	}

	return strings.Join(parts, " ")
}

// Francs spells an amount rounded to the whole franc, with the CFA currency
// unit appended.
func Francs(amount decimal.Decimal) string {
	n := amount.Round(0).IntPart()
	unit := "francs CFA"
	if n == 1 || n == -1 || n == 0 {
		unit = "franc CFA"
	}
	return Int(n) + " " + unit
}
