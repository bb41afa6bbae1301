// Package abnormal holds the two clinical abnormality predicates: a numeric
// range check for vital signs and a lexical flag check for lab results. Both
// are best-effort heuristics over free-form strings, not physiological
// models, and fail closed: unparsable input is never abnormal.
package abnormal

import (
	"regexp"
	"strconv"
	"strings"
)

// Adult reference ranges used by the bedside display.
const (
	tempLowF, tempHighF = 97.0, 99.0
	tempLowC, tempHighC = 36.1, 37.2
	sysLow, sysHigh     = 90.0, 120.0
	diaLow, diaHigh     = 60.0, 80.0
	spo2Low             = 95.0
	gcsLow              = 15.0
)

var vitalRanges = map[string][2]float64{
	"hr":  {60, 100},
	"rr":  {12, 20},
	"map": {70, 100},
	"cvp": {2, 8},
}

var numberRE = regexp.MustCompile(`[-+]?[0-9]+(?:\.[0-9]+)?`)

// Vital reports whether the value recorded under the given canonical key
// falls outside its reference range. Keys without a rule (fio2, position,
// anything unknown) always read as normal.
func Vital(key, value string) bool {
	switch key {
	case "temp":
		return abnormalTemp(value)
	case "bp":
		return abnormalBP(value)
	case "spo2":
		n, ok := firstNumber(value)
		return ok && n < spo2Low
	case "gcs":
		n, ok := firstNumber(value)
		return ok && n < gcsLow
	case "avpu":
		return !strings.EqualFold(strings.TrimSpace(value), "A")
	}
	if r, ok := vitalRanges[key]; ok {
		n, ok := firstNumber(value)
		return ok && (n < r[0] || n > r[1])
	}
	return false
}

func abnormalTemp(value string) bool {
	n, ok := firstNumber(value)
	if !ok {
		return false
	}
	// Unit comes as a suffix like "F", "°F", "C"; Fahrenheit when absent.
	if strings.ContainsAny(value, "cC") {
		return n < tempLowC || n > tempHighC
	}
	return n < tempLowF || n > tempHighF
}

var bpRE = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*(?:/\s*([0-9]+(?:\.[0-9]+)?))?`)

func abnormalBP(value string) bool {
	m := bpRE.FindStringSubmatch(value)
	if m == nil {
		return false
	}
	sys, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return false
	}
	if sys < sysLow || sys > sysHigh {
		return true
	}
	if m[2] != "" {
		dia, err := strconv.ParseFloat(m[2], 64)
		if err == nil && (dia < diaLow || dia > diaHigh) {
			return true
		}
	}
	return false
}

func firstNumber(s string) (float64, bool) {
	m := numberRE.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
