// Package extract turns the patient record's five sub-documents into uniform
// timeline events. Each extractor consumes one optional substructure and
// never fails: entries missing a parseable timestamp or an identifying name
// are skipped one at a time, and an absent substructure yields no events.
package extract

import (
	"math"
	"strconv"

	"github.com/valyala/fastjson"
)

// Text returns the value at path as a string. The source document is
// inconsistent about whether scalar fields arrive as JSON strings or
// numbers, so both are accepted; anything else reads as absent.
func Text(v *fastjson.Value, path ...string) string {
	f := v.Get(path...)
	if f == nil {
		return ""
	}
	switch f.Type() {
	case fastjson.TypeString:
		return string(f.GetStringBytes())
	case fastjson.TypeNumber:
		n := f.GetFloat64()
		if n == math.Trunc(n) {
			return strconv.FormatInt(int64(n), 10)
		}
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return ""
}

// amount returns a dosage/volume field as text, treating zero as absent;
// a zero amount contributes nothing to an intake/output summary.
func amount(v *fastjson.Value, path ...string) string {
	s := Text(v, path...)
	if s == "" || s == "0" {
		return ""
	}
	return s
}
