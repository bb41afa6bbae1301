package abnormal

import (
	"regexp"
	"strings"
)

// Flag tokens the upstream lab reports embed next to out-of-range values.
// Matched against the lowercased "name: value" string; deliberately
// permissive about placement to tolerate varied report formatting.
var labFlagTokens = []string{
	" h ", " h*", " l ", " l*",
	"↑", "↓",
	" high", " low",
	"(h)", "(l)", "[h]", "[l]",
	"critical", "abnormal",
}

var (
	// A numeric value trailed by a bare H/L token, e.g. "Sodium: 150 H".
	bareFlagRE = regexp.MustCompile(`(?i)[0-9]+(?:\.[0-9]+)?\s*[hl]\b`)
	// A numeric value trailed by a bracketed H/L, e.g. "K: 2.9 (L)".
	wrappedFlagRE = regexp.MustCompile(`(?i)[0-9]+(?:\.[0-9]+)?\s*[(\[][hl][)\]]`)
)

// LabResult reports whether a formatted "name: value" lab string carries an
// out-of-range flag. Lexical only, not unit-aware; unflagged values read as
// normal.
func LabResult(formatted string) bool {
	lower := strings.ToLower(formatted)
	for _, tok := range labFlagTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return bareFlagRE.MatchString(formatted) || wrappedFlagRE.MatchString(formatted)
}
