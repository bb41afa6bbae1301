// Package notediff computes the newly disclosed content of serially authored
// clinical notes. Notes written repeatedly by the same role tend to restate
// prior content verbatim with small additions; showing each note in full
// would repeat the same paragraphs down the timeline, so only the delta
// survives for the second and later notes of a role.
package notediff

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// ExcludedRole is dropped from the timeline entirely, before any grouping.
const ExcludedRole = "Critical Care Registered Nurse"

// Jaccard word-set similarity bands for the fallback strategy. Below low the
// texts are unrelated; between the bands the overlap is ambiguous; at or
// above high the note is a near-duplicate whose change cannot be isolated.
// Every band currently surfaces the full current text; dropping content is
// the only unsafe outcome.
const (
	lowSimilarity  = 0.3
	highSimilarity = 0.7
)

// A leading date stamp such as "22/11/2024:" marks where an appended daily
// entry begins inside a restated note.
var dateStampRE = regexp.MustCompile(`^[0-9]{1,2}/[0-9]{1,2}(?:/[0-9]{2,4})?\s*[:\-]`)

// Section is one named, sanitized fragment of a flattened note.
type Section struct {
	Name string
	Text string
}

// Note is one flattened note entering the differ. Sections preserve the
// order they appeared in the source document.
type Note struct {
	Timestamp time.Time
	Role      string
	Author    string
	Email     string
	Sections  []Section
}

// Result pairs a note with the sections considered newly disclosed. Notes
// whose delta is empty are absent from the results entirely.
type Result struct {
	Note     Note
	Sections []Section
}

// Diff groups notes by authoring role, orders each group by timestamp, and
// reduces every group to per-note deltas. The first note of a group passes
// through whole; later notes keep only sections with new text. The baseline
// for each comparison is always the full previous note, not the previously
// emitted subset.
func Diff(notes []Note) []Result {
	groups := make(map[string][]Note)
	var order []string
	for _, n := range notes {
		if strings.EqualFold(n.Role, ExcludedRole) {
			continue
		}
		if _, seen := groups[n.Role]; !seen {
			order = append(order, n.Role)
		}
		groups[n.Role] = append(groups[n.Role], n)
	}

	var results []Result
	for _, role := range order {
		group := groups[role]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Timestamp.Before(group[j].Timestamp)
		})

		var prev map[string]string
		for _, note := range group {
			var kept []Section
			if prev == nil {
				kept = note.Sections
			} else {
				for _, sec := range note.Sections {
					prevText, seen := prev[sec.Name]
					if !seen {
						// Section absent last time: all of it is new.
						kept = append(kept, sec)
						continue
					}
					if delta := newText(prevText, sec.Text); delta != "" {
						kept = append(kept, Section{Name: sec.Name, Text: delta})
					}
				}
			}
			if len(kept) > 0 {
				results = append(results, Result{Note: note, Sections: kept})
			}
			prev = sectionMap(note.Sections)
		}
	}
	return results
}

// Render joins a result's sections into the display form used by note events.
func Render(sections []Section) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		parts = append(parts, s.Name+": "+s.Text)
	}
	return strings.Join(parts, " | ")
}

func sectionMap(sections []Section) map[string]string {
	m := make(map[string]string, len(sections))
	for _, s := range sections {
		m[s.Name] = s.Text
	}
	return m
}

// newText returns the portion of cur considered new relative to prev, or ""
// when cur restates prev with nothing added. Strategies are tried in order;
// the first applicable one wins.
func newText(prev, cur string) string {
	if collapse(cur) == collapse(prev) {
		return ""
	}

	lprev := strings.ToLower(prev)
	lcur := strings.ToLower(cur)

	// Current text extends the previous text in place.
	if strings.HasPrefix(lcur, lprev) {
		return strings.TrimSpace(cur[len(lprev):])
	}

	// Previous text buried inside the current one: accept the suffix when it
	// opens with a date stamp or is substantial enough to be a real entry.
	if idx := strings.Index(lcur, lprev); idx >= 0 {
		candidate := strings.TrimSpace(cur[idx+len(lprev):])
		if candidate != "" && (dateStampRE.MatchString(candidate) || len(candidate) > 20) {
			return candidate
		}
	}

	// Word-prefix match: same opening words with more words overall means the
	// note was re-entered with additions after a small edit.
	prevWords := strings.Fields(prev)
	curWords := strings.Fields(cur)
	if len(prevWords) > 0 && len(curWords) > len(prevWords) {
		n := len(prevWords)
		if n > 10 {
			n = 10
		}
		matched := true
		for i := 0; i < n; i++ {
			if !strings.EqualFold(curWords[i], prevWords[i]) {
				matched = false
				break
			}
		}
		if matched {
			if idx := strings.Index(lcur, lprev); idx >= 0 {
				if rest := strings.TrimSpace(cur[idx+len(lprev):]); rest != "" {
					return rest
				}
			}
		}
	}

	// Fallback on word-set similarity. The bands are kept distinct even
	// though each surfaces the full text: low overlap means unrelated
	// content, the middle band is too ambiguous to trim, and near-duplicates
	// carry an update that cannot be isolated safely.
	switch sim := jaccard(lprev, lcur); {
	case sim < lowSimilarity:
		return cur
	case sim < highSimilarity:
		return cur
	default:
		return cur
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func jaccard(a, b string) float64 {
	as := wordSet(a)
	bs := wordSet(b)
	if len(as) == 0 && len(bs) == 0 {
		return 1
	}
	inter := 0
	for w := range as {
		if _, ok := bs[w]; ok {
			inter++
		}
	}
	union := len(as) + len(bs) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		set[w] = struct{}{}
	}
	return set
}
