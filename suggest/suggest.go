// Package suggest ranks "did you mean" hints for missing-name
// diagnostics (MissingField, MissingDefinition, and similar). It
// promotes the teacher's inline makeSuggestion helper
// (internal/validation/validate.go) into its own package, backed by
// github.com/agnivade/levenshtein for edit-distance ranking and
// github.com/iancoleman/strcase to flag a likely casing-only mismatch
// as a distinct, higher-confidence hint before falling back to
// distance ranking.
package suggest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/iancoleman/strcase"
)

// maxDistance bounds how different a candidate may be from the typed
// name before it's considered noise rather than a plausible typo.
const maxDistance = 3

// For ranks candidates against got and renders a "Did you mean ..."
// clause, or "" if nothing is close enough to suggest.
func For(got string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}

	if casing := casingMatch(got, candidates); casing != "" {
		return fmt.Sprintf("Did you mean %q (casing)?", casing)
	}

	type scored struct {
		name string
		dist int
	}
	var ranked []scored
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(got, c)
		if d <= maxDistance {
			ranked = append(ranked, scored{c, d})
		}
	}
	if len(ranked) == 0 {
		return ""
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].dist < ranked[j].dist })

	names := make([]string, 0, len(ranked))
	for _, r := range ranked {
		names = append(names, r.name)
	}
	return "Did you mean " + quoteJoin(names) + "?"
}

// casingMatch looks for a candidate that is identical to got once both
// are folded to the same case convention — the common "barkvolume" vs
// "barkVolume" slip, which is a more confident diagnosis than a
// generic edit-distance hit.
func casingMatch(got string, candidates []string) string {
	normalized := strcase.ToLowerCamel(strings.ToLower(got))
	for _, c := range candidates {
		if strcase.ToLowerCamel(strings.ToLower(c)) == normalized && c != got {
			return c
		}
	}
	return ""
}

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	switch len(quoted) {
	case 1:
		return quoted[0]
	default:
		return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
	}
}
