// Package taxonomy is the canonical business category set and its lookup
// functions. Everything here is pure and total: no I/O, no errors, every
// input resolves to something (worst case the Miscellaneous fallback).
package taxonomy

import (
	"strings"
	"sync"

	"github.com/hjnengare/sayso-server/internal/logger"
)

var (
	bySlug        map[string]Subcategory
	byLabel       map[string]string // lower-cased label -> slug
	interestSlugs map[string]Interest
)

func init() {
	bySlug = make(map[string]Subcategory, len(subcategories))
	byLabel = make(map[string]string, len(subcategories))
	for _, sc := range subcategories {
		bySlug[sc.Slug] = sc
		byLabel[strings.ToLower(sc.Label)] = sc.Slug
	}
	interestSlugs = make(map[string]Interest, len(interests))
	for _, in := range interests {
		interestSlugs[in.Slug] = in
	}
}

// Subcategories returns the canonical set in display order.
func Subcategories() []Subcategory {
	out := make([]Subcategory, len(subcategories))
	copy(out, subcategories)
	return out
}

// Interests returns the known top-level set in display order.
func Interests() []Interest {
	out := make([]Interest, len(interests))
	copy(out, interests)
	return out
}

// IsCanonical reports whether slug is a member of the canonical set.
func IsCanonical(slug string) bool {
	_, ok := bySlug[normalize(slug)]
	return ok
}

// IsTopLevelInterest reports whether slug is a known top-level interest.
func IsTopLevelInterest(slug string) bool {
	_, ok := interestSlugs[normalize(slug)]
	return ok
}

// RepresentativeSlug returns the subcategory shown for a bare interest,
// or "" for an unknown interest.
func RepresentativeSlug(interest string) string {
	return representative[normalize(interest)]
}

// LabelForSlug resolves any category-ish input to a display label.
// Resolution order: canonical slug, alias, label passed as slug,
// interest representative. Unresolvable input maps to Miscellaneous;
// this function cannot fail the caller.
func LabelForSlug(slug string) string {
	s := normalize(slug)
	if s == "" {
		return MiscLabel
	}
	if sc, ok := bySlug[s]; ok {
		return sc.Label
	}
	if canonical, ok := aliases[s]; ok {
		return bySlug[canonical].Label
	}
	// Callers sometimes pass a label where a slug is expected.
	if canonical, ok := byLabel[s]; ok {
		return bySlug[canonical].Label
	}
	if rep, ok := representative[s]; ok {
		return bySlug[rep].Label
	}
	logUnresolved(s)
	return MiscLabel
}

// SlugFromLabel returns the canonical slug for a display label, or "" when
// the label is not part of the canonical set.
func SlugFromLabel(label string) string {
	return byLabel[strings.ToLower(strings.TrimSpace(label))]
}

// CanonicalSlug resolves any category-ish input to a canonical slug, or ""
// when nothing matches.
func CanonicalSlug(input string) string {
	s := normalize(input)
	if s == "" {
		return ""
	}
	if _, ok := bySlug[s]; ok {
		return s
	}
	if canonical, ok := aliases[s]; ok {
		return canonical
	}
	if canonical, ok := byLabel[s]; ok {
		return canonical
	}
	if rep, ok := representative[s]; ok {
		return rep
	}
	return ""
}

// PlaceholderImage returns the placeholder image path for a slug, falling
// back to the Miscellaneous placeholder.
func PlaceholderImage(slug string) string {
	if sc, ok := bySlug[normalize(slug)]; ok {
		return sc.PlaceholderImage
	}
	return bySlug[MiscSlug].PlaceholderImage
}

// IsPlaceholderImage reports whether path is one of the taxonomy's
// placeholder images rather than an uploaded photo.
func IsPlaceholderImage(path string) bool {
	return strings.HasPrefix(path, "/images/placeholders/")
}

// InterestForSlug returns the interest a canonical subcategory belongs to,
// or "" for non-canonical input.
func InterestForSlug(slug string) string {
	if sc, ok := bySlug[normalize(slug)]; ok {
		return sc.Interest
	}
	return ""
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// loggedUnresolved dedupes data-quality warnings so a bad value in a hot
// result set logs once per process, not once per row.
var loggedUnresolved sync.Map

func logUnresolved(input string) {
	if _, seen := loggedUnresolved.LoadOrStore(input, struct{}{}); seen {
		return
	}
	logger.GetLogger("taxonomy").Debugw("unresolved category input", "input", input)
}
