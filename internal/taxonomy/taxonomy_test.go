package taxonomy

import (
	"testing"
)

func TestCanonicalSetSize(t *testing.T) {
	if got := len(subcategories); got != 50 {
		t.Errorf("Expected 50 canonical subcategories, got %d", got)
	}
}

// Every slug has exactly one label and exactly one placeholder image, and
// neither label nor image is shared between slugs.
func TestCanonicalSetIsOneToOne(t *testing.T) {
	labels := make(map[string]string)
	images := make(map[string]string)

	for _, sc := range subcategories {
		if sc.Label == "" {
			t.Errorf("Slug %q has no label", sc.Slug)
		}
		if sc.PlaceholderImage == "" {
			t.Errorf("Slug %q has no placeholder image", sc.Slug)
		}
		if prev, dup := labels[sc.Label]; dup {
			t.Errorf("Label %q shared by %q and %q", sc.Label, prev, sc.Slug)
		}
		if prev, dup := images[sc.PlaceholderImage]; dup {
			t.Errorf("Placeholder %q shared by %q and %q", sc.PlaceholderImage, prev, sc.Slug)
		}
		labels[sc.Label] = sc.Slug
		images[sc.PlaceholderImage] = sc.Slug

		if !IsPlaceholderImage(sc.PlaceholderImage) {
			t.Errorf("Placeholder path %q not recognized as a placeholder", sc.PlaceholderImage)
		}
		if !IsTopLevelInterest(sc.Interest) {
			t.Errorf("Slug %q references unknown interest %q", sc.Slug, sc.Interest)
		}
	}
}

// Label resolution round-trips over the whole canonical set.
func TestLabelSlugRoundTrip(t *testing.T) {
	for _, sc := range subcategories {
		label := LabelForSlug(sc.Slug)
		if label != sc.Label {
			t.Errorf("LabelForSlug(%q) = %q, want %q", sc.Slug, label, sc.Label)
		}
		if got := SlugFromLabel(label); got != sc.Slug {
			t.Errorf("SlugFromLabel(%q) = %q, want %q", label, got, sc.Slug)
		}
	}
}

// LabelForSlug is total: every input resolves to a non-empty label.
func TestLabelForSlugTotality(t *testing.T) {
	inputs := []string{
		"", "   ", "not-a-real-slug", "!!!", "RESTAURANTS", " coffee-shops ",
		"Coffee Shops", "cafe", "food-drink", "zzzzzz", "miscellaneous",
	}
	for _, in := range inputs {
		if got := LabelForSlug(in); got == "" {
			t.Errorf("LabelForSlug(%q) returned empty label", in)
		}
	}

	// Unresolvable input falls back to the catch-all label
	if got := LabelForSlug("definitely-not-a-category"); got != MiscLabel {
		t.Errorf("Expected fallback label %q, got %q", MiscLabel, got)
	}
	if got := LabelForSlug(""); got != MiscLabel {
		t.Errorf("Expected fallback label %q for empty input, got %q", MiscLabel, got)
	}
}

func TestLabelForSlugResolutionOrder(t *testing.T) {
	// Canonical slug wins
	if got := LabelForSlug("restaurants"); got != "Restaurants" {
		t.Errorf("Expected Restaurants, got %q", got)
	}
	// Alias resolves to its canonical label
	if got := LabelForSlug("cafe"); got != "Coffee Shops" {
		t.Errorf("Expected Coffee Shops via alias, got %q", got)
	}
	// A label passed where a slug is expected still resolves
	if got := LabelForSlug("Hair Salons"); got != "Hair Salons" {
		t.Errorf("Expected Hair Salons via reverse lookup, got %q", got)
	}
	// A bare interest resolves to its representative subcategory
	if got := LabelForSlug("food-drink"); got != "Restaurants" {
		t.Errorf("Expected Restaurants via interest representative, got %q", got)
	}
}

func TestCanonicalSlug(t *testing.T) {
	cases := map[string]string{
		"restaurants":  "restaurants",
		" Restaurants": "restaurants",
		"cafe":         "coffee-shops",
		"Coffee Shops": "coffee-shops",
		"pets":         "veterinarians",
		"garbage-in":   "",
		"":             "",
	}
	for in, want := range cases {
		if got := CanonicalSlug(in); got != want {
			t.Errorf("CanonicalSlug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRepresentativeSlugs(t *testing.T) {
	for _, in := range interests {
		rep := RepresentativeSlug(in.Slug)
		if rep == "" {
			t.Errorf("Interest %q has no representative subcategory", in.Slug)
			continue
		}
		if !IsCanonical(rep) {
			t.Errorf("Representative %q for %q is not canonical", rep, in.Slug)
		}
		if InterestForSlug(rep) != in.Slug {
			t.Errorf("Representative %q does not belong to %q", rep, in.Slug)
		}
	}
}

func TestAliasesResolveToCanonicalSlugs(t *testing.T) {
	for alias, target := range aliases {
		if !IsCanonical(target) {
			t.Errorf("Alias %q points at non-canonical slug %q", alias, target)
		}
	}
}

func TestPlaceholderImageFallback(t *testing.T) {
	misc := PlaceholderImage(MiscSlug)
	if got := PlaceholderImage("unknown-slug"); got != misc {
		t.Errorf("Expected miscellaneous placeholder for unknown slug, got %q", got)
	}
	if got := PlaceholderImage("gyms"); got != "/images/placeholders/gyms.jpg" {
		t.Errorf("Unexpected placeholder for gyms: %q", got)
	}
}
