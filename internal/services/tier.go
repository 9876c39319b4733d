package services

import (
	"time"

	"github.com/hjnengare/sayso-server/internal/taxonomy"
)

// Classification tiers, best to worst.
const (
	TierCanonical    = 1 // canonical subcategory
	TierTopLevel     = 2 // known top-level interest only
	TierUnclassified = 3 // miscellaneous or unresolvable

	// tierGap is strictly larger than tier3BoostCap so a boosted Tier 3
	// item can never outrank any Tier 2 item: deprioritize, never bury.
	tierGap         = 1000
	tier1ImageBonus = 100
	tier3BoostCap   = 999
)

// TierOf classifies a result by how well it is categorized.
func TierOf(r *BusinessResult) int {
	if r.SubInterestSlug != nil {
		slug := *r.SubInterestSlug
		if taxonomy.IsCanonical(slug) && slug != taxonomy.MiscSlug {
			return TierCanonical
		}
	}
	if r.InterestID != nil && taxonomy.IsTopLevelInterest(*r.InterestID) {
		return TierTopLevel
	}
	return TierUnclassified
}

// PriorityScore produces the sort key for composed listings; lower wins.
func PriorityScore(r *BusinessResult) int {
	tier := TierOf(r)
	score := tier * tierGap

	switch tier {
	case TierCanonical:
		if hasUploadedImage(r) {
			score -= tier1ImageBonus
		}
	case TierUnclassified:
		score -= tier3Boost(r)
	}
	return score
}

// tier3Boost rewards unclassified listings that still look alive. The
// thresholds are preserved as shipped; they have no documented derivation.
func tier3Boost(r *BusinessResult) int {
	boost := 0

	if r.Rating != nil {
		switch {
		case *r.Rating >= 4.0:
			boost += 120
		case *r.Rating >= 3.5:
			boost += 60
		}
	}

	switch {
	case r.ReviewCount >= 10:
		boost += 120
	case r.ReviewCount >= 5:
		boost += 60
	}

	if r.isTrending {
		boost += 60
	}

	if !r.updatedAt.IsZero() && time.Since(r.updatedAt) <= 7*24*time.Hour {
		boost += 50
	}

	if boost > tier3BoostCap {
		boost = tier3BoostCap
	}
	return boost
}

// hasUploadedImage reports whether the result carries a real photo rather
// than a taxonomy placeholder.
func hasUploadedImage(r *BusinessResult) bool {
	return r.ImageURL != nil && *r.ImageURL != "" && !taxonomy.IsPlaceholderImage(*r.ImageURL)
}
