package services

import (
	"testing"
	"time"

	"github.com/hjnengare/sayso-server/internal/taxonomy"
	"github.com/stretchr/testify/assert"
)

func TestTierOf(t *testing.T) {
	tests := []struct {
		name string
		r    *BusinessResult
		want int
	}{
		{
			name: "canonical subcategory",
			r:    &BusinessResult{SubInterestSlug: strPtr("coffee-shops")},
			want: TierCanonical,
		},
		{
			name: "miscellaneous slug is not tier 1",
			r:    &BusinessResult{SubInterestSlug: strPtr(taxonomy.MiscSlug)},
			want: TierUnclassified,
		},
		{
			name: "top-level interest only",
			r:    &BusinessResult{InterestID: strPtr("food-drink")},
			want: TierTopLevel,
		},
		{
			name: "unknown slug with known interest",
			r:    &BusinessResult{SubInterestSlug: strPtr("not-a-slug"), InterestID: strPtr("pets")},
			want: TierTopLevel,
		},
		{
			name: "nothing resolvable",
			r:    &BusinessResult{Category: "Some Free Text"},
			want: TierUnclassified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TierOf(tt.r))
		})
	}
}

func TestPriorityScoreImageBonus(t *testing.T) {
	withPhoto := &BusinessResult{
		SubInterestSlug: strPtr("gyms"),
		ImageURL:        strPtr("https://cdn.example.com/uploads/gym.jpg"),
	}
	withPlaceholder := &BusinessResult{
		SubInterestSlug: strPtr("gyms"),
		ImageURL:        strPtr("/images/placeholders/gyms.jpg"),
	}
	withoutImage := &BusinessResult{SubInterestSlug: strPtr("gyms")}

	assert.Equal(t, 900, PriorityScore(withPhoto))
	assert.Equal(t, 1000, PriorityScore(withPlaceholder))
	assert.Equal(t, 1000, PriorityScore(withoutImage))
}

func TestTier3Boosts(t *testing.T) {
	base := PriorityScore(&BusinessResult{})
	assert.Equal(t, 3000, base)

	rated := &BusinessResult{Rating: f64Ptr(4.5)}
	assert.Equal(t, 3000-120, PriorityScore(rated))

	okRated := &BusinessResult{Rating: f64Ptr(3.7)}
	assert.Equal(t, 3000-60, PriorityScore(okRated))

	reviewed := &BusinessResult{ReviewCount: 12}
	assert.Equal(t, 3000-120, PriorityScore(reviewed))

	fewReviews := &BusinessResult{ReviewCount: 6}
	assert.Equal(t, 3000-60, PriorityScore(fewReviews))

	trending := &BusinessResult{isTrending: true}
	assert.Equal(t, 3000-60, PriorityScore(trending))

	fresh := &BusinessResult{updatedAt: time.Now().Add(-24 * time.Hour)}
	assert.Equal(t, 3000-50, PriorityScore(fresh))

	stale := &BusinessResult{updatedAt: time.Now().Add(-30 * 24 * time.Hour)}
	assert.Equal(t, 3000, PriorityScore(stale))
}

// A fully boosted Tier 3 listing must still score strictly worse than any
// Tier 2 listing: deprioritize, never bury, never promote past a tier.
func TestTierPriorityMonotonicity(t *testing.T) {
	bestTier3 := &BusinessResult{
		Rating:      f64Ptr(5.0),
		ReviewCount: 100,
		isTrending:  true,
		updatedAt:   time.Now(),
	}
	assert.Equal(t, TierUnclassified, TierOf(bestTier3))

	worstTier2 := &BusinessResult{InterestID: strPtr("home-services")}
	assert.Equal(t, TierTopLevel, TierOf(worstTier2))

	assert.Less(t, PriorityScore(worstTier2), PriorityScore(bestTier3))

	// The summed boost is capped below the tier gap
	assert.GreaterOrEqual(t, PriorityScore(bestTier3), TierUnclassified*1000-999)
}
