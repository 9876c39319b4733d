package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func f64Ptr(v float64) *float64 { return &v }

func fullContact(r *BusinessResult) *BusinessResult {
	r.Phone = strPtr("+27 21 555 0100")
	r.Email = strPtr("hello@example.com")
	r.Website = strPtr("https://example.com")
	r.Hours = strPtr(`{"mon":"09:00-17:00"}`)
	return r
}

func TestContactCompleteness(t *testing.T) {
	r := &BusinessResult{}
	assert.Equal(t, 0, ContactCompleteness(r))

	r.Phone = strPtr("021 555 0100")
	r.Website = strPtr("https://example.com")
	assert.Equal(t, 2, ContactCompleteness(r))

	// Empty JSON documents don't count as structured hours
	r.Hours = strPtr("{}")
	assert.Equal(t, 2, ContactCompleteness(r))
	r.Hours = strPtr("null")
	assert.Equal(t, 2, ContactCompleteness(r))
	r.Hours = strPtr(`{"mon":"09:00-17:00"}`)
	assert.Equal(t, 3, ContactCompleteness(r))

	// Whitespace-only channels don't count either
	r.Email = strPtr("   ")
	assert.Equal(t, 3, ContactCompleteness(r))
}

// A strictly better relevance bucket is never overtaken, no matter the
// contact completeness gap.
func TestReRankNeverInvertsBuckets(t *testing.T) {
	top := &BusinessResult{ID: 1, FinalScore: f64Ptr(95)}
	bottom := fullContact(&BusinessResult{ID: 2, FinalScore: f64Ptr(40)})

	results := []*BusinessResult{top, bottom}
	ReRankByContactCompleteness(results, DefaultBaseRankWeight)

	assert.Equal(t, uint(1), results[0].ID)
	assert.Equal(t, uint(2), results[1].ID)
}

// Near-ties (same bucket) reorder by completeness.
func TestReRankBreaksNearTies(t *testing.T) {
	sparse := &BusinessResult{ID: 1, FinalScore: f64Ptr(92)}
	complete := fullContact(&BusinessResult{ID: 2, FinalScore: f64Ptr(88)})

	results := []*BusinessResult{sparse, complete}
	ReRankByContactCompleteness(results, DefaultBaseRankWeight)

	assert.Equal(t, uint(2), results[0].ID)
	assert.Equal(t, uint(1), results[1].ID)
}

// Score-less rows (the pattern path) share one bucket and order by
// completeness alone.
func TestReRankScoreless(t *testing.T) {
	a := &BusinessResult{ID: 1}
	b := fullContact(&BusinessResult{ID: 2})
	c := &BusinessResult{ID: 3, Phone: strPtr("021 555 0100")}

	results := []*BusinessResult{a, b, c}
	ReRankByContactCompleteness(results, DefaultBaseRankWeight)

	assert.Equal(t, uint(2), results[0].ID)
	assert.Equal(t, uint(3), results[1].ID)
	assert.Equal(t, uint(1), results[2].ID)
}

// Equal bucket and equal completeness keep their incoming order.
func TestReRankIsStable(t *testing.T) {
	a := &BusinessResult{ID: 1, FinalScore: f64Ptr(90)}
	b := &BusinessResult{ID: 2, FinalScore: f64Ptr(91)}
	c := &BusinessResult{ID: 3, FinalScore: f64Ptr(89)}

	results := []*BusinessResult{a, b, c}
	ReRankByContactCompleteness(results, DefaultBaseRankWeight)

	assert.Equal(t, []uint{1, 2, 3}, []uint{results[0].ID, results[1].ID, results[2].ID})
}

// Scored rows keep their bucket order ahead of the score-less bucket even
// when the score-less rows have better contact data.
func TestReRankMixedScoredAndScoreless(t *testing.T) {
	scored := &BusinessResult{ID: 1, FinalScore: f64Ptr(55)}
	scoreless := fullContact(&BusinessResult{ID: 2})

	results := []*BusinessResult{scored, scoreless}
	ReRankByContactCompleteness(results, DefaultBaseRankWeight)

	assert.Equal(t, uint(1), results[0].ID)
}
