package services

import (
	"context"
	"errors"
	"testing"

	"github.com/hjnengare/sayso-server/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	statuses map[uint]ClaimInfo
	called   bool
	callerID *uint
}

func (s *stubResolver) ResolveClaimStatuses(_ context.Context, subjects []ClaimSubject, callerID *uint) map[uint]ClaimInfo {
	s.called = true
	s.callerID = callerID
	return s.statuses
}

func newTestSearchService(resolver claimResolver, strategies ...searchStrategy) *SearchService {
	s := &SearchService{
		claims: resolver,
		log:    logger.GetLogger("search-test"),
	}
	s.strategies = strategies
	return s
}

func boolPtr(v bool) *bool { return &v }

func fixedRows(rows []rawBusinessRow) func(context.Context, SearchParams) ([]rawBusinessRow, error) {
	return func(context.Context, SearchParams) ([]rawBusinessRow, error) {
		return rows, nil
	}
}

func failing(err error) func(context.Context, SearchParams) ([]rawBusinessRow, error) {
	return func(context.Context, SearchParams) ([]rawBusinessRow, error) {
		return nil, err
	}
}

func TestSearchShortQueryShortCircuits(t *testing.T) {
	resolver := &stubResolver{}
	svc := newTestSearchService(resolver, searchStrategy{
		name: "ranked",
		run: func(context.Context, SearchParams) ([]rawBusinessRow, error) {
			t.Fatal("strategy must not run for short queries")
			return nil, nil
		},
	})

	for _, q := range []string{"", " ", "a", "  a  "} {
		resp, err := svc.Search(context.Background(), SearchParams{Query: q})
		require.NoError(t, err)
		assert.Empty(t, resp.Businesses)
		assert.False(t, resp.Meta.UsedFallback)
	}
	assert.False(t, resolver.called, "claim resolution must not run on short-circuit")
}

func TestSearchFallsBackOnRankedFailure(t *testing.T) {
	rows := []rawBusinessRow{{ID: 1, Name: "Coffee Shop"}}
	resolver := &stubResolver{statuses: map[uint]ClaimInfo{1: {Status: ClaimStatusUnclaimed}}}
	svc := newTestSearchService(resolver,
		// Any ranked error degrades, the kind is not discriminated
		searchStrategy{name: "ranked", run: failing(errors.New(`function search_businesses(unknown) does not exist`))},
		searchStrategy{name: "pattern", run: fixedRows(rows)},
	)

	resp, err := svc.Search(context.Background(), SearchParams{Query: "coffee"})
	require.NoError(t, err)
	assert.True(t, resp.Meta.UsedFallback)
	require.Len(t, resp.Businesses, 1)
	assert.Equal(t, "Coffee Shop", resp.Businesses[0].Name)
	assert.True(t, resolver.called)
}

func TestSearchHardFailsWhenChainExhausted(t *testing.T) {
	svc := newTestSearchService(&stubResolver{},
		searchStrategy{name: "ranked", run: failing(errors.New("procedure missing"))},
		searchStrategy{name: "pattern", run: failing(errors.New("connection refused"))},
	)

	resp, err := svc.Search(context.Background(), SearchParams{Query: "coffee"})
	require.Error(t, err)
	assert.Nil(t, resp)
}

func TestSearchClampsLimitAndOffset(t *testing.T) {
	var seen SearchParams
	svc := newTestSearchService(&stubResolver{}, searchStrategy{
		name: "ranked",
		run: func(_ context.Context, p SearchParams) ([]rawBusinessRow, error) {
			seen = p
			return nil, nil
		},
	})

	_, err := svc.Search(context.Background(), SearchParams{Query: "co", Limit: 500, Offset: -3})
	require.NoError(t, err)
	assert.Equal(t, MaxSearchLimit, seen.Limit)
	assert.Equal(t, 0, seen.Offset)

	_, err = svc.Search(context.Background(), SearchParams{Query: "co"})
	require.NoError(t, err)
	assert.Equal(t, DefaultSearchLimit, seen.Limit)
}

func TestSearchFiltersSystemRows(t *testing.T) {
	rows := []rawBusinessRow{
		{ID: 1, Name: "Real Business"},
		{ID: 2, Name: "Seed Row", IsSystem: boolPtr(true)},
		{ID: 3, Name: "Another", IsSystem: boolPtr(false)},
	}
	resolver := &stubResolver{}
	svc := newTestSearchService(resolver, searchStrategy{name: "ranked", run: fixedRows(rows)})

	resp, err := svc.Search(context.Background(), SearchParams{Query: "business"})
	require.NoError(t, err)
	require.Len(t, resp.Businesses, 2)
	assert.Equal(t, uint(1), resp.Businesses[0].ID)
	assert.Equal(t, uint(3), resp.Businesses[1].ID)
}

func TestSearchEmptyResultSkipsEnrichment(t *testing.T) {
	resolver := &stubResolver{}
	svc := newTestSearchService(resolver, searchStrategy{name: "ranked", run: fixedRows(nil)})

	resp, err := svc.Search(context.Background(), SearchParams{Query: "nothing here"})
	require.NoError(t, err)
	assert.Empty(t, resp.Businesses)
	assert.Equal(t, "nothing here", resp.Meta.Query)
	assert.False(t, resolver.called)
}

func TestSearchAnnotatesClaims(t *testing.T) {
	caller := uintPtr(7)
	rows := []rawBusinessRow{{ID: 1, Name: "Mine"}, {ID: 2, Name: "Theirs"}}
	resolver := &stubResolver{statuses: map[uint]ClaimInfo{
		1: {Status: ClaimStatusClaimed, ClaimedByUser: true},
		2: {Status: ClaimStatusClaimed},
	}}
	svc := newTestSearchService(resolver, searchStrategy{name: "ranked", run: fixedRows(rows)})

	resp, err := svc.Search(context.Background(), SearchParams{Query: "mine", CallerID: caller})
	require.NoError(t, err)
	require.Len(t, resp.Businesses, 2)
	assert.Equal(t, caller, resolver.callerID)

	assert.Equal(t, ClaimStatusClaimed, resp.Businesses[0].ClaimStatus)
	assert.True(t, resp.Businesses[0].ClaimedByUser)
	assert.False(t, resp.Businesses[0].PendingByUser)
	assert.False(t, resp.Businesses[1].ClaimedByUser)
}

func TestSearchMetaMatchedAlias(t *testing.T) {
	rows := []rawBusinessRow{
		{ID: 1, Name: "First"},
		{ID: 2, Name: "Second", MatchedAlias: strPtr("cafe")},
	}
	svc := newTestSearchService(&stubResolver{}, searchStrategy{name: "ranked", run: fixedRows(rows)})

	resp, err := svc.Search(context.Background(), SearchParams{Query: "cafe"})
	require.NoError(t, err)
	require.NotNil(t, resp.Meta.MatchedAlias)
	assert.Equal(t, "cafe", *resp.Meta.MatchedAlias)
}

func TestNormalizeRowSlugPriority(t *testing.T) {
	row := &rawBusinessRow{
		ID:                     1,
		Name:                   "Test",
		PrimarySubcategorySlug: strPtr(" Coffee-Shops "),
		SubcategorySlug:        strPtr("bars"),
		SubInterestID:          strPtr("gyms"),
		Category:               strPtr("Should Be Ignored"),
	}
	r := normalizeRow(row)

	require.NotNil(t, r.SubInterestSlug)
	assert.Equal(t, "coffee-shops", *r.SubInterestSlug)
	require.NotNil(t, r.SubInterestLabel)
	assert.Equal(t, "Coffee Shops", *r.SubInterestLabel)
	assert.Equal(t, "Coffee Shops", r.Category)
	require.NotNil(t, r.InterestID)
	assert.Equal(t, "food-drink", *r.InterestID)
}

func TestNormalizeRowPreResolvedLabelWins(t *testing.T) {
	row := &rawBusinessRow{
		ID:                     1,
		Name:                   "Test",
		CategoryLabel:          strPtr("Specialty Coffee"),
		PrimarySubcategorySlug: strPtr("coffee-shops"),
	}
	r := normalizeRow(row)
	assert.Equal(t, "Specialty Coffee", r.Category)
}

func TestNormalizeRowLegacyCategoryFallback(t *testing.T) {
	row := &rawBusinessRow{ID: 1, Name: "Test", Category: strPtr("Fishmonger")}
	r := normalizeRow(row)

	assert.Equal(t, "Fishmonger", r.Category)
	assert.Nil(t, r.SubInterestSlug)
	assert.Equal(t, ClaimStatusUnclaimed, r.ClaimStatus)
}

func TestNormalizeRowBareRow(t *testing.T) {
	r := normalizeRow(&rawBusinessRow{ID: 1, Name: "Mystery"})

	assert.Equal(t, "Miscellaneous", r.Category)
	assert.Nil(t, r.SubInterestSlug)
	assert.Nil(t, r.Phone)
	assert.Equal(t, 0, r.ReviewCount)
}

func TestEscapeLikePattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"coffee", "coffee"},
		{"c_fe", `c\_fe`},
		{"50% off", `50\% off`},
		{`back\slash`, `back\\slash`},
		{"100%_done", `100\%\_done`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeLikePattern(tt.in), tt.in)
	}
}
