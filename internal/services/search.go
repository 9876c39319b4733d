package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/hjnengare/sayso-server/internal/database"
	"github.com/hjnengare/sayso-server/internal/logger"
	"github.com/hjnengare/sayso-server/internal/models"
	"github.com/hjnengare/sayso-server/internal/taxonomy"
	"github.com/hjnengare/sayso-server/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const (
	// DefaultSearchLimit applies when the caller sends no limit
	DefaultSearchLimit = 20
	// MaxSearchLimit is a hard cap regardless of the caller-supplied value
	MaxSearchLimit = 50
)

var (
	searchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sayso_search_requests_total",
			Help: "Total number of searches served, by winning strategy",
		},
		[]string{"strategy"},
	)

	searchFallbackTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sayso_search_fallback_total",
			Help: "Total number of searches that fell back past the ranked strategy",
		},
	)
)

// SearchParams are the inputs to one search request
type SearchParams struct {
	Query        string
	Limit        int
	Offset       int
	VerifiedOnly bool
	Location     string
	CallerID     *uint // nil for anonymous callers
}

// SearchMeta describes how a search was served
type SearchMeta struct {
	SearchID     string  `json:"search_id"`
	Query        string  `json:"query"`
	UsedFallback bool    `json:"used_fallback"`
	MatchedAlias *string `json:"matched_alias"`
}

// SearchResponse is the public search payload
type SearchResponse struct {
	Businesses []*BusinessResult `json:"businesses"`
	Meta       SearchMeta        `json:"meta"`
}

// BusinessResult is the canonical result shape every strategy's rows are
// normalized into. Optional fields are pointers and serialize as null, never
// disappear from the shape.
type BusinessResult struct {
	ID               uint     `json:"id"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	Description      *string  `json:"description"`
	Category         string   `json:"category"`
	SubInterestSlug  *string  `json:"sub_interest_slug"`
	SubInterestLabel *string  `json:"sub_interest_label"`
	InterestID       *string  `json:"interest_id"`
	Address          *string  `json:"address"`
	Location         *string  `json:"location"`
	Phone            *string  `json:"phone"`
	Email            *string  `json:"email"`
	Website          *string  `json:"website"`
	Hours            *string  `json:"hours"`
	Lat              *float64 `json:"lat"`
	Lng              *float64 `json:"lng"`
	ImageURL         *string  `json:"image_url"`
	Rating           *float64 `json:"rating"`
	ReviewCount      int      `json:"review_count"`
	IsVerified       bool     `json:"is_verified"`
	ClaimStatus      string   `json:"claim_status"`
	ClaimedByUser    bool     `json:"claimed_by_user"`
	PendingByUser    bool     `json:"pending_by_user"`
	Rank             *float64 `json:"rank"`
	AliasBoost       *float64 `json:"alias_boost"`
	Similarity       *float64 `json:"similarity"`
	FinalScore       *float64 `json:"final_score"`
	MatchedAlias     *string  `json:"matched_alias"`

	// Internal scratch, never part of the response shape
	ownerID       *uint
	ownerVerified bool
	isTrending    bool
	updatedAt     time.Time
}

// rawBusinessRow is the scan target shared by all strategies. The ranked
// procedure, the pattern query and legacy rows each populate a different
// subset of columns; everything not returned stays nil.
type rawBusinessRow struct {
	ID          uint       `gorm:"column:id"`
	Name        string     `gorm:"column:name"`
	Slug        *string    `gorm:"column:slug"`
	Description *string    `gorm:"column:description"`

	PrimarySubcategorySlug *string `gorm:"column:primary_subcategory_slug"`
	SubcategorySlug        *string `gorm:"column:subcategory_slug"`
	SubInterestID          *string `gorm:"column:sub_interest_id"`
	PrimaryCategorySlug    *string `gorm:"column:primary_category_slug"`
	InterestID             *string `gorm:"column:interest_id"`
	Category               *string `gorm:"column:category"`
	CategoryLabel          *string `gorm:"column:category_label"`

	Address  *string `gorm:"column:address"`
	Location *string `gorm:"column:location"`
	Phone    *string `gorm:"column:phone"`
	Email    *string `gorm:"column:email"`
	Website  *string `gorm:"column:website"`
	Hours    *string `gorm:"column:hours"`

	Lat      *float64 `gorm:"column:lat"`
	Lng      *float64 `gorm:"column:lng"`
	ImageURL *string  `gorm:"column:image_url"`

	Rating      *float64 `gorm:"column:rating"`
	ReviewCount *int     `gorm:"column:review_count"`
	IsTrending  *bool    `gorm:"column:is_trending"`

	IsVerified    *bool      `gorm:"column:is_verified"`
	IsSystem      *bool      `gorm:"column:is_system"`
	Status        *string    `gorm:"column:status"`
	OwnerID       *uint      `gorm:"column:owner_id"`
	OwnerVerified *bool      `gorm:"column:owner_verified"`
	UpdatedAt     *time.Time `gorm:"column:updated_at"`

	// Relevance metadata, ranked strategy only
	Rank         *float64 `gorm:"column:rank"`
	AliasBoost   *float64 `gorm:"column:alias_boost"`
	Similarity   *float64 `gorm:"column:similarity"`
	FinalScore   *float64 `gorm:"column:final_score"`
	MatchedAlias *string  `gorm:"column:matched_alias"`
}

// searchStrategy is one entry in the ordered fallback chain
type searchStrategy struct {
	name string
	run  func(ctx context.Context, params SearchParams) ([]rawBusinessRow, error)
}

// claimResolver is what the orchestrator needs from claim-status resolution
type claimResolver interface {
	ResolveClaimStatuses(ctx context.Context, subjects []ClaimSubject, callerID *uint) map[uint]ClaimInfo
}

type SearchService struct {
	db         *database.DB
	claims     claimResolver
	strategies []searchStrategy
	log        *zap.SugaredLogger
}

func NewSearchService(db *database.DB) *SearchService {
	s := &SearchService{
		db:     db,
		claims: NewClaimService(db),
		log:    logger.GetLogger("search"),
	}
	// Ordered fallback chain. Each entry is a hard fallback from the one
	// before it; the chain runs sequentially until a strategy succeeds.
	s.strategies = []searchStrategy{
		{name: "ranked", run: s.rankedSearch},
		{name: "pattern", run: s.patternSearch},
	}
	return s
}

// Search runs the full pipeline: strategy chain, normalization, claim-status
// resolution, contact-completeness re-rank.
func (s *SearchService) Search(ctx context.Context, params SearchParams) (*SearchResponse, error) {
	query := strings.TrimSpace(params.Query)
	meta := SearchMeta{SearchID: uuid.NewString(), Query: query}

	// UX debounce floor, not a data-layer constraint: short queries
	// short-circuit without touching the store.
	if utf8.RuneCountInString(query) < 2 {
		return &SearchResponse{Businesses: []*BusinessResult{}, Meta: meta}, nil
	}

	params.Query = query
	params.Limit = clampLimit(params.Limit)
	if params.Offset < 0 {
		params.Offset = 0
	}

	ctx, span := telemetry.StartSpan(ctx, "search.pipeline")
	if span != nil {
		defer span.End()
	}

	var rows []rawBusinessRow
	var lastErr error
	for i, strat := range s.strategies {
		rows, lastErr = strat.run(ctx, params)
		if lastErr == nil {
			searchRequestsTotal.WithLabelValues(strat.name).Inc()
			if i > 0 {
				meta.UsedFallback = true
				searchFallbackTotal.Inc()
			}
			break
		}
		// Failure kind is deliberately not discriminated: a missing
		// procedure, a SQL error and a permission error all degrade the
		// same way.
		s.log.Warnw("search strategy failed, trying next",
			"strategy", strat.name, "search_id", meta.SearchID, "error", lastErr)
	}
	if lastErr != nil {
		return nil, fmt.Errorf("all search strategies failed: %w", lastErr)
	}

	results := make([]*BusinessResult, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		// Defense in depth: system rows are filtered at the query level
		// where the column exists, and again here.
		if row.IsSystem != nil && *row.IsSystem {
			continue
		}
		r := normalizeRow(row)
		if meta.MatchedAlias == nil && r.MatchedAlias != nil && *r.MatchedAlias != "" {
			meta.MatchedAlias = r.MatchedAlias
		}
		results = append(results, r)
	}

	if len(results) == 0 {
		return &SearchResponse{Businesses: results, Meta: meta}, nil
	}

	annotateClaims(ctx, s.claims, results, params.CallerID)
	ReRankByContactCompleteness(results, DefaultBaseRankWeight)

	return &SearchResponse{Businesses: results, Meta: meta}, nil
}

// rankedSearch calls the server-side ranking procedure. It combines alias
// lookup, full-text search and fuzzy matching and returns rows pre-sorted
// by relevance.
func (s *SearchService) rankedSearch(ctx context.Context, params SearchParams) ([]rawBusinessRow, error) {
	var location interface{}
	if params.Location != "" {
		location = params.Location
	}

	var rows []rawBusinessRow
	err := s.db.WithContext(ctx).Raw(
		`SELECT * FROM search_businesses(?, ?, ?, ?, ?)`,
		params.Query, params.Limit, params.Offset, params.VerifiedOnly, location,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// patternSearch is the degraded path: case-insensitive substring match over
// name, description and category fields, restricted to active non-system
// rows.
func (s *SearchService) patternSearch(ctx context.Context, params SearchParams) ([]rawBusinessRow, error) {
	term := "%" + escapeLikePattern(params.Query) + "%"

	// Explicit column list: the shared row shape also carries ranked-only
	// relevance columns that don't exist on the table.
	q := s.db.WithContext(ctx).Model(&models.Business{}).
		Select("id, name, slug, description, primary_subcategory_slug, subcategory_slug,"+
			" primary_category_slug, interest_id, category, address, location, phone, email,"+
			" website, hours, lat, lng, image_url, rating, review_count, is_trending,"+
			" is_verified, is_system, status, owner_id, owner_verified, updated_at").
		Where("status = ?", "active").
		Where("is_system = ?", false).
		Where("name ILIKE ? OR description ILIKE ? OR category ILIKE ? OR primary_subcategory_slug ILIKE ?",
			term, term, term, term)

	if params.VerifiedOnly {
		q = q.Where("is_verified = ?", true)
	}
	if params.Location != "" {
		q = q.Where("location ILIKE ?", "%"+escapeLikePattern(params.Location)+"%")
	}

	// No relevance ordering on this path; rows come back in store order.
	// Whether that needs an explicit secondary sort is an open call -
	// used_fallback in the response meta keeps the degradation visible.
	var rows []rawBusinessRow
	if err := q.Offset(params.Offset).Limit(params.Limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// escapeLikePattern neutralizes LIKE metacharacters so the user query is
// matched as a literal substring.
func escapeLikePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// normalizeRow maps any strategy's row shape into the canonical result.
// Downstream components only ever see BusinessResult.
func normalizeRow(row *rawBusinessRow) *BusinessResult {
	r := &BusinessResult{
		ID:           row.ID,
		Name:         row.Name,
		Description:  row.Description,
		Category:     displayLabelOf(row),
		InterestID:   row.InterestID,
		Address:      row.Address,
		Location:     row.Location,
		Phone:        row.Phone,
		Email:        row.Email,
		Website:      row.Website,
		Hours:        row.Hours,
		Lat:          row.Lat,
		Lng:          row.Lng,
		ImageURL:     row.ImageURL,
		Rating:       row.Rating,
		ClaimStatus:  ClaimStatusUnclaimed,
		Rank:         row.Rank,
		AliasBoost:   row.AliasBoost,
		Similarity:   row.Similarity,
		FinalScore:   row.FinalScore,
		MatchedAlias: row.MatchedAlias,

		ownerID: row.OwnerID,
	}

	if row.Slug != nil {
		r.Slug = *row.Slug
	}
	if row.ReviewCount != nil {
		r.ReviewCount = *row.ReviewCount
	}
	if row.IsVerified != nil {
		r.IsVerified = *row.IsVerified
	}
	if row.OwnerVerified != nil {
		r.ownerVerified = *row.OwnerVerified
	}
	if row.IsTrending != nil {
		r.isTrending = *row.IsTrending
	}
	if row.UpdatedAt != nil {
		r.updatedAt = *row.UpdatedAt
	}

	if slug := categorySlugOf(row); slug != "" {
		r.SubInterestSlug = &slug
		label := taxonomy.LabelForSlug(slug)
		r.SubInterestLabel = &label
		if r.InterestID == nil {
			if interest := taxonomy.InterestForSlug(taxonomy.CanonicalSlug(slug)); interest != "" {
				r.InterestID = &interest
			}
		}
	}

	return r
}

// categorySlugOf checks candidate slug fields in fixed priority order and
// returns the first non-empty one, lower-cased and trimmed. The raw
// category field is deliberately excluded: it may hold a display label
// rather than a slug.
func categorySlugOf(row *rawBusinessRow) string {
	candidates := []*string{
		row.PrimarySubcategorySlug,
		row.SubcategorySlug,
		row.SubInterestID,
		row.PrimaryCategorySlug,
	}
	for _, c := range candidates {
		if c != nil {
			if s := strings.ToLower(strings.TrimSpace(*c)); s != "" {
				return s
			}
		}
	}
	return ""
}

// displayLabelOf resolves the category display label for a row. A
// pre-resolved label from the ranking procedure is trusted verbatim.
func displayLabelOf(row *rawBusinessRow) string {
	if row.CategoryLabel != nil && strings.TrimSpace(*row.CategoryLabel) != "" {
		return *row.CategoryLabel
	}
	if slug := categorySlugOf(row); slug != "" {
		return taxonomy.LabelForSlug(slug)
	}
	// Legacy rows may only carry a flat category string, which is often
	// already a label.
	if row.Category != nil && strings.TrimSpace(*row.Category) != "" {
		return strings.TrimSpace(*row.Category)
	}
	return taxonomy.MiscLabel
}

// annotateClaims applies resolved claim statuses onto results. Resolution
// never fails the request; a lookup failure degrades to unclaimed.
func annotateClaims(ctx context.Context, resolver claimResolver, results []*BusinessResult, callerID *uint) {
	subjects := make([]ClaimSubject, len(results))
	for i, r := range results {
		subjects[i] = ClaimSubject{ID: r.ID, OwnerID: r.ownerID, OwnerVerified: r.ownerVerified}
	}

	statuses := resolver.ResolveClaimStatuses(ctx, subjects, callerID)
	for _, r := range results {
		if info, ok := statuses[r.ID]; ok {
			r.ClaimStatus = info.Status
			r.ClaimedByUser = info.ClaimedByUser
			r.PendingByUser = info.PendingByUser
		}
	}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		return MaxSearchLimit
	}
	return limit
}
