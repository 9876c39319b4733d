package services

import (
	"context"
	"sort"

	"github.com/hjnengare/sayso-server/internal/database"
	"github.com/hjnengare/sayso-server/internal/logger"
	"github.com/hjnengare/sayso-server/internal/models"
	"github.com/hjnengare/sayso-server/internal/taxonomy"
	"go.uber.org/zap"
)

// DefaultSimilarLimit applies when the caller sends no limit for the
// similar-businesses listing.
const DefaultSimilarLimit = 10

type BusinessService struct {
	db     *database.DB
	claims claimResolver
	log    *zap.SugaredLogger
}

func NewBusinessService(db *database.DB) *BusinessService {
	return &BusinessService{
		db:     db,
		claims: NewClaimService(db),
		log:    logger.GetLogger("business"),
	}
}

// GetByID returns one business with claim status resolved for the caller.
func (s *BusinessService) GetByID(ctx context.Context, id uint, callerID *uint) (*BusinessResult, error) {
	var biz models.Business
	err := s.db.WithContext(ctx).
		Where("is_system = ?", false).
		First(&biz, id).Error
	if err != nil {
		return nil, err
	}

	result := normalizeRow(rowFromModel(&biz))
	annotateClaims(ctx, s.claims, []*BusinessResult{result}, callerID)
	return result, nil
}

// Similar composes the related-businesses listing for one business:
// candidates sharing its subcategory or interest, ordered by
// classification-tier priority so well-categorized listings surface first
// and unclassified ones sink without disappearing.
func (s *BusinessService) Similar(ctx context.Context, id uint, limit int, callerID *uint) ([]*BusinessResult, error) {
	var base models.Business
	err := s.db.WithContext(ctx).
		Where("is_system = ?", false).
		First(&base, id).Error
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultSimilarLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	q := s.db.WithContext(ctx).Model(&models.Business{}).
		Where("id <> ?", id).
		Where("is_system = ?", false).
		Where("status = ?", "active")

	slug := subcategorySlugOfModel(&base)
	interest := interestOfModel(&base, slug)
	switch {
	case slug != "" && interest != "":
		q = q.Where("primary_subcategory_slug = ? OR interest_id = ?", slug, interest)
	case slug != "":
		q = q.Where("primary_subcategory_slug = ?", slug)
	case interest != "":
		q = q.Where("interest_id = ?", interest)
	case base.Category != nil && *base.Category != "":
		// Legacy rows only carry the flat category string.
		q = q.Where("category = ?", *base.Category)
	}

	// Over-fetch so tier sorting has something to choose from.
	var candidates []models.Business
	if err := q.Order("updated_at DESC").Limit(limit * 4).Find(&candidates).Error; err != nil {
		return nil, err
	}

	results := make([]*BusinessResult, 0, len(candidates))
	for i := range candidates {
		r := normalizeRow(rowFromModel(&candidates[i]))
		// Listings without an uploaded photo render the subcategory
		// placeholder.
		if r.ImageURL == nil || *r.ImageURL == "" {
			placeholder := taxonomy.PlaceholderImage(slugOrMisc(r.SubInterestSlug))
			r.ImageURL = &placeholder
		}
		results = append(results, r)
	}

	if len(results) == 0 {
		return results, nil
	}

	annotateClaims(ctx, s.claims, results, callerID)

	sort.SliceStable(results, func(i, j int) bool {
		return PriorityScore(results[i]) < PriorityScore(results[j])
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// rowFromModel adapts a business row loaded through the ORM into the shared
// raw shape so all paths normalize identically.
func rowFromModel(b *models.Business) *rawBusinessRow {
	reviewCount := b.ReviewCount
	return &rawBusinessRow{
		ID:          b.ID,
		Name:        b.Name,
		Slug:        &b.Slug,
		Description: b.Description,

		PrimarySubcategorySlug: b.PrimarySubcategorySlug,
		SubcategorySlug:        b.SubcategorySlug,
		PrimaryCategorySlug:    b.PrimaryCategorySlug,
		InterestID:             b.InterestID,
		Category:               b.Category,

		Address:  b.Address,
		Location: b.Location,
		Phone:    b.Phone,
		Email:    b.Email,
		Website:  b.Website,
		Hours:    b.Hours,

		Lat:      b.Lat,
		Lng:      b.Lng,
		ImageURL: b.ImageURL,

		Rating:      b.Rating,
		ReviewCount: &reviewCount,
		IsTrending:  &b.IsTrending,

		IsVerified:    &b.IsVerified,
		IsSystem:      &b.IsSystem,
		Status:        b.Status,
		OwnerID:       b.OwnerID,
		OwnerVerified: &b.OwnerVerified,
		UpdatedAt:     &b.UpdatedAt,
	}
}

func subcategorySlugOfModel(b *models.Business) string {
	if b.PrimarySubcategorySlug != nil && *b.PrimarySubcategorySlug != "" {
		return *b.PrimarySubcategorySlug
	}
	if b.SubcategorySlug != nil && *b.SubcategorySlug != "" {
		return *b.SubcategorySlug
	}
	return ""
}

func interestOfModel(b *models.Business, slug string) string {
	if b.InterestID != nil && *b.InterestID != "" {
		return *b.InterestID
	}
	return taxonomy.InterestForSlug(slug)
}

func slugOrMisc(slug *string) string {
	if slug != nil && *slug != "" {
		return *slug
	}
	return taxonomy.MiscSlug
}
