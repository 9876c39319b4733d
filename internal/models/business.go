package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Business represents a local business listing
// DB: businesses
type Business struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"column:name;size:255;not null;index:idx_biz_name" json:"name"`
	Slug        string  `gorm:"column:slug;size:255;not null;uniqueIndex:businesses_slug_key" json:"slug"`
	Description *string `gorm:"column:description;type:text" json:"description,omitempty"`

	// Classification. primary_subcategory_slug is the canonical slug written
	// by the current pipeline; subcategory_slug and category are legacy
	// columns still populated on older rows.
	PrimarySubcategorySlug *string `gorm:"column:primary_subcategory_slug;size:100;index:idx_biz_subcategory" json:"primary_subcategory_slug,omitempty"`
	SubcategorySlug        *string `gorm:"column:subcategory_slug;size:100" json:"subcategory_slug,omitempty"`
	PrimaryCategorySlug    *string `gorm:"column:primary_category_slug;size:100" json:"primary_category_slug,omitempty"`
	InterestID             *string `gorm:"column:interest_id;size:100;index:idx_biz_interest" json:"interest_id,omitempty"`
	Category               *string `gorm:"column:category;size:255" json:"category,omitempty"`

	// Contact
	Address  *string `gorm:"column:address;type:text" json:"address,omitempty"`
	Location *string `gorm:"column:location;size:255;index:idx_biz_location" json:"location,omitempty"`
	Phone    *string `gorm:"column:phone;size:50" json:"phone,omitempty"`
	Email    *string `gorm:"column:email;size:255" json:"email,omitempty"`
	Website  *string `gorm:"column:website;type:text" json:"website,omitempty"`
	Hours    *string `gorm:"column:hours;type:jsonb" json:"hours,omitempty"`

	// Geo
	Lat *float64 `gorm:"column:lat;type:double precision" json:"lat,omitempty"`
	Lng *float64 `gorm:"column:lng;type:double precision" json:"lng,omitempty"`

	ImageURL *string `gorm:"column:image_url;type:text" json:"image_url,omitempty"`

	// Quality signals
	Rating      *float64 `gorm:"column:rating;type:double precision" json:"rating,omitempty"`
	ReviewCount int      `gorm:"column:review_count;not null;default:0" json:"review_count"`
	IsTrending  bool     `gorm:"column:is_trending;not null;default:false" json:"is_trending"`

	IsVerified bool    `gorm:"column:is_verified;not null;default:false;index:idx_biz_verified" json:"is_verified"`
	IsSystem   bool    `gorm:"column:is_system;not null;default:false" json:"-"`
	Status     *string `gorm:"column:status;size:20;index:idx_biz_status" json:"status,omitempty"`

	// Denormalized ownership. Older write paths set these directly on the
	// business row instead of inserting into business_owners; claim
	// resolution has to consult both (see services.ClaimService).
	OwnerID       *uint `gorm:"column:owner_id;index:idx_biz_owner" json:"-"`
	OwnerVerified bool  `gorm:"column:owner_verified;not null;default:false" json:"-"`

	CreatedAt time.Time      `gorm:"column:created_at;not null;index:idx_biz_created,sort:desc" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index:idx_biz_deleted" json:"deleted_at,omitempty"`

	// Relations
	Owners []BusinessOwner `gorm:"foreignKey:BusinessID" json:"owners,omitempty"`
	Claims []BusinessClaim `gorm:"foreignKey:BusinessID" json:"claims,omitempty"`
}

func (Business) TableName() string {
	return "businesses"
}

// BusinessOwner links a user to a business they own
// DB: business_owners
type BusinessOwner struct {
	BaseModelWithoutSoftDelete
	BusinessID uint `gorm:"column:business_id;not null;uniqueIndex:business_owners_business_user_key,priority:1" json:"business_id"`
	UserID     uint `gorm:"column:user_id;not null;uniqueIndex:business_owners_business_user_key,priority:2;index:idx_owner_user" json:"user_id"`
	Verified   bool `gorm:"column:verified;not null;default:false" json:"verified"`

	// Relations
	Business *Business `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (BusinessOwner) TableName() string {
	return "business_owners"
}

// Claim review states. "pending" and "in_review" count as in-progress when
// deriving a caller's pending-claim status.
const (
	ClaimStatePending  = "pending"
	ClaimStateInReview = "in_review"
	ClaimStateApproved = "approved"
	ClaimStateRejected = "rejected"
)

// BusinessClaim is a user's assertion that they own a business listing
// DB: business_claims
type BusinessClaim struct {
	BaseModelWithoutSoftDelete
	Reference  string `gorm:"column:reference;size:36;not null;uniqueIndex:business_claims_reference_key" json:"reference"`
	BusinessID uint   `gorm:"column:business_id;not null;index:idx_claim_business" json:"business_id"`
	ClaimantID uint   `gorm:"column:claimant_id;not null;index:idx_claim_claimant" json:"claimant_id"`
	State      string `gorm:"column:state;size:20;not null;default:pending;index:idx_claim_state" json:"state"`

	// Relations
	Business *Business `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
	Claimant *User     `gorm:"foreignKey:ClaimantID" json:"claimant,omitempty"`
}

func (BusinessClaim) TableName() string {
	return "business_claims"
}

// BeforeCreate mints the external claim reference
func (c *BusinessClaim) BeforeCreate(tx *gorm.DB) error {
	if c.Reference == "" {
		c.Reference = uuid.NewString()
	}
	return nil
}
