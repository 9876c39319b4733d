package services

import (
	"context"
	"sync"

	"github.com/hjnengare/sayso-server/internal/database"
	"github.com/hjnengare/sayso-server/internal/logger"
	"github.com/hjnengare/sayso-server/internal/models"
	"go.uber.org/zap"
)

// Claim status values exposed on results. Pending is caller-specific and is
// never observable by anonymous callers.
const (
	ClaimStatusUnclaimed = "unclaimed"
	ClaimStatusClaimed   = "claimed"
	ClaimStatusPending   = "pending"
)

// ClaimInfo is the per-result claim annotation
type ClaimInfo struct {
	Status        string
	ClaimedByUser bool
	PendingByUser bool
}

// ClaimSubject carries the denormalized owner columns from the business row.
// Ownership can live either in business_owners or directly on the business
// record (migration artifact), so resolution has to consult both.
type ClaimSubject struct {
	ID            uint
	OwnerID       *uint
	OwnerVerified bool
}

type ClaimService struct {
	db  *database.DB
	log *zap.SugaredLogger
}

func NewClaimService(db *database.DB) *ClaimService {
	return &ClaimService{db: db, log: logger.GetLogger("claims")}
}

// ResolveClaimStatuses computes claim status for every subject. The three
// lookups are independent and run concurrently; all are awaited before the
// map is produced. Each lookup fails open - this is read-only enrichment,
// so a failed lookup degrades to an empty set instead of failing the
// request.
func (s *ClaimService) ResolveClaimStatuses(ctx context.Context, subjects []ClaimSubject, callerID *uint) map[uint]ClaimInfo {
	out := make(map[uint]ClaimInfo, len(subjects))
	if len(subjects) == 0 {
		return out
	}

	ids := make([]uint, len(subjects))
	for i, sub := range subjects {
		ids[i] = sub.ID
	}

	var ownedByCaller, pendingByCaller, ownedByAny map[uint]bool
	var wg sync.WaitGroup

	if callerID != nil {
		wg.Add(2)
		go func() {
			defer wg.Done()
			ownedByCaller = s.lookupCallerOwned(ctx, ids, *callerID)
		}()
		go func() {
			defer wg.Done()
			pendingByCaller = s.lookupCallerPending(ctx, ids, *callerID)
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		ownedByAny = s.lookupAnyOwner(ctx, ids)
	}()
	wg.Wait()

	for _, sub := range subjects {
		out[sub.ID] = decideClaimStatus(sub, callerID, ownedByCaller, pendingByCaller, ownedByAny)
	}
	return out
}

// decideClaimStatus is the precedence core: caller-ownership beats
// caller-pending beats third-party-ownership beats unclaimed.
func decideClaimStatus(sub ClaimSubject, callerID *uint, ownedByCaller, pendingByCaller, ownedByAny map[uint]bool) ClaimInfo {
	hasOwnerFlags := sub.OwnerID != nil || sub.OwnerVerified

	if callerID == nil {
		// Anonymous callers only observe claimed/unclaimed.
		status := ClaimStatusUnclaimed
		if ownedByAny[sub.ID] || hasOwnerFlags {
			status = ClaimStatusClaimed
		}
		return ClaimInfo{Status: status}
	}

	claimedByCaller := ownedByCaller[sub.ID] ||
		(sub.OwnerID != nil && *sub.OwnerID == *callerID)

	switch {
	case claimedByCaller:
		return ClaimInfo{Status: ClaimStatusClaimed, ClaimedByUser: true}
	case pendingByCaller[sub.ID]:
		return ClaimInfo{Status: ClaimStatusPending, PendingByUser: true}
	case ownedByAny[sub.ID] || hasOwnerFlags:
		return ClaimInfo{Status: ClaimStatusClaimed}
	default:
		return ClaimInfo{Status: ClaimStatusUnclaimed}
	}
}

func (s *ClaimService) lookupCallerOwned(ctx context.Context, ids []uint, callerID uint) map[uint]bool {
	var found []uint
	err := s.db.WithContext(ctx).Model(&models.BusinessOwner{}).
		Where("business_id IN ? AND user_id = ?", ids, callerID).
		Pluck("business_id", &found).Error
	if err != nil {
		s.log.Warnw("caller ownership lookup failed, treating as unowned", "error", err)
		return nil
	}
	return toIDSet(found)
}

func (s *ClaimService) lookupCallerPending(ctx context.Context, ids []uint, callerID uint) map[uint]bool {
	var found []uint
	err := s.db.WithContext(ctx).Model(&models.BusinessClaim{}).
		Where("business_id IN ? AND claimant_id = ? AND state IN ?",
			ids, callerID, []string{models.ClaimStatePending, models.ClaimStateInReview}).
		Pluck("business_id", &found).Error
	if err != nil {
		s.log.Warnw("pending claim lookup failed, treating as none", "error", err)
		return nil
	}
	return toIDSet(found)
}

func (s *ClaimService) lookupAnyOwner(ctx context.Context, ids []uint) map[uint]bool {
	var found []uint
	err := s.db.WithContext(ctx).Model(&models.BusinessOwner{}).
		Where("business_id IN ?", ids).
		Pluck("business_id", &found).Error
	if err != nil {
		s.log.Warnw("aggregate ownership lookup failed, treating as unclaimed", "error", err)
		return nil
	}
	return toIDSet(found)
}

func toIDSet(ids []uint) map[uint]bool {
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
