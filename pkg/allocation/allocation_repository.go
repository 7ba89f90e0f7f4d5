package allocation

import (
	"context"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"

	"gorm.io/gorm"
)

type (
	// AllocationRepository commits the two-record state transition. Commit
	// runs both conditional updates and the audit insert in one database
	// transaction; a failed condition rolls the whole unit back.
	AllocationRepository interface {
		GetRequestByID(ctx context.Context, id string) (*entities.AidRequest, error)
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		Commit(ctx context.Context, alloc *entities.Allocation) error
		GetNGOAllocations(ctx context.Context, ngoID string) ([]*entities.Allocation, error)
	}

	allocationRepository struct {
		db *gorm.DB
	}
)

func NewAllocationRepository(db *gorm.DB) AllocationRepository {
	return &allocationRepository{db: db}
}

func (r *allocationRepository) GetRequestByID(ctx context.Context, id string) (*entities.AidRequest, error) {
	var request entities.AidRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *allocationRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

// Commit applies the request completion and the quantity decrement with
// their stale-state guards re-checked at write time:
//
//	request:  status pending -> completed, only while still pending
//	donation: quantity -= n, only while quantity >= n
//
// A zero-row update means a concurrent allocation won; the transaction
// rolls back and the stale-state sentinel is returned.
func (r *allocationRepository) Commit(ctx context.Context, alloc *entities.Allocation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.AidRequest{}).
			Where("id = ? AND status = ?", alloc.RequestID, entities.RequestStatusPending).
			Updates(map[string]interface{}{
				"status":       entities.RequestStatusCompleted,
				"completed_by": alloc.NGOID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrRequestNotPending
		}

		res = tx.Model(&entities.Donation{}).
			Where("id = ? AND quantity >= ?", alloc.DonationID, alloc.Quantity).
			UpdateColumn("quantity", gorm.Expr("quantity - ?", alloc.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrInsufficientQuantity
		}

		return tx.Create(alloc).Error
	})
}

func (r *allocationRepository) GetNGOAllocations(ctx context.Context, ngoID string) ([]*entities.Allocation, error) {
	var allocations []*entities.Allocation
	if err := r.db.WithContext(ctx).
		Preload("Request").
		Preload("Donation").
		Where("ngo_id = ?", ngoID).
		Order("created_at DESC").
		Find(&allocations).Error; err != nil {
		return nil, err
	}
	return allocations, nil
}
