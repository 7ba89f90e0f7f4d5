package ngo

import (
	"context"

	"FoodBridge-Backend/entities"

	"gorm.io/gorm"
)

type (
	NGORepository interface {
		CreateNGO(ctx context.Context, ngo *entities.NGO) error
		GetNGOByEmail(ctx context.Context, email string) (*entities.NGO, error)
		GetNGOByID(ctx context.Context, id string) (*entities.NGO, error)
		GetUnverifiedNGOs(ctx context.Context) ([]*entities.NGO, error)
		MarkVerified(ctx context.Context, id string) (int64, error)
	}

	ngoRepository struct {
		db *gorm.DB
	}
)

func NewNGORepository(db *gorm.DB) NGORepository {
	return &ngoRepository{db: db}
}

func (r *ngoRepository) CreateNGO(ctx context.Context, ngo *entities.NGO) error {
	return r.db.WithContext(ctx).Create(ngo).Error
}

func (r *ngoRepository) GetNGOByEmail(ctx context.Context, email string) (*entities.NGO, error) {
	var ngo entities.NGO
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&ngo).Error; err != nil {
		return nil, err
	}
	return &ngo, nil
}

func (r *ngoRepository) GetNGOByID(ctx context.Context, id string) (*entities.NGO, error) {
	var ngo entities.NGO
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ngo).Error; err != nil {
		return nil, err
	}
	return &ngo, nil
}

func (r *ngoRepository) GetUnverifiedNGOs(ctx context.Context) ([]*entities.NGO, error) {
	var ngos []*entities.NGO
	if err := r.db.WithContext(ctx).
		Where("is_verified = ?", false).
		Order("created_at ASC").
		Find(&ngos).Error; err != nil {
		return nil, err
	}
	return ngos, nil
}

func (r *ngoRepository) MarkVerified(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.NGO{}).
		Where("id = ?", id).
		Update("is_verified", true)
	return res.RowsAffected, res.Error
}
