package accountrepo

import (
	"context"
	"errors"

	"parcel/internal/core/domain/model/account"
	"parcel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountDirectory implements AccountDirectory using GORM.
type GormAccountDirectory struct {
	db *gorm.DB
}

// NewGormAccountDirectory creates a directory over the accounts table.
func NewGormAccountDirectory(db *gorm.DB) *GormAccountDirectory {
	return &GormAccountDirectory{db: db}
}

// Get retrieves a registered account by id.
func (r *GormAccountDirectory) Get(ctx context.Context, id int64) (*account.Account, error) {
	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("accountId", id)
		}
		return nil, err
	}

	return accountToDomain(dto)
}

// GormAgentDirectory implements AgentDirectory using GORM.
type GormAgentDirectory struct {
	db *gorm.DB
}

// NewGormAgentDirectory creates a directory over the delivery agents table.
func NewGormAgentDirectory(db *gorm.DB) *GormAgentDirectory {
	return &GormAgentDirectory{db: db}
}

// Get retrieves a delivery agent by id.
func (r *GormAgentDirectory) Get(ctx context.Context, id int64) (*account.DeliveryAgent, error) {
	var dto AgentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("agentId", id)
		}
		return nil, err
	}

	return agentToDomain(dto)
}
