package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/petgroom/scheduler/internal/domain/schedule"
	"github.com/petgroom/scheduler/internal/models"
)

// UserDirectoryGorm exposes the user-lookup slice the schedule engine
// needs for identity and role validation.
type UserDirectoryGorm struct {
	db *gorm.DB
}

func NewUserDirectoryGorm(db *gorm.DB) *UserDirectoryGorm {
	return &UserDirectoryGorm{db: db}
}

func (r *UserDirectoryGorm) FindUserByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

type PetRegistryGorm struct {
	db *gorm.DB
}

func NewPetRegistryGorm(db *gorm.DB) *PetRegistryGorm {
	return &PetRegistryGorm{db: db}
}

func (r *PetRegistryGorm) FindPetByID(
	ctx context.Context,
	id string,
) (*models.Pet, error) {

	var p models.Pet
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

var (
	_ domain.UserDirectory = (*UserDirectoryGorm)(nil)
	_ domain.PetRegistry   = (*PetRegistryGorm)(nil)
)
