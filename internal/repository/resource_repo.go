package repository

import (
	"genshin-trade-center/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResourceRepository interface {
	FindAll() ([]model.Resource, error)
	FindByID(id uuid.UUID) (*model.Resource, error)
	CountSellerSlots() (int64, error)
	Create(resource *model.Resource) error
	Update(resource *model.Resource) error
	Delete(id uuid.UUID) error
	AddSeller(tx *gorm.DB, resource *model.Resource, seller *model.User) error
	RemoveSeller(tx *gorm.DB, resource *model.Resource, seller *model.User) error
}

type resourceRepo struct {
	db *gorm.DB
}

func NewResourceRepo(db *gorm.DB) ResourceRepository {
	return &resourceRepo{db}
}

func (r *resourceRepo) FindAll() ([]model.Resource, error) {
	var resources []model.Resource
	err := r.db.Preload("Sellers").Find(&resources).Error
	return resources, err
}

func (r *resourceRepo) FindByID(id uuid.UUID) (*model.Resource, error) {
	var resource model.Resource
	err := r.db.Preload("Sellers").First(&resource, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *resourceRepo) CountSellerSlots() (int64, error) {
	var count int64
	err := r.db.Table("resource_sellers").Count(&count).Error
	return count, err
}

func (r *resourceRepo) Create(resource *model.Resource) error {
	return r.db.Create(resource).Error
}

func (r *resourceRepo) Update(resource *model.Resource) error {
	return r.db.Save(resource).Error
}

func (r *resourceRepo) Delete(id uuid.UUID) error {
	return r.db.Select("Sellers").Delete(&model.Resource{BaseModel: model.BaseModel{ID: id}}).Error
}

// AddSeller accepts *gorm.DB (tx) so the membership change shares the
// caller's transaction
func (r *resourceRepo) AddSeller(tx *gorm.DB, resource *model.Resource, seller *model.User) error {
	return tx.Model(resource).Association("Sellers").Append(seller)
}

func (r *resourceRepo) RemoveSeller(tx *gorm.DB, resource *model.Resource, seller *model.User) error {
	return tx.Model(resource).Association("Sellers").Delete(seller)
}
