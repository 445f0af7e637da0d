package repository

import (
	"genshin-trade-center/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindByID(id uuid.UUID) (*model.Product, error)
	FindAvailable(kind model.ProductKind, viewerID uuid.UUID) ([]model.Product, error)
	FindBySeller(kind model.ProductKind, sellerID uuid.UUID) ([]model.Product, error)
	CountByKind(kind model.ProductKind) (int64, error)
	Update(product *model.Product) error
	Delete(tx *gorm.DB, id uuid.UUID) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Seller").Preload("Archetype").Preload("Weapon").
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindAvailable returns every listing of the kind except the viewer's own.
// No ordering is imposed beyond store iteration order.
func (r *productRepo) FindAvailable(kind model.ProductKind, viewerID uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Seller").Preload("Archetype").Preload("Weapon").
		Where("kind = ? AND seller_id <> ?", kind, viewerID).
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindBySeller(kind model.ProductKind, sellerID uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Seller").Preload("Archetype").Preload("Weapon").
		Where("kind = ? AND seller_id = ?", kind, sellerID).
		Find(&products).Error
	return products, err
}

func (r *productRepo) CountByKind(kind model.ProductKind) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("kind = ?", kind).Count(&count).Error
	return count, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

// Delete accepts *gorm.DB (tx) so removal can run inside a transaction
func (r *productRepo) Delete(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Product{}, "id = ?", id).Error
}
