package repository

import (
	"genshin-trade-center/internal/model"

	"gorm.io/gorm"
)

type WeaponRepository interface {
	FindAll() ([]model.Weapon, error)
	FindByID(id uint) (*model.Weapon, error)
	Create(weapon *model.Weapon) error
	Update(weapon *model.Weapon) error
	Delete(id uint) error
}

type weaponRepo struct {
	db *gorm.DB
}

func NewWeaponRepo(db *gorm.DB) WeaponRepository {
	return &weaponRepo{db}
}

func (r *weaponRepo) FindAll() ([]model.Weapon, error) {
	var weapons []model.Weapon
	err := r.db.Find(&weapons).Error
	return weapons, err
}

func (r *weaponRepo) FindByID(id uint) (*model.Weapon, error) {
	var weapon model.Weapon
	if err := r.db.First(&weapon, id).Error; err != nil {
		return nil, err
	}
	return &weapon, nil
}

func (r *weaponRepo) Create(weapon *model.Weapon) error {
	return r.db.Create(weapon).Error
}

func (r *weaponRepo) Update(weapon *model.Weapon) error {
	return r.db.Save(weapon).Error
}

func (r *weaponRepo) Delete(id uint) error {
	return r.db.Delete(&model.Weapon{}, id).Error
}
