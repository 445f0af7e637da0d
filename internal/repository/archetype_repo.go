package repository

import (
	"genshin-trade-center/internal/model"

	"gorm.io/gorm"
)

type ArchetypeRepository interface {
	FindAll() ([]model.CharacterArchetype, error)
	FindByID(id uint) (*model.CharacterArchetype, error)
	Create(archetype *model.CharacterArchetype) error
	Update(archetype *model.CharacterArchetype) error
	Delete(id uint) error
}

type archetypeRepo struct {
	db *gorm.DB
}

func NewArchetypeRepo(db *gorm.DB) ArchetypeRepository {
	return &archetypeRepo{db}
}

func (r *archetypeRepo) FindAll() ([]model.CharacterArchetype, error) {
	var archetypes []model.CharacterArchetype
	err := r.db.Find(&archetypes).Error
	return archetypes, err
}

func (r *archetypeRepo) FindByID(id uint) (*model.CharacterArchetype, error) {
	var archetype model.CharacterArchetype
	if err := r.db.First(&archetype, id).Error; err != nil {
		return nil, err
	}
	return &archetype, nil
}

func (r *archetypeRepo) Create(archetype *model.CharacterArchetype) error {
	return r.db.Create(archetype).Error
}

func (r *archetypeRepo) Update(archetype *model.CharacterArchetype) error {
	return r.db.Save(archetype).Error
}

func (r *archetypeRepo) Delete(id uint) error {
	return r.db.Delete(&model.CharacterArchetype{}, id).Error
}
