package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"genshin-trade-center/internal/model"
	"genshin-trade-center/internal/repository"
)

// CatalogService owns the weapon and archetype reference tables. Plain
// CRUD with range validation; mutations are admin-gated at the route.
type CatalogService interface {
	ListWeapons() ([]model.Weapon, error)
	GetWeapon(id uint) (*model.Weapon, error)
	CreateWeapon(req *model.WeaponRequest) (*model.Weapon, error)
	UpdateWeapon(id uint, req *model.WeaponRequest) (*model.Weapon, error)
	DeleteWeapon(id uint) error

	ListArchetypes() ([]model.CharacterArchetype, error)
	GetArchetype(id uint) (*model.CharacterArchetype, error)
	CreateArchetype(req *model.ArchetypeRequest) (*model.CharacterArchetype, error)
	UpdateArchetype(id uint, req *model.ArchetypeRequest) (*model.CharacterArchetype, error)
	DeleteArchetype(id uint) error
}

type catalogService struct {
	weaponRepo    repository.WeaponRepository
	archetypeRepo repository.ArchetypeRepository
}

func NewCatalogService(wRepo repository.WeaponRepository, aRepo repository.ArchetypeRepository) CatalogService {
	return &catalogService{
		weaponRepo:    wRepo,
		archetypeRepo: aRepo,
	}
}

func (s *catalogService) ListWeapons() ([]model.Weapon, error) {
	return s.weaponRepo.FindAll()
}

func (s *catalogService) GetWeapon(id uint) (*model.Weapon, error) {
	weapon, err := s.weaponRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: weapon %d", ErrNotFound, id)
		}
		return nil, err
	}
	return weapon, nil
}

func (s *catalogService) CreateWeapon(req *model.WeaponRequest) (*model.Weapon, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	weapon := &model.Weapon{
		Name:        req.Name,
		MainStat:    req.MainStat,
		WeaponType:  req.WeaponType,
		Description: req.Description,
		Quality:     req.Quality,
	}
	if err := s.weaponRepo.Create(weapon); err != nil {
		return nil, err
	}
	return weapon, nil
}

func (s *catalogService) UpdateWeapon(id uint, req *model.WeaponRequest) (*model.Weapon, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	weapon, err := s.GetWeapon(id)
	if err != nil {
		return nil, err
	}

	weapon.Name = req.Name
	weapon.MainStat = req.MainStat
	weapon.WeaponType = req.WeaponType
	weapon.Description = req.Description
	weapon.Quality = req.Quality

	if err := s.weaponRepo.Update(weapon); err != nil {
		return nil, err
	}
	return weapon, nil
}

func (s *catalogService) DeleteWeapon(id uint) error {
	if _, err := s.GetWeapon(id); err != nil {
		return err
	}
	return s.weaponRepo.Delete(id)
}

func (s *catalogService) ListArchetypes() ([]model.CharacterArchetype, error) {
	return s.archetypeRepo.FindAll()
}

func (s *catalogService) GetArchetype(id uint) (*model.CharacterArchetype, error) {
	archetype, err := s.archetypeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: archetype %d", ErrNotFound, id)
		}
		return nil, err
	}
	return archetype, nil
}

func (s *catalogService) CreateArchetype(req *model.ArchetypeRequest) (*model.CharacterArchetype, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	archetype := &model.CharacterArchetype{
		Name:       req.Name,
		Quality:    req.Quality,
		WeaponType: req.WeaponType,
		VisionType: req.VisionType,
	}
	if err := s.archetypeRepo.Create(archetype); err != nil {
		return nil, err
	}
	return archetype, nil
}

func (s *catalogService) UpdateArchetype(id uint, req *model.ArchetypeRequest) (*model.CharacterArchetype, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	archetype, err := s.GetArchetype(id)
	if err != nil {
		return nil, err
	}

	archetype.Name = req.Name
	archetype.Quality = req.Quality
	archetype.WeaponType = req.WeaponType
	archetype.VisionType = req.VisionType

	if err := s.archetypeRepo.Update(archetype); err != nil {
		return nil, err
	}
	return archetype, nil
}

func (s *catalogService) DeleteArchetype(id uint) error {
	if _, err := s.GetArchetype(id); err != nil {
		return err
	}
	return s.archetypeRepo.Delete(id)
}
