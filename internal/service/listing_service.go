package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"genshin-trade-center/internal/model"
	"genshin-trade-center/internal/repository"
	"genshin-trade-center/internal/ws"
)

// ListingService owns the character and item listings. A listing only
// ever has two states, listed and absent: buying or deleting removes the
// row and there is no way back.
type ListingService interface {
	ListAvailable(kind model.ProductKind, viewerID uuid.UUID) ([]model.Product, error)
	ListMine(kind model.ProductKind, sellerID uuid.UUID) ([]model.Product, error)
	CreateCharacter(sellerID uuid.UUID, req *model.CreateCharacterRequest) (*model.Product, error)
	CreateItem(sellerID uuid.UUID, req *model.CreateItemRequest) (*model.Product, error)
	UpdateCharacter(id, callerID uuid.UUID, req *model.UpdateCharacterRequest) (*model.Product, error)
	UpdateItem(id, callerID uuid.UUID, req *model.UpdateItemRequest) (*model.Product, error)
	Delete(id, callerID uuid.UUID) error
	Buy(id, buyerID uuid.UUID) error
}

type listingService struct {
	productRepo   repository.ProductRepository
	archetypeRepo repository.ArchetypeRepository
	weaponRepo    repository.WeaponRepository
	db            TxRunner
	wsHub         *ws.Hub
}

func NewListingService(pRepo repository.ProductRepository, aRepo repository.ArchetypeRepository,
	wRepo repository.WeaponRepository, db TxRunner, hub *ws.Hub) ListingService {
	return &listingService{
		productRepo:   pRepo,
		archetypeRepo: aRepo,
		weaponRepo:    wRepo,
		db:            db,
		wsHub:         hub,
	}
}

func (s *listingService) ListAvailable(kind model.ProductKind, viewerID uuid.UUID) ([]model.Product, error) {
	return s.productRepo.FindAvailable(kind, viewerID)
}

func (s *listingService) ListMine(kind model.ProductKind, sellerID uuid.UUID) ([]model.Product, error) {
	return s.productRepo.FindBySeller(kind, sellerID)
}

func (s *listingService) CreateCharacter(sellerID uuid.UUID, req *model.CreateCharacterRequest) (*model.Product, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	// Every character must point at an existing archetype
	if _, err := s.archetypeRepo.FindByID(req.ArchetypeID); err != nil {
		return nil, fmt.Errorf("%w: archetype %d", ErrNotFound, req.ArchetypeID)
	}

	archetypeID := req.ArchetypeID
	product := &model.Product{
		Kind:          model.KindCharacter,
		Name:          req.Name,
		Price:         req.Price,
		Level:         req.Level,
		SellerID:      sellerID, // always the caller, never the body
		Friendship:    req.Friendship,
		Constellation: req.Constellation,
		ArchetypeID:   &archetypeID,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	s.publishListingEvent("listing_created", product)
	return product, nil
}

func (s *listingService) CreateItem(sellerID uuid.UUID, req *model.CreateItemRequest) (*model.Product, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	// Every item must point at an existing weapon template
	if _, err := s.weaponRepo.FindByID(req.WeaponID); err != nil {
		return nil, fmt.Errorf("%w: weapon %d", ErrNotFound, req.WeaponID)
	}

	weaponID := req.WeaponID
	product := &model.Product{
		Kind:       model.KindItem,
		Name:       req.Name,
		Price:      req.Price,
		Level:      req.Level,
		SellerID:   sellerID, // always the caller, never the body
		Refinement: req.Refinement,
		WeaponID:   &weaponID,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	s.publishListingEvent("listing_created", product)
	return product, nil
}

func (s *listingService) UpdateCharacter(id, callerID uuid.UUID, req *model.UpdateCharacterRequest) (*model.Product, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	product, err := s.findOwned(id, model.KindCharacter, callerID)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Price = req.Price
	product.Level = req.Level
	product.Friendship = req.Friendship
	product.Constellation = req.Constellation

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *listingService) UpdateItem(id, callerID uuid.UUID, req *model.UpdateItemRequest) (*model.Product, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	product, err := s.findOwned(id, model.KindItem, callerID)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Price = req.Price
	product.Level = req.Level
	product.Refinement = req.Refinement

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete withdraws the caller's own listing from the market.
func (s *listingService) Delete(id, callerID uuid.UUID) error {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: listing %s", ErrNotFound, id)
		}
		return err
	}
	if product.SellerID != callerID {
		return fmt.Errorf("%w: not the seller of this listing", ErrForbidden)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.productRepo.Delete(tx, id)
	})
	if err != nil {
		return err
	}

	s.publishListingEvent("listing_withdrawn", product)
	return nil
}

// Buy removes the listing for the buyer. No payment is charged, no
// transfer record is written and the buyer is not checked against the
// seller; purchasing simply delists the row.
func (s *listingService) Buy(id, buyerID uuid.UUID) error {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: listing %s", ErrNotFound, id)
		}
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.productRepo.Delete(tx, id)
	})
	if err != nil {
		return err
	}

	s.wsHub.PublishEvent("listing_sold", map[string]interface{}{
		"listing": map[string]interface{}{
			"id":    product.ID,
			"kind":  product.Kind,
			"name":  product.Name,
			"price": product.Price,
		},
		"buyer_id": buyerID,
	})
	return nil
}

// findOwned resolves a listing of the expected kind and checks the
// caller is its seller. A listing of the other kind is reported as
// absent, not forbidden.
func (s *listingService) findOwned(id uuid.UUID, kind model.ProductKind, callerID uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: listing %s", ErrNotFound, id)
		}
		return nil, err
	}
	if product.Kind != kind {
		return nil, fmt.Errorf("%w: listing %s", ErrNotFound, id)
	}
	if product.SellerID != callerID {
		return nil, fmt.Errorf("%w: not the seller of this listing", ErrForbidden)
	}
	return product, nil
}

func (s *listingService) publishListingEvent(eventType string, product *model.Product) {
	s.wsHub.PublishEvent(eventType, map[string]interface{}{
		"listing": map[string]interface{}{
			"id":    product.ID,
			"kind":  product.Kind,
			"name":  product.Name,
			"price": product.Price,
			"level": product.Level,
		},
		"seller_id": product.SellerID,
	})
}
