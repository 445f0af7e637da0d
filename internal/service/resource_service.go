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

// ResourceService owns the fungible resources and their seller sets.
// Membership is guarded by a lookup before insert, not by a unique
// constraint, matching the documented store layout.
type ResourceService interface {
	ListAll() ([]model.Resource, error)
	Create(req *model.ResourceRequest) (*model.Resource, error)
	Update(id uuid.UUID, req *model.ResourceRequest) (*model.Resource, error)
	Delete(id uuid.UUID) error
	Sell(resourceID, userID uuid.UUID) error
	SellStop(resourceID, userID uuid.UUID) error
	Buy(resourceID, requesterID uuid.UUID) error
}

type resourceService struct {
	resourceRepo repository.ResourceRepository
	userRepo     repository.UserRepository
	db           TxRunner
	wsHub        *ws.Hub
}

func NewResourceService(rRepo repository.ResourceRepository, uRepo repository.UserRepository,
	db TxRunner, hub *ws.Hub) ResourceService {
	return &resourceService{
		resourceRepo: rRepo,
		userRepo:     uRepo,
		db:           db,
		wsHub:        hub,
	}
}

func (s *resourceService) ListAll() ([]model.Resource, error) {
	return s.resourceRepo.FindAll()
}

// Create adds a resource to the market. Admin only, enforced at the route.
func (s *resourceService) Create(req *model.ResourceRequest) (*model.Resource, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	resource := &model.Resource{
		Name:  req.Name,
		Price: req.Price,
	}
	if err := s.resourceRepo.Create(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *resourceService) Update(id uuid.UUID, req *model.ResourceRequest) (*model.Resource, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	resource, err := s.findResource(id)
	if err != nil {
		return nil, err
	}

	resource.Name = req.Name
	resource.Price = req.Price
	if err := s.resourceRepo.Update(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *resourceService) Delete(id uuid.UUID) error {
	if _, err := s.findResource(id); err != nil {
		return err
	}
	return s.resourceRepo.Delete(id)
}

// Sell adds the user to the resource's seller set.
func (s *resourceService) Sell(resourceID, userID uuid.UUID) error {
	resource, err := s.findResource(resourceID)
	if err != nil {
		return err
	}

	seller, err := s.userRepo.FindByID(userID)
	if err != nil {
		return fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	if sellerIndex(resource, userID) >= 0 {
		return fmt.Errorf("%w: already selling this resource", ErrConflict)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.resourceRepo.AddSeller(tx, resource, seller)
	})
	if err != nil {
		return err
	}

	s.publishResourceEvent("resource_offered", resource, seller.ID)
	return nil
}

// SellStop removes the user from the resource's seller set.
func (s *resourceService) SellStop(resourceID, userID uuid.UUID) error {
	resource, err := s.findResource(resourceID)
	if err != nil {
		return err
	}

	idx := sellerIndex(resource, userID)
	if idx < 0 {
		return fmt.Errorf("%w: not selling this resource", ErrConflict)
	}
	seller := resource.Sellers[idx]

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.resourceRepo.RemoveSeller(tx, resource, &seller)
	})
	if err != nil {
		return err
	}

	s.publishResourceEvent("resource_offer_withdrawn", resource, seller.ID)
	return nil
}

// Buy removes one arbitrary seller other than the requester: the first
// match in iteration order wins. Concurrent buyers are not serialized
// against each other, so two of them may contend for the same slot;
// each call still commits in its own transaction.
func (s *resourceService) Buy(resourceID, requesterID uuid.UUID) error {
	resource, err := s.findResource(resourceID)
	if err != nil {
		return err
	}

	var seller *model.User
	for i := range resource.Sellers {
		if resource.Sellers[i].ID != requesterID {
			seller = &resource.Sellers[i]
			break
		}
	}
	if seller == nil {
		return fmt.Errorf("%w: no other seller for this resource", ErrConflict)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.resourceRepo.RemoveSeller(tx, resource, seller)
	})
	if err != nil {
		return err
	}

	s.wsHub.PublishEvent("resource_traded", map[string]interface{}{
		"resource": map[string]interface{}{
			"id":    resource.ID,
			"name":  resource.Name,
			"price": resource.Price,
		},
		"seller_id": seller.ID,
		"buyer_id":  requesterID,
	})
	return nil
}

func (s *resourceService) findResource(id uuid.UUID) (*model.Resource, error) {
	resource, err := s.resourceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: resource %s", ErrNotFound, id)
		}
		return nil, err
	}
	return resource, nil
}

func (s *resourceService) publishResourceEvent(eventType string, resource *model.Resource, sellerID uuid.UUID) {
	s.wsHub.PublishEvent(eventType, map[string]interface{}{
		"resource": map[string]interface{}{
			"id":    resource.ID,
			"name":  resource.Name,
			"price": resource.Price,
		},
		"seller_id": sellerID,
	})
}

// sellerIndex returns the position of the user in the seller set, -1
// when absent.
func sellerIndex(resource *model.Resource, userID uuid.UUID) int {
	for i, s := range resource.Sellers {
		if s.ID == userID {
			return i
		}
	}
	return -1
}
