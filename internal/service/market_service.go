package service

import (
	"genshin-trade-center/internal/model"
	"genshin-trade-center/internal/repository"
)

// MarketStats is a read-only snapshot of market activity
type MarketStats struct {
	CharactersListed int64 `json:"characters_listed"`
	ItemsListed      int64 `json:"items_listed"`
	Resources        int64 `json:"resources"`
	SellerSlots      int64 `json:"seller_slots"` // total resource seller memberships
}

type MarketService interface {
	GetStats() (*MarketStats, error)
}

type marketService struct {
	productRepo  repository.ProductRepository
	resourceRepo repository.ResourceRepository
}

func NewMarketService(pRepo repository.ProductRepository, rRepo repository.ResourceRepository) MarketService {
	return &marketService{productRepo: pRepo, resourceRepo: rRepo}
}

func (s *marketService) GetStats() (*MarketStats, error) {
	characters, err := s.productRepo.CountByKind(model.KindCharacter)
	if err != nil {
		return nil, err
	}
	items, err := s.productRepo.CountByKind(model.KindItem)
	if err != nil {
		return nil, err
	}
	resources, err := s.resourceRepo.FindAll()
	if err != nil {
		return nil, err
	}
	slots, err := s.resourceRepo.CountSellerSlots()
	if err != nil {
		return nil, err
	}

	return &MarketStats{
		CharactersListed: characters,
		ItemsListed:      items,
		Resources:        int64(len(resources)),
		SellerSlots:      slots,
	}, nil
}
