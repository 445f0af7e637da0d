package service

import (
	"testing"

	"genshin-trade-center/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketStats_CountsListingsAndSellerSlots(t *testing.T) {
	products := newFakeProductRepo()
	resources := newFakeResourceRepo()
	svc := NewMarketService(products, resources)

	require.NoError(t, products.Create(&model.Product{Kind: model.KindCharacter, Name: "Lumine Test", SellerID: uuid.New()}))
	require.NoError(t, products.Create(&model.Product{Kind: model.KindCharacter, Name: "Aether Test", SellerID: uuid.New()}))
	require.NoError(t, products.Create(&model.Product{Kind: model.KindItem, Name: "Starter Blade", SellerID: uuid.New()}))

	resource := &model.Resource{Name: "Hero's Wit", Price: 3.5}
	require.NoError(t, resources.Create(resource))
	require.NoError(t, resources.AddSeller(nil, resource, &model.User{BaseModel: model.BaseModel{ID: uuid.New()}}))
	require.NoError(t, resources.AddSeller(nil, resource, &model.User{BaseModel: model.BaseModel{ID: uuid.New()}}))

	stats, err := svc.GetStats()
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.CharactersListed)
	assert.Equal(t, int64(1), stats.ItemsListed)
	assert.Equal(t, int64(1), stats.Resources)
	assert.Equal(t, int64(2), stats.SellerSlots)
}
