package service

import (
	"testing"

	"genshin-trade-center/internal/model"
	"genshin-trade-center/internal/ws"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resourceFixture struct {
	resources *fakeResourceRepo
	users     *fakeUserRepo
	svc       ResourceService
}

func newResourceFixture(t *testing.T) *resourceFixture {
	t.Helper()

	hub := ws.NewHub()
	go hub.Run()

	f := &resourceFixture{
		resources: newFakeResourceRepo(),
		users:     newFakeUserRepo(),
	}
	f.svc = NewResourceService(f.resources, f.users, fakeTxRunner{}, hub)
	return f
}

func (f *resourceFixture) addUser(t *testing.T, username string) uuid.UUID {
	t.Helper()
	user := &model.User{Username: username, Email: username + "@example.com", IsActive: true}
	require.NoError(t, f.users.Create(user))
	return user.ID
}

func (f *resourceFixture) addResource(t *testing.T, name string) uuid.UUID {
	t.Helper()
	resource, err := f.svc.Create(&model.ResourceRequest{Name: name, Price: 3.5})
	require.NoError(t, err)
	return resource.ID
}

func (f *resourceFixture) sellerCount(t *testing.T, id uuid.UUID) int {
	t.Helper()
	resource, err := f.resources.FindByID(id)
	require.NoError(t, err)
	return len(resource.Sellers)
}

func TestResourceCreate_OutOfRangePriceRejected(t *testing.T) {
	f := newResourceFixture(t)

	_, err := f.svc.Create(&model.ResourceRequest{Name: "Mora Bundle", Price: 500})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, f.resources.resources)
}

func TestSell_AddsCallerToSellerSet(t *testing.T) {
	f := newResourceFixture(t)
	user := f.addUser(t, "paimon")
	resourceID := f.addResource(t, "Hero's Wit")

	require.NoError(t, f.svc.Sell(resourceID, user))
	assert.Equal(t, 1, f.sellerCount(t, resourceID))
}

func TestSell_SecondTimeConflictsAndSetIsUnchanged(t *testing.T) {
	f := newResourceFixture(t)
	user := f.addUser(t, "paimon")
	resourceID := f.addResource(t, "Hero's Wit")

	require.NoError(t, f.svc.Sell(resourceID, user))
	require.ErrorIs(t, f.svc.Sell(resourceID, user), ErrConflict)
	assert.Equal(t, 1, f.sellerCount(t, resourceID))
}

func TestSell_UnknownResourceNotFound(t *testing.T) {
	f := newResourceFixture(t)
	user := f.addUser(t, "paimon")

	require.ErrorIs(t, f.svc.Sell(uuid.New(), user), ErrNotFound)
}

func TestSellStop_WithoutSellingConflicts(t *testing.T) {
	f := newResourceFixture(t)
	user := f.addUser(t, "paimon")
	resourceID := f.addResource(t, "Hero's Wit")

	require.ErrorIs(t, f.svc.SellStop(resourceID, user), ErrConflict)
}

func TestSellStop_RemovesCallerFromSellerSet(t *testing.T) {
	f := newResourceFixture(t)
	user := f.addUser(t, "paimon")
	resourceID := f.addResource(t, "Hero's Wit")

	require.NoError(t, f.svc.Sell(resourceID, user))
	require.NoError(t, f.svc.SellStop(resourceID, user))
	assert.Equal(t, 0, f.sellerCount(t, resourceID))
}

func TestBuy_OnlySellerIsRequesterConflicts(t *testing.T) {
	f := newResourceFixture(t)
	user := f.addUser(t, "paimon")
	resourceID := f.addResource(t, "Hero's Wit")

	require.NoError(t, f.svc.Sell(resourceID, user))
	require.ErrorIs(t, f.svc.Buy(resourceID, user), ErrConflict)
	assert.Equal(t, 1, f.sellerCount(t, resourceID))
}

func TestBuy_NoSellersAtAllConflicts(t *testing.T) {
	f := newResourceFixture(t)
	buyer := f.addUser(t, "paimon")
	resourceID := f.addResource(t, "Hero's Wit")

	require.ErrorIs(t, f.svc.Buy(resourceID, buyer), ErrConflict)
}

func TestBuy_ShrinksSellerSetByExactlyOne(t *testing.T) {
	f := newResourceFixture(t)
	sellerA := f.addUser(t, "amber")
	sellerB := f.addUser(t, "kaeya")
	buyer := f.addUser(t, "paimon")
	resourceID := f.addResource(t, "Hero's Wit")

	require.NoError(t, f.svc.Sell(resourceID, sellerA))
	require.NoError(t, f.svc.Sell(resourceID, sellerB))

	require.NoError(t, f.svc.Buy(resourceID, buyer))
	assert.Equal(t, 1, f.sellerCount(t, resourceID))
}

func TestBuy_NeverTakesTheRequestersOwnSlot(t *testing.T) {
	f := newResourceFixture(t)
	requester := f.addUser(t, "paimon")
	other := f.addUser(t, "amber")
	resourceID := f.addResource(t, "Hero's Wit")

	require.NoError(t, f.svc.Sell(resourceID, requester))
	require.NoError(t, f.svc.Sell(resourceID, other))

	require.NoError(t, f.svc.Buy(resourceID, requester))

	resource, err := f.resources.FindByID(resourceID)
	require.NoError(t, err)
	require.Len(t, resource.Sellers, 1)
	assert.Equal(t, requester, resource.Sellers[0].ID, "the requester's own slot must survive")
}

func TestResourceUpdateAndDelete(t *testing.T) {
	f := newResourceFixture(t)
	resourceID := f.addResource(t, "Hero's Wit")

	updated, err := f.svc.Update(resourceID, &model.ResourceRequest{Name: "Adventurer's Experience", Price: 1.2})
	require.NoError(t, err)
	assert.Equal(t, "Adventurer's Experience", updated.Name)

	require.NoError(t, f.svc.Delete(resourceID))
	require.ErrorIs(t, f.svc.Delete(resourceID), ErrNotFound)
}
