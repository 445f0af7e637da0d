package service

import (
	"database/sql"

	"genshin-trade-center/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory stand-ins for the gorm repositories so the services can be
// exercised without a database. Lookups return gorm.ErrRecordNotFound
// like the real thing.

type fakeTxRunner struct{}

func (fakeTxRunner) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	return fc(nil)
}

// ---- products ----

type fakeProductRepo struct {
	products map[uuid.UUID]model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]model.Product)}
}

func (r *fakeProductRepo) Create(product *model.Product) error {
	product.ID = uuid.New()
	r.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &product, nil
}

func (r *fakeProductRepo) FindAvailable(kind model.ProductKind, viewerID uuid.UUID) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.Kind == kind && p.SellerID != viewerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) FindBySeller(kind model.ProductKind, sellerID uuid.UUID) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.Kind == kind && p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) CountByKind(kind model.ProductKind) (int64, error) {
	var count int64
	for _, p := range r.products {
		if p.Kind == kind {
			count++
		}
	}
	return count, nil
}

func (r *fakeProductRepo) Update(product *model.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) Delete(tx *gorm.DB, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

// ---- weapons ----

type fakeWeaponRepo struct {
	weapons map[uint]model.Weapon
	nextID  uint
}

func newFakeWeaponRepo() *fakeWeaponRepo {
	return &fakeWeaponRepo{weapons: make(map[uint]model.Weapon), nextID: 1}
}

func (r *fakeWeaponRepo) FindAll() ([]model.Weapon, error) {
	var out []model.Weapon
	for _, w := range r.weapons {
		out = append(out, w)
	}
	return out, nil
}

func (r *fakeWeaponRepo) FindByID(id uint) (*model.Weapon, error) {
	weapon, ok := r.weapons[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &weapon, nil
}

func (r *fakeWeaponRepo) Create(weapon *model.Weapon) error {
	weapon.ID = r.nextID
	r.nextID++
	r.weapons[weapon.ID] = *weapon
	return nil
}

func (r *fakeWeaponRepo) Update(weapon *model.Weapon) error {
	if _, ok := r.weapons[weapon.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.weapons[weapon.ID] = *weapon
	return nil
}

func (r *fakeWeaponRepo) Delete(id uint) error {
	delete(r.weapons, id)
	return nil
}

// ---- archetypes ----

type fakeArchetypeRepo struct {
	archetypes map[uint]model.CharacterArchetype
	nextID     uint
}

func newFakeArchetypeRepo() *fakeArchetypeRepo {
	return &fakeArchetypeRepo{archetypes: make(map[uint]model.CharacterArchetype), nextID: 1}
}

func (r *fakeArchetypeRepo) FindAll() ([]model.CharacterArchetype, error) {
	var out []model.CharacterArchetype
	for _, a := range r.archetypes {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeArchetypeRepo) FindByID(id uint) (*model.CharacterArchetype, error) {
	archetype, ok := r.archetypes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &archetype, nil
}

func (r *fakeArchetypeRepo) Create(archetype *model.CharacterArchetype) error {
	archetype.ID = r.nextID
	r.nextID++
	r.archetypes[archetype.ID] = *archetype
	return nil
}

func (r *fakeArchetypeRepo) Update(archetype *model.CharacterArchetype) error {
	if _, ok := r.archetypes[archetype.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.archetypes[archetype.ID] = *archetype
	return nil
}

func (r *fakeArchetypeRepo) Delete(id uint) error {
	delete(r.archetypes, id)
	return nil
}

// ---- resources ----

type fakeResourceRepo struct {
	resources map[uuid.UUID]model.Resource
}

func newFakeResourceRepo() *fakeResourceRepo {
	return &fakeResourceRepo{resources: make(map[uuid.UUID]model.Resource)}
}

func (r *fakeResourceRepo) FindAll() ([]model.Resource, error) {
	var out []model.Resource
	for _, res := range r.resources {
		out = append(out, res)
	}
	return out, nil
}

func (r *fakeResourceRepo) FindByID(id uuid.UUID) (*model.Resource, error) {
	resource, ok := r.resources[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	// copy the seller slice so callers can't mutate the store
	resource.Sellers = append([]model.User(nil), resource.Sellers...)
	return &resource, nil
}

func (r *fakeResourceRepo) CountSellerSlots() (int64, error) {
	var count int64
	for _, res := range r.resources {
		count += int64(len(res.Sellers))
	}
	return count, nil
}

func (r *fakeResourceRepo) Create(resource *model.Resource) error {
	resource.ID = uuid.New()
	r.resources[resource.ID] = *resource
	return nil
}

func (r *fakeResourceRepo) Update(resource *model.Resource) error {
	if _, ok := r.resources[resource.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.resources[resource.ID] = *resource
	return nil
}

func (r *fakeResourceRepo) Delete(id uuid.UUID) error {
	delete(r.resources, id)
	return nil
}

func (r *fakeResourceRepo) AddSeller(tx *gorm.DB, resource *model.Resource, seller *model.User) error {
	stored, ok := r.resources[resource.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Sellers = append(stored.Sellers, *seller)
	r.resources[resource.ID] = stored
	return nil
}

func (r *fakeResourceRepo) RemoveSeller(tx *gorm.DB, resource *model.Resource, seller *model.User) error {
	stored, ok := r.resources[resource.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range stored.Sellers {
		if stored.Sellers[i].ID == seller.ID {
			stored.Sellers = append(stored.Sellers[:i], stored.Sellers[i+1:]...)
			break
		}
	}
	r.resources[resource.ID] = stored
	return nil
}

// ---- users ----

type fakeUserRepo struct {
	users map[uuid.UUID]model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]model.User)}
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) FindAll() ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(user *model.User) error {
	user.ID = uuid.New()
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Update(user *model.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	user, ok := r.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.Password = hashedPassword
	r.users[userID] = user
	return nil
}

func (r *fakeUserRepo) UpdateTokenVersion(userID uuid.UUID, version string) error {
	user, ok := r.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.TokenVersion = version
	r.users[userID] = user
	return nil
}
