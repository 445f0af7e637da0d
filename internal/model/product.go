package model

import (
	"github.com/google/uuid"
)

// ProductKind discriminates the two sellable listing types. The kind is
// fixed at creation, a listing never changes type.
type ProductKind string

const (
	KindCharacter ProductKind = "character"
	KindItem      ProductKind = "item"
)

// Product is a single-table listing: shared market fields plus the
// character-only and item-only columns selected by Kind.
type Product struct {
	BaseModel
	Kind     ProductKind `gorm:"type:varchar(16);not null;index" json:"kind"`
	Name     string      `gorm:"type:varchar(64);not null" json:"name"`
	Price    float64     `gorm:"type:numeric(6,2);not null" json:"price"`
	Level    int         `gorm:"not null" json:"level"`
	SellerID uuid.UUID   `gorm:"type:uuid;not null;index" json:"seller_id"`
	Seller   *User       `gorm:"foreignKey:SellerID" json:"seller,omitempty"`

	// Character fields (zero for items)
	Friendship    int                 `json:"friendship,omitempty"`
	Constellation int                 `json:"constellation,omitempty"`
	ArchetypeID   *uint               `gorm:"index" json:"archetype_id,omitempty"`
	Archetype     *CharacterArchetype `gorm:"foreignKey:ArchetypeID" json:"archetype,omitempty"`

	// Item fields (zero for characters)
	Refinement int     `json:"refinement,omitempty"`
	WeaponID   *uint   `gorm:"index" json:"weapon_id,omitempty"`
	Weapon     *Weapon `gorm:"foreignKey:WeaponID" json:"weapon,omitempty"`
}

// CreateCharacterRequest carries a new character listing. The seller is
// always the authenticated caller, never taken from the body.
type CreateCharacterRequest struct {
	Name          string  `json:"name" validate:"required,min=5,max=64"`
	Price         float64 `json:"price" validate:"required,gte=0.1,lte=200"`
	Level         int     `json:"level" validate:"required,gte=1,lte=90"`
	Friendship    int     `json:"friendship" validate:"required,gte=1,lte=10"`
	Constellation int     `json:"constellation" validate:"required,gte=1,lte=6"`
	ArchetypeID   uint    `json:"archetype_id" validate:"required"`
}

// UpdateCharacterRequest carries the editable fields of a character
// listing. The archetype reference is fixed at creation.
type UpdateCharacterRequest struct {
	Name          string  `json:"name" validate:"required,min=5,max=64"`
	Price         float64 `json:"price" validate:"required,gte=0.1,lte=200"`
	Level         int     `json:"level" validate:"required,gte=1,lte=90"`
	Friendship    int     `json:"friendship" validate:"required,gte=1,lte=10"`
	Constellation int     `json:"constellation" validate:"required,gte=1,lte=6"`
}

// CreateItemRequest carries a new item listing.
type CreateItemRequest struct {
	Name       string  `json:"name" validate:"required,min=5,max=64"`
	Price      float64 `json:"price" validate:"required,gte=0.1,lte=200"`
	Level      int     `json:"level" validate:"required,gte=1,lte=90"`
	Refinement int     `json:"refinement" validate:"required,gte=1,lte=5"`
	WeaponID   uint    `json:"weapon_id" validate:"required"`
}

// UpdateItemRequest carries the editable fields of an item listing. The
// weapon reference is fixed at creation.
type UpdateItemRequest struct {
	Name       string  `json:"name" validate:"required,min=5,max=64"`
	Price      float64 `json:"price" validate:"required,gte=0.1,lte=200"`
	Level      int     `json:"level" validate:"required,gte=1,lte=90"`
	Refinement int     `json:"refinement" validate:"required,gte=1,lte=5"`
}
