package model

// VisionType enumerates the elemental visions
type VisionType string

const (
	VisionDendro  VisionType = "DENDRO"
	VisionHydro   VisionType = "HYDRO"
	VisionCryo    VisionType = "CRYO"
	VisionGeo     VisionType = "GEO"
	VisionAnemo   VisionType = "ANEMO"
	VisionPyro    VisionType = "PYRO"
	VisionElectro VisionType = "ELECTRO"
)

// CharacterArchetype is a catalog row describing a playable character.
// Character listings reference an archetype as their template.
type CharacterArchetype struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	Name       string      `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	Quality    int         `gorm:"not null" json:"quality"` // 4 or 5 stars only
	WeaponType WeaponClass `gorm:"type:varchar(16);not null" json:"weapon_type"`
	VisionType VisionType  `gorm:"type:varchar(16);not null" json:"vision_type"`
}

// ArchetypeRequest carries archetype catalog fields for admin create/update
type ArchetypeRequest struct {
	Name       string      `json:"name" validate:"required,min=1,max=64"`
	Quality    int         `json:"quality" validate:"required,gte=4,lte=5"`
	WeaponType WeaponClass `json:"weapon_type" validate:"required,oneof=SWORD CLAYMORE CATALYST BOW SPEAR"`
	VisionType VisionType  `json:"vision_type" validate:"required,oneof=DENDRO HYDRO CRYO GEO ANEMO PYRO ELECTRO"`
}
