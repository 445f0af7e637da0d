package model

// StatType enumerates the main stats a weapon can roll
type StatType string

const (
	StatATK              StatType = "ATK"
	StatDEF              StatType = "DEF"
	StatHP               StatType = "HP"
	StatCritDMG          StatType = "CRIT_DMG"
	StatCritRate         StatType = "CRIT_RATE"
	StatElementalMastery StatType = "ELEMENTAL_MASTERY"
	StatEnergyRecharge   StatType = "ENERGY_RECHARGE"
	StatPhysicalDMG      StatType = "PHYSICAL_DMG"
)

// WeaponClass enumerates the weapon families
type WeaponClass string

const (
	WeaponSword    WeaponClass = "SWORD"
	WeaponClaymore WeaponClass = "CLAYMORE"
	WeaponCatalyst WeaponClass = "CATALYST"
	WeaponBow      WeaponClass = "BOW"
	WeaponSpear    WeaponClass = "SPEAR"
)

// Weapon is a catalog template row. Item listings point at a weapon as
// their type; the row itself is never sold.
type Weapon struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	MainStat    StatType    `gorm:"type:varchar(32);not null" json:"main_stat"`
	WeaponType  WeaponClass `gorm:"type:varchar(16);not null" json:"weapon_type"`
	Description string      `gorm:"type:varchar(1024)" json:"description"`
	Quality     int         `gorm:"not null" json:"quality"`
}

// WeaponRequest carries weapon catalog fields for admin create/update
type WeaponRequest struct {
	Name        string      `json:"name" validate:"required,min=5,max=64"`
	MainStat    StatType    `json:"main_stat" validate:"required,oneof=ATK DEF HP CRIT_DMG CRIT_RATE ELEMENTAL_MASTERY ENERGY_RECHARGE PHYSICAL_DMG"`
	WeaponType  WeaponClass `json:"weapon_type" validate:"required,oneof=SWORD CLAYMORE CATALYST BOW SPEAR"`
	Description string      `json:"description" validate:"required,min=5,max=1024"`
	Quality     int         `json:"quality" validate:"required,gte=1,lte=5"`
}
