package model

// Resource is a fungible tradeable good. Unlike a Product it has no
// single owner: any number of users can offer it at the shared price.
type Resource struct {
	BaseModel
	Name    string  `gorm:"type:varchar(64);not null" json:"name"`
	Price   float64 `gorm:"type:numeric(6,2);not null" json:"price"`
	Sellers []User  `gorm:"many2many:resource_sellers;" json:"sellers,omitempty"`
}

// SellerUsernames returns the display labels of the current seller set
func (r *Resource) SellerUsernames() []string {
	names := make([]string, len(r.Sellers))
	for i, s := range r.Sellers {
		names[i] = s.Username
	}
	return names
}

// ResourceRequest carries resource fields for admin create/update
type ResourceRequest struct {
	Name  string  `json:"name" validate:"required,min=5,max=64"`
	Price float64 `json:"price" validate:"required,gte=0.1,lte=200"`
}
