package entity

type VendorKind string

const (
	KindAdmin  VendorKind = "ADMIN"
	KindPlayer VendorKind = "PLAYER"
)

type Location struct {
	World string  `json:"world"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
}

// Vendor is a single trading NPC shop. Identity fields are set once during
// assembly; offers and demands are filled in afterwards and frozen after
// the best-price pass.
type Vendor struct {
	UUID       string     `json:"shop_uuid"`
	Kind       VendorKind `json:"shop_type"`
	OwnerUUID  string     `json:"owner_uuid,omitempty"`
	OwnerName  string     `json:"owner_name,omitempty"`
	Name       string     `json:"shop_name"`
	Profession string     `json:"npc_profession"`
	Location   Location   `json:"location"`

	Offers  map[string]*Offer  `json:"offers"`
	Demands map[string]*Demand `json:"demands"`
}

func (v *Vendor) IsAdmin() bool {
	return v.Kind == KindAdmin
}
