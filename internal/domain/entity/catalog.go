package entity

// Catalog is the full export document.
type Catalog struct {
	Meta  Meta      `json:"meta"`
	Shops []*Vendor `json:"shops"`
}

type Meta struct {
	LatestFileModDate          *int64  `json:"latestfilemoddate"`
	LatestFileModDateFormatted *string `json:"latestfilemoddate_formatted"`
}
