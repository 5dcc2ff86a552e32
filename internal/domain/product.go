package domain

import "time"

type Product struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Currency    string         `json:"currency"`
	Stock       int            `json:"stock"`
	IsActive    bool           `json:"isActive"`
	CreatedAt   *time.Time     `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time     `json:"updatedAt,omitempty"`
	Images      []ProductImage `json:"images"`
	Colors      []ProductColor `json:"productColor,omitempty"`
}

type ProductImage struct {
	ID     int64  `json:"id"`
	URL    string `json:"url"`
	IsMain bool   `json:"isMain"`
	Order  int    `json:"order"`
}

type ProductColor struct {
	Color          string `json:"color"`
	HexadecimalRGB string `json:"hexadecimalRgb"`
}

// MainImageURL returns the URL of the image flagged as main, falling back
// to the first image when none is flagged.
func (p Product) MainImageURL() string {
	for _, img := range p.Images {
		if img.IsMain {
			return img.URL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return ""
}
