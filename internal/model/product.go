package model

// Product is a catalog item managed through the admin API.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Img         string  `json:"img"`
	Description string  `json:"description"`
	Featured    bool    `json:"featured"`
}
