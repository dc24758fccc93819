package store

// Store is a persisted shop. The ID is assigned by the database on first
// save and never changes afterwards.
type Store struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Rating  int    `json:"rating"`
}

// Product belongs to exactly one Store. The relation is resolved in the
// service layer at creation time; the schema itself does not require it.
type Product struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	StoreID uint    `json:"-"`
	Store   *Store  `json:"store"`
}
