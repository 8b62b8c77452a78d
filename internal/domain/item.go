package domain

// ItemType is a row of the static consumable item catalog
type ItemType struct {
	ID   string `json:"item_id" db:"item_id"`
	Name string `json:"name" db:"item_name"`
	Tier Tier   `json:"tier" db:"tier"`
}

// InventoryEntry is a player's stack of one consumable item.
// Quantity is always positive; an entry reaching zero is deleted.
type InventoryEntry struct {
	ID       string `json:"entry_id" db:"entry_id"`
	Owner    string `json:"username" db:"username"`
	ItemID   string `json:"item_id" db:"item_id"`
	Quantity int    `json:"quantity" db:"quantity"`
}
