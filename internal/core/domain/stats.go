package domain

// Summary holds the headline numbers of the admin dashboard. The counts are
// estimates taken from collection metadata.
type Summary struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

// CategoryStat is one row of the per-category sales breakdown.
type CategoryStat struct {
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// UserStats holds per-customer activity counts.
type UserStats struct {
	Orders  int64 `json:"orders"`
	Reviews int64 `json:"reviews"`
}
