package model

// CatalogStats summarizes the catalog tables backing the estimate forms.
type CatalogStats struct {
	Buildings           int64
	HeavyItems          int64
	Crews               int64
	BlackoutsByMeridian map[Meridian]int64
}
