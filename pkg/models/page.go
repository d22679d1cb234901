package models

// PageInfo is the pagination block every list endpoint returns alongside
// its items.
type PageInfo struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Page is one bounded slice of a server-side collection. It is never
// persisted; each fetch recomputes it. len(Items) never exceeds Limit.
type Page[T any] struct {
	Items []T
	PageInfo
}
