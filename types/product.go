package types

// Product is one entry of the static sales catalog.
type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    int      `json:"price"`
	Features []string `json:"features"`
	UseCases []string `json:"use_cases"`
	URL      string   `json:"url"`
	Anchor   bool     `json:"anchor"`
}

// PurchaseHistory summarizes a member's past orders. Derived per request,
// never persisted.
type PurchaseHistory struct {
	ProductNames []string
	Categories   map[string]bool
	Options      []string
}

// Empty reports whether nothing is known about the member's purchases.
func (h *PurchaseHistory) Empty() bool {
	return h == nil || len(h.ProductNames) == 0
}
