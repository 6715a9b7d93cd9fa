package types

// Order as returned by the Cafe24 admin orders API, reduced to the fields
// the engine reads.
type Order struct {
	OrderID string      `json:"order_id"`
	Items   []OrderItem `json:"items"`
}

type OrderItem struct {
	ProductName string `json:"product_name"`
	OptionValue string `json:"option_value"`
}

type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

type Shipment struct {
	Status              string `json:"status"`
	ShippingCompanyCode string `json:"shipping_company_code"`
	ShippingCompanyName string `json:"shipping_company_name"`
	TrackingNo          string `json:"tracking_no"`
}

type ShipmentsResponse struct {
	Shipments []Shipment `json:"shipments"`
}

// CommerceTokens is the persisted OAuth pair for the commerce API.
type CommerceTokens struct {
	AccessToken  string `bson:"accessToken"`
	RefreshToken string `bson:"refreshToken"`
	UpdatedAt    int64  `bson:"updatedAt"`
}
