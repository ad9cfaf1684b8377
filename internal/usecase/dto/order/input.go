package orderdto

type CheckoutItemInput struct {
	ProductID string
	Quantity  int
	Options   map[string]string
}

type CheckoutInput struct {
	StoreID         string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	Items           []CheckoutItemInput
	CouponCode      string
}

type ListOrdersInput struct {
	StoreID   string
	Page      int64
	Limit     int64
	SortBy    string
	SortOrder string
	Statuses  []string
	Reference string
	Email     string
}
