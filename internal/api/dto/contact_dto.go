package dto

// ContactRequest is a contact-form submission.
type ContactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Service   string `json:"service"`
	Message   string `json:"message"`
}

// AnalyticsResponse shapes the admin dashboard summary.
type AnalyticsResponse struct {
	TotalSales     string `json:"totalSales"`
	TotalProducts  int    `json:"totalProducts"`
	TotalOrders    int    `json:"totalOrders"`
	TotalCustomers int    `json:"totalCustomers"`
}
