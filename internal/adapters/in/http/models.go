package http

import "time"

// ErrorResponse is the JSON error envelope returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItemRequest is one (name, quantity) entry of a submission.
type OrderItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	Items        []OrderItemRequest `json:"items"`
	Addons       string             `json:"addons"`
	CustomerName string             `json:"customerName"`
}

// CreateOrderResponse returns the identifiers the customer needs: the group
// for the system, the token for the counter.
type CreateOrderResponse struct {
	GroupID string `json:"groupId"`
	Token   string `json:"token"`
}

// OrderLine is one stored order line as rendered by read endpoints.
type OrderLine struct {
	ID           string    `json:"id"`
	GroupID      string    `json:"groupId"`
	Token        string    `json:"token"`
	ItemName     string    `json:"itemName"`
	Quantity     int       `json:"quantity"`
	Addons       string    `json:"addons,omitempty"`
	CustomerName string    `json:"customerName,omitempty"`
	UnitPrice    int       `json:"unitPrice"`
	LineTotal    int       `json:"lineTotal"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// GroupResponse is the body of GET /api/v1/tokens/:token.
type GroupResponse struct {
	GroupID  string      `json:"groupId"`
	Token    string      `json:"token"`
	Lines    []OrderLine `json:"lines"`
	Subtotal int         `json:"subtotal"`
}

// ProgressResponse is the body of GET /api/v1/tokens/:token/progress.
type ProgressResponse struct {
	Token  string `json:"token"`
	Status string `json:"status"`
}

// StatsResponse is the body of GET /api/v1/stats.
type StatsResponse struct {
	CountByStatus map[string]int `json:"countByStatus"`
	Total         int            `json:"total"`
}
