package models

type DashboardStats struct {
	PendingEvents  int   `json:"pending_events" db:"pending_events"`
	ApprovedEvents int   `json:"approved_events" db:"approved_events"`
	Users          int   `json:"users" db:"users"`
	PaidOrders     int   `json:"paid_orders" db:"paid_orders"`
	TicketsSold    int   `json:"tickets_sold" db:"tickets_sold"`
	RevenueCents   int64 `json:"revenue_cents" db:"revenue_cents"`
}
