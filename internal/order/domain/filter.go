package domain

import "time"

// Filter narrows the order list fetch. Zero values mean "no constraint".
type Filter struct {
	From         *time.Time
	To           *time.Time
	CustomerName string
	Statuses     []Status
}
