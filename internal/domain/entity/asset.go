package entity

import "time"

// Asset is a tracked inventory item. Quantity is a non-negative counter
// adjusted directly through the quantity patch operation.
type Asset struct {
	ID          string
	ProductName string
	ProductType string // returnable or non-returnable
	Quantity    int64
	CreatedAt   time.Time
}
