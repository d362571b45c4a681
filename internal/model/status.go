package model

// Record statuses shared across tables.
const (
	StatusActive   = 1
	StatusInactive = 2
	StatusDeleted  = 3
)
