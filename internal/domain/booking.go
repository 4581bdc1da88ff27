package domain

import "time"

// Booking is a candidate's reservation of an interview slot. A recipient
// owns at most one booking at a time; rebooking replaces the prior row.
type Booking struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipient_id"`
	SlotID      string    `json:"slot_id"`
	CreatedAt   time.Time `json:"created_at"`
}
