package model

// ReservationStatus is the lifecycle state of a reservation. Only
// StatusPending is produced by the current flows; Confirmed and Cancelled
// exist as an extension point for a future status-transition surface.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "Pandan"
	StatusConfirmed ReservationStatus = "Konfime"
	StatusCancelled ReservationStatus = "Anile"
)

// Reservation records a customer's hold on a product. Product is a full
// value snapshot taken at reservation time; later catalogue edits do not
// affect past reservations.
type Reservation struct {
	ID      string            `json:"id"`
	Product Product           `json:"product"`
	Date    string            `json:"date"`
	Status  ReservationStatus `json:"status"`
}
