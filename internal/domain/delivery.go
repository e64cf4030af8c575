package domain

import "time"

type DeliveryStatus string

const (
	DeliveryStatusPending  DeliveryStatus = "pending"
	DeliveryStatusAccepted DeliveryStatus = "accepted"
	DeliveryStatusRejected DeliveryStatus = "rejected"
	DeliveryStatusInReview DeliveryStatus = "in-review"
)

func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusAccepted, DeliveryStatusRejected, DeliveryStatusInReview:
		return true
	}
	return false
}

var deliveryTransitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryStatusPending:  {DeliveryStatusAccepted, DeliveryStatusRejected, DeliveryStatusInReview},
	DeliveryStatusInReview: {DeliveryStatusAccepted, DeliveryStatusRejected},
}

func CanTransitionDelivery(from, to DeliveryStatus) bool {
	for _, next := range deliveryTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Delivery records a physical handoff or return event. It references the
// rental by identifier only.
type Delivery struct {
	ID                    string         `json:"id"`
	RentalID              string         `json:"rental_id"`
	TechnicianID          string         `json:"technician_id"`
	Technician            *User          `json:"technician,omitempty"`
	ClientID              string         `json:"client_id"`
	Client                *User          `json:"client,omitempty"`
	ActDocumentURL        string         `json:"actDocumentUrl,omitempty"`
	ClientSignatureURL    string         `json:"clientSignatureUrl,omitempty"`
	VisualObservations    string         `json:"visualObservations,omitempty"`
	TechnicalObservations string         `json:"technicalObservations,omitempty"`
	Status                DeliveryStatus `json:"status"`
	CreatedAt             time.Time      `json:"createdAt"`
}
