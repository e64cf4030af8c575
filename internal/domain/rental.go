package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusApproved  RentalStatus = "approved"
	RentalStatusRejected  RentalStatus = "rejected"
	RentalStatusCompleted RentalStatus = "completed"
)

func (s RentalStatus) Valid() bool {
	switch s {
	case RentalStatusPending, RentalStatusApproved, RentalStatusRejected, RentalStatusCompleted:
		return true
	}
	return false
}

// rentalTransitions is the allowed status machine. Rejection stays reachable
// from approved so the stock compensation path covers every pre-terminal
// state; rejected and completed are terminal.
var rentalTransitions = map[RentalStatus][]RentalStatus{
	RentalStatusPending:  {RentalStatusApproved, RentalStatusRejected},
	RentalStatusApproved: {RentalStatusCompleted, RentalStatusRejected},
}

func CanTransitionRental(from, to RentalStatus) bool {
	for _, next := range rentalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type RentalContract struct {
	ID            string       `json:"id"`
	ClientID      string       `json:"client_id"`
	Client        *User        `json:"client,omitempty"`
	TechnicianID  *string      `json:"technician_id,omitempty"`
	EquipmentID   string       `json:"equipment_id"`
	Equipment     *Equipment   `json:"equipment,omitempty"`
	StartDate     time.Time    `json:"startDate"`
	EndDate       time.Time    `json:"endDate"`
	Status        RentalStatus `json:"status"`
	IsDisabled    bool         `json:"isDisabled"`
	ApprovedBy    *string      `json:"approvedBy,omitempty"`
	ApprovalDate  *time.Time   `json:"approvalDate,omitempty"`
	IsDelivered   bool         `json:"isDelivered"`
	DeliveryNotes string       `json:"deliveryNotes,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// RentalFilter narrows FindAll. A nil date leaves that bound open; the lower
// bound is inclusive.
type RentalFilter struct {
	Status    RentalStatus
	StartDate *time.Time
	EndDate   *time.Time
}

type RentalMetrics struct {
	Active  int32           `json:"active"`
	Pending int32           `json:"pending"`
	Revenue decimal.Decimal `json:"revenue"`
}
