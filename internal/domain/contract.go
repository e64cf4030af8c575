package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract is the billing record derived 1:1 from a rental contract at
// request time. It is immutable after creation; monthly value snapshots the
// equipment price so later catalog edits never change existing billing.
type Contract struct {
	ContractID     string          `json:"contract_id"`
	ContractNumber string          `json:"contract_number"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	MonthlyValue   decimal.Decimal `json:"monthly_value"`
	UserID         string          `json:"user_id"`
	User           *User           `json:"user,omitempty"`
	RentalID       string          `json:"rental_id"`
	Rental         *RentalContract `json:"rental,omitempty"`
}

// ContractDetail is the projection returned to callers instead of the raw
// entity: owner identity plus a rental summary.
type ContractDetail struct {
	ContractID     string          `json:"contract_id"`
	ContractNumber string          `json:"contract_number"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	MonthlyValue   decimal.Decimal `json:"monthly_value"`
	User           ContractOwner   `json:"user"`
	Rental         RentalSummary   `json:"rental"`
}

type ContractOwner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RentalSummary struct {
	ID            string `json:"id"`
	EquipmentName string `json:"equipmentName"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
}
