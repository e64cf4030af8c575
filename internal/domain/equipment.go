package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EquipmentType string

const (
	EquipmentTypeComputer EquipmentType = "computer"
	EquipmentTypePrinter  EquipmentType = "printer"
	EquipmentTypePhone    EquipmentType = "phone"
)

func (t EquipmentType) Valid() bool {
	switch t {
	case EquipmentTypeComputer, EquipmentTypePrinter, EquipmentTypePhone:
		return true
	}
	return false
}

// EquipmentStatus is a derived read-only projection, never stored.
type EquipmentStatus string

const (
	EquipmentStatusAvailable  EquipmentStatus = "available"
	EquipmentStatusOutOfStock EquipmentStatus = "out-of-stock"
	EquipmentStatusInRepair   EquipmentStatus = "in-repair"
)

// Spec is the variant-specific technical sheet of an equipment line. Exactly
// one concrete spec exists per equipment, selected by its type, so multiple
// specs can never be set at once.
type Spec interface {
	SpecType() EquipmentType
}

type ComputerSpec struct {
	ID        string `json:"id"`
	Processor string `json:"processor"`
	RAM       string `json:"ram"`
	Storage   string `json:"storage"`
	OS        string `json:"os"`
}

func (*ComputerSpec) SpecType() EquipmentType { return EquipmentTypeComputer }

type PrinterSpec struct {
	ID              string `json:"id"`
	PrintTechnology string `json:"printTechnology"`
	Resolution      string `json:"resolution"`
	Connectivity    string `json:"connectivity"`
}

func (*PrinterSpec) SpecType() EquipmentType { return EquipmentTypePrinter }

type PhoneSpec struct {
	ID         string `json:"id"`
	ScreenSize string `json:"screenSize"`
	Battery    string `json:"battery"`
	Camera     string `json:"camera"`
	OS         string `json:"os"`
}

func (*PhoneSpec) SpecType() EquipmentType { return EquipmentTypePhone }

type Equipment struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           EquipmentType   `json:"type"`
	Brand          string          `json:"brand"`
	Model          string          `json:"model"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Stock          int32           `json:"stock"`
	WarrantyPeriod string          `json:"warrantyPeriod"`
	ReleaseDate    *time.Time      `json:"releaseDate,omitempty"`
	Image          string          `json:"image,omitempty"`
	IsInRepair     bool            `json:"isInRepair"`
	Spec           Spec            `json:"-"`
}

// Status projects availability: repair wins over stock.
func (e *Equipment) Status() EquipmentStatus {
	if e.IsInRepair {
		return EquipmentStatusInRepair
	}
	if e.Stock < 1 {
		return EquipmentStatusOutOfStock
	}
	return EquipmentStatusAvailable
}
