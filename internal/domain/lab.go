package domain

import "time"

// Lab is a fault report: broken equipment, who reported it, and whether the
// lab has repaired it yet. IsRepaired starts false and flips once on
// technician action.
type Lab struct {
	ID           string     `json:"id"`
	EquipmentID  string     `json:"equipment_id"`
	Equipment    *Equipment `json:"equipment,omitempty"`
	ReportedByID string     `json:"reported_by"`
	ReportedBy   *User      `json:"reportedBy,omitempty"`
	ReportedAt   time.Time  `json:"reportedAt"`
	Notes        string     `json:"notes,omitempty"`
	IsRepaired   bool       `json:"isRepaired"`
}
