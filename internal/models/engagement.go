package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Defaults applied to engagement events that omit the campaign fields
const (
	DefaultBillNumber = "SB 36"
	DefaultStance     = "oppose"
)

// ErrEventNotObject is returned when the engagement payload is valid JSON
// but not an object (null, array, scalar)
var ErrEventNotObject = errors.New("engagement payload must be a JSON object")

// EngagementEvent is a client-submitted record of a user action such as
// contacting a legislator
type EngagementEvent struct {
	District          District `json:"district"`
	BillNumber        string   `json:"bill_number"`
	Stance            string   `json:"stance"`
	TemplateName      *string  `json:"template_name"`
	ActionType        *string  `json:"action_type"`
	LegislatorName    *string  `json:"legislator_name"`
	LegislatorChamber *string  `json:"legislator_chamber"`
	ContactMode       *string  `json:"contact_mode"`
	Agency            *string  `json:"agency"`
}

// EngagementRow is the row written to the engagement table. Optional
// columns that were not supplied are omitted so the store writes NULL.
type EngagementRow struct {
	District          int     `json:"district" db:"district"`
	BillNumber        string  `json:"bill_number" db:"bill_number"`
	Stance            string  `json:"stance" db:"stance"`
	TemplateName      *string `json:"template_name,omitempty" db:"template_name"`
	ActionType        *string `json:"action_type,omitempty" db:"action_type"`
	LegislatorName    *string `json:"legislator_name,omitempty" db:"legislator_name"`
	LegislatorChamber *string `json:"legislator_chamber,omitempty" db:"legislator_chamber"`
	ContactMode       *string `json:"contact_mode,omitempty" db:"contact_mode"`
	Agency            *string `json:"agency,omitempty" db:"agency"`
}

// ParseEngagementEvent decodes a request body into an EngagementEvent
func ParseEngagementEvent(body []byte) (*EngagementEvent, error) {
	trimmed := bytes.TrimSpace(body)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrEventNotObject
	}

	var event EngagementEvent
	if err := json.Unmarshal(trimmed, &event); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "" {
			return nil, ErrEventNotObject
		}
		return nil, err
	}

	return &event, nil
}

// ToRow builds the table row, substituting defaults for district,
// bill_number and stance
func (e *EngagementEvent) ToRow() *EngagementRow {
	row := &EngagementRow{
		District:          int(e.District),
		BillNumber:        e.BillNumber,
		Stance:            e.Stance,
		TemplateName:      e.TemplateName,
		ActionType:        e.ActionType,
		LegislatorName:    e.LegislatorName,
		LegislatorChamber: e.LegislatorChamber,
		ContactMode:       e.ContactMode,
		Agency:            e.Agency,
	}

	if row.BillNumber == "" {
		row.BillNumber = DefaultBillNumber
	}
	if row.Stance == "" {
		row.Stance = DefaultStance
	}

	return row
}

// Columns returns the column names in insert order
func (r *EngagementRow) Columns() []string {
	return []string{
		"district",
		"bill_number",
		"stance",
		"template_name",
		"action_type",
		"legislator_name",
		"legislator_chamber",
		"contact_mode",
		"agency",
	}
}

// Values returns the column values in the order of Columns
func (r *EngagementRow) Values() []interface{} {
	return []interface{}{
		r.District,
		r.BillNumber,
		r.Stance,
		r.TemplateName,
		r.ActionType,
		r.LegislatorName,
		r.LegislatorChamber,
		r.ContactMode,
		r.Agency,
	}
}
