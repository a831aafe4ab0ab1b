package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Result field value kinds.
const (
	FieldTypeNumber = "number"
	FieldTypeText   = "text"
)

// ResultField describes one value a completed test reports, in the order
// the lab enters them.
type ResultField struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Unit string `json:"unit"`
}

// Test is a lab test offered by the laboratory. Names are bilingual because
// requisition forms and printed reports carry both.
type Test struct {
	ID              uuid.UUID     `json:"id"`
	NameAr          string        `json:"name_ar"`
	NameEn          string        `json:"name_en"`
	Price           float64       `json:"price"`
	TurnaroundHours int           `json:"turnaround_hours"`
	ResultFields    []ResultField `json:"result_fields"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// Validate checks the fields a test must carry before it can be stored.
func (t *Test) Validate() error {
	if t.NameAr == "" || t.NameEn == "" {
		return ErrNameRequired
	}
	if t.Price < 0 {
		return ErrNegativePrice
	}
	if t.TurnaroundHours < 0 {
		return ErrNegativeTurnaround
	}
	for _, f := range t.ResultFields {
		if f.Name == "" {
			return ErrFieldNameRequired
		}
		if f.Type != FieldTypeNumber && f.Type != FieldTypeText {
			return ErrInvalidFieldType
		}
	}
	return nil
}
