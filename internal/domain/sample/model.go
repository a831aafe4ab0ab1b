package sample

import (
	"time"

	"github.com/google/uuid"
)

// Sample statuses. StatusInProgress is schema-declared but reserved: no
// operation moves a sample into or out of it. Completion and cancellation
// only ever leave StatusRegistered, and completed/cancelled are terminal.
const (
	StatusRegistered = "registered"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// NotesField is the key under which free-text notes travel inside result
// payloads, so they survive round trips with the measured values.
const NotesField = "_notes"

var validStatuses = map[string]struct{}{
	StatusRegistered: {},
	StatusInProgress: {},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// ValidStatus reports whether s is a known sample status.
func ValidStatus(s string) bool {
	_, ok := validStatuses[s]
	return ok
}

// Sample is a patient specimen moving through the lab. TestName is a read
// side projection joined from the catalog and is never written back.
type Sample struct {
	ID             uuid.UUID         `json:"id"`
	PatientName    string            `json:"patient_name"`
	NationalID     *string           `json:"national_id,omitempty"`
	TestTypeID     uuid.UUID         `json:"test_type_id"`
	TestName       string            `json:"test_name,omitempty"`
	CollectionDate time.Time         `json:"collection_date"`
	Status         string            `json:"status"`
	RegisteredBy   *uuid.UUID        `json:"registered_by,omitempty"`
	CompletedBy    *uuid.UUID        `json:"completed_by,omitempty"`
	ResultData     map[string]string `json:"result_data,omitempty"`
	ResultDate     *time.Time        `json:"result_date,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// PendingSample is the slim projection shown on the result-entry worklist.
type PendingSample struct {
	ID             uuid.UUID `json:"id"`
	PatientName    string    `json:"patient_name"`
	CollectionDate time.Time `json:"collection_date"`
	TestTypeID     uuid.UUID `json:"test_type_id"`
	TestName       string    `json:"test_name"`
}

// SearchFilter narrows a sample search. At least one field must be set.
type SearchFilter struct {
	PatientName string
	NationalID  string
	SampleID    *uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
}

// Empty reports whether no filter criteria are present.
func (f SearchFilter) Empty() bool {
	return f.PatientName == "" && f.NationalID == "" && f.SampleID == nil &&
		f.StartDate == nil && f.EndDate == nil
}
