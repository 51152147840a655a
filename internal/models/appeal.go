package models

import "time"

// Appeal is one persisted appeal letter. Rows are never updated or deleted.
type Appeal struct {
	ID          int64     `json:"id"`
	PatientName string    `json:"patient_name"`
	FinalLetter string    `json:"final_letter"`
	CreatedAt   time.Time `json:"created_at"`
}
