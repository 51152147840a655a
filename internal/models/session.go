package models

// SessionView is the dashboard's view of one session. Transcript and Draft
// are null until the session reaches that step.
type SessionView struct {
	Authenticated bool    `json:"authenticated" example:"true"`
	Phase         string  `json:"phase" example:"has_draft" enums:"locked,no_transcript,has_transcript,has_draft"`
	Transcript    *string `json:"transcript" example:"Patient has chronic pain."`
	Draft         *string `json:"draft"`
}
