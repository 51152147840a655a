package workflow

import (
	"AppealOS/internal/models"
	"AppealOS/internal/session"
)

// View renders st for the API. Text is only exposed once the session is
// unlocked.
func View(st session.State) models.SessionView {
	v := models.SessionView{
		Authenticated: st.Authenticated,
		Phase:         string(st.Phase()),
	}
	if !st.Authenticated {
		return v
	}
	if text, ok := st.Transcript.Text(); ok {
		v.Transcript = &text
	}
	if text, ok := st.Draft.Text(); ok {
		v.Draft = &text
	}
	return v
}
