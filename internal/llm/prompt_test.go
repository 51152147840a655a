package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildAppealPrompt(t *testing.T) {
	in := AppealInput{
		PatientName:   "John Doe",
		DenialContext: "Denied under CO-50",
		Notes:         "Patient has chronic pain.",
	}
	prompt := BuildAppealPrompt(in)

	assert.True(t, strings.HasPrefix(prompt, "Write a formal medical appeal letter.\n"))
	assert.Contains(t, prompt, "PATIENT: John Doe\n")
	assert.Contains(t, prompt, "CONTEXT: Denied under CO-50\n")
	assert.Contains(t, prompt, "NOTES: Patient has chronic pain.\n")
	assert.Contains(t, prompt, "DENIAL REFERENCE: CO-50")
	assert.Contains(t, prompt, "- Professional, firm tone.\n")
	assert.Contains(t, prompt, "- Cite the 'Medical Necessity' based on the notes.\n")
	assert.Contains(t, prompt, "- Format: Header, Argument, Conclusion.\n")
	assert.Contains(t, prompt, "- Address the denial directly")

	assert.Equal(t, prompt, BuildAppealPrompt(in))
}

func TestBuildAppealPromptWithoutContext(t *testing.T) {
	prompt := BuildAppealPrompt(AppealInput{PatientName: "Jane", Notes: "n"})

	assert.Contains(t, prompt, "CONTEXT: \n")
	assert.NotContains(t, prompt, "DENIAL REFERENCE")
	assert.NotContains(t, prompt, "Address the denial directly")
}

func TestBuildAppealPromptKeepsInputVerbatim(t *testing.T) {
	notes := "line one\nline two: {braces} %d"
	prompt := BuildAppealPrompt(AppealInput{PatientName: "A", Notes: notes})
	assert.Contains(t, prompt, "NOTES: "+notes+"\n")
}
