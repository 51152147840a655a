package llm

import (
	"fmt"
	"strings"

	"AppealOS/internal/denial"
)

// AppealInput is everything the drafting prompt embeds. Fields are inserted
// verbatim.
type AppealInput struct {
	PatientName   string
	DenialContext string
	Notes         string
}

// BuildAppealPrompt renders the fixed drafting template. The same input always
// yields the same prompt.
func BuildAppealPrompt(in AppealInput) string {
	var b strings.Builder

	b.WriteString("Write a formal medical appeal letter.\n")
	fmt.Fprintf(&b, "PATIENT: %s\n", in.PatientName)
	fmt.Fprintf(&b, "CONTEXT: %s\n", in.DenialContext)
	fmt.Fprintf(&b, "NOTES: %s\n", in.Notes)
	for _, code := range denial.Find(in.DenialContext) {
		fmt.Fprintf(&b, "DENIAL REFERENCE: %s (%s): %s\n", code.Key, code.Name, code.Description)
	}

	b.WriteString("\nINSTRUCTIONS:\n")
	b.WriteString("- Professional, firm tone.\n")
	b.WriteString("- Cite the 'Medical Necessity' based on the notes.\n")
	b.WriteString("- Format: Header, Argument, Conclusion.\n")
	if strings.TrimSpace(in.DenialContext) != "" {
		b.WriteString("- Address the denial directly and cite the policy context above where it supports the argument.\n")
	}

	return b.String()
}
