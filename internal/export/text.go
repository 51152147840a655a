package export

import (
	"mime"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

const fallbackName = "appeal"

// Latin1 converts s to the single-byte ISO-8859-1 text the core PDF fonts
// draw. Anything without a printable Latin-1 form becomes '?'.
func Latin1(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' {
			out = append(out, byte(r))
			continue
		}
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok || b < 0x20 || (b >= 0x7f && b < 0xa0) {
			b = '?'
		}
		out = append(out, b)
	}
	return string(out)
}

// FileName derives the download name from the patient reference.
func FileName(patientName string) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || unicode.IsControl(r) {
			return -1
		}
		return r
	}, patientName)

	name = strings.TrimSpace(name)
	if name == "" || strings.Trim(name, ".") == "" {
		name = fallbackName
	}
	return name + ".pdf"
}

// ContentDisposition is the attachment header for a download named filename.
func ContentDisposition(filename string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": filename})
}
