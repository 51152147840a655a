package denial

import (
	"regexp"
	"sort"
	"strings"
)

// Code is a claim adjustment reason code (CARC) with its group prefix.
type Code struct {
	Key         string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var codes = map[string]Code{
	"CO-11": {
		Key:         "CO-11",
		Name:        "Diagnosis Inconsistent",
		Description: "The diagnosis is inconsistent with the procedure.",
	},
	"CO-16": {
		Key:         "CO-16",
		Name:        "Missing Information",
		Description: "Claim/service lacks information or has submission/billing error(s).",
	},
	"CO-50": {
		Key:         "CO-50",
		Name:        "Not Medically Necessary",
		Description: "These are non-covered services because this is not deemed a 'medical necessity' by the payer.",
	},
	"CO-55": {
		Key:         "CO-55",
		Name:        "Experimental Treatment",
		Description: "Procedure/treatment/drug is deemed experimental/investigational by the payer.",
	},
	"CO-56": {
		Key:         "CO-56",
		Name:        "Not Proven Effective",
		Description: "Procedure/treatment has not been deemed 'proven to be effective' by the payer.",
	},
	"CO-96": {
		Key:         "CO-96",
		Name:        "Non-covered Charge",
		Description: "Non-covered charge(s).",
	},
	"CO-151": {
		Key:         "CO-151",
		Name:        "Frequency Not Supported",
		Description: "Payment adjusted because the payer deems the information submitted does not support this many/frequency of services.",
	},
	"CO-167": {
		Key:         "CO-167",
		Name:        "Diagnosis Not Covered",
		Description: "This (these) diagnosis(es) is (are) not covered.",
	},
	"CO-197": {
		Key:         "CO-197",
		Name:        "Authorization Absent",
		Description: "Precertification/authorization/notification/pre-treatment absent.",
	},
}

// group code, optional separator, reason number: "CO-50", "co 50", "PR50"
var codePattern = regexp.MustCompile(`(?i)\b(CO|PR|OA|PI|CR)[\s-]?(\d{1,3})\b`)

func GetCode(key string) (Code, bool) {
	code, exists := codes[strings.ToUpper(strings.TrimSpace(key))]
	return code, exists
}

// Find returns the known codes mentioned in free-text denial context, in
// order of first appearance and without duplicates.
func Find(text string) []Code {
	var found []Code
	seen := make(map[string]bool)
	for _, m := range codePattern.FindAllStringSubmatch(text, -1) {
		key := strings.ToUpper(m[1]) + "-" + m[2]
		if seen[key] {
			continue
		}
		seen[key] = true
		if code, ok := codes[key]; ok {
			found = append(found, code)
		}
	}
	return found
}

// All lists the catalogue sorted by reason number.
func All() []Code {
	all := make([]Code, 0, len(codes))
	for _, c := range codes {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool {
		return reasonNumber(all[i].Key) < reasonNumber(all[j].Key)
	})
	return all
}

func reasonNumber(key string) int {
	n := 0
	for _, r := range key[strings.IndexByte(key, '-')+1:] {
		n = n*10 + int(r-'0')
	}
	return n
}
