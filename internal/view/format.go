package view

import "time"

// dateLayouts are the shapes the backend emits for date-time fields:
// second-precision ISO on appointments, RFC3339 with or without a
// zone on audit timestamps.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// FormatDate renders a backend date-time for display.  A missing
// value yields the literal "N/A"; a value that parses as none of the
// known layouts is shown verbatim rather than dropped.
func FormatDate(s string) string {
	if s == "" {
		return "N/A"
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2, 2006 15:04:05")
		}
	}
	return s
}

// orNA substitutes "N/A" for empty optional fields such as diagnosis
// and email.
func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
