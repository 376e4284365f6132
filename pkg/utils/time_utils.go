// utils/timeutil.go
package utils

import "time"

// Layout for dates embedded in prompt text, e.g. "February 14".
// The day is zero-padded, so March 7 renders as "March 07".
const PromptDateLayout = "January 02"

// FormatPromptDate renders t in the month-day wording the prompts use.
func FormatPromptDate(t time.Time) string {
	return t.Format(PromptDateLayout)
}
