// Package phone normalizes Kenyan phone numbers to +254 form.
package phone

import "strings"

const countryCode = "+254"

var stripper = strings.NewReplacer("-", "", "(", "", ")", "")

// NormalizeKenyan converts local, national and international spellings of a
// Kenyan number to "+254XXXXXXXXX". Input it does not recognize is returned
// with whitespace, dashes and parentheses removed.
func NormalizeKenyan(phone string) string {
	cleaned := stripper.Replace(strings.Join(strings.Fields(phone), ""))

	switch {
	case strings.HasPrefix(cleaned, countryCode):
		return cleaned
	case strings.HasPrefix(cleaned, "254"):
		return "+" + cleaned
	case strings.HasPrefix(cleaned, "0"):
		return countryCode + cleaned[1:]
	case strings.HasPrefix(cleaned, "7"), strings.HasPrefix(cleaned, "1"):
		return countryCode + cleaned
	}
	return cleaned
}
