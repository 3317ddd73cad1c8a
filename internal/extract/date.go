package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	numberPattern    = regexp.MustCompile(`\d+`)
	monthNamePattern = regexp.MustCompile(`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\b`)
)

var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// NormalizeBirthDate converts a raw infobox birth-date value to ISO
// YYYY-MM-DD, or empty when no full date can be recovered. Partial dates
// (year only, year+month) are refused rather than guessed.
//
// The value must carry a 4-digit year plus a recoverable month and day:
// the month is a textual month name anywhere in the value, or else the
// first 1-2 digit number after the year; the day is the first remaining
// 1-2 digit number in order of appearance. This accepts the common
// "12 May 1920 (age ...)" and template forms like {{birth date|1920|5|12}}.
func NormalizeBirthDate(raw string) string {
	type token struct {
		val   int
		start int
	}

	year := 0
	yearEnd := -1

	var small []token

	for _, loc := range numberPattern.FindAllStringIndex(raw, -1) {
		digits := raw[loc[0]:loc[1]]

		switch len(digits) {
		case 4:
			if year == 0 {
				year, _ = strconv.Atoi(digits)
				yearEnd = loc[1]
			}
		case 1, 2:
			n, _ := strconv.Atoi(digits)
			small = append(small, token{val: n, start: loc[0]})
		}
	}

	if year == 0 {
		return ""
	}

	month := 0
	monthIdx := -1

	if m := monthNamePattern.FindString(raw); m != "" {
		month = monthNumbers[strings.ToLower(m)[:3]]
	} else {
		for i, t := range small {
			if t.start >= yearEnd {
				month = t.val
				monthIdx = i

				break
			}
		}
	}

	day := 0

	for i, t := range small {
		if i != monthIdx {
			day = t.val

			break
		}
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
