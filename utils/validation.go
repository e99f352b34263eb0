package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Romanian phone numbers: +4/0 prefix, mobile or premium ranges.
	phoneRegex = regexp.MustCompile(`^(\+4|0)([237]\d{8}|[89]00\d{6})$`)
	// Romanian IBAN: RO + check digits + bank code + 16 digits.
	ibanRegex  = regexp.MustCompile(`^RO\d{2}[A-Z]{4}\d{16}$`)
	clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(strings.ReplaceAll(phone, " ", ""))
}

func ValidateIBAN(iban string) bool {
	return ibanRegex.MatchString(strings.ToUpper(strings.ReplaceAll(iban, " ", "")))
}

// ValidateClockTime accepts "HH:MM" 24-hour clock strings.
func ValidateClockTime(t string) bool {
	return clockRegex.MatchString(t)
}

// ValidatePassword enforces the minimum account password policy.
func ValidatePassword(password string) []string {
	var problems []string
	if len(password) < 8 {
		problems = append(problems, "password must be at least 8 characters")
	}
	if !strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		problems = append(problems, "password must contain an uppercase letter")
	}
	if !strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz") {
		problems = append(problems, "password must contain a lowercase letter")
	}
	if !strings.ContainsAny(password, "0123456789") {
		problems = append(problems, "password must contain a digit")
	}
	return problems
}
