package logger

import "strings"

// MaskEmail hides all but the first character of the local part.
// Example: john.doe@gmail.com -> j***@gmail.com
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***@***"
	}

	username := parts[0]
	domain := parts[1]

	if len(username) == 0 {
		return "***@" + domain
	}

	// Keep only first character of username
	return username[:1] + "***@" + domain
}

// Example: 010-1234-5678 -> 010-****-5678
func MaskPhone(phone string) string {
	parts := strings.Split(phone, "-")
	if len(parts) != 3 {
		if len(phone) <= 4 {
			return "****"
		}
		return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
	}
	return parts[0] + "-" + strings.Repeat("*", len(parts[1])) + "-" + parts[2]
}
