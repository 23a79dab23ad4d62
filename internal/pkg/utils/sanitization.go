package utils

import (
	"strings"

	"epic-connect-service/internal/pkg/dto/requests"
)

// SanitizeCreateEpicPatientRequest normalizes the free-text fields before
// validation: gender comparison is case-insensitive and the identifier store
// is keyed on lowercased email.
func SanitizeCreateEpicPatientRequest(request *requests.CreateEpicPatientRequest) {
	request.Name = strings.TrimSpace(request.Name)
	request.DOB = strings.TrimSpace(request.DOB)
	request.Gender = strings.ToLower(strings.TrimSpace(request.Gender))
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}
