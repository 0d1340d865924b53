package services

import "github.com/voiceforher/report-intake/internal/dto"

// ValidateReport rejects a submission unless every field is present.
// Presence is deliberately coarse: an age of 0 counts as missing.
func ValidateReport(req *dto.CreateReportRequest) error {
	if req == nil ||
		!ageProvided(req.Age) ||
		!textProvided(req.Location) ||
		!textProvided(req.EthnicGroup) ||
		!textProvided(req.TypeOfAbuse) ||
		!textProvided(req.Description) {
		return ErrValidation
	}
	return nil
}

func ageProvided(age int) bool {
	return age != 0
}

func textProvided(s string) bool {
	return s != ""
}
