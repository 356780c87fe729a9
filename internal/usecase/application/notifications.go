package application

import (
	"fmt"

	"jobportal/internal/domain/application"
)

// statusMessage composes the candidate-facing email for a status change.
// Statuses outside the recognized set get the generic fallback.
func statusMessage(status, candidateName, position string) (subject, body string) {
	switch status {
	case application.StatusApplied:
		return "Application received",
			fmt.Sprintf("Hi %s,\n\nYour application for %s has been received. We'll keep you posted.", candidateName, position)
	case application.StatusInterviewing:
		return "You're moving to interviews",
			fmt.Sprintf("Hi %s,\n\nGood news: your application for %s has moved to the interview stage.", candidateName, position)
	case application.StatusAccepted:
		return "Your application was accepted",
			fmt.Sprintf("Hi %s,\n\nCongratulations! Your application for %s has been accepted.", candidateName, position)
	case application.StatusRejected:
		return "Update on your application",
			fmt.Sprintf("Hi %s,\n\nThank you for applying for %s. Unfortunately we won't be moving forward this time.", candidateName, position)
	case application.StatusWithdrawn:
		return "Application withdrawn",
			fmt.Sprintf("Hi %s,\n\nYour application for %s has been withdrawn.", candidateName, position)
	default:
		return "Application status updated",
			fmt.Sprintf("Hi %s,\n\nThe status of your application for %s is now: %s.", candidateName, position, status)
	}
}
