package models

import "time"

// WizardStep identifies a step of the booking wizard.
type WizardStep string

const (
	StepServiceSelection  WizardStep = "service_selection"
	StepDateTimeSelection WizardStep = "datetime_selection"
	StepContactInfo       WizardStep = "contact_info"
	StepReview            WizardStep = "review"
	StepConfirmed         WizardStep = "confirmed"
)

// wizardOrder is the linear forward order of the wizard.
var wizardOrder = []WizardStep{
	StepServiceSelection,
	StepDateTimeSelection,
	StepContactInfo,
	StepReview,
	StepConfirmed,
}

// Next returns the step after s, or s itself when s is terminal.
func (s WizardStep) Next() WizardStep {
	for i, step := range wizardOrder {
		if step == s && i+1 < len(wizardOrder) {
			return wizardOrder[i+1]
		}
	}
	return s
}

// Prev returns the step before s, or s itself when s is the first step.
func (s WizardStep) Prev() WizardStep {
	for i, step := range wizardOrder {
		if step == s && i > 0 {
			return wizardOrder[i-1]
		}
	}
	return s
}

// BookingSession is one browsing session's wizard state, cached with a TTL.
type BookingSession struct {
	ID        string       `json:"id"`
	Step      WizardStep   `json:"step"`
	Draft     BookingDraft `json:"draft"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
