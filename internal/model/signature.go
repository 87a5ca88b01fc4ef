package model

import "time"

// Signature is a digital signature image attached to an occurrence. The
// payload is stored as the data-URI string the client submitted.
type Signature struct {
	ID           string    `json:"id"`
	OccurrenceID string    `json:"occurrenceId"`
	Image        string    `json:"assinatura"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SignatureWithOccurrence joins the signature with a summary of the
// occurrence it is bound to.
type SignatureWithOccurrence struct {
	Signature
	Occurrence OccurrenceSummary `json:"occurrence"`
}
