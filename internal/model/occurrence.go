package model

import "time"

// Occurrence priorities as recorded on the incident report.
const (
	PriorityLow      = "BAIXA"
	PriorityMedium   = "MEDIA"
	PriorityHigh     = "ALTA"
	PriorityCritical = "CRITICA"
)

// Occurrence is a fire-department incident report filed by a user.
type Occurrence struct {
	ID          string    `json:"id"`
	Type        string    `json:"tipo"`
	Address     string    `json:"endereco"`
	Priority    string    `json:"prioridade"`
	Description string    `json:"descricao"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// OccurrenceWithReporter joins the occurrence with a summary of the user who
// filed it, matching the representation returned by every occurrence endpoint.
type OccurrenceWithReporter struct {
	Occurrence
	Reporter UserSummary `json:"user"`
}

// OccurrenceSummary is the nested view embedded in signature responses.
type OccurrenceSummary struct {
	ID       string `json:"id"`
	Type     string `json:"tipo"`
	Address  string `json:"endereco"`
	Priority string `json:"prioridade"`
}

func (o Occurrence) Summary() OccurrenceSummary {
	return OccurrenceSummary{
		ID:       o.ID,
		Type:     o.Type,
		Address:  o.Address,
		Priority: o.Priority,
	}
}
