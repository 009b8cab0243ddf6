package models

// Status is one of the five fixed pipeline buckets. The values are the
// exact column labels used by the record store.
type Status string

const (
	StatusInvitation    Status = "INVITACIÓN"
	StatusAccepted      Status = "ACEPTADO"
	StatusOnHold        Status = "EN ESPERA"
	StatusDocValidation Status = "VALIDACIÓN DOCTOS"
	StatusAcceptedFinal Status = "ACEPTADOS"
)

// DefaultStatus is where new clients start and where records with an
// unrecognized status land.
const DefaultStatus = StatusInvitation

// CompanySentinel is shown when the source has no company field.
const CompanySentinel = "N/A"

// AllStatuses returns every pipeline status in board column order.
func AllStatuses() []Status {
	return []Status{
		StatusInvitation,
		StatusAccepted,
		StatusOnHold,
		StatusDocValidation,
		StatusAcceptedFinal,
	}
}

// Domain types

// RawRecord is the source-agnostic shape every record source adapter
// returns. Status and Company are raw strings and may be empty.
type RawRecord struct {
	ID      string
	Name    string
	Status  string
	Company string
}

// Client is the canonical, normalized client record shown on the board.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Status  Status `json:"status"`
}

// NewClient holds the fields a caller may supply when creating a record.
// The pipeline status is never caller-supplied; adapters force it to
// DefaultStatus on write.
type NewClient struct {
	Name    string
	Email   string
	Company string
}

// Board maps each pipeline status to its clients in source fetch order.
// It is rebuilt in full on every fetch and never patched incrementally.
type Board map[Status][]Client

// Request types

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AddClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
}

type TriggerScrapeRequest struct {
	Criteria string `json:"criteria"`
}

type TriggerInvitationsRequest struct {
	CategoryID string `json:"categoryId"`
	TemplateID string `json:"templateId"`
}

// Webhook payloads

type ScrapePayload struct {
	Criteria string `json:"criteria"`
	Action   string `json:"action"`
}

type InvitationPayload struct {
	CategoryID string `json:"categoryId"`
	TemplateID string `json:"templateId"`
}

// Response types

type BoardColumn struct {
	Status  Status   `json:"status"`
	Clients []Client `json:"clients"`
}

type BoardResponse struct {
	Mode    string        `json:"mode"`
	Warning string        `json:"warning,omitempty"`
	Columns []BoardColumn `json:"columns"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
