package models

// Offer represents a single microfinance loan offer in the catalog.
// ID is assigned by the store on insertion and is absent on create requests.
type Offer struct {
	ID           string   `json:"id,omitempty" bson:"-"`
	Name         string   `json:"name" bson:"name"`
	APR          float64  `json:"apr" bson:"apr"`                     // annual percentage rate, %
	MinAmount    int64    `json:"min_amount" bson:"min_amount"`       // minimum loan amount
	MaxAmount    int64    `json:"max_amount" bson:"max_amount"`       // maximum loan amount
	TermMinDays  int      `json:"term_min_days" bson:"term_min_days"` // minimum term in days
	TermMaxDays  int      `json:"term_max_days" bson:"term_max_days"` // maximum term in days
	ApprovalRate *float64 `json:"approval_rate,omitempty" bson:"approval_rate,omitempty"` // estimated approval rate, %
	Rating       *float64 `json:"rating,omitempty" bson:"rating,omitempty"`               // user rating 0-5
	Description  *string  `json:"description,omitempty" bson:"description,omitempty"`
	Link         *string  `json:"link,omitempty" bson:"link,omitempty"` // application URL
	Tags         []string `json:"tags" bson:"tags"`                     // e.g. "быстро", "без справок"
}

// OfferFilter holds the optional listing query parameters. Nil fields are
// absent and contribute no predicate.
type OfferFilter struct {
	Query     *string // substring of name (case-insensitive) or exact tag
	MaxAPR    *float64
	MinAmount *int64 // offer's max_amount must be >= this
	MaxAmount *int64 // offer's min_amount must be <= this
	MinRating *float64
}

// IsZero reports whether no filter parameter is set.
func (f OfferFilter) IsZero() bool {
	return f.Query == nil && f.MaxAPR == nil && f.MinAmount == nil &&
		f.MaxAmount == nil && f.MinRating == nil
}

// CreateOfferResponse is the response for a successful offer creation.
type CreateOfferResponse struct {
	ID string `json:"id"`
}

// SeedResponse is the response for the seed endpoint.
type SeedResponse struct {
	Status   string `json:"status"`
	Inserted int    `json:"inserted"`
	Message  string `json:"message,omitempty"`
}

// MessageResponse is the response for the root endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusReport is the diagnostic endpoint payload. All fields are rendered
// status strings; the endpoint never fails.
type StatusReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}
