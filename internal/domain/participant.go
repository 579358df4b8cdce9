package domain

// Participant is the single managed record, keyed by email. The nested
// participant/work/home request shape maps onto this flat structure.
type Participant struct {
	Email       string  `json:"email"`
	Firstname   string  `json:"firstname"`
	Lastname    string  `json:"lastname"`
	Dob         string  `json:"dob"` // YYYY-MM-DD
	CompanyName string  `json:"companyname"`
	Salary      float64 `json:"salary"`
	Currency    string  `json:"currency"`
	Country     string  `json:"country"`
	City        string  `json:"city"`
}

// ParticipantSummary is the list projection returned by /participants/details.
type ParticipantSummary struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

// ParticipantDetails is the personal facet projection.
type ParticipantDetails struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Dob       string `json:"dob"`
}

// WorkDetails is the work facet projection.
type WorkDetails struct {
	CompanyName string  `json:"companyName"`
	Salary      float64 `json:"salary"`
	Currency    string  `json:"currency"`
}

// HomeDetails is the home facet projection.
type HomeDetails struct {
	Country string `json:"country"`
	City    string `json:"city"`
}
