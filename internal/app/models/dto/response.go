package dto

// Envelope is the uniform response wrapper the dashboard client expects.
// Successful fetches carry Result, successful mutations carry Message; both
// legacy spellings are part of the wire format and are kept as-is.
type Envelope struct {
	Status  bool        `json:"Status"`
	Result  interface{} `json:"Result,omitempty"`
	Message string      `json:"Message,omitempty"`
	Error   string      `json:"Error,omitempty"`
}

// OK wraps a payload in a successful envelope
func OK(result interface{}) Envelope {
	return Envelope{Status: true, Result: result}
}

// OKMessage wraps a mutation acknowledgement in a successful envelope
func OKMessage(message string) Envelope {
	return Envelope{Status: true, Message: message}
}

// Fail wraps an error string in a failed envelope
func Fail(errMsg string) Envelope {
	return Envelope{Status: false, Error: errMsg}
}

// InsertResult reports the generated identifier of an inserted row
type InsertResult struct {
	InsertID int64 `json:"insertId"`
}

// LoginResponse is the adminLogin wire format
type LoginResponse struct {
	LoginStatus bool   `json:"loginStatus"`
	Error       string `json:"Error,omitempty"`
}

// TeamCreatedResponse acknowledges team creation with the new id
type TeamCreatedResponse struct {
	Status  bool   `json:"Status"`
	Message string `json:"Message"`
	TeamID  int64  `json:"TeamId"`
}

// MetricsResponse carries the dashboard counters
type MetricsResponse struct {
	Status  bool        `json:"Status"`
	Metrics interface{} `json:"Metrics"`
}

// AdminsResponse lists dashboard accounts
type AdminsResponse struct {
	Status bool        `json:"Status"`
	Admins interface{} `json:"Admins"`
}
