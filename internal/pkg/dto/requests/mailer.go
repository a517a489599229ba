package requests

type EmailPayload struct {
	Subject string   `json:"subject"`
	From    string   `json:"from"`
	To      []string `json:"to"`
	Body    string   `json:"body"`
	HTML    bool     `json:"html"`
}
