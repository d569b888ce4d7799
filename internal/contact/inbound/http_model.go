package inbound

type sendEmailRequest struct {
	To       string `json:"to"`
	UserName string `json:"user_name"`
	SentBy   string `json:"sent_by"`
	Message  string `json:"message"`
	From     string `json:"from"`
}

type sendEmailResponse struct {
	To     string `json:"to"`
	SentBy string `json:"sent_by"`
}

// Message implements the router success message hook.
func (sendEmailResponse) Message() string {
	return "Email sent successfully"
}
