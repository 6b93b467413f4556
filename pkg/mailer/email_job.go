package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Bodies are rendered before publishing so the worker stays a dumb sender.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}
