package contact

import (
	"github.com/dmitrymomot/cardkit/handler"
	"github.com/dmitrymomot/cardkit/pkg/sanitizer"
	"github.com/dmitrymomot/cardkit/pkg/validator"
)

const (
	TopicContact = "contact"
	TopicSales   = "sales"
	TopicBilling = "billing"

	maxNameLen    = 100
	maxCompanyLen = 200
	maxMessageLen = 5000
)

var topics = []string{TopicContact, TopicSales, TopicBilling}

var (
	cleanLine    = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine)
	cleanMessage = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.NormalizeNewlines)
)

// Request is a form submission.
type Request struct {
	Name         string `json:"name" form:"name"`
	Email        string `json:"email" form:"email"`
	Company      string `json:"company" form:"company"`
	Message      string `json:"message" form:"message"`
	Topic        string `json:"topic" form:"topic"`
	CaptchaToken string `json:"captcha_token" form:"cf-turnstile-response"`
}

// Normalize cleans the fields in place. Name, company and topic lose line
// breaks since they end up in the email subject.
func (r *Request) Normalize() {
	r.Name = cleanLine(r.Name)
	r.Company = cleanLine(r.Company)
	r.Topic = cleanLine(r.Topic)
	r.Email = sanitizer.NormalizeEmail(r.Email)
	r.Message = cleanMessage(r.Message)
	r.CaptchaToken = sanitizer.Trim(r.CaptchaToken)
	if r.Topic == "" {
		r.Topic = TopicContact
	}
}

// Validate normalizes the request and reports field errors as a
// handler.ValidationError.
func (r *Request) Validate() error {
	r.Normalize()
	err := validator.Apply(
		validator.Required("name", r.Name),
		validator.MaxLen("name", r.Name, maxNameLen),
		validator.Required("email", r.Email),
		validator.When(r.Email != "", validator.ValidEmail("email", r.Email)),
		validator.MaxLen("company", r.Company, maxCompanyLen),
		validator.Required("message", r.Message),
		validator.MaxLen("message", r.Message, maxMessageLen),
		validator.OneOf("topic", r.Topic, topics),
	)
	return handler.FromValidator(err)
}
