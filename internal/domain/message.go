package domain

import "strings"

// OTPPlaceholder is replaced by the generated code inside a custom template.
const OTPPlaceholder = "{OTP}"

// DefaultOTPTemplate is used when the caller does not supply customMessage.
const DefaultOTPTemplate = "Your verification code is " + OTPPlaceholder

// SendOTPRequest is the inbound payload for POST /api/send-otp.
type SendOTPRequest struct {
	PhoneNumbers  []string `json:"phoneNumbers"`
	CustomMessage string   `json:"customMessage,omitempty"`
}

func (r *SendOTPRequest) Validate() error {
	if len(r.PhoneNumbers) == 0 {
		return ErrInvalidDestinations
	}
	return nil
}

// SendSMSRequest is the inbound payload for POST /api/send-setup-sms.
type SendSMSRequest struct {
	PhoneNumbers []string `json:"phoneNumbers"`
	Message      string   `json:"message"`
}

// Validate checks destinations before the message so each failure keeps
// its own error.
func (r *SendSMSRequest) Validate() error {
	if len(r.PhoneNumbers) == 0 {
		return ErrInvalidDestinations
	}
	if r.Message == "" {
		return ErrInvalidMessage
	}
	return nil
}

// OutboundMessage is what gets relayed to the SMS gateway.
type OutboundMessage struct {
	Text         string
	PhoneNumbers []string
}

// BuildOTPMessage substitutes code for the first OTPPlaceholder in template.
// Later occurrences are left as-is. An empty template falls back to
// DefaultOTPTemplate.
func BuildOTPMessage(template, code string) string {
	if template == "" {
		template = DefaultOTPTemplate
	}
	return strings.Replace(template, OTPPlaceholder, code, 1)
}
