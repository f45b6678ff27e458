package models

// ChannelKind is the tagged variant over a payment method's required-field
// contract. Exactly one kind applies per descriptor; the orchestrator
// dispatches on it exhaustively so adding a channel is a compile-time
// checked extension.
type ChannelKind string

const (
	ChannelCard     ChannelKind = "card"      // requires full card details
	ChannelPayPal   ChannelKind = "paypal"    // requires the guest's PayPal email
	ChannelLinkOnly ChannelKind = "link-only" // requires only the guest email
	ChannelBasic    ChannelKind = "basic"     // requires only name + email, no external call
)

// PaymentMethod describes a supported payment channel. The catalogue is
// immutable for the process lifetime.
type PaymentMethod struct {
	ID         string      `json:"id"`
	Label      string      `json:"label"`
	Provider   string      `json:"provider"`
	Processing string      `json:"processing"`
	Kind       ChannelKind `json:"kind"`
	Features   []string    `json:"features"`
}

// EnrollmentStatus is the lifecycle status of a payment enrollment.
type EnrollmentStatus string

const (
	StatusRequiresConfirmation   EnrollmentStatus = "requires-confirmation"
	StatusRequiresAuthentication EnrollmentStatus = "requires-authentication"
	StatusAwaitingApproval       EnrollmentStatus = "awaiting-approval"
	StatusAwaitingVerification   EnrollmentStatus = "awaiting-verification"
)

// ProfileRequest carries the guest-supplied fields of one enrollment submission.
type ProfileRequest struct {
	GuestName      string `json:"guestName"`
	Email          string `json:"email"`
	MethodID       string `json:"methodId"`
	CardNumber     string `json:"cardNumber,omitempty"`
	ExpiryMonth    string `json:"expiryMonth,omitempty"`
	ExpiryYear     string `json:"expiryYear,omitempty"`
	CVC            string `json:"cvc,omitempty"`
	PaypalEmail    string `json:"paypalEmail,omitempty"`
	MembershipPlan string `json:"membershipPlan,omitempty"`
	SaveAsDefault  bool   `json:"saveAsDefault"`
}

// PaymentEnrollment is the normalized result of a successful submission.
// Constructed once, never mutated, not persisted beyond the session.
type PaymentEnrollment struct {
	ID                string           `json:"id"` // methodId + creation timestamp
	GuestName         string           `json:"guestName"`
	Email             string           `json:"email"`
	MethodID          string           `json:"methodId"`
	Provider          string           `json:"provider"`
	MembershipPlan    string           `json:"membershipPlan,omitempty"`
	CardLast4         string           `json:"cardLast4,omitempty"`
	PaypalEmail       string           `json:"paypalEmail,omitempty"`
	SaveAsDefault     bool             `json:"saveAsDefault"`
	Status            EnrollmentStatus `json:"status"`
	ProviderReference string           `json:"providerReference"`
	NextAction        string           `json:"nextAction,omitempty"`
}
