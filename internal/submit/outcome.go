package submit

import "github.com/muurk/authdeck/internal/form"

// Action is the form being submitted.
type Action int

const (
	Login Action = iota
	Register
)

func (a Action) String() string {
	switch a {
	case Login:
		return "login"
	case Register:
		return "register"
	default:
		return "unknown"
	}
}

// Required returns the fields that must be non-empty before a request is sent.
func (a Action) Required() []form.FieldID {
	if a == Register {
		return []form.FieldID{form.FieldUsername, form.FieldEmail, form.FieldPassword}
	}
	return []form.FieldID{form.FieldEmail, form.FieldPassword}
}

func (a Action) missingMessage() string {
	if a == Register {
		return MsgRegisterMissing
	}
	return MsgLoginMissing
}

func (a Action) failedMessage() string {
	if a == Register {
		return MsgRegisterFailed
	}
	return MsgLoginFailed
}

// OutcomeKind tags an Outcome.
type OutcomeKind int

const (
	// OutcomeSuccess means the server answered 2xx.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeInvalid means a required field was empty; nothing was sent.
	OutcomeInvalid
	// OutcomeRejected means the server answered outside 2xx.
	OutcomeRejected
	// OutcomeNetworkError means the request failed or the reply was not JSON.
	OutcomeNetworkError
	// OutcomeBusy means another submit was still in flight; nothing was sent.
	OutcomeBusy
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeRejected:
		return "rejected"
	case OutcomeNetworkError:
		return "network_error"
	case OutcomeBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// Outcome is the result of one submit.
type Outcome struct {
	Kind   OutcomeKind
	Action Action

	// Status is the HTTP status code, when a reply arrived.
	Status int

	// Message is what the user is shown. Empty for success and busy.
	Message string

	// Payload is the decoded reply body.
	Payload map[string]any

	// Err is the transport or parse failure behind OutcomeNetworkError.
	Err error
}

// Failed reports whether the submission did not succeed: it was invalid,
// rejected, never reached the server, or was dropped while busy.
func (o Outcome) Failed() bool {
	return o.Kind != OutcomeSuccess
}
