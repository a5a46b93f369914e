package submit

//go:generate mockgen -source=submit.go -destination=mock_submit_test.go -package=submit

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/muurk/authdeck/internal/authapi"
	"github.com/muurk/authdeck/internal/form"
	"github.com/muurk/authdeck/internal/logging"
	"github.com/muurk/authdeck/internal/router"
)

// User-facing messages.
const (
	TitleError   = "Error"
	TitleSuccess = "Success"

	MsgLoginMissing    = "Please enter both email and password."
	MsgRegisterMissing = "Please fill in all fields."
	MsgLoginFailed     = "Login failed."
	MsgRegisterFailed  = "Sign up failed."
	MsgAccountCreated  = "Account created successfully!"
	MsgGenericError    = "An error occurred. Please try again."
)

// Navigator moves between screens.
type Navigator interface {
	Replace(route router.Route)
	Push(route router.Route)
}

// Alerter shows a modal message to the user.
type Alerter interface {
	Alert(title, message string)
}

// API is the subset of the auth client the controller calls.
type API interface {
	Login(ctx context.Context, req authapi.LoginRequest) (*authapi.Response, error)
	Register(ctx context.Context, req authapi.RegisterRequest) (*authapi.Response, error)
}

// Options tune a Controller.
type Options struct {
	// AllowConcurrent lets a second submit go out while one is in flight.
	AllowConcurrent bool
}

// Controller validates a form, posts it and turns the reply into an Outcome.
type Controller struct {
	api   API
	nav   Navigator
	alert Alerter
	opts  Options
	busy  atomic.Bool
}

// NewController wires a controller to its collaborators.
func NewController(api API, nav Navigator, alert Alerter, opts Options) *Controller {
	return &Controller{api: api, nav: nav, alert: alert, opts: opts}
}

// Submit sends the form and applies the outcome: alerts and navigation happen
// before it returns.
func (c *Controller) Submit(ctx context.Context, action Action, values map[form.FieldID]string) Outcome {
	out := c.Send(ctx, action, values)
	c.Apply(out)
	return out
}

// Send validates values and, when complete, issues exactly one request. It
// does not touch the Navigator or the Alerter, so it can run off the UI
// goroutine; pass the result to Apply on the UI goroutine.
func (c *Controller) Send(ctx context.Context, action Action, values map[form.FieldID]string) Outcome {
	if msg, ok := validate(action, values); !ok {
		out := Outcome{Kind: OutcomeInvalid, Action: action, Message: msg}
		logging.LogSubmit(action.String(), out.Kind.String())
		return out
	}

	if !c.opts.AllowConcurrent {
		if !c.busy.CompareAndSwap(false, true) {
			logging.LogSubmit(action.String(), OutcomeBusy.String())
			return Outcome{Kind: OutcomeBusy, Action: action}
		}
		defer c.busy.Store(false)
	}

	resp, err := c.call(ctx, action, values)
	if err != nil {
		logging.Error("Submit failed",
			zap.String("form", action.String()),
			zap.String("reason", authapi.GetShortErrorMessage(err)),
			zap.Error(err),
		)
		out := Outcome{Kind: OutcomeNetworkError, Action: action, Message: MsgGenericError, Err: err}
		logging.LogSubmit(action.String(), out.Kind.String())
		return out
	}

	out := classify(action, resp)
	logging.LogSubmit(action.String(), out.Kind.String(), zap.Int("status_code", out.Status))
	return out
}

// Apply shows the alert and performs the navigation an outcome calls for.
func (c *Controller) Apply(out Outcome) {
	switch out.Kind {
	case OutcomeSuccess:
		switch out.Action {
		case Login:
			c.nav.Replace(router.RouteHome)
		case Register:
			c.alert.Alert(TitleSuccess, MsgAccountCreated)
			c.nav.Push(router.RouteLogin)
		}
	case OutcomeInvalid, OutcomeRejected, OutcomeNetworkError:
		c.alert.Alert(TitleError, out.Message)
	case OutcomeBusy:
	}
}

// Busy reports whether a request is in flight.
func (c *Controller) Busy() bool {
	return c.busy.Load()
}

func (c *Controller) call(ctx context.Context, action Action, values map[form.FieldID]string) (*authapi.Response, error) {
	if action == Register {
		return c.api.Register(ctx, authapi.RegisterRequest{
			Username: values[form.FieldUsername],
			Email:    values[form.FieldEmail],
			Password: values[form.FieldPassword],
		})
	}
	return c.api.Login(ctx, authapi.LoginRequest{
		Email:    values[form.FieldEmail],
		Password: values[form.FieldPassword],
	})
}

// validate checks presence only. Values are sent as typed.
func validate(action Action, values map[form.FieldID]string) (string, bool) {
	for _, id := range action.Required() {
		if values[id] == "" {
			return action.missingMessage(), false
		}
	}
	return "", true
}

func classify(action Action, resp *authapi.Response) Outcome {
	if resp.OK() {
		return Outcome{Kind: OutcomeSuccess, Action: action, Status: resp.StatusCode, Payload: resp.Body}
	}
	msg := resp.Message()
	if msg == "" {
		msg = action.failedMessage()
	}
	return Outcome{Kind: OutcomeRejected, Action: action, Status: resp.StatusCode, Message: msg, Payload: resp.Body}
}
