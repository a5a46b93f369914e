package submit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/muurk/authdeck/internal/authapi"
	"github.com/muurk/authdeck/internal/form"
	"github.com/muurk/authdeck/internal/router"
)

type fixture struct {
	api   *MockAPI
	nav   *MockNavigator
	alert *MockAlerter
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	return &fixture{
		api:   NewMockAPI(ctrl),
		nav:   NewMockNavigator(ctrl),
		alert: NewMockAlerter(ctrl),
	}
}

func (f *fixture) controller(opts Options) *Controller {
	return NewController(f.api, f.nav, f.alert, opts)
}

func loginValues(email, password string) map[form.FieldID]string {
	return map[form.FieldID]string{form.FieldEmail: email, form.FieldPassword: password}
}

func registerValues(username, email, password string) map[form.FieldID]string {
	return map[form.FieldID]string{
		form.FieldUsername: username,
		form.FieldEmail:    email,
		form.FieldPassword: password,
	}
}

func TestSubmit_EmptyFieldSendsNothing(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		values map[form.FieldID]string
		want   string
	}{
		{"login no email", Login, loginValues("", "pw"), MsgLoginMissing},
		{"login no password", Login, loginValues("a@b.c", ""), MsgLoginMissing},
		{"login nothing", Login, map[form.FieldID]string{}, MsgLoginMissing},
		{"register no username", Register, registerValues("", "a@b.c", "pw"), MsgRegisterMissing},
		{"register no email", Register, registerValues("ada", "", "pw"), MsgRegisterMissing},
		{"register no password", Register, registerValues("ada", "a@b.c", ""), MsgRegisterMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			// No API or Navigator expectations: any call fails the test.
			f.alert.EXPECT().Alert(TitleError, tt.want)

			out := f.controller(Options{}).Submit(context.Background(), tt.action, tt.values)
			if out.Kind != OutcomeInvalid {
				t.Errorf("Kind = %s, want invalid", out.Kind)
			}
			if out.Message != tt.want {
				t.Errorf("Message = %q, want %q", out.Message, tt.want)
			}
			if !out.Failed() {
				t.Error("Failed() = false, want true")
			}
		})
	}
}

func TestSubmit_ValuesSentAsTyped(t *testing.T) {
	f := newFixture(t)
	f.api.EXPECT().
		Login(gomock.Any(), authapi.LoginRequest{Email: "  not-an-email ", Password: "x"}).
		Return(&authapi.Response{StatusCode: http.StatusOK, Body: map[string]any{}}, nil)
	f.nav.EXPECT().Replace(router.RouteHome)

	f.controller(Options{}).Submit(context.Background(), Login, loginValues("  not-an-email ", "x"))
}

func TestSubmit_LoginSuccessReplacesWithHome(t *testing.T) {
	f := newFixture(t)
	f.api.EXPECT().
		Login(gomock.Any(), authapi.LoginRequest{Email: "a@b.c", Password: "pw"}).
		Return(&authapi.Response{StatusCode: http.StatusOK, Body: map[string]any{"token": "abc"}}, nil).
		Times(1)
	f.nav.EXPECT().Replace(router.RouteHome).Times(1)

	out := f.controller(Options{}).Submit(context.Background(), Login, loginValues("a@b.c", "pw"))
	if out.Kind != OutcomeSuccess {
		t.Fatalf("Kind = %s, want success", out.Kind)
	}
	if out.Payload["token"] != "abc" {
		t.Errorf("Payload = %v", out.Payload)
	}
}

func TestSubmit_RegisterSuccessAlertsThenPushesLogin(t *testing.T) {
	f := newFixture(t)
	f.api.EXPECT().
		Register(gomock.Any(), authapi.RegisterRequest{Username: "ada", Email: "a@b.c", Password: "pw"}).
		Return(&authapi.Response{StatusCode: http.StatusCreated, Body: map[string]any{"id": float64(1)}}, nil)
	gomock.InOrder(
		f.alert.EXPECT().Alert(TitleSuccess, MsgAccountCreated),
		f.nav.EXPECT().Push(router.RouteLogin),
	)

	out := f.controller(Options{}).Submit(context.Background(), Register, registerValues("ada", "a@b.c", "pw"))
	if out.Kind != OutcomeSuccess || out.Status != http.StatusCreated {
		t.Errorf("out = %+v", out)
	}
}

func TestSubmit_RejectedShowsServerMessage(t *testing.T) {
	f := newFixture(t)
	f.api.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(&authapi.Response{StatusCode: http.StatusUnauthorized, Body: map[string]any{"message": "bad credentials"}}, nil)
	f.alert.EXPECT().Alert(TitleError, "bad credentials")

	out := f.controller(Options{}).Submit(context.Background(), Login, loginValues("a@b.c", "wrong"))
	if out.Kind != OutcomeRejected || out.Status != http.StatusUnauthorized {
		t.Errorf("out = %+v", out)
	}
}

func TestSubmit_RejectedFallbackMessage(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		values map[form.FieldID]string
		body   map[string]any
		want   string
	}{
		{"login empty body", Login, loginValues("a@b.c", "pw"), map[string]any{}, MsgLoginFailed},
		{"login empty message", Login, loginValues("a@b.c", "pw"), map[string]any{"message": ""}, MsgLoginFailed},
		{"register zero message", Register, registerValues("u", "a@b.c", "pw"), map[string]any{"message": 0.0}, MsgRegisterFailed},
		{"register number message", Register, registerValues("u", "a@b.c", "pw"), map[string]any{"message": 42.0}, "42"},
		{"login null message", Login, loginValues("a@b.c", "pw"), map[string]any{"message": nil}, MsgLoginFailed},
		{"register error key only", Register, registerValues("u", "a@b.c", "pw"), map[string]any{"error": "conflict"}, MsgRegisterFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			resp := &authapi.Response{StatusCode: http.StatusBadRequest, Body: tt.body}
			f.api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(resp, nil).AnyTimes()
			f.api.EXPECT().Register(gomock.Any(), gomock.Any()).Return(resp, nil).AnyTimes()
			f.alert.EXPECT().Alert(TitleError, tt.want)

			out := f.controller(Options{}).Submit(context.Background(), tt.action, tt.values)
			if out.Message != tt.want {
				t.Errorf("Message = %q, want %q", out.Message, tt.want)
			}
		})
	}
}

func TestSubmit_TransportErrorShowsGenericAlert(t *testing.T) {
	f := newFixture(t)
	cause := authapi.NewNetworkError("POST request failed", "http://x/api/users/login", errors.New("boom"))
	f.api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, cause)
	f.alert.EXPECT().Alert(TitleError, MsgGenericError)

	out := f.controller(Options{}).Submit(context.Background(), Login, loginValues("a@b.c", "pw"))
	if out.Kind != OutcomeNetworkError {
		t.Fatalf("Kind = %s, want network_error", out.Kind)
	}
	if !errors.Is(out.Err, cause) {
		t.Errorf("Err = %v, want %v", out.Err, cause)
	}
	if !out.Failed() {
		t.Error("Failed() = false for a network error, want true")
	}
}

func TestSubmit_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	f := newFixture(t)
	f.alert.EXPECT().Alert(TitleError, MsgGenericError)

	c := NewController(authapi.NewClient(baseURL), f.nav, f.alert, Options{})
	out := c.Submit(context.Background(), Register, registerValues("ada", "a@b.c", "pw"))
	if out.Kind != OutcomeNetworkError {
		t.Errorf("Kind = %s, want network_error", out.Kind)
	}
	if !authapi.IsNetworkError(out.Err) {
		t.Errorf("Err = %v, want a network error", out.Err)
	}
}

func TestSubmit_NonJSONReplyIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	f := newFixture(t)
	f.alert.EXPECT().Alert(TitleError, MsgGenericError)

	c := NewController(authapi.NewClient(srv.URL), f.nav, f.alert, Options{})
	out := c.Submit(context.Background(), Login, loginValues("a@b.c", "pw"))
	if out.Kind != OutcomeNetworkError || !authapi.IsParseError(out.Err) {
		t.Errorf("out = %+v", out)
	}
}

func TestSubmit_NonObjectSuccessReplyNavigates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	f := newFixture(t)
	f.nav.EXPECT().Replace(router.RouteHome)

	c := NewController(authapi.NewClient(srv.URL), f.nav, f.alert, Options{})
	out := c.Submit(context.Background(), Login, loginValues("a@b.c", "pw"))
	if out.Kind != OutcomeSuccess {
		t.Errorf("Kind = %s, want success", out.Kind)
	}
}

func TestSend_BusyRefusesSecondSubmit(t *testing.T) {
	f := newFixture(t)
	entered := make(chan struct{})
	release := make(chan struct{})
	f.api.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req authapi.LoginRequest) (*authapi.Response, error) {
			close(entered)
			<-release
			return &authapi.Response{StatusCode: http.StatusOK, Body: map[string]any{}}, nil
		}).
		Times(1)

	c := f.controller(Options{})

	var first Outcome
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		first = c.Send(context.Background(), Login, loginValues("a@b.c", "pw"))
	}()

	<-entered
	if !c.Busy() {
		t.Error("Busy() = false while a request is in flight")
	}
	second := c.Send(context.Background(), Login, loginValues("a@b.c", "pw"))
	if second.Kind != OutcomeBusy {
		t.Errorf("second Kind = %s, want busy", second.Kind)
	}
	// Busy outcomes apply nothing.
	c.Apply(second)

	close(release)
	wg.Wait()

	if first.Kind != OutcomeSuccess {
		t.Errorf("first Kind = %s, want success", first.Kind)
	}
	if c.Busy() {
		t.Error("Busy() = true after the request finished")
	}
}

func TestSend_AllowConcurrent(t *testing.T) {
	f := newFixture(t)
	entered := make(chan struct{}, 2)
	release := make(chan struct{})
	f.api.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req authapi.LoginRequest) (*authapi.Response, error) {
			entered <- struct{}{}
			<-release
			return &authapi.Response{StatusCode: http.StatusOK, Body: map[string]any{}}, nil
		}).
		Times(2)

	c := f.controller(Options{AllowConcurrent: true})

	var wg sync.WaitGroup
	results := make([]Outcome, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Send(context.Background(), Login, loginValues("a@b.c", "pw"))
		}(i)
	}
	<-entered
	<-entered
	close(release)
	wg.Wait()

	for i, out := range results {
		if out.Kind != OutcomeSuccess {
			t.Errorf("result %d Kind = %s, want success", i, out.Kind)
		}
	}
}

func TestSend_DoesNotNavigateOrAlert(t *testing.T) {
	f := newFixture(t)
	f.api.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(&authapi.Response{StatusCode: http.StatusOK, Body: map[string]any{"token": "abc"}}, nil)

	out := f.controller(Options{}).Send(context.Background(), Login, loginValues("a@b.c", "pw"))
	if out.Kind != OutcomeSuccess {
		t.Errorf("Kind = %s, want success", out.Kind)
	}
}

func TestOutcomeKindString(t *testing.T) {
	tests := map[OutcomeKind]string{
		OutcomeSuccess:      "success",
		OutcomeInvalid:      "invalid",
		OutcomeRejected:     "rejected",
		OutcomeNetworkError: "network_error",
		OutcomeBusy:         "busy",
		OutcomeKind(99):     "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("OutcomeKind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
