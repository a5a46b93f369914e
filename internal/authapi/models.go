package authapi

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// LoginRequest is the JSON body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the JSON body of POST /api/users/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response is a decoded API reply. The body is decoded as JSON whatever the
// status code; callers branch on OK.
type Response struct {
	StatusCode int

	// Raw is the decoded body, which may be any JSON value.
	Raw any

	// Body is Raw when it is a JSON object, nil otherwise.
	Body map[string]any
}

// OK reports whether the status code is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Message returns the optional "message" field as display text. Falsy JSON
// values (absent, null, false, 0, "") give "". Numbers and booleans are
// formatted, arrays and objects are re-encoded as JSON.
func (r *Response) Message() string {
	if r == nil || r.Body == nil {
		return ""
	}
	switch v := r.Body["message"].(type) {
	case string:
		return v
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "true"
		}
		return ""
	case nil:
		return ""
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// Token returns the optional "token" field issued on login.
func (r *Response) Token() string {
	if r == nil || r.Body == nil {
		return ""
	}
	tok, _ := r.Body["token"].(string)
	return tok
}
