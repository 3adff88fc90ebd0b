// Package errors defines the failure taxonomy the resolvers speak.
// The transport layer maps these onto the wire (GraphQL error
// extensions); nothing in here knows about HTTP or GraphQL types.
package errors

import stderrors "errors"

// ErrNoDocument is what the stores return when a lookup matches
// nothing. Driver-level not-found errors never leak past the store.
var ErrNoDocument = stderrors.New("no matching document")

// Kind classifies a failure. The resolvers decide the kind; the
// numeric client code travels with it.
type Kind int

const (
	KindInvalidInput Kind = iota + 1
	KindUnauthenticated
	KindUnauthorized
	KindNotFound
	KindConflict
)

// Sentinels for errors.Is checks. Matching is by kind, so a
// constructed error compares equal to its sentinel.
var (
	ErrInvalidInput    = &Error{Kind: KindInvalidInput, Code: 422, Message: "invalid input"}
	ErrUnauthenticated = &Error{Kind: KindUnauthenticated, Code: 401, Message: "not authenticated"}
	ErrUnauthorized    = &Error{Kind: KindUnauthorized, Code: 401, Message: "not authorized"}
	ErrNotFound        = &Error{Kind: KindNotFound, Code: 404, Message: "not found"}
	ErrConflict        = &Error{Kind: KindConflict, Message: "conflict"}
)

// Violation is one field-scoped validation failure.
type Violation struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Error is a classified resolver failure. Code is the client-facing
// status (0 when the taxonomy assigns none, as for conflicts). Data
// carries the aggregated validation violations for invalid input.
type Error struct {
	Kind    Kind
	Code    int
	Message string
	Data    []Violation
}

func (e *Error) Error() string { return e.Message }

// Is matches by kind so callers can test against the sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Extensions surfaces the code and violation list through the GraphQL
// error output.
func (e *Error) Extensions() map[string]interface{} {
	ext := make(map[string]interface{})
	if e.Code != 0 {
		ext["code"] = e.Code
	}
	if len(e.Data) > 0 {
		ext["data"] = e.Data
	}
	return ext
}

// InvalidInput aggregates the given violations into a 422 failure.
func InvalidInput(violations []Violation) *Error {
	return &Error{Kind: KindInvalidInput, Code: 422, Message: "invalid input", Data: violations}
}

// Unauthenticated reports a caller that is not logged in or presented
// bad credentials.
func Unauthenticated(msg string) *Error {
	return &Error{Kind: KindUnauthenticated, Code: 401, Message: msg}
}

// Unauthorized reports a logged-in caller acting on an entity it does
// not own.
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Code: 401, Message: msg}
}

// NotFound reports a missing entity.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Code: 404, Message: msg}
}

// Conflict reports a duplicate unique key. The original contract
// assigns it no status code, only a message.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}
