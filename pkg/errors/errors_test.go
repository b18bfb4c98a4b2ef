package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "error with cause",
			err: &Error{
				Type:    ErrRemoteQuery,
				Message: "test message",
				Cause:   errors.New("underlying error"),
			},
			want: "remote_query: test message: underlying error",
		},
		{
			name: "error without cause",
			err: &Error{
				Type:    ErrMaterialize,
				Message: "test message",
				Cause:   nil,
			},
			want: "materialize: test message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.want {
				t.Errorf("Error.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &Error{
		Type:    ErrInternal,
		Message: "test message",
		Cause:   cause,
	}

	if got := err.Unwrap(); got != cause {
		t.Errorf("Error.Unwrap() = %v, want %v", got, cause)
	}

	errNoCause := &Error{
		Type:    ErrInternal,
		Message: "test message",
		Cause:   nil,
	}

	if got := errNoCause.Unwrap(); got != nil {
		t.Errorf("Error.Unwrap() = %v, want nil", got)
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
		want bool
	}{
		{"config error matches IsConfig", NewConfigError("bad config", nil), IsConfig, true},
		{"remote query error matches IsRemoteQuery", NewRemoteQueryError("api failed", nil), IsRemoteQuery, true},
		{"materialize error matches IsMaterialize", NewMaterializeError("clone failed", nil), IsMaterialize, true},
		{"internal error matches IsInternal", NewInternalError("oops", nil), IsInternal, true},
		{"type mismatch", NewConfigError("bad config", nil), IsRemoteQuery, false},
		{"plain error never matches", errors.New("plain"), IsConfig, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(tt.err); got != tt.want {
				t.Errorf("predicate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorsIsFindsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewRemoteQueryError("failed to query latest release", cause)

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should find the wrapped cause")
	}
}
