package dns

import (
	"errors"
	"fmt"
	"testing"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o deadline reached" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestIsRetryableDNSError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"net timeout", timeoutError{}, true},
		{"rate limited", errors.New("HTTP 429: rate limit exceeded"), true},
		{"gateway timeout", errors.New("504 gateway timeout"), true},
		{"service unavailable", errors.New("503 Service Unavailable"), true},
		{"connection reset", errors.New("read tcp: connection reset by peer"), true},
		{"wrapped retryable", fmt.Errorf("list zones: %w", errors.New("connection refused")), true},
		{"joined retryable", errors.Join(errors.New("auth failed"), timeoutError{}), true},
		{"auth failure", errors.New("HTTP 403: invalid credentials"), false},
		{"not found", errors.New("HTTP 404: zone not found"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryableDNSError(tt.err); got != tt.want {
				t.Errorf("IsRetryableDNSError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
