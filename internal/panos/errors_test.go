package panos

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestKindTransient(t *testing.T) {
	tests := []struct {
		kind      Kind
		transient bool
	}{
		{KindTimeout, true},
		{KindBusy, true},
		{KindRateLimited, true},
		{KindAuth, false},
		{KindValidation, false},
		{KindConflict, false},
		{KindNotFound, false},
		{KindUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Transient(); got != tt.transient {
				t.Errorf("Transient() = %v, want %v", got, tt.transient)
			}
		})
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "busy API error",
			err:  &APIError{Kind: KindBusy, Msg: "server busy"},
			want: true,
		},
		{
			name: "wrapped rate limit error",
			err:  fmt.Errorf("set failed: %w", &APIError{Kind: KindRateLimited}),
			want: true,
		},
		{
			name: "auth error",
			err:  &APIError{Kind: KindAuth, Msg: "invalid credentials"},
			want: false,
		},
		{
			name: "validation error",
			err:  &APIError{Kind: KindValidation, Msg: "malformed xpath"},
			want: false,
		},
		{
			name: "context cancelled",
			err:  context.Canceled,
			want: false,
		},
		{
			name: "context deadline",
			err:  context.DeadlineExceeded,
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("something broke"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestClassifyHTTP(t *testing.T) {
	tests := []struct {
		status int
		want   Kind
	}{
		{401, KindAuth},
		{403, KindAuth},
		{404, KindNotFound},
		{409, KindConflict},
		{429, KindRateLimited},
		{502, KindBusy},
		{503, KindBusy},
		{504, KindTimeout},
		{500, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.status), func(t *testing.T) {
			err := classifyHTTP(tt.status, "body")
			if err.Kind != tt.want {
				t.Errorf("classifyHTTP(%d) kind = %v, want %v", tt.status, err.Kind, tt.want)
			}
			if err.Status != tt.status {
				t.Errorf("classifyHTTP(%d) status = %d", tt.status, err.Status)
			}
		})
	}
}

func TestClassifyCode(t *testing.T) {
	tests := []struct {
		code string
		want Kind
	}{
		{"403", KindAuth},
		{"1", KindBusy},
		{"5", KindBusy},
		{"3", KindValidation},
		{"6", KindValidation},
		{"12", KindValidation},
		{"14", KindValidation},
		{"400", KindValidation},
		{"7", KindNotFound},
		{"8", KindConflict},
		{"10", KindConflict},
		{"11", KindConflict},
		{"999", KindUnknown},
		{"", KindUnknown},
	}

	for _, tt := range tests {
		t.Run("code_"+tt.code, func(t *testing.T) {
			err := classifyCode(tt.code, "msg")
			if err.Kind != tt.want {
				t.Errorf("classifyCode(%q) kind = %v, want %v", tt.code, err.Kind, tt.want)
			}
		})
	}
}

func TestIsNotFoundAndIsAuth(t *testing.T) {
	notFound := fmt.Errorf("get: %w", &APIError{Kind: KindNotFound, Msg: "no such object"})
	auth := &APIError{Kind: KindAuth}

	if !IsNotFound(notFound) {
		t.Error("IsNotFound should see wrapped not-found errors")
	}
	if IsNotFound(auth) {
		t.Error("IsNotFound should reject auth errors")
	}
	if !IsAuth(auth) {
		t.Error("IsAuth should see auth errors")
	}
	if IsAuth(notFound) {
		t.Error("IsAuth should reject not-found errors")
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{Kind: KindValidation, Code: "12", Msg: "invalid object"}
	msg := err.Error()
	if msg == "" {
		t.Fatal("expected non-empty error message")
	}
	for _, want := range []string{"validation", "invalid object"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q should contain %q", msg, want)
		}
	}
}
