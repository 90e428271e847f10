package common

import (
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestValidatorRules(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		value   interface{}
		rule    ValidationRule
		wantErr bool
	}{
		{"required ok", "x", Required, false},
		{"required blank", "  ", Required, true},
		{"required nil", nil, Required, true},
		{"positive ok", 3, Positive, false},
		{"positive zero", 0, Positive, true},
		{"positive not number", "3", Positive, true},
		{"non-negative zero", 0.0, NonNegative, false},
		{"non-negative negative", int32(-1), NonNegative, true},
		{"one of ok", "YAML", OneOf("yaml", "toml"), false},
		{"one of miss", "ini", OneOf("yaml", "toml"), true},
		{"uuid ok", "6f1c2a1e-3b8f-4a55-9d1a-5e3c9b7e2f10", UUID, false},
		{"uuid bad", "abc", UUID, true},
		{"dir ok", dir, DirExists, false},
		{"dir missing", dir + "/missing", DirExists, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator().Field("f", tt.value, tt.rule)
			if v.HasErrors() != tt.wantErr {
				t.Errorf("HasErrors = %v, want %v (%s)", v.HasErrors(), tt.wantErr, v.ErrorMessage())
			}
		})
	}
}

func TestValidateAndReturnError(t *testing.T) {
	v := NewValidator().Field("provider", "", Required)
	err := ValidateAndReturnError(v)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want InvalidArgument", status.Code(err))
	}
	if ValidateAndReturnError(NewValidator()) != nil {
		t.Error("empty validator should return nil")
	}
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{NewAppError("NOT_FOUND", "file missing", ErrNotFound), codes.NotFound},
		{WrapError(ErrInvalidInput, "bad provider"), codes.InvalidArgument},
		{NewAppError("EXTRACT", "model refused", ErrExtraction), codes.FailedPrecondition},
		{ErrDatabase, codes.Internal},
		{status.Error(codes.Unavailable, "down"), codes.Unavailable},
	}
	for _, tt := range tests {
		if got := status.Code(StatusFromError(tt.err)); got != tt.want {
			t.Errorf("StatusFromError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
	if StatusFromError(nil) != nil {
		t.Error("nil should map to nil")
	}
}
