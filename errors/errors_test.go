package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Op:       OpDecode,
				Kind:     KindInvalid,
				Encoding: "UTF-16LE",
				Offset:   6,
				Detail:   "unpaired high surrogate",
			},
			contains: []string{"[decode UTF-16LE]", "invalid_sequence", "offset 6", "unpaired high surrogate"},
		},
		{
			name: "minimal error",
			err: &Error{
				Op:   OpValidate,
				Kind: KindTruncated,
			},
			contains: []string{"[validate]", "truncated", "offset 0"},
		},
		{
			name: "params error has no offset",
			err: &Error{
				Op:     OpConvert,
				Kind:   KindParams,
				Detail: "buffer handle is nil but capacity is 5",
			},
			contains: []string{"[convert]", "bad_params", "buffer handle is nil"},
		},
		{
			name: "error with cause",
			err: &Error{
				Op:     OpEncode,
				Kind:   KindInvalid,
				Detail: "bad scalar",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[encode]", "invalid_sequence", "bad scalar", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("Error() = %q, want substring %q", msg, s)
				}
			}
		})
	}

	t.Run("params omits offset", func(t *testing.T) {
		err := Params(OpDecode, "mismatched handles")
		if strings.Contains(err.Error(), "offset") {
			t.Errorf("Error() = %q, params errors must not report an offset", err.Error())
		}
	})
}

func TestBuilder(t *testing.T) {
	err := New(OpDecode, KindTruncated).
		Encoding("UTF-8").
		Offset(12).
		Detail("need %d more bytes", 2).
		Build()

	if err.Op != OpDecode || err.Kind != KindTruncated {
		t.Errorf("Build() = op %q kind %q, want decode/truncated", err.Op, err.Kind)
	}
	if err.Encoding != "UTF-8" || err.Offset != 12 {
		t.Errorf("Build() = encoding %q offset %d, want UTF-8/12", err.Encoding, err.Offset)
	}
	if err.Detail != "need 2 more bytes" {
		t.Errorf("Detail = %q, want formatted detail", err.Detail)
	}
}

func TestErrorIs(t *testing.T) {
	err := Invalid(OpDecode, "UTF-8", 3, "overlong encoding")

	if !errors.Is(err, &Error{Op: OpDecode, Kind: KindInvalid}) {
		t.Error("Is() should match same op and kind")
	}
	if errors.Is(err, &Error{Op: OpEncode, Kind: KindInvalid}) {
		t.Error("Is() should not match a different op")
	}
	if errors.Is(err, &Error{Op: OpDecode, Kind: KindTruncated}) {
		t.Error("Is() should not match a different kind")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := New(OpConvert, KindInvalid).Cause(cause).Build()

	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be reachable through errors.Is")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap() should return the cause")
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		invalid   bool
		truncated bool
		params    bool
	}{
		{"invalid", Invalid(OpDecode, "UTF-8", 0, ""), true, false, false},
		{"truncated", Truncated(OpValidate, "UTF-32LE", 4), false, true, false},
		{"params", Params(OpEncode, "bad handles"), false, false, true},
		{"non-scalar", NonScalar(OpEncode, "UTF-16BE", 1, 0xD8AA), true, false, false},
		{"wrapped", fmt.Errorf("outer: %w", Truncated(OpDecode, "UTF-8", 1)), false, true, false},
		{"plain", errors.New("plain"), false, false, false},
		{"nil", nil, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInvalid(tt.err); got != tt.invalid {
				t.Errorf("IsInvalid = %v, want %v", got, tt.invalid)
			}
			if got := IsTruncated(tt.err); got != tt.truncated {
				t.Errorf("IsTruncated = %v, want %v", got, tt.truncated)
			}
			if got := IsParams(tt.err); got != tt.params {
				t.Errorf("IsParams = %v, want %v", got, tt.params)
			}
		})
	}
}

func TestNonScalarDetail(t *testing.T) {
	err := NonScalar(OpEncode, "UTF-8", 0, 0x110000)
	if !strings.Contains(err.Error(), "0x110000") {
		t.Errorf("Error() = %q, want the offending value in the message", err.Error())
	}
}
