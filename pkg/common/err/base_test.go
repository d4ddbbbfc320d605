package err

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "full",
			err:  New("graph", CodeNotFound, "resolve", "No commit with that id exists.", errors.New("no match")),
			want: "[graph][NOT_FOUND]: resolve: No commit with that id exists.: no match",
		},
		{
			name: "cause only",
			err:  &Error{Err: errors.New("boom")},
			want: "boom",
		},
		{
			name: "no code",
			err:  &Error{Package: "store", Op: "get"},
			want: "[store]: get",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_IsMatchesByCode(t *testing.T) {
	e := New("branch", CodePrecondition, "delete", "Cannot remove the current branch.", nil)
	wrapped := fmt.Errorf("cli: %w", e)

	if !errors.Is(wrapped, &Error{Code: CodePrecondition}) {
		t.Error("expected wrapped error to match by code")
	}
	if errors.Is(wrapped, &Error{Code: CodeNotFound}) {
		t.Error("did not expect match for different code")
	}
}

func TestIsCode_WalksNestedErrors(t *testing.T) {
	inner := New("store", CodeNotFound, "get", "", nil)
	outer := WrapWithCode(inner, "graph", CodeInternal, "read")

	if !IsCode(outer, CodeInternal) {
		t.Error("outer code not detected")
	}
	if !IsCode(outer, CodeNotFound) {
		t.Error("inner code not detected")
	}
	if IsCode(outer, CodeUntracked) {
		t.Error("unexpected code detected")
	}
	if IsCode(errors.New("plain"), CodeNotFound) {
		t.Error("plain error should carry no code")
	}
}

func TestGetCode(t *testing.T) {
	inner := New("store", CodeNotFound, "get", "", nil)
	if got := GetCode(Wrap(inner, "graph", "read")); got != CodeNotFound {
		t.Errorf("GetCode = %q, want %q", got, CodeNotFound)
	}
	if got := GetCode(errors.New("x")); got != "" {
		t.Errorf("GetCode = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	leaf := New("staging", CodeNotFound, "add", "File does not exist.", nil)

	if got := UserMessage(Wrap(leaf, "cli", "add")); got != "File does not exist." {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(errors.New("disk full")); got != "disk full" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(nil); got != "" {
		t.Errorf("UserMessage(nil) = %q", got)
	}
}

func TestWrap_Nil(t *testing.T) {
	if Wrap(nil, "x", "y") != nil {
		t.Error("Wrap(nil) should be nil")
	}
	if WrapWithCode(nil, "x", CodeInternal, "y") != nil {
		t.Error("WrapWithCode(nil) should be nil")
	}
}
