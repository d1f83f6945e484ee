package app

import (
	"errors"
	"os"
	"testing"
)

func TestOperationErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{
			name: "op target and cause",
			err:  NewOperationError("open", "notes.txt", os.ErrNotExist),
			want: "open notes.txt: file does not exist",
		},
		{
			name: "no target",
			err:  NewOperationError("init terminal", "", errors.New("tty gone")),
			want: "init terminal: tty gone",
		},
		{
			name: "no cause",
			err:  NewOperationError("save", "a.txt", nil),
			want: "save a.txt",
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

func TestOperationErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewOperationError("open", "x", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find the wrapped cause")
	}
	if errors.Is(err, os.ErrPermission) {
		t.Error("errors.Is matched an unrelated error")
	}

	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatal("errors.As failed")
	}
	if opErr.Op != "open" || opErr.Target != "x" {
		t.Errorf("unwrapped Op=%q Target=%q, want open x", opErr.Op, opErr.Target)
	}
}

func TestComponentErrorMessage(t *testing.T) {
	err := NewComponentError("plugins", errors.New("bad script"))
	if got, want := err.Error(), "plugins: bad script"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	bare := NewComponentError("themes", nil)
	if got, want := bare.Error(), "themes"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestComponentErrorUnwrap(t *testing.T) {
	cause := os.ErrNotExist
	err := NewComponentError("config", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find the wrapped cause")
	}

	var compErr *ComponentError
	if !errors.As(err, &compErr) {
		t.Fatal("errors.As failed")
	}
	if compErr.Component != "config" {
		t.Errorf("Component = %q, want config", compErr.Component)
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "reading %s", "x") != nil {
		t.Error("WrapError(nil) != nil")
	}

	cause := errors.New("disk full")
	err := WrapError(cause, "saving %s", "a.txt")
	if err == nil {
		t.Fatal("WrapError returned nil")
	}
	if got, want := err.Error(), "saving a.txt: disk full"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find the wrapped cause")
	}
}
