// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test coded error creation, wrapping and lookup helpers

package errors_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/arthur-debert/graftree/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_a_directory_error",
			code:    errors.ErrNotADirectory,
			message: "src/config is not a directory",
			wantStr: "[NOT_A_DIRECTORY] src/config is not a directory",
		},
		{
			name:    "invalid_pattern_error",
			code:    errors.ErrInvalidPattern,
			message: "bad glob",
			wantStr: "[INVALID_PATTERN] bad glob",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrConfigValid, "unknown mode %q", "hardlink")
	if err.Message != `unknown mode "hardlink"` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrIOFailure, "copy failed")

		if err.Code != errors.ErrIOFailure {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrIOFailure)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[IO_FAILURE] copy failed: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrIOFailure, "copy failed"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrIOFailure, "copy %s", "a"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrIOFailure, "failed").
		WithDetail("path", ".env").
		WithDetail("mode", "copy")

	if err.Details["path"] != ".env" {
		t.Errorf("WithDetail() path = %v", err.Details["path"])
	}
	if got := errors.GetErrorDetails(err)["mode"]; got != "copy" {
		t.Errorf("GetErrorDetails() mode = %v", got)
	}
	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails() should be nil for plain errors")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNotARepository, "error 1")
	err2 := errors.New(errors.ErrNotARepository, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with GraftError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrIgnoreList, "cannot append"),
			code:     errors.ErrIgnoreList,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrIgnoreList, "cannot append"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(fs.ErrPermission, errors.ErrIOFailure, "denied"),
			code:     errors.ErrIOFailure,
			expected: true,
		},
		{
			name:     "plain_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "graft_error",
			err:      errors.New(errors.ErrWorktreeCreate, "git failed"),
			expected: errors.ErrWorktreeCreate,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := fs.ErrPermission
	ioErr := errors.Wrap(rootCause, errors.ErrIOFailure, "cannot create info dir")
	mergeErr := errors.Wrap(ioErr, errors.ErrIgnoreList, "failed to update exclude file")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(mergeErr, errors.ErrIgnoreList) {
			t.Error("Top level should have ErrIgnoreList code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var graftErr *errors.GraftError
		if !stderrors.As(mergeErr.Unwrap(), &graftErr) {
			t.Fatal("middle error should be a GraftError")
		}
		if graftErr.Code != errors.ErrIOFailure {
			t.Error("Middle error should have ErrIOFailure code")
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(mergeErr, fs.ErrPermission) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
