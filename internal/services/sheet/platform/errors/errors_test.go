package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("disk full")
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "invalid input", err: E(KindInvalidInput, "bad field"), want: http.StatusBadRequest},
		{name: "not found", err: EK(KindNotFound, "core.error.not_found", "missing"), want: http.StatusNotFound},
		{name: "unavailable", err: Wrap(KindUnavailable, "", cause), want: http.StatusServiceUnavailable},
		{name: "wrapped typed", err: fmt.Errorf("load: %w", E(KindNotFound, "missing")), want: http.StatusNotFound},
		{name: "untyped", err: cause, want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("%s: HTTPStatus() = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestLocalizationKey(t *testing.T) {
	t.Parallel()

	if got := LocalizationKey(EK(KindInvalidInput, " core.error.invalid_field ", "x")); got != "core.error.invalid_field" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
	if got := LocalizationKey(stderrors.New("boom")); got != "core.error.internal" {
		t.Fatalf("LocalizationKey(untyped) = %q", got)
	}
	if got := LocalizationKey(nil); got != "" {
		t.Fatalf("LocalizationKey(nil) = %q", got)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("locked")
	err := Wrap(KindUnavailable, "core.error.internal", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause")
	}
	if err.Error() != "locked" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if Wrap(KindUnavailable, "", nil) != nil {
		t.Fatal("Wrap(nil) should be nil")
	}
}
