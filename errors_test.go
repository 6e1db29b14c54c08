package keyhub

import (
	"errors"
	"testing"
)

func TestCatalogError(t *testing.T) {
	cause := errors.New("underlying error")
	err := &CatalogError{Message: "writing file", Cause: cause}

	if err.Error() != "writing file: underlying error" {
		t.Errorf("unexpected error message: %s", err.Error())
	}

	if err.Unwrap() != cause {
		t.Error("Unwrap() should return the cause")
	}

	// Without cause
	err2 := &CatalogError{Message: "simple error"}
	if err2.Error() != "simple error" {
		t.Errorf("unexpected error message: %s", err2.Error())
	}
}

func TestStoreError(t *testing.T) {
	cause := errors.New("permission denied")
	err := &StoreError{Message: "saving settings", Cause: cause}

	if err.Error() != "settings store: saving settings: permission denied" {
		t.Errorf("unexpected error message: %s", err.Error())
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
}

func TestProviderError(t *testing.T) {
	err := &ProviderError{Message: "rate limited", Retryable: true}

	if err.Error() != "provider error: rate limited" {
		t.Errorf("unexpected error message: %s", err.Error())
	}

	if !err.Retryable {
		t.Error("error should be retryable")
	}
}

func TestCacheError(t *testing.T) {
	err := &CacheError{Message: "connection failed"}

	if err.Error() != "cache error: connection failed" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
}
