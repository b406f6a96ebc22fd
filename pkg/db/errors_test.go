package db_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/calebmartin/wishlist-backend/pkg/db"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := errors.New("UNIQUE constraint failed: users.username")

	if !db.IsUniqueViolation(uniqueErr, "") {
		t.Fatal("expected match without column filter")
	}
	if !db.IsUniqueViolation(uniqueErr, "users.username") {
		t.Fatal("expected match with column filter")
	}
	if db.IsUniqueViolation(uniqueErr, "users.email") {
		t.Fatal("expected mismatch for different column")
	}
	if db.IsUniqueViolation(errors.New("no such table: users"), "") {
		t.Fatal("expected mismatch for unrelated error")
	}
	if db.IsUniqueViolation(nil, "") {
		t.Fatal("nil error must not match")
	}

	wrapped := fmt.Errorf("create user: %w", uniqueErr)
	if !db.IsUniqueViolation(wrapped, "users.username") {
		t.Fatal("expected match through wrapped error text")
	}
}
