package domain

import (
	"testing"
	"time"
)

func TestNewContactMessage(t *testing.T) {
	in := ContactMessageInput{
		Name:        "Jane Q Public",
		Email:       "jane@example.com",
		Subject:     "Hello",
		Message:     "I would like to talk.",
		ServiceType: "General Inquiry",
	}

	before := time.Now().UTC()
	row := NewContactMessage(in)
	after := time.Now().UTC()

	if row.ID == "" {
		t.Fatalf("id not generated")
	}
	if row.Status != ContactStatusNew {
		t.Fatalf("status: %q, want %q", row.Status, ContactStatusNew)
	}
	if row.Name != in.Name || row.Email != in.Email || row.Subject != in.Subject {
		t.Fatalf("fields not carried over: %+v", row)
	}
	if row.Message != in.Message || row.ServiceType != in.ServiceType {
		t.Fatalf("fields not carried over: %+v", row)
	}
	if row.CreatedAt.Before(before) || row.CreatedAt.After(after) {
		t.Fatalf("created_at out of range: %v", row.CreatedAt)
	}
	if !row.UpdatedAt.Equal(row.CreatedAt) {
		t.Fatalf("updated_at %v != created_at %v", row.UpdatedAt, row.CreatedAt)
	}
}

func TestNewDocIDUnique(t *testing.T) {
	a, b := NewDocID(), NewDocID()
	if a == "" || a == b {
		t.Fatalf("ids must be distinct and non-empty: %q %q", a, b)
	}
}
