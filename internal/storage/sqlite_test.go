package storage

import (
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening in-memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestActiveCredential_Empty(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.ActiveCredential(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveAndLoadCredential(t *testing.T) {
	s := openTestStore(t)

	cred := Credential{
		ID:           "c1",
		AccessToken:  "at",
		RefreshToken: "rt",
		ExpiresAt:    "2025-09-17T11:00:00Z",
		UserEmail:    "office@school.example",
		IsActive:     true,
		CreatedAt:    time.Date(2025, time.September, 17, 10, 0, 0, 0, time.UTC),
	}
	if err := s.SaveCredential(cred); err != nil {
		t.Fatalf("SaveCredential: %v", err)
	}

	got, err := s.ActiveCredential()
	if err != nil {
		t.Fatalf("ActiveCredential: %v", err)
	}
	if got.ID != "c1" || got.AccessToken != "at" || got.RefreshToken != "rt" {
		t.Errorf("got %+v", got)
	}
	if got.UserEmail != "office@school.example" {
		t.Errorf("UserEmail = %q", got.UserEmail)
	}
	if !got.CreatedAt.Equal(cred.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, cred.CreatedAt)
	}
}

func TestSaveCredential_DeactivatesPrevious(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2025, time.September, 17, 10, 0, 0, 0, time.UTC)
	first := Credential{ID: "c1", AccessToken: "old", IsActive: true, CreatedAt: base}
	second := Credential{ID: "c2", AccessToken: "new", IsActive: true, CreatedAt: base.Add(time.Minute)}

	if err := s.SaveCredential(first); err != nil {
		t.Fatalf("saving first: %v", err)
	}
	if err := s.SaveCredential(second); err != nil {
		t.Fatalf("saving second: %v", err)
	}

	got, err := s.ActiveCredential()
	if err != nil {
		t.Fatalf("ActiveCredential: %v", err)
	}
	if got.ID != "c2" {
		t.Errorf("active = %q, want c2", got.ID)
	}
}

func TestUpdateAccessToken(t *testing.T) {
	s := openTestStore(t)

	cred := Credential{ID: "c1", AccessToken: "old", IsActive: true,
		CreatedAt: time.Date(2025, time.September, 17, 10, 0, 0, 0, time.UTC)}
	if err := s.SaveCredential(cred); err != nil {
		t.Fatalf("SaveCredential: %v", err)
	}

	if err := s.UpdateAccessToken("c1", "renewed", "2025-09-17T12:00:00Z"); err != nil {
		t.Fatalf("UpdateAccessToken: %v", err)
	}

	got, err := s.ActiveCredential()
	if err != nil {
		t.Fatalf("ActiveCredential: %v", err)
	}
	if got.AccessToken != "renewed" || got.ExpiresAt != "2025-09-17T12:00:00Z" {
		t.Errorf("got %+v", got)
	}
}

func TestUpdateAccessToken_UnknownID(t *testing.T) {
	s := openTestStore(t)
	if err := s.UpdateAccessToken("ghost", "tok", "2025-09-17T12:00:00Z"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
