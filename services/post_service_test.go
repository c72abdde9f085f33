package services

import (
	"errors"
	"testing"
)

func TestCreateAndListPosts(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	posts := NewPostService(db)

	user, err := users.Register("a@x.com", "alice", "pw", "Red Team")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := posts.Create(user.ID, user.Username, "Launch day!", "photos/launch.jpg"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := posts.Create(user.ID, user.Username, "Back on the ground", "photos/landing.jpg")
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}

	recent, err := posts.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("len(recent) = %d, want 2", len(recent))
	}
	if recent[0].ID != second.ID {
		t.Errorf("newest post = %d, want %d", recent[0].ID, second.ID)
	}
	if recent[0].Username != "alice" {
		t.Errorf("Username = %q, want alice", recent[0].Username)
	}
}

func TestCreatePostRequiresContent(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostService(db)

	if _, err := posts.Create(1, "alice", "", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty post: got %v, want ErrValidation", err)
	}
}
