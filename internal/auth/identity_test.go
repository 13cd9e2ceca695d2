package auth

import (
	"testing"

	"github.com/leon37/argyle/internal/model"
)

func TestIdentity_Anonymous(t *testing.T) {
	t.Parallel()

	if !Anonymous.IsAnonymous() {
		t.Fatal("Anonymous.IsAnonymous() = false")
	}
	if Anonymous.User() != nil {
		t.Fatal("Anonymous.User() != nil")
	}
	if Anonymous.UserID() != "" {
		t.Fatalf("Anonymous.UserID() = %q, want empty", Anonymous.UserID())
	}
}

func TestIdentity_OfUser(t *testing.T) {
	t.Parallel()

	user := &model.User{ID: "u1", Email: "a@x.com", Name: "A"}
	identity := IdentityOf(user)

	if identity.IsAnonymous() {
		t.Fatal("IdentityOf(user).IsAnonymous() = true")
	}
	if identity.UserID() != "u1" {
		t.Fatalf("UserID() = %q, want u1", identity.UserID())
	}
	if identity.User() != user {
		t.Fatal("User() did not round-trip")
	}
}
