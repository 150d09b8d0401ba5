package mtproto

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestTermAuth_ReadsAnswersInOrder(t *testing.T) {
	var out bytes.Buffer
	a := NewTermAuth(strings.NewReader("+79990001122\n12345\nhunter2"), &out, "")

	ctx := context.Background()

	phone, err := a.Phone(ctx)
	if err != nil || phone != "+79990001122" {
		t.Fatalf("phone: got %q, %v", phone, err)
	}
	code, err := a.Code(ctx, nil)
	if err != nil || code != "12345" {
		t.Fatalf("code: got %q, %v", code, err)
	}
	// last line has no trailing newline
	password, err := a.Password(ctx)
	if err != nil || password != "hunter2" {
		t.Fatalf("password: got %q, %v", password, err)
	}

	if !strings.Contains(out.String(), "Code from Telegram") {
		t.Fatalf("expected prompts to be written, got %q", out.String())
	}
}

func TestTermAuth_PresetPhone(t *testing.T) {
	var out bytes.Buffer
	a := NewTermAuth(strings.NewReader(""), &out, "+10000000000")

	phone, err := a.Phone(context.Background())
	if err != nil || phone != "+10000000000" {
		t.Fatalf("phone: got %q, %v", phone, err)
	}
	if out.Len() != 0 {
		t.Fatalf("no prompt expected for preset phone, got %q", out.String())
	}
}

func TestTermAuth_EOF(t *testing.T) {
	a := NewTermAuth(strings.NewReader(""), &bytes.Buffer{}, "")

	if _, err := a.Code(context.Background(), nil); err == nil {
		t.Fatalf("expected error on empty input")
	}
}

func TestTermAuth_SignUpRejected(t *testing.T) {
	if _, err := (TermAuth{}).SignUp(context.Background()); err == nil {
		t.Fatalf("expected sign up to be rejected")
	}
}
