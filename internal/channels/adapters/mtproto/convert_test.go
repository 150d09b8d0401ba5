package mtproto

import (
	"testing"
	"time"

	"github.com/gotd/td/tg"
)

func TestPostFromMessage_WithViews(t *testing.T) {
	m := &tg.Message{ID: 10, Date: 1735732800}
	m.SetViews(5)

	p, ok := postFromMessage(m)
	if !ok {
		t.Fatalf("expected message to be present")
	}
	if p.ID != 10 {
		t.Fatalf("expected id=10, got %d", p.ID)
	}
	if p.Views == nil || *p.Views != 5 {
		t.Fatalf("expected views=5, got %v", p.Views)
	}
	if !p.Date.Equal(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", p.Date)
	}
	if p.EditDate != nil {
		t.Fatalf("expected no edit date, got %v", p.EditDate)
	}
}

func TestPostFromMessage_Edited(t *testing.T) {
	m := &tg.Message{ID: 11, Date: 1735732800}
	m.SetEditDate(1735736400)

	p, ok := postFromMessage(m)
	if !ok {
		t.Fatalf("expected message to be present")
	}
	if p.Views != nil {
		t.Fatalf("expected views absent, got %d", *p.Views)
	}
	if p.EditDate == nil || p.EditDate.Sub(p.Date) != time.Hour {
		t.Fatalf("unexpected edit date: %v", p.EditDate)
	}
}

func TestPostFromMessage_ServiceAndEmpty(t *testing.T) {
	p, ok := postFromMessage(&tg.MessageService{ID: 3, Date: 1735732800})
	if !ok || p.ID != 3 || p.Views != nil {
		t.Fatalf("unexpected service message conversion: %+v ok=%v", p, ok)
	}

	if _, ok := postFromMessage(&tg.MessageEmpty{ID: 4}); ok {
		t.Fatalf("empty message must be reported as absent")
	}
}

func TestEntityFromChannel(t *testing.T) {
	ch := &tg.Channel{ID: 100, AccessHash: 200, Title: "News"}
	ch.SetUsername("news")
	ch.SetParticipantsCount(1234)

	e := entityFromChannel(ch)
	if e.ID != 100 || e.AccessHash != 200 {
		t.Fatalf("unexpected handle: %+v", e)
	}
	if e.Title == nil || *e.Title != "News" {
		t.Fatalf("unexpected title: %v", e.Title)
	}
	if e.Username == nil || *e.Username != "news" {
		t.Fatalf("unexpected username: %v", e.Username)
	}
	if e.Subscribers == nil || *e.Subscribers != 1234 {
		t.Fatalf("unexpected subscribers: %v", e.Subscribers)
	}
}

func TestEntityFromChannel_OptionalFieldsAbsent(t *testing.T) {
	e := entityFromChannel(&tg.Channel{ID: 1})
	if e.Title != nil || e.Username != nil || e.Subscribers != nil {
		t.Fatalf("expected optional fields absent, got %+v", e)
	}
}

func TestEntityFromChannel_CollectibleUsername(t *testing.T) {
	ch := &tg.Channel{ID: 1}
	ch.SetUsernames([]tg.Username{
		{Username: "old"},
		{Username: "fresh", Active: true},
	})

	e := entityFromChannel(ch)
	if e.Username == nil || *e.Username != "fresh" {
		t.Fatalf("expected active username, got %v", e.Username)
	}
}

func TestMessagesOf(t *testing.T) {
	msgs := []tg.MessageClass{&tg.Message{ID: 1}, &tg.Message{ID: 2}}

	cases := []tg.MessagesMessagesClass{
		&tg.MessagesMessages{Messages: msgs},
		&tg.MessagesMessagesSlice{Messages: msgs},
		&tg.MessagesChannelMessages{Messages: msgs},
	}
	for _, c := range cases {
		got, err := messagesOf(c)
		if err != nil {
			t.Fatalf("%T: unexpected error: %v", c, err)
		}
		if len(got) != 2 {
			t.Fatalf("%T: expected 2 messages, got %d", c, len(got))
		}
	}

	got, err := messagesOf(&tg.MessagesMessagesNotModified{})
	if err != nil || len(got) != 0 {
		t.Fatalf("not modified: expected empty result, got %v, %v", got, err)
	}
}
