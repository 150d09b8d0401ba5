package mtproto

import (
	"fmt"
	"time"

	"github.com/gotd/td/tg"

	"zyra-views/internal/channels/core/domain"
)

func entityFromChannel(ch *tg.Channel) *domain.Entity {
	e := &domain.Entity{
		ID:         ch.ID,
		AccessHash: ch.AccessHash,
	}

	if ch.Title != "" {
		title := ch.Title
		e.Title = &title
	}

	if u, ok := ch.GetUsername(); ok && u != "" {
		e.Username = &u
	} else if names, ok := ch.GetUsernames(); ok {
		for _, n := range names {
			if n.Active {
				username := n.Username
				e.Username = &username
				break
			}
		}
	}

	if n, ok := ch.GetParticipantsCount(); ok {
		v := int64(n)
		e.Subscribers = &v
	}

	return e
}

// messagesOf extracts messages from any history-like response.
func messagesOf(res tg.MessagesMessagesClass) ([]tg.MessageClass, error) {
	switch r := res.(type) {
	case *tg.MessagesChannelMessages:
		return r.Messages, nil
	case *tg.MessagesMessagesSlice:
		return r.Messages, nil
	case *tg.MessagesMessages:
		return r.Messages, nil
	case *tg.MessagesMessagesNotModified:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected messages result type: %T", res)
	}
}

// postFromMessage reports false for empty (deleted or never existing)
// messages. Service messages exist but carry no views.
func postFromMessage(msg tg.MessageClass) (domain.PostSample, bool) {
	switch m := msg.(type) {
	case *tg.Message:
		p := domain.PostSample{
			ID:   m.ID,
			Date: unixUTC(m.Date),
		}
		if v, ok := m.GetViews(); ok {
			views := int64(v)
			p.Views = &views
		}
		if d, ok := m.GetEditDate(); ok && d > 0 {
			edited := unixUTC(d)
			p.EditDate = &edited
		}
		return p, true
	case *tg.MessageService:
		return domain.PostSample{ID: m.ID, Date: unixUTC(m.Date)}, true
	default:
		return domain.PostSample{}, false
	}
}

func unixUTC(sec int) time.Time {
	return time.Unix(int64(sec), 0).UTC()
}
