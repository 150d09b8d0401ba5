package mtproto

import (
	"context"
	"fmt"
	"strings"

	"github.com/gotd/td/tg"
	"github.com/gotd/td/tgerr"

	"zyra-views/internal/channels/core/domain"
	"zyra-views/internal/channels/core/ports"
)

var _ ports.ChannelGatewayPort = (*Client)(nil)

func (c *Client) ResolveEntity(ctx context.Context, ref string) (*domain.Entity, error) {
	username := strings.TrimPrefix(ref, "@")
	if username == "" {
		return nil, ports.ErrEntityNotFound
	}

	api, err := c.rpc()
	if err != nil {
		return nil, err
	}

	res, err := api.ContactsResolveUsername(ctx, username)
	if err != nil {
		if tgerr.Is(err, "USERNAME_NOT_OCCUPIED", "USERNAME_INVALID") {
			return nil, fmt.Errorf("%w: %s", ports.ErrEntityNotFound, ref)
		}
		return nil, fmt.Errorf("resolve %s: %w", ref, err)
	}

	peer, ok := res.Peer.(*tg.PeerChannel)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a channel (%T)", ports.ErrEntityNotFound, ref, res.Peer)
	}

	for _, chat := range res.Chats {
		ch, ok := chat.(*tg.Channel)
		if ok && ch.ID == peer.ChannelID {
			return entityFromChannel(ch), nil
		}
	}

	return nil, fmt.Errorf("%w: %s missing from resolve result", ports.ErrEntityNotFound, ref)
}

func (c *Client) FetchRecentMessages(ctx context.Context, e *domain.Entity, limit int) ([]domain.PostSample, error) {
	api, err := c.rpc()
	if err != nil {
		return nil, err
	}

	res, err := api.MessagesGetHistory(ctx, &tg.MessagesGetHistoryRequest{
		Peer:  inputPeer(e),
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	msgs, err := messagesOf(res)
	if err != nil {
		return nil, err
	}

	posts := make([]domain.PostSample, 0, len(msgs))
	for _, m := range msgs {
		if p, ok := postFromMessage(m); ok {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (c *Client) FetchMessageByID(ctx context.Context, e *domain.Entity, id int) (*domain.PostSample, error) {
	api, err := c.rpc()
	if err != nil {
		return nil, err
	}

	res, err := api.ChannelsGetMessages(ctx, &tg.ChannelsGetMessagesRequest{
		Channel: inputChannel(e),
		ID:      []tg.InputMessageClass{&tg.InputMessageID{ID: id}},
	})
	if err != nil {
		if tgerr.Is(err, "MESSAGE_IDS_EMPTY") {
			return nil, nil
		}
		return nil, fmt.Errorf("get message %d: %w", id, err)
	}

	msgs, err := messagesOf(res)
	if err != nil {
		return nil, err
	}

	for _, m := range msgs {
		if p, ok := postFromMessage(m); ok && p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (c *Client) FetchFullChannelInfo(ctx context.Context, e *domain.Entity) (*domain.FullChannelInfo, error) {
	api, err := c.rpc()
	if err != nil {
		return nil, err
	}

	full, err := api.ChannelsGetFullChannel(ctx, inputChannel(e))
	if err != nil {
		return nil, fmt.Errorf("get full channel: %w", err)
	}

	cf, ok := full.FullChat.(*tg.ChannelFull)
	if !ok {
		return nil, fmt.Errorf("unexpected full chat type %T", full.FullChat)
	}

	info := &domain.FullChannelInfo{}
	if n, ok := cf.GetParticipantsCount(); ok {
		v := int64(n)
		info.Subscribers = &v
	}
	return info, nil
}

func inputPeer(e *domain.Entity) *tg.InputPeerChannel {
	return &tg.InputPeerChannel{ChannelID: e.ID, AccessHash: e.AccessHash}
}

func inputChannel(e *domain.Entity) *tg.InputChannel {
	return &tg.InputChannel{ChannelID: e.ID, AccessHash: e.AccessHash}
}
