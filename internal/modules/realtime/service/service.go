package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// Channel names a snapshot stream. Every publish carries the FULL snapshot
// for its channel: subscribers must replace their local copy wholesale, there
// are no incremental diffs.
type Channel string

const (
	ChannelDirectory Channel = "directory"
	ChannelNotices   Channel = "notices"
	ChannelSettings  Channel = "settings"
)

func (c Channel) Valid() bool {
	switch c {
	case ChannelDirectory, ChannelNotices, ChannelSettings:
		return true
	}
	return false
}

func (c Channel) redisKey() string { return fmt.Sprintf("snapshot:%s", c) }

// RedisKeyFor exposes the pub/sub key for a channel to the websocket layer.
func RedisKeyFor(c Channel) string { return c.redisKey() }

// SnapshotPublisher fans a full snapshot out to every subscriber of a
// channel.
type SnapshotPublisher interface {
	Publish(ctx context.Context, channel Channel, snapshot any)
}

type redisPublisher struct {
	rdb *redis.Client
}

// NewPublisher returns a redis-backed publisher. A nil client degrades to a
// no-op so the rest of the app works without redis.
func NewPublisher(rdb *redis.Client) SnapshotPublisher {
	return &redisPublisher{rdb: rdb}
}

func (p *redisPublisher) Publish(ctx context.Context, channel Channel, snapshot any) {
	if p.rdb == nil {
		return
	}

	envelope := struct {
		Channel Channel `json:"channel"`
		Data    any     `json:"data"`
	}{Channel: channel, Data: snapshot}

	payload, err := json.Marshal(envelope)
	if err != nil {
		log.Printf("realtime: failed to marshal %s snapshot: %v", channel, err)
		return
	}

	if err := p.rdb.Publish(ctx, channel.redisKey(), payload).Err(); err != nil {
		log.Printf("realtime: failed to publish %s snapshot: %v", channel, err)
	}
}
