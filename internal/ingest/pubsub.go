// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	natsgo "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/tomtom215/stylist/internal/config"
)

// Backend names reported in logs and health output.
const (
	BackendMemory    = "memory"
	BackendJetStream = "jetstream"
)

// PubSub is a publisher and subscriber pair sharing one transport.
type PubSub struct {
	Publisher  message.Publisher
	Subscriber message.Subscriber
	Backend    string
}

// Close closes the subscriber and then the publisher.
func (ps *PubSub) Close() error {
	subErr := ps.Subscriber.Close()
	if ps.Backend == BackendMemory {
		// gochannel is one object behind both interfaces.
		return subErr
	}
	if err := ps.Publisher.Close(); err != nil {
		return err
	}
	return subErr
}

// NewMemoryPubSub returns an in-process gochannel transport.
func NewMemoryPubSub(logger watermill.LoggerAdapter) *PubSub {
	gc := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
	}, logger)
	return &PubSub{Publisher: gc, Subscriber: gc, Backend: BackendMemory}
}

// NewJetStreamPubSub connects to url, makes sure the ingestion stream exists
// and returns a durable queue subscriber bound to it.
func NewJetStreamPubSub(ctx context.Context, url string, cfg *config.NATSConfig, logger watermill.LoggerAdapter) (*PubSub, error) {
	if err := provisionStream(ctx, url, cfg); err != nil {
		return nil, err
	}

	natsOpts := []natsgo.Option{
		natsgo.Name("stylist-ingest"),
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(-1),
		natsgo.ReconnectWait(2 * time.Second),
		natsgo.DisconnectErrHandler(func(_ *natsgo.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", err, nil)
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			logger.Info("NATS reconnected", watermill.LogFields{"url": nc.ConnectedUrl()})
		}),
	}

	pub, err := wmNats.NewPublisher(wmNats.PublisherConfig{
		URL:         url,
		NatsOptions: natsOpts,
		Marshaler:   &wmNats.NATSMarshaler{},
		JetStream: wmNats.JetStreamConfig{
			AutoProvision: false,
			TrackMsgId:    true,
			PublishOptions: []natsgo.PubOpt{
				natsgo.RetryAttempts(3),
				natsgo.RetryWait(100 * time.Millisecond),
			},
		},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create watermill publisher: %w", err)
	}

	sub, err := wmNats.NewSubscriber(wmNats.SubscriberConfig{
		URL:              url,
		QueueGroupPrefix: cfg.QueueGroup,
		SubscribersCount: cfg.SubscribersCount,
		AckWaitTimeout:   30 * time.Second,
		CloseTimeout:     cfg.RouterCloseTimeout,
		NatsOptions:      natsOpts,
		Unmarshaler:      &wmNats.NATSMarshaler{},
		JetStream: wmNats.JetStreamConfig{
			AutoProvision: false,
			AckAsync:      false,
			DurablePrefix: cfg.DurableName,
			SubscribeOptions: []natsgo.SubOpt{
				natsgo.BindStream(StreamName),
				natsgo.DeliverAll(),
				natsgo.AckExplicit(),
				natsgo.MaxDeliver(cfg.RouterRetryCount + 5),
			},
		},
	}, logger)
	if err != nil {
		_ = pub.Close()
		return nil, fmt.Errorf("create watermill subscriber: %w", err)
	}

	return &PubSub{Publisher: pub, Subscriber: sub, Backend: BackendJetStream}, nil
}

// provisionStream opens a short-lived connection to create or update the
// ingestion stream before subscribers bind to it.
func provisionStream(ctx context.Context, url string, cfg *config.NATSConfig) error {
	nc, err := natsgo.Connect(url, natsgo.Name("stylist-provision"))
	if err != nil {
		return fmt.Errorf("connect to NATS: %w", err)
	}
	defer nc.Close()

	js, err := jetstream.New(nc)
	if err != nil {
		return fmt.Errorf("create JetStream context: %w", err)
	}
	return ensureStream(ctx, js, streamSubjects(cfg))
}

// streamSubjects lists the subjects the ingestion stream must capture.
func streamSubjects(cfg *config.NATSConfig) []string {
	subjects := []string{cfg.GarmentTopic, cfg.ProfileTopic}
	if cfg.RouterPoisonQueueEnabled && cfg.RouterPoisonQueueTopic != "" {
		subjects = append(subjects, cfg.RouterPoisonQueueTopic)
	}
	return subjects
}
