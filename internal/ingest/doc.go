// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

/*
Package ingest applies classifier output and profile updates to the wardrobe
store.

Two paths share one Applier:

  - Messaging: a Watermill router consumes the garment and profile topics,
    from NATS JetStream when nats.enabled is true and from an in-process
    gochannel otherwise.
  - HTTP: the API's PUT handlers call the Applier directly.

Applying a garment runs wardrobe.Classify, validates the result with
wardrobe.NewGarment, upserts it and invalidates the user's cached
recommendations. Profile updates follow the same steps.

# Message Handling

	PoisonQueue -> Retry -> Recoverer -> rate limit -> Applier

Payloads that can never be applied (bad JSON, unknown category, missing user)
are logged, counted as invalid and acknowledged. Store failures are retried
with exponential backoff and then moved to the poison topic.

# Topics

	wardrobe.garment.classified   RawGarment JSON
	wardrobe.profile.updated      ProfileUpdate JSON

With JetStream, both topics and the poison topic belong to one stream
(StreamName) created at startup; subscribers bind to it with a durable queue
consumer.

# Embedded Server

When nats.embedded_server is true, EmbeddedServer starts nats-server with
JetStream inside the process before the router connects.
*/
package ingest
