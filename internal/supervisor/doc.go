// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

/*
Package supervisor provides process supervision for Stylist using suture v4.

Long-running services are organized into three layers so a failure in one
restarts only that layer:

	SupervisorTree ("stylist")
	├── data-layer
	│   └── CacheMaintenanceService (LRU expiry sweep or badger value-log GC)
	├── messaging-layer
	│   └── ingest.Service (watermill router over NATS JetStream or gochannel)
	└── api-layer
	    └── HTTPServerService

Failures decay at FailureDecay per second; once FailureThreshold is exceeded
the layer backs off for FailureBackoff before restarting. Canceling the
context passed to Serve stops every service, waiting up to ShutdownTimeout.

Supervisor events are logged through sutureslog into the application's
zerolog logger:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLoggerFor("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddMessagingService(ingestService)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("api")))
	return tree.Serve(ctx)

Service wrappers live in the services subpackage.
*/
package supervisor
