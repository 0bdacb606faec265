// MusicMatch - Content-Based Track Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musicmatch

/*
Package supervisor runs the long-lived parts of the MusicMatch server under
suture v4.

The tree is small:

	RootSupervisor ("musicmatch")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── MaintenanceService (cache expiry, uptime gauge)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The recommendation engine itself is not supervised. It is an immutable
in-memory value built once at startup; a failure there aborts the process
before the tree starts.

Supervisor events (service start, failure, backoff) are logged through
sutureslog, using a slog.Logger backed by the zerolog stream:

	slogger := logging.NewSlogLogger(logging.WithComponent("supervisor"))
	tree, err := supervisor.NewSupervisorTree(slogger, supervisor.DefaultTreeConfig())
	tree.AddMaintenanceService(services.NewMaintenanceService(engine, cfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err = tree.Serve(ctx)

Services return nil to stop cleanly, or an error to be restarted with
backoff. Context cancellation requests shutdown.
*/
package supervisor
