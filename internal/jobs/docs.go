// Package jobs provides scheduled background tasks for the fulfillment
// engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the engine needs.
//
// # Available Jobs
//
// 1. CourierAssignmentJob - Runs every five seconds to put available
// couriers on deliveries still waiting for one.
// 2. OrderEscalationJob - Runs every minute to bump long-waiting active
// orders to URGENT.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(autoAssignHandler, escalateHandler, escalateAfter, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs treat "nothing to do" outcomes as idle rounds and only log
// unexpected errors. Failed job starts stop any already running jobs.
package jobs
