// Package metrics defines all custom Prometheus metrics for the employee
// management API. It is the single source of truth for metric names, labels,
// and help strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "employee_system"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome ("success" or "failure").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// CredentialMigrationsTotal counts legacy-to-bcrypt credential migrations
// performed during login, by result ("migrated" or "failed").
var CredentialMigrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "credential_migrations_total",
		Help:      "Total number of legacy credential migrations attempted at login.",
	},
	[]string{"result"},
)

// ── Leave sweep metrics ───────────────────────────────────────────────────────

// SweepRunsTotal counts executions of the overdue-leave completion sweep.
var SweepRunsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leave_sweep_runs_total",
		Help:      "Total number of leave completion sweep executions.",
	},
)

// SweepErrorsTotal counts sweep executions that failed before or during the batch.
var SweepErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leave_sweep_errors_total",
		Help:      "Total number of leave completion sweeps that returned an error.",
	},
)

// LeaveCompletedTotal counts leave requests transitioned to completed by the sweep.
var LeaveCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leave_completed_total",
		Help:      "Total number of leave requests transitioned to completed.",
	},
)

// ── Punch metrics ─────────────────────────────────────────────────────────────

// PunchesTotal counts recorded time-clock punches, by kind ("in"/"out").
var PunchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "punches_total",
		Help:      "Total number of time-clock punches recorded, by kind.",
	},
	[]string{"kind"},
)

// PunchesDedupTotal counts duplicate-punch suppressions.
var PunchesDedupTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "punches_dedup_total",
		Help:      "Total number of punches rejected as rapid duplicates.",
	},
)
