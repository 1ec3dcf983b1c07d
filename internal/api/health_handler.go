package api

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"
)

// HealthStatus represents the overall health of the system.
type HealthStatus struct {
	Status  string                    `json:"status"` // "healthy", "degraded", "unhealthy"
	Version string                    `json:"version"`
	Uptime  string                    `json:"uptime"`
	Checks  map[string]ComponentCheck `json:"checks"`
}

// ComponentCheck represents the health of a single component.
type ComponentCheck struct {
	Status  string `json:"status"` // "up", "down", "degraded"
	Latency string `json:"latency,omitempty"`
	Message string `json:"message,omitempty"`
}

// HealthChecker provides health check functionality for the service's
// dependencies. The database is the only hard dependency.
type HealthChecker struct {
	db        *sql.DB
	startTime time.Time
}

// NewHealthChecker creates a new HealthChecker. The db may be nil; the
// check then reports "not configured" instead of failing.
func NewHealthChecker(db *sql.DB) *HealthChecker {
	return &HealthChecker{
		db:        db,
		startTime: time.Now(),
	}
}

// HandleHealth returns the health status of all components.
//
//	GET /health
func (hc *HealthChecker) HandleHealth(w http.ResponseWriter, r *http.Request) {
	checks := hc.runAllChecks(r.Context())

	status := HealthStatus{
		Status:  determineOverallStatus(checks),
		Version: apiVersion,
		Uptime:  formatUptime(time.Since(hc.startTime)),
		Checks:  checks,
	}

	// This endpoint always answers 200; the status field in the body
	// carries the verdict. Probes that want a 503 on failure should hit
	// /health/ready instead.
	respondJSON(w, http.StatusOK, status)
}

// HandleLiveness is a liveness probe. It returns 200 whenever the
// server process is running, suitable for Kubernetes/ECS liveness probes.
//
//	GET /health/live
func (hc *HealthChecker) HandleLiveness(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "alive",
		"uptime": formatUptime(time.Since(hc.startTime)),
	})
}

// HandleReadiness checks the critical dependencies and returns 200 only
// when the service is ready to accept traffic. Suitable for readiness
// probes.
//
//	GET /health/ready
func (hc *HealthChecker) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	checks := hc.runAllChecks(r.Context())

	overall := determineOverallStatus(checks)

	ready := overall != "unhealthy"
	httpStatus := http.StatusOK
	if !ready {
		httpStatus = http.StatusServiceUnavailable
	}

	respondJSON(w, httpStatus, map[string]interface{}{
		"ready":  ready,
		"status": overall,
		"checks": checks,
	})
}

func (hc *HealthChecker) runAllChecks(ctx context.Context) map[string]ComponentCheck {
	return map[string]ComponentCheck{
		"database": hc.checkDatabase(ctx),
	}
}

// checkDatabase pings PostgreSQL with a 3-second timeout. A ping that
// succeeds but takes over a second reports the component as degraded
// rather than down.
func (hc *HealthChecker) checkDatabase(ctx context.Context) ComponentCheck {
	if hc.db == nil {
		return ComponentCheck{Status: "down", Message: "not configured"}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	start := time.Now()
	err := hc.db.PingContext(pingCtx)
	latency := time.Since(start)

	if err != nil {
		return ComponentCheck{
			Status:  "down",
			Latency: latency.String(),
			Message: fmt.Sprintf("ping failed: %v", err),
		}
	}

	check := ComponentCheck{Status: "up", Latency: latency.String(), Message: "connected"}
	if latency > time.Second {
		check.Status = "degraded"
		check.Message = fmt.Sprintf("slow response (%s)", latency)
	}
	return check
}

// determineOverallStatus folds the component checks into one verdict:
// "unhealthy" when a configured database is down, "degraded" when any
// check is degraded, "healthy" otherwise.
func determineOverallStatus(checks map[string]ComponentCheck) string {
	if db, ok := checks["database"]; ok && db.Status == "down" {
		// A missing database is a configuration state, not an outage.
		if db.Message != "not configured" {
			return "unhealthy"
		}
	}

	for _, c := range checks {
		if c.Status == "degraded" {
			return "degraded"
		}
		if c.Status == "down" && c.Message != "not configured" {
			return "degraded"
		}
	}

	return "healthy"
}

// HandleDBStats reports connection pool statistics for diagnostics.
//
//	GET /health/db-stats
func (hc *HealthChecker) HandleDBStats(w http.ResponseWriter, r *http.Request) {
	if hc.db == nil {
		respondJSON(w, http.StatusOK, map[string]string{"error": "no database configured"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pingErr := ""
	pingStart := time.Now()
	if err := hc.db.PingContext(ctx); err != nil {
		pingErr = err.Error()
	}
	pingLatency := time.Since(pingStart)

	// Server version and connection count are best-effort; a failed scan
	// leaves the zero value in place.
	var pgVersion string
	hc.db.QueryRowContext(ctx, `SELECT version()`).Scan(&pgVersion)
	var activeConns int
	hc.db.QueryRowContext(ctx, `SELECT count(*) FROM pg_stat_activity WHERE datname = current_database()`).Scan(&activeConns)

	stats := hc.db.Stats()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"pool": map[string]interface{}{
			"max_open":             stats.MaxOpenConnections,
			"open":                 stats.OpenConnections,
			"in_use":               stats.InUse,
			"idle":                 stats.Idle,
			"wait_count":           stats.WaitCount,
			"wait_duration":        stats.WaitDuration.String(),
			"max_idle_closed":      stats.MaxIdleClosed,
			"max_idle_time_closed": stats.MaxIdleTimeClosed,
			"max_lifetime_closed":  stats.MaxLifetimeClosed,
		},
		"ping": map[string]string{
			"latency": pingLatency.String(),
			"error":   pingErr,
		},
		"pg_version":      pgVersion,
		"pg_active_conns": activeConns,
	})
}

// formatUptime renders a duration as "3d 4h 12m 5s", dropping the
// leading units that are zero.
func formatUptime(d time.Duration) string {
	total := int(d.Seconds())
	days := total / 86400
	hours := total / 3600 % 24
	minutes := total / 60 % 60
	seconds := total % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
