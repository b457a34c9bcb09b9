package server

import (
	"context"
	"log/slog"
	"time"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// PingHealthChecker is healthy while its dependency answers a ping within timeout.
type PingHealthChecker struct {
	name    string
	pinger  Pinger
	timeout time.Duration
}

func NewPingHealthChecker(name string, pinger Pinger, timeout time.Duration) *PingHealthChecker {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &PingHealthChecker{name: name, pinger: pinger, timeout: timeout}
}

func (hc *PingHealthChecker) Healthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, hc.timeout)
	defer cancel()

	if err := hc.pinger.Ping(ctx); err != nil {
		slog.Warn("Health check failed", "dependency", hc.name, "error", err)
		return false
	}
	return true
}
