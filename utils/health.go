package utils

import (
	"net"
	"net/url"
	"sync"
	"time"
)

// HealthStatus represents current reachability of the interpreter backend.
type HealthStatus struct {
	Interpreter bool      `json:"interpreter"`
	CheckedAt   time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic reachability checks against the
// interpreter host and updates in-memory state. The first check runs
// right away so the snapshot is populated before the first tick.
func StartHealthMonitor(interpreterBaseURL string) {
	go func() {
		refreshHealth(interpreterBaseURL)

		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			refreshHealth(interpreterBaseURL)
		}
	}()
}

func refreshHealth(baseURL string) {
	healthy := dialCheck(baseURL)
	mu.Lock()
	currentHealth = HealthStatus{
		Interpreter: healthy,
		CheckedAt:   time.Now(),
	}
	mu.Unlock()
}

func dialCheck(baseURL string) bool {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return false
	}
	host := u.Host
	if u.Port() == "" {
		port := "443"
		if u.Scheme == "http" {
			port = "80"
		}
		host = net.JoinHostPort(u.Hostname(), port)
	}
	conn, err := net.DialTimeout("tcp", host, 3*time.Second)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
