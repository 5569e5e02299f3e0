package influxdb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nerrad567/gray-access-core/internal/infrastructure/config"
)

// These tests run without a server; they cover configuration gating
// and the disconnected no-op paths.

func TestConnectDisabled(t *testing.T) {
	_, err := Connect(config.InfluxDBConfig{Enabled: false})
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("Connect() error = %v, want ErrDisabled", err)
	}
}

func TestCloseNil(t *testing.T) {
	client := &Client{}
	if err := client.Close(); err != nil {
		t.Errorf("Close() on zero client error = %v, want nil", err)
	}
}

func TestHealthCheckDisconnected(t *testing.T) {
	client := &Client{}
	if err := client.HealthCheck(context.Background()); !errors.Is(err, ErrNotConnected) {
		t.Errorf("HealthCheck() error = %v, want ErrNotConnected", err)
	}
}

func TestWritesDisconnectedNoOp(t *testing.T) {
	client := &Client{}

	// None of these should panic on a disconnected client.
	client.WriteAccessEvent(AccessEvent{Card: "1", Door: 1, Time: time.Now()})
	client.WriteRowEvent("user", "write", 3)
	client.WritePointWithTime("custom", nil, map[string]interface{}{"v": 1}, time.Now())
	client.Flush()
}
