// Package influxdb provides InfluxDB connectivity for Gray Access Core.
//
// It wraps the official influxdb-client-go v2 library to store the
// access event history: every transaction row the panel commits is
// written as a point in the configured bucket, queryable by door and
// event type.
//
// # Usage
//
//	client, err := influxdb.Connect(cfg.InfluxDB)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	client.WriteAccessEvent(influxdb.AccessEvent{
//	    Card:      "123456",
//	    Door:      1,
//	    EventType: 0,
//	    Time:      eventTime,
//	})
//
// # Thread Safety
//
// All methods are safe for concurrent use from multiple goroutines.
// The underlying write API uses non-blocking batched writes.
//
// # Error Handling
//
// Write operations are non-blocking and batch errors are delivered
// via the SetOnError callback. Connection and health check errors are
// returned directly.
package influxdb
