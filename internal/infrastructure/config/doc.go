// Package config loads and validates Gray Access Core configuration.
//
// Configuration comes from a single YAML file, with environment
// variable overrides for values that differ per host or carry secrets
// (GRAYACCESS_DATABASE_PATH, GRAYACCESS_MQTT_HOST,
// GRAYACCESS_MQTT_USERNAME, GRAYACCESS_MQTT_PASSWORD,
// GRAYACCESS_INFLUXDB_TOKEN).
//
// # Usage
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    return err
//	}
//	log := logging.New(cfg.Logging, version)
//
// Missing values fall back to defaults suitable for development; the
// MQTT and InfluxDB sections are only validated when enabled, since
// both sinks are optional.
package config
