// Package mqtt provides the MQTT client for Gray Access event fan-out.
//
// Every committed device data row is published as a JSON message on a
// table-scoped topic, so other services (dashboards, alerting, sync
// agents) can follow access activity live:
//
//	grayaccess/event/{table}/{op}   one message per committed row
//	grayaccess/system/status        retained online/offline status
//
// The client maintains a Last Will and Testament on the status topic
// so subscribers can detect a crash, and reconnects automatically with
// exponential backoff.
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	topic := mqtt.Topics{}.TableEvent("transaction", "write")
//	if err := client.PublishEvent(topic, payload); err != nil {
//	    return err
//	}
package mqtt
