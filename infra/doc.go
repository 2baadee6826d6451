// Package infra holds the adapters behind the core interfaces: the zerolog
// logger, Prometheus and InfluxDB sinks, the Paho MQTT publisher and the
// JSONL/SQLite run-log stores. Nothing under core imports these packages.
package infra
