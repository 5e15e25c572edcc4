package events

import (
	"encoding/json"
	"reflect"
	"time"
)

// IntegrationEvent es el sobre que viaja por el broker.
type IntegrationEvent struct {
	Type          string          `json:"type"`
	AggregateType string          `json:"aggregateType"`
	AggregateID   string          `json:"aggregateId"`
	Timestamp     time.Time       `json:"timestamp"`
	Data          json.RawMessage `json:"data"`
}

// PartitionKey mantiene en orden los eventos de un mismo agregado.
func (e IntegrationEvent) PartitionKey() string {
	return e.AggregateID
}

// EventMetadata indica a qué tipo se decodifica un payload y a qué topic va.
type EventMetadata struct {
	Type  reflect.Type
	Topic string
}
