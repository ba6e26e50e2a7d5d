// Package kafka publishes execution events to a Kafka topic. Two producer
// implementations are available behind Publisher: segmentio/kafka-go and
// IBM/sarama.
package kafka

import (
	"context"
	"fmt"
	"strings"
)

// Message is one keyed event.
type Message struct {
	Key   []byte
	Value []byte
}

// Publisher delivers messages synchronously: a nil error means the broker
// acknowledged every message.
type Publisher interface {
	Publish(ctx context.Context, msgs ...Message) error
	Close() error
}

const (
	DriverKafkaGo = "kafka-go"
	DriverSarama  = "sarama"
)

// New builds a publisher for driver.
func New(driver string, brokers []string, topic string) (Publisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka: no brokers configured")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka: no topic configured")
	}
	switch strings.ToLower(driver) {
	case DriverKafkaGo, "":
		return NewProducer(brokers, topic), nil
	case DriverSarama:
		return NewSyncProducer(brokers, topic)
	default:
		return nil, fmt.Errorf("kafka: unknown driver %q", driver)
	}
}
