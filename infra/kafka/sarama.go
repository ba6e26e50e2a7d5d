package kafka

import (
	"context"

	"github.com/IBM/sarama"
)

// SyncProducer publishes through a sarama sync producer.
type SyncProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewSyncProducer(brokers []string, topic string) (*SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return WrapSyncProducer(producer, topic), nil
}

// WrapSyncProducer adapts an existing sarama producer.
func WrapSyncProducer(p sarama.SyncProducer, topic string) *SyncProducer {
	return &SyncProducer{producer: p, topic: topic}
}

// Publish sends msgs as one batch. sarama does not take a context, so ctx
// is only checked before sending.
func (p *SyncProducer) Publish(ctx context.Context, msgs ...Message) error {
	if len(msgs) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	out := make([]*sarama.ProducerMessage, len(msgs))
	for i, m := range msgs {
		out[i] = &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.ByteEncoder(m.Key),
			Value: sarama.ByteEncoder(m.Value),
		}
	}
	return p.producer.SendMessages(out)
}

func (p *SyncProducer) Close() error {
	return p.producer.Close()
}
