package kafka

import (
	"context"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesArguments(t *testing.T) {
	_, err := New(DriverKafkaGo, nil, "executions")
	require.Error(t, err)

	_, err = New(DriverKafkaGo, []string{"localhost:9092"}, "")
	require.Error(t, err)

	_, err = New("carrier-pigeon", []string{"localhost:9092"}, "executions")
	require.Error(t, err)

	p, err := New(DriverKafkaGo, []string{"localhost:9092"}, "executions")
	require.NoError(t, err)
	assert.IsType(t, &Producer{}, p)
	require.NoError(t, p.Close())
}

func TestSyncProducerPublishesBatch(t *testing.T) {
	mock := mocks.NewSyncProducer(t, nil)
	mock.ExpectSendMessageWithCheckerFunctionAndSucceed(func(v []byte) error {
		assert.Equal(t, `{"a":1}`, string(v))
		return nil
	})
	mock.ExpectSendMessageAndSucceed()

	p := WrapSyncProducer(mock, "executions")
	err := p.Publish(context.Background(),
		Message{Key: []byte("1"), Value: []byte(`{"a":1}`)},
		Message{Key: []byte("2"), Value: []byte(`{"a":2}`)},
	)
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestSyncProducerSurfacesBrokerError(t *testing.T) {
	mock := mocks.NewSyncProducer(t, nil)
	mock.ExpectSendMessageAndFail(sarama.ErrNotLeaderForPartition)

	p := WrapSyncProducer(mock, "executions")
	err := p.Publish(context.Background(), Message{Value: []byte("x")})
	require.Error(t, err)
	require.NoError(t, p.Close())
}

func TestSyncProducerHonoursCancelledContext(t *testing.T) {
	mock := mocks.NewSyncProducer(t, nil)
	p := WrapSyncProducer(mock, "executions")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, p.Publish(ctx, Message{Value: []byte("x")}), context.Canceled)
	require.NoError(t, p.Close())
}
