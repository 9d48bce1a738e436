package notification

import (
	"Config_Service_Microservice/internal/config-service/model"
	"Config_Service_Microservice/pkg/infra"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var (
	ErrPublishBufferFull = errors.New("publish buffer full, message dropped")
	ErrPublisherClosed   = errors.New("publisher closed")
)

type Publisher interface {
	// Publish JSON-encodes payload and queues it for topic, keyed by key so one resource stays on one partition.
	// It never waits on the broker: a full queue drops the message and returns ErrPublishBufferFull.
	Publish(ctx context.Context, topic string, key string, payload interface{}) error
	// Close flushes queued messages and closes the writer.
	Close() error
}

type kafkaPublisher struct {
	writer       infra.KafkaWriter
	writeTimeout time.Duration
	logger       *zap.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan kafka.Message
	done   chan struct{}
}

func (k *kafkaPublisher) Publish(_ context.Context, topic string, key string, payload interface{}) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("Publisher.Publish encode: %w", err)
	}
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.closed {
		return fmt.Errorf("Publisher.Publish %s: %w", topic, ErrPublisherClosed)
	}
	select {
	case k.queue <- kafka.Message{Topic: topic, Key: []byte(key), Value: b}:
		return nil
	default:
		return fmt.Errorf("Publisher.Publish %s: %w", topic, ErrPublishBufferFull)
	}
}

func (k *kafkaPublisher) drain() {
	defer close(k.done)
	for msg := range k.queue {
		ctx, cancel := context.WithTimeout(context.Background(), k.writeTimeout)
		err := k.writer.WriteMessages(ctx, msg)
		cancel()
		if err != nil {
			k.logger.Error("failed to write message to kafka",
				zap.String("topic", msg.Topic),
				zap.ByteString("key", msg.Key),
				zap.Error(err))
		}
	}
}

func (k *kafkaPublisher) Close() error {
	k.mu.Lock()
	if !k.closed {
		k.closed = true
		close(k.queue)
	}
	k.mu.Unlock()
	<-k.done
	return k.writer.Close()
}

func NewKafkaPublisher(writer infra.KafkaWriter, writeTimeout time.Duration, bufferSize int, logger *zap.Logger) Publisher {
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	if bufferSize <= 0 {
		bufferSize = 1024
	}
	k := &kafkaPublisher{
		writer:       writer,
		writeTimeout: writeTimeout,
		logger:       logger,
		queue:        make(chan kafka.Message, bufferSize),
		done:         make(chan struct{}),
	}
	go k.drain()
	return k
}

func NewChangeEvent(action string, resourceType string, resourceID string, data map[string]interface{}, environment string) model.ChangeEvent {
	return model.ChangeEvent{
		EventID:      uuid.NewString(),
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Data:         data,
		Timestamp:    time.Now().UTC(),
		Environment:  environment,
	}
}
