package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	pkglog "github.com/weiawesome/wes-io-social/pkg/log"
)

// KafkaPublisher implements Publisher using Apache Kafka. Channels map to
// topics and the event subject id is the message key, so all events about
// one entity land on one partition in order.
type KafkaPublisher struct {
	producer *kafka.Producer
	config   KafkaConfig
	doneCh   chan struct{}
}

// NewKafkaPublisher creates a new Kafka-based publisher.
func NewKafkaPublisher(cfg KafkaConfig) (*KafkaPublisher, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": cfg.Brokers,
		"acks":              "1",
		"linger.ms":         5,
		"compression.type":  "snappy",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	kp := &KafkaPublisher{
		producer: p,
		config:   cfg,
		doneCh:   make(chan struct{}),
	}

	go kp.deliveryReportHandler()

	if err := kp.ensureTopics(); err != nil {
		l := pkglog.L()
		l.Warn().Err(err).Msg("failed to ensure kafka activity topics (may already exist)")
	}

	return kp, nil
}

// ensureTopics creates one topic per activity channel if missing.
func (k *KafkaPublisher) ensureTopics() error {
	admin, err := kafka.NewAdminClientFromProducer(k.producer)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer admin.Close()

	partitions := k.config.Partitions
	if partitions <= 0 {
		partitions = 4
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	topics := make([]kafka.TopicSpecification, 0, len(ActivityEntities))
	for _, entity := range ActivityEntities {
		topic, err := channelToTopic(ActivityChannel(entity))
		if err != nil {
			return err
		}
		topics = append(topics, kafka.TopicSpecification{
			Topic:             topic,
			NumPartitions:     partitions,
			ReplicationFactor: 1,
		})
	}

	results, err := admin.CreateTopics(ctx, topics)
	if err != nil {
		return fmt.Errorf("failed to create topics: %w", err)
	}

	l := pkglog.L()
	for _, r := range results {
		if r.Error.Code() != kafka.ErrNoError && r.Error.Code() != kafka.ErrTopicAlreadyExists {
			l.Warn().Str("topic", r.Topic).Str("error", r.Error.String()).Msg("failed to create kafka topic")
		}
	}

	return nil
}

// deliveryReportHandler processes delivery reports from the producer.
func (k *KafkaPublisher) deliveryReportHandler() {
	l := pkglog.L()
	for e := range k.producer.Events() {
		switch ev := e.(type) {
		case *kafka.Message:
			if ev.TopicPartition.Error != nil {
				l.Warn().Err(ev.TopicPartition.Error).Msg("kafka activity event delivery failed")
			}
		}
	}
	close(k.doneCh)
}

// Publish produces the event on the topic derived from the channel.
func (k *KafkaPublisher) Publish(ctx context.Context, channel string, event *Event) error {
	msg, err := kafkaMessage(channel, event)
	if err != nil {
		return err
	}
	if err := k.producer.Produce(msg, nil); err != nil {
		return fmt.Errorf("produce %s to %s: %w", event.Type, *msg.TopicPartition.Topic, err)
	}
	return nil
}

// kafkaMessage keys the message by subject id so one entity's events keep
// their order within a partition.
func kafkaMessage(channel string, event *Event) (*kafka.Message, error) {
	topic, err := channelToTopic(channel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse channel: %w", err)
	}
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal %s event: %w", event.Type, err)
	}
	return &kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &topic,
			Partition: kafka.PartitionAny,
		},
		Key:   []byte(event.SubjectID),
		Value: data,
	}, nil
}

// Close flushes pending messages and closes the producer.
func (k *KafkaPublisher) Close() error {
	k.producer.Flush(5000)
	k.producer.Close()
	<-k.doneCh
	return nil
}
