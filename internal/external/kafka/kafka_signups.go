package helpnet

import (
	"context"
	"fmt"
	"os"

	"github.com/segmentio/kafka-go"
)

type KafkaSignup struct {
	reader *kafka.Reader
}

func GetNewReader(topic string) (reader *KafkaSignup, err error) {
	// config
	kafkaurl := os.Getenv("KAFKA_SIGNUP_URL")
	if kafkaurl == "" {
		return nil, fmt.Errorf("env KAFKA_SIGNUP_URL is not set")
	}
	kafkaport := os.Getenv("KAFKA_SIGNUP_PORT")
	if kafkaport == "" {
		return nil, fmt.Errorf("env KAFKA_SIGNUP_PORT is not set")
	}

	kafkaconfig := kafka.ReaderConfig{
		Brokers: []string{kafkaurl + ":" + kafkaport},
		Topic:   topic,
		GroupID: "signups_helpnet",
	}
	return &KafkaSignup{kafka.NewReader(kafkaconfig)}, nil
}

func (k *KafkaSignup) GetNewMessage(ctx context.Context) (signupJson string, err error) {
	msg, err := k.reader.ReadMessage(ctx)
	if err != nil {
		return "", err
	}
	return string(msg.Value), nil
}

func (k *KafkaSignup) CloseReader() {
	k.reader.Close()
}
