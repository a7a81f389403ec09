// Package deviceingest subscribes to device snapshots over MQTT and feeds
// them into composite ingestion.
package deviceingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/sathsarabandaraj/petcare/internal/config"
	"github.com/sathsarabandaraj/petcare/internal/telemetry"
)

// Ingester stores a device snapshot.  *telemetry.Handler implements it.
type Ingester interface {
	Ingest(ctx context.Context, snap telemetry.Snapshot) error
}

// Subscriber owns the MQTT connection and the topic subscription.
type Subscriber struct {
	client  mqtt.Client
	cfg     config.MQTT
	ingest  Ingester
	timeout time.Duration
}

// Connect dials the broker described by cfg.
func Connect(cfg config.MQTT) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		slog.Warn("mqtt connection lost", "broker", cfg.Broker, "error", err)
	})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect %s: %w", cfg.Broker, token.Error())
	}

	slog.Info("mqtt connected", "broker", cfg.Broker, "client_id", cfg.ClientID)
	return client, nil
}

// NewSubscriber creates a Subscriber.  Call Start to begin receiving.
func NewSubscriber(client mqtt.Client, cfg config.MQTT, ingest Ingester) *Subscriber {
	return &Subscriber{
		client:  client,
		cfg:     cfg,
		ingest:  ingest,
		timeout: 10 * time.Second,
	}
}

// Start subscribes to the configured topic.
func (s *Subscriber) Start() error {
	token := s.client.Subscribe(s.cfg.Topic, s.cfg.QoS, func(_ mqtt.Client, msg mqtt.Message) {
		if err := s.handle(msg.Topic(), msg.Payload()); err != nil {
			slog.Error("device snapshot dropped", "topic", msg.Topic(), "error", err)
		}
	})
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt subscribe %s: %w", s.cfg.Topic, token.Error())
	}

	slog.Info("mqtt subscribed", "topic", s.cfg.Topic, "qos", s.cfg.QoS)
	return nil
}

// Stop unsubscribes and disconnects, waiting up to 250ms for in-flight work.
func (s *Subscriber) Stop() {
	if token := s.client.Unsubscribe(s.cfg.Topic); token.Wait() && token.Error() != nil {
		slog.Warn("mqtt unsubscribe", "topic", s.cfg.Topic, "error", token.Error())
	}
	s.client.Disconnect(250)
}

// handle decodes one payload and ingests it.  Each message gets its own
// deadline since the broker callback has no request context.
func (s *Subscriber) handle(topic string, payload []byte) error {
	var snap telemetry.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.ingest.Ingest(ctx, snap); err != nil {
		return fmt.Errorf("ingest snapshot: %w", err)
	}

	slog.Debug("device snapshot stored", "topic", topic, "vitals", snap.HasVitals())
	return nil
}
