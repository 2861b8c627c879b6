package events

import (
	"area-api/internal/app/config"
	"area-api/internal/app/ports"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

const (
	maxQoS            = 2
	disconnectQuiesce = 500 // milliseconds
	keepAlive         = 60 * time.Second
)

var ErrPublishFailed = errors.New("mqtt publish failed")

// mqttClient is the subset of the paho client the publisher needs.
type mqttClient interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) pahomqtt.Token
	Disconnect(quiesce uint)
}

// MQTTEventPublisher sends area events as JSON to an MQTT broker.
type MQTTEventPublisher struct {
	client         mqttClient
	prefix         string
	qos            byte
	publishTimeout time.Duration
}

// Enforce compile-time conformance to the interface
var _ ports.EventPublisher = (*MQTTEventPublisher)(nil)

// NewMQTTEventPublisher connects to the configured broker and returns a publisher.
func NewMQTTEventPublisher(cfg config.MQTTConfig) (*MQTTEventPublisher, error) {
	if cfg.BrokerURL == "" {
		return nil, errors.New("mqtt broker_url is empty")
	}
	if cfg.QoS < 0 || cfg.QoS > maxQoS {
		return nil, fmt.Errorf("mqtt qos must be 0..%d, got %d", maxQoS, cfg.QoS)
	}

	opts := pahomqtt.NewClientOptions()
	opts.AddBroker(cfg.BrokerURL)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(cfg.ConnectTimeout)
	opts.SetKeepAlive(keepAlive)
	opts.SetOnConnectHandler(func(_ pahomqtt.Client) {
		log.Info().Str("broker", cfg.BrokerURL).Msg("mqtt connected")
	})
	opts.SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
		log.Warn().Err(err).Str("broker", cfg.BrokerURL).Msg("mqtt connection lost")
	})

	client := pahomqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(cfg.ConnectTimeout) {
		return nil, fmt.Errorf("mqtt connect to %s: timeout after %v", cfg.BrokerURL, cfg.ConnectTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect to %s: %w", cfg.BrokerURL, err)
	}
	return newMQTTEventPublisher(client, cfg), nil
}

func newMQTTEventPublisher(client mqttClient, cfg config.MQTTConfig) *MQTTEventPublisher {
	return &MQTTEventPublisher{
		client:         client,
		prefix:         strings.TrimSuffix(cfg.TopicPrefix, "/"),
		qos:            byte(cfg.QoS),
		publishTimeout: cfg.PublishTimeout,
	}
}

// Topic returns <prefix>/projects/<projectId>/areas/<areaId>/<event>.
func Topic(prefix string, e ports.AreaEvent) string {
	t := fmt.Sprintf("projects/%d/areas/%d/%s", e.ProjectID, e.AreaID, e.Type)
	if prefix == "" {
		return t
	}
	return prefix + "/" + t
}

func (p *MQTTEventPublisher) Publish(ctx context.Context, e ports.AreaEvent) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	topic := Topic(p.prefix, e)
	token := p.client.Publish(topic, p.qos, false, payload)

	timeout := p.publishTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-token.Done():
	case <-ctx.Done():
		return fmt.Errorf("%w: %s: %w", ErrPublishFailed, topic, ctx.Err())
	case <-timer.C:
		return fmt.Errorf("%w: %s: timeout after %v", ErrPublishFailed, topic, timeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPublishFailed, topic, err)
	}
	return nil
}

func (p *MQTTEventPublisher) Close() {
	p.client.Disconnect(disconnectQuiesce)
}
