package notify

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

var ErrPublishTimeout = errors.New("mqtt publish timed out")

// MQTTConfig describes the broker connection.
type MQTTConfig struct {
	Broker   string `yaml:"broker"`
	Topic    string `yaml:"topic"`
	ClientID string `yaml:"client_id"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	QoS      byte   `yaml:"qos"`

	// ConnectTimeout bounds the wait for the first connection. Zero means 5s.
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

// MQTT publishes each event as JSON to <topic>/<event name>.
type MQTT struct {
	client  mqtt.Client
	topic   string
	qos     byte
	log     *log.Logger
	Timeout time.Duration
}

func generateClientID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return "lynxfb_" + hex.EncodeToString(b)
}

// DialMQTT connects to the broker. If the broker does not answer within
// cfg.ConnectTimeout the client is returned anyway and keeps retrying in the
// background. Until then Notify gives up after Timeout.
func DialMQTT(cfg MQTTConfig, logger *log.Logger) (*MQTT, error) {
	if logger == nil {
		logger = log.Default()
	}
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	if cfg.ClientID != "" {
		opts.SetClientID(cfg.ClientID)
	} else {
		opts.SetClientID(generateClientID())
	}
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(10 * time.Second)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)

	opts.SetOnConnectHandler(func(client mqtt.Client) {
		logger.Println("MQTT: Connected to broker")
	})
	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		logger.Printf("MQTT: Connection lost: %v", err)
	})
	opts.SetReconnectingHandler(func(client mqtt.Client, opts *mqtt.ClientOptions) {
		logger.Println("MQTT: Attempting to reconnect...")
	})

	wait := cfg.ConnectTimeout
	if wait <= 0 {
		wait = 5 * time.Second
	}
	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(wait) {
		logger.Printf("MQTT: Broker %s not reachable yet, retrying every %v", cfg.Broker, 10*time.Second)
	} else if err := token.Error(); err != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", err)
	} else {
		logger.Printf("MQTT: Successfully connected to broker: %s", cfg.Broker)
	}

	return NewMQTT(client, cfg.Topic, cfg.QoS, logger), nil
}

// NewMQTT wraps an already configured client.
func NewMQTT(client mqtt.Client, topic string, qos byte, logger *log.Logger) *MQTT {
	if logger == nil {
		logger = log.Default()
	}
	if topic == "" {
		topic = "lynxfb"
	}
	return &MQTT{
		client:  client,
		topic:   strings.TrimSuffix(topic, "/"),
		qos:     qos,
		log:     logger,
		Timeout: 5 * time.Second,
	}
}

// Topic returns the topic ev is published to.
func (m *MQTT) Topic(ev Event) string {
	return m.topic + "/" + ev.Name
}

func (m *MQTT) Notify(ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	token := m.client.Publish(m.Topic(ev), m.qos, false, payload)
	if !token.WaitTimeout(m.Timeout) {
		return fmt.Errorf("%w: %s", ErrPublishTimeout, m.Topic(ev))
	}
	if err := token.Error(); err != nil {
		m.log.Printf("MQTT: Failed to publish %s: %v", ev.Name, err)
		return err
	}
	return nil
}

// Close disconnects from the broker, waiting up to 250ms for in-flight work.
func (m *MQTT) Close() {
	m.client.Disconnect(250)
}
