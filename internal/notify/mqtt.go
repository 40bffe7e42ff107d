// Package notify publishes panel status to an MQTT broker and accepts on/off
// commands from it.
package notify

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	appLog "dsipanel/internal/log"
	"dsipanel/internal/model"
)

const publishTimeout = 2 * time.Second

// Config holds MQTT connection settings. An empty Host disables MQTT.
type Config struct {
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Topic    string `yaml:"topic" json:"topic"`
	ClientID string `yaml:"client_id" json:"client_id"`
	Username string `yaml:"username,omitempty" json:"username,omitempty"`
	Password string `yaml:"password,omitempty" json:"-"`
}

// Target is what remote commands act on. panel.Guard implements it.
type Target interface {
	Prepare() error
	Unprepare() error
}

// mqttClient is the subset of paho.Client the publisher uses.
type mqttClient interface {
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
	Subscribe(topic string, qos byte, callback paho.MessageHandler) paho.Token
}

// Publisher mirrors the panel status on <topic> (retained), announces
// availability on <topic>/availability and listens for "on"/"off" on
// <topic>/set.
type Publisher struct {
	client   mqttClient
	clientID string
	topic    string
	target   Target
	enabled  bool
}

// New creates a publisher. Returns a disabled no-op publisher if host is
// empty. target may be nil, in which case commands are ignored.
func New(cfg Config, target Target) (*Publisher, error) {
	p := &Publisher{
		clientID: cfg.ClientID,
		topic:    strings.TrimSuffix(cfg.Topic, "/"),
		target:   target,
	}
	if p.clientID == "" {
		p.clientID = "panelctl-" + uuid.NewString()[:8]
	}
	if p.topic == "" {
		p.topic = "panelctl/state"
	}

	if cfg.Host == "" {
		appLog.Info("mqtt disabled (no host configured)")
		return p, nil
	}
	if cfg.Port == 0 {
		cfg.Port = 1883
	}
	p.enabled = true

	opts := paho.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%d", cfg.Host, cfg.Port)).
		SetClientID(p.clientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetKeepAlive(60*time.Second).
		SetWill(p.availabilityTopic(), "offline", 1, true).
		SetConnectionLostHandler(p.handleConnectionLost).
		SetOnConnectHandler(p.handleConnect)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username).SetPassword(cfg.Password)
	}
	p.client = paho.NewClient(opts)
	return p, nil
}

func (p *Publisher) availabilityTopic() string { return p.topic + "/availability" }
func (p *Publisher) commandTopic() string      { return p.topic + "/set" }

// Enabled reports whether a broker is configured.
func (p *Publisher) Enabled() bool { return p.enabled }

// ClientID returns the MQTT client id in use.
func (p *Publisher) ClientID() string { return p.clientID }

// Connect starts the connection. With SetConnectRetry the broker may still
// be unreachable when Connect returns; the first status is published once
// the session comes up.
func (p *Publisher) Connect() error {
	if !p.enabled {
		return nil
	}
	if token := p.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt: connect: %w", token.Error())
	}
	return nil
}

// Disconnect publishes "offline" and closes the session. No-op if disabled.
func (p *Publisher) Disconnect() {
	if !p.enabled {
		return
	}
	p.publish(p.availabilityTopic(), "offline")
	p.client.Disconnect(250)
}

// Publish sends st as retained JSON. It is meant as a panel.Guard observer
// and never blocks longer than a couple of seconds.
func (p *Publisher) Publish(st model.Status) {
	if !p.enabled {
		return
	}
	payload, err := json.Marshal(st)
	if err != nil {
		appLog.Error("mqtt: encode status", err)
		return
	}
	p.publish(p.topic, payload)
}

func (p *Publisher) publish(topic string, payload interface{}) {
	token := p.client.Publish(topic, 1, true, payload)
	if !token.WaitTimeout(publishTimeout) {
		appLog.Warn("mqtt: publish timed out", "topic", topic)
		return
	}
	if err := token.Error(); err != nil {
		appLog.Error("mqtt: publish failed", err, "topic", topic)
	}
}

func (p *Publisher) handleConnect(_ paho.Client) {
	appLog.Info("mqtt connection established", "client_id", p.clientID)
	p.publish(p.availabilityTopic(), "online")
	if p.target == nil {
		return
	}
	token := p.client.Subscribe(p.commandTopic(), 1, func(_ paho.Client, msg paho.Message) {
		p.dispatch(msg.Payload())
	})
	if token.WaitTimeout(publishTimeout) && token.Error() != nil {
		appLog.Error("mqtt: subscribe failed", token.Error(), "topic", p.commandTopic())
	}
}

func (p *Publisher) handleConnectionLost(_ paho.Client, err error) {
	appLog.Warn("mqtt connection lost", "err", err.Error())
}

// dispatch runs a remote command. Errors are reported through the status
// the target publishes, so they are only logged here.
func (p *Publisher) dispatch(payload []byte) {
	cmd := strings.ToLower(strings.TrimSpace(string(payload)))
	var err error
	switch cmd {
	case "on", "prepare":
		err = p.target.Prepare()
	case "off", "unprepare":
		err = p.target.Unprepare()
	default:
		appLog.Warn("mqtt: unknown command", "payload", cmd)
		return
	}
	if err != nil {
		appLog.Error("mqtt: command failed", err, "command", cmd)
	}
}
