package notify

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"dsipanel/internal/model"
)

type doneToken struct{ err error }

func (t doneToken) Wait() bool                     { return true }
func (t doneToken) WaitTimeout(time.Duration) bool { return true }
func (t doneToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t doneToken) Error() error { return t.err }

type published struct {
	topic    string
	retained bool
	payload  interface{}
}

type fakeClient struct {
	pubs       []published
	subscribed []string
	handler    paho.MessageHandler
}

func (f *fakeClient) Connect() paho.Token { return doneToken{} }
func (f *fakeClient) Disconnect(uint)     {}

func (f *fakeClient) Publish(topic string, _ byte, retained bool, payload interface{}) paho.Token {
	f.pubs = append(f.pubs, published{topic, retained, payload})
	return doneToken{}
}

func (f *fakeClient) Subscribe(topic string, _ byte, cb paho.MessageHandler) paho.Token {
	f.subscribed = append(f.subscribed, topic)
	f.handler = cb
	return doneToken{}
}

type fakeTarget struct {
	prepares, unprepares int
	err                  error
}

func (t *fakeTarget) Prepare() error   { t.prepares++; return t.err }
func (t *fakeTarget) Unprepare() error { t.unprepares++; return t.err }

func enabledPublisher(target Target) (*Publisher, *fakeClient) {
	fc := &fakeClient{}
	return &Publisher{client: fc, clientID: "test", topic: "panel/rg353", target: target, enabled: true}, fc
}

func TestNew_DisabledWithoutHost(t *testing.T) {
	p, err := New(Config{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.Enabled() {
		t.Error("publisher enabled without host")
	}
	if !strings.HasPrefix(p.ClientID(), "panelctl-") {
		t.Errorf("client id = %q", p.ClientID())
	}
	// All calls are no-ops.
	if err := p.Connect(); err != nil {
		t.Error(err)
	}
	p.Publish(model.Status{State: "On"})
	p.Disconnect()
}

func TestNew_KeepsConfiguredClientID(t *testing.T) {
	p, err := New(Config{ClientID: "kitchen-panel", Topic: "home/panel/"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.ClientID() != "kitchen-panel" || p.topic != "home/panel" {
		t.Errorf("id=%q topic=%q", p.ClientID(), p.topic)
	}
}

func TestPublish_RetainedJSON(t *testing.T) {
	p, fc := enabledPublisher(nil)
	p.Publish(model.Status{Panel: model.Panel{Variant: "anbernic,rg353p-panel"}, State: "On"})

	if len(fc.pubs) != 1 {
		t.Fatalf("published %d messages", len(fc.pubs))
	}
	pub := fc.pubs[0]
	if pub.topic != "panel/rg353" || !pub.retained {
		t.Errorf("pub = %+v", pub)
	}
	var st model.Status
	if err := json.Unmarshal(pub.payload.([]byte), &st); err != nil {
		t.Fatal(err)
	}
	if st.State != "On" || st.Variant != "anbernic,rg353p-panel" {
		t.Errorf("decoded %+v", st)
	}
}

func TestHandleConnect_AnnouncesAndSubscribes(t *testing.T) {
	target := &fakeTarget{}
	p, fc := enabledPublisher(target)
	p.handleConnect(nil)

	if len(fc.pubs) != 1 || fc.pubs[0].topic != "panel/rg353/availability" || fc.pubs[0].payload != "online" {
		t.Errorf("pubs = %+v", fc.pubs)
	}
	if len(fc.subscribed) != 1 || fc.subscribed[0] != "panel/rg353/set" {
		t.Errorf("subscribed = %v", fc.subscribed)
	}
}

func TestHandleConnect_NoTargetNoSubscribe(t *testing.T) {
	p, fc := enabledPublisher(nil)
	p.handleConnect(nil)
	if len(fc.subscribed) != 0 {
		t.Errorf("subscribed without target: %v", fc.subscribed)
	}
}

func TestDispatch(t *testing.T) {
	target := &fakeTarget{}
	p, _ := enabledPublisher(target)

	p.dispatch([]byte(" ON\n"))
	p.dispatch([]byte("off"))
	p.dispatch([]byte("unprepare"))
	p.dispatch([]byte("reboot"))

	if target.prepares != 1 || target.unprepares != 2 {
		t.Errorf("prepares=%d unprepares=%d", target.prepares, target.unprepares)
	}

	target.err = errors.New("busy")
	p.dispatch([]byte("on"))
	if target.prepares != 2 {
		t.Error("command with failing target not dispatched")
	}
}
