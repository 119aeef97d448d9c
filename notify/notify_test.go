package notify_test

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gorilla/websocket"

	"github.com/starsoc/linux-star-x7/notify"
)

var quiet = log.New(io.Discard, "", 0)

type publish struct {
	topic   string
	qos     byte
	payload []byte
}

// fakeClient implements only what MQTT uses.
type fakeClient struct {
	mqtt.Client
	published    []publish
	err          error
	hang         bool
	disconnected bool
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.published = append(c.published, publish{topic, qos, payload.([]byte)})
	return &fakeToken{err: c.err, hang: c.hang}
}

func (c *fakeClient) Disconnect(quiesce uint) { c.disconnected = true }

type fakeToken struct {
	mqtt.Token
	err  error
	hang bool
}

func (t *fakeToken) Wait() bool                     { return !t.hang }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return !t.hang }
func (t *fakeToken) Error() error                   { return t.err }

func TestMQTT(t *testing.T) {
	c := &fakeClient{}
	m := notify.NewMQTT(c, "display/lynx/", 1, quiet)

	ev := notify.NewEvent(notify.PlugIn)
	ev.Mode = "1024x768-16@60"
	if err := m.Notify(ev); err != nil {
		t.Fatal(err)
	}
	if len(c.published) != 1 {
		t.Fatalf("published %d messages", len(c.published))
	}
	p := c.published[0]
	if p.topic != "display/lynx/plugin" || p.qos != 1 {
		t.Errorf("topic %q qos %d", p.topic, p.qos)
	}
	var got notify.Event
	if err := json.Unmarshal(p.payload, &got); err != nil {
		t.Fatal(err)
	}
	if got.ID != ev.ID || got.Name != "plugin" || got.Mode != ev.Mode {
		t.Errorf("payload %+v", got)
	}
	if !strings.Contains(string(p.payload), `"event":"plugin"`) {
		t.Errorf("payload %s", p.payload)
	}

	m.Close()
	if !c.disconnected {
		t.Error("not disconnected")
	}
}

func TestMQTTErrors(t *testing.T) {
	broken := errors.New("broken pipe")
	m := notify.NewMQTT(&fakeClient{err: broken}, "", 0, quiet)
	if err := m.Notify(notify.NewEvent(notify.PlugOut)); !errors.Is(err, broken) {
		t.Errorf("got %v", err)
	}

	m = notify.NewMQTT(&fakeClient{hang: true}, "", 0, quiet)
	ev := notify.NewEvent(notify.PlugOut)
	if got := m.Topic(ev); got != "lynxfb/plugout" {
		t.Errorf("default topic %q", got)
	}
	if err := m.Notify(ev); !errors.Is(err, notify.ErrPublishTimeout) {
		t.Errorf("got %v", err)
	}
}

func TestDialUnreachable(t *testing.T) {
	done := make(chan *notify.MQTT, 1)
	go func() {
		m, err := notify.DialMQTT(notify.MQTTConfig{
			Broker:         "tcp://127.0.0.1:1",
			ConnectTimeout: 200 * time.Millisecond,
		}, quiet)
		if err != nil {
			t.Error(err)
		}
		done <- m
	}()
	select {
	case m := <-done:
		if m != nil {
			m.Close()
		}
	case <-time.After(5 * time.Second):
		t.Fatal("dial blocked on an unreachable broker")
	}
}

func TestMulti(t *testing.T) {
	var got []string
	e1 := errors.New("one")
	e2 := errors.New("two")
	m := notify.Multi{
		notify.Func(func(ev notify.Event) error { got = append(got, "a:"+ev.Name); return e1 }),
		nil,
		notify.Func(func(ev notify.Event) error { got = append(got, "b:"+ev.Name); return e2 }),
	}
	err := m.Notify(notify.NewEvent(notify.ModeSet))
	if !errors.Is(err, e1) || !errors.Is(err, e2) {
		t.Errorf("got %v", err)
	}
	if strings.Join(got, ",") != "a:modeset,b:modeset" {
		t.Errorf("called %v", got)
	}
	if err := (notify.Multi{}).Notify(notify.NewEvent(notify.ModeSet)); err != nil {
		t.Errorf("empty: %v", err)
	}
}

func TestHub(t *testing.T) {
	hub := notify.NewHub(quiet)
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	deadline := time.Now().Add(5 * time.Second)
	for hub.Clients() != 1 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	ev := notify.NewEvent(notify.Failure)
	ev.Error = "writing CRT: bus fault"
	if err := hub.Notify(ev); err != nil {
		t.Fatal(err)
	}
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var got notify.Event
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatal(err)
	}
	if got.ID != ev.ID || got.Error != ev.Error || got.Name != "error" {
		t.Errorf("got %+v", got)
	}

	conn.Close()
	deadline = time.Now().Add(5 * time.Second)
	for hub.Clients() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never removed")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
