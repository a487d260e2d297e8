package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"wiser_schedule/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func TestWantUpdate(t *testing.T) {
	store := service.Update{Event: service.EventWiserUpdated, Hub: "hub1"}
	edit := service.Update{Event: service.EventScheduleChanged, Hub: "hub1", Session: "s1"}

	cases := []struct {
		name         string
		u            service.Update
		hub, session string
		want         bool
	}{
		{"no_filters", store, "", "", true},
		{"hub_match", store, "hub1", "", true},
		{"hub_mismatch", store, "hub2", "", false},
		{"session_match", edit, "", "s1", true},
		{"session_mismatch", edit, "", "s2", false},
		{"session_filter_ignores_store_events", store, "", "s2", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := wantUpdate(tc.u, tc.hub, tc.session); got != tc.want {
				t.Fatalf("wantUpdate = %v, want %v", got, tc.want)
			}
		})
	}
}

type wsTestEnv struct {
	updates *service.Broadcaster
	srv     *httptest.Server
}

func newWSEnv(t *testing.T) *wsTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := &service.Service{Updates: service.NewBroadcaster()}
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/ws", h.wsConnect)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return &wsTestEnv{updates: s.Updates, srv: srv}
}

func (e *wsTestEnv) dial(t *testing.T, rawQuery string) *websocket.Conn {
	t.Helper()
	u, _ := url.Parse(e.srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	u.RawQuery = rawQuery
	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) wsEnvelope {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var env wsEnvelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read: %v", err)
	}
	return env
}

func TestWebSocket_ConnectAndReceiveUpdate(t *testing.T) {
	env := newWSEnv(t)
	conn := env.dial(t, "")

	if got := readEnvelope(t, conn); got.Type != "connected" {
		t.Fatalf("first envelope type = %q, want connected", got.Type)
	}

	// The subscriber channel is registered before the connected envelope is
	// written, so a publish after the first read cannot be missed.
	env.updates.Publish(service.Update{Event: service.EventWiserUpdated, Hub: "hub1"})

	got := readEnvelope(t, conn)
	if got.Type != service.EventWiserUpdated {
		t.Fatalf("type = %q, want %q", got.Type, service.EventWiserUpdated)
	}
	raw, _ := json.Marshal(got.Data)
	var u service.Update
	if err := json.Unmarshal(raw, &u); err != nil {
		t.Fatalf("unmarshal update: %v", err)
	}
	if u.Hub != "hub1" {
		t.Fatalf("hub = %q, want hub1", u.Hub)
	}
}

func TestWebSocket_HubFilter(t *testing.T) {
	env := newWSEnv(t)
	conn := env.dial(t, "hub=hub1")

	if got := readEnvelope(t, conn); got.Type != "connected" {
		t.Fatalf("first envelope type = %q", got.Type)
	}

	env.updates.Publish(service.Update{Event: service.EventWiserUpdated, Hub: "other"})
	env.updates.Publish(service.Update{Event: service.EventWiserUpdated, Hub: "hub1"})

	got := readEnvelope(t, conn)
	raw, _ := json.Marshal(got.Data)
	var u service.Update
	_ = json.Unmarshal(raw, &u)
	if u.Hub != "hub1" {
		t.Fatalf("filtered stream delivered hub %q", u.Hub)
	}
}

func TestWebSocket_SessionFilter(t *testing.T) {
	env := newWSEnv(t)
	conn := env.dial(t, "session=mine")

	if got := readEnvelope(t, conn); got.Type != "connected" {
		t.Fatalf("first envelope type = %q", got.Type)
	}

	env.updates.Publish(service.Update{Event: service.EventScheduleChanged, Session: "theirs"})
	env.updates.Publish(service.Update{Event: service.EventScheduleChanged, Session: "mine"})

	got := readEnvelope(t, conn)
	raw, _ := json.Marshal(got.Data)
	var u service.Update
	_ = json.Unmarshal(raw, &u)
	if u.Session != "mine" {
		t.Fatalf("filtered stream delivered session %q", u.Session)
	}
}

func TestWebSocket_ClientCloseStopsHandler(t *testing.T) {
	env := newWSEnv(t)
	conn := env.dial(t, "")
	_ = readEnvelope(t, conn)

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	_ = conn.Close()

	// Publishing after the client is gone must not block or panic even with
	// the subscriber's buffer saturated.
	for i := 0; i < 64; i++ {
		env.updates.Publish(service.Update{Event: service.EventWiserUpdated, Hub: "hub1"})
	}
}

func TestWebSocket_UpgradeRequired(t *testing.T) {
	env := newWSEnv(t)
	resp, err := http.Get(env.srv.URL + "/ws")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("plain GET status = %d, want 400", resp.StatusCode)
	}
}
