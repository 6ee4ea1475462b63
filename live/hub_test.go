package live

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestBroadcastToRoom(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	go hub.Run(ctx)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Attach(conn, r.URL.Query().Get("room"))
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "?room=" + TournamentRoom("t1")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.RoomSize(TournamentRoom("t1")) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never joined")
		}
		time.Sleep(10 * time.Millisecond)
	}

	hub.BroadcastToRoom(RoomPlayers, Message{Type: TypePlayersChanged})
	hub.BroadcastToRoom(TournamentRoom("t1"), Message{Type: TypeTournamentUpdated, RoomID: TournamentRoom("t1")})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != TypeTournamentUpdated || msg.RoomID != "tournament_t1" {
		t.Errorf("msg=%+v", msg)
	}
}

func TestBroadcastToEmptyRoom(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	hub.BroadcastToRoom("nobody", Message{Type: TypeVenuesChanged})
	if hub.RoomSize("nobody") != 0 {
		t.Error("room must stay empty")
	}
}

func TestValidRoom(t *testing.T) {
	tests := map[string]bool{
		RoomPlayers:          true,
		RoomDashboard:        true,
		TournamentRoom("e1"): true,
		"tournament_":        false,
		"admin":              false,
		"":                   false,
	}
	for room, want := range tests {
		if got := ValidRoom(room); got != want {
			t.Errorf("ValidRoom(%q) = %v, want %v", room, got, want)
		}
	}
}
