package app

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gorilla/websocket"

	"github.com/Donutboy2003/HackED2026/internal/config"
	"github.com/Donutboy2003/HackED2026/internal/orientation"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// tiltHub caches the latest sample and fans it out to websocket clients.
type tiltHub struct {
	mu        sync.RWMutex
	last      orientation.Angles
	haveTilt  bool
	clients   map[*websocket.Conn]bool
	clientsMu sync.Mutex
}

func newTiltHub() *tiltHub {
	return &tiltHub{clients: make(map[*websocket.Conn]bool)}
}

func (h *tiltHub) update(a orientation.Angles) {
	h.mu.Lock()
	h.last = a
	h.haveTilt = true
	h.mu.Unlock()

	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(a); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *tiltHub) latest() (orientation.Angles, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.last, h.haveTilt
}

func (h *tiltHub) add(conn *websocket.Conn) {
	h.clientsMu.Lock()
	h.clients[conn] = true
	h.clientsMu.Unlock()
}

func (h *tiltHub) remove(conn *websocket.Conn) {
	h.clientsMu.Lock()
	if h.clients[conn] {
		conn.Close()
		delete(h.clients, conn)
	}
	h.clientsMu.Unlock()
}

// RunWeb subscribes to the tilt topic and serves the latest sample over
// an HTTP JSON endpoint plus a websocket push stream.
func RunWeb() error {
	cfg := config.Get()
	hub := newTiltHub()

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDWeb)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("web: connected to MQTT broker at %s", cfg.MQTTBroker)

	token := client.Subscribe(cfg.TopicTilt, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var a orientation.Angles
		if err := json.Unmarshal(msg.Payload(), &a); err != nil {
			log.Printf("web: tilt unmarshal error: %v", err)
			return
		}
		hub.update(a)
	})
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("web: subscribed to %s", cfg.TopicTilt)

	// JSON API endpoint: latest tilt sample
	http.HandleFunc("/api/tilt", func(w http.ResponseWriter, r *http.Request) {
		a, ok := hub.latest()
		if !ok {
			http.Error(w, "no data yet", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(a); err != nil {
			log.Printf("web: json encode error: %v", err)
		}
	})

	// Websocket push: one JSON object per sample
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("web: websocket upgrade error: %v", err)
			return
		}
		hub.add(conn)

		// Drain (and ignore) client messages so pings and closes are
		// processed; writes happen from the MQTT callback.
		go func() {
			defer hub.remove(conn)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	})

	// Static files from ./web as the root
	fs := http.FileServer(http.Dir("web"))
	http.Handle("/", fs)

	addr := fmt.Sprintf(":%d", cfg.WebServerPort)
	log.Printf("web: server listening on %s", addr)
	return http.ListenAndServe(addr, nil)
}
