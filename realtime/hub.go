package realtime

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks live websocket connections for drivers (keyed by driver name)
// and clients (keyed by email) and pushes booking events to them.
type Hub struct {
	mu       sync.RWMutex
	byDriver map[string]*wsConn
	byClient map[string]*wsConn
}

func NewHub() *Hub {
	return &Hub{byDriver: make(map[string]*wsConn), byClient: make(map[string]*wsConn)}
}

// wsConn wraps a websocket connection with a write mutex to serialize writes.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (h *Hub) RegisterDriver(name string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.byDriver[name]; ok {
		old.conn.Close()
	}
	h.byDriver[name] = &wsConn{conn: conn}
}

func (h *Hub) UnregisterDriver(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.byDriver[name]; ok {
		c.conn.Close()
		delete(h.byDriver, name)
	}
}

func (h *Hub) RegisterClient(email string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.byClient[email]; ok {
		old.conn.Close()
	}
	h.byClient[email] = &wsConn{conn: conn}
}

func (h *Hub) UnregisterClient(email string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.byClient[email]; ok {
		c.conn.Close()
		delete(h.byClient, email)
	}
}

// NotifyDriver sends a typed event payload to the driver if connected.
func (h *Hub) NotifyDriver(name string, event string, payload any) error {
	h.mu.RLock()
	wc, ok := h.byDriver[name]
	h.mu.RUnlock()
	if !ok {
		return nil
	}
	return wc.write(event, payload, "driver "+name)
}

// NotifyClient sends a typed event payload to the client if connected.
func (h *Hub) NotifyClient(email string, event string, payload any) error {
	h.mu.RLock()
	wc, ok := h.byClient[email]
	h.mu.RUnlock()
	if !ok {
		return nil
	}
	return wc.write(event, payload, "client "+email)
}

func (wc *wsConn) write(event string, payload any, who string) error {
	msg := map[string]any{"event": event, "data": payload}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	if err := wc.conn.WriteJSON(msg); err != nil {
		log.Printf("ws: write to %s failed for event %s: %v", who, event, err)
		return err
	}
	return nil
}

// RentalBookedPayload is pushed to the client and the assigned driver when a
// booking commits.
type RentalBookedPayload struct {
	RentalID    string `json:"rental_id"`
	RentDate    string `json:"rent_date"`
	ClientEmail string `json:"client_email"`
	DriverName  string `json:"driver_name"`
	VehicleID   string `json:"vehicle_id"`
	ModelID     string `json:"model_id"`
}
