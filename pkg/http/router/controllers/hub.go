package controllers

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"sort"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"go.uber.org/zap"
)

type User struct {
	io   sync.Mutex
	conn io.ReadWriteCloser

	id  uint
	hub *Hub
}

func (u *User) GetID() uint {
	return u.id
}

func (u *User) readRequest() (*turnsRequest, error) {
	u.io.Lock()
	defer u.io.Unlock()

	h, r, err := wsutil.NextReader(u.conn, ws.StateServerSide)
	if err != nil {
		return nil, err
	}
	if h.OpCode.IsControl() {
		return nil, wsutil.ControlFrameHandler(u.conn, ws.StateServerSide)(h, r)
	}

	req := &turnsRequest{}
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(req); err != nil {
		return nil, err
	}
	return req, nil
}

// HandleTurnRequest. read one {"node_id": .., "from": ..} message and answer with the turns.
// request/service errors are sent back to the user, only connection errors are returned.
func (u *User) HandleTurnRequest() error {
	req, err := u.readRequest()
	if err != nil {
		u.conn.Close()
		return err
	}

	if req == nil {
		return nil
	}

	if err := validateStruct(req); err != nil {
		return u.write(wsErrorEnvelope(http.StatusBadRequest, err.Error()))
	}

	in, turns, err := u.hub.intersectionService.GetTurns(req.NodeID, req.From)
	if err != nil {
		u.hub.log.Debug("websocket turn request failed", zap.Uint("user", u.id), zap.Error(err))
		return u.write(wsErrorEnvelope(statusOf(err), err.Error()))
	}

	return u.write(envelope{"data": NewTurnsResponse(in, req.From, turns)})
}

func (u *User) write(x interface{}) error {
	w := wsutil.NewWriter(u.conn, ws.StateServerSide, ws.OpText)
	encoder := json.NewEncoder(w)

	u.io.Lock()
	defer u.io.Unlock()

	if err := encoder.Encode(x); err != nil {
		return err
	}

	return w.Flush()
}

func wsErrorEnvelope(status int, message string) envelope {
	return envelope{"error": map[string]string{
		"code":    http.StatusText(status),
		"message": message,
	}}
}

type Hub struct {
	mu  sync.RWMutex
	seq uint
	us  []*User
	ns  map[uint]*User

	intersectionService IntersectionService
	log                 *zap.Logger
}

func NewHub(intersectionService IntersectionService, log *zap.Logger) *Hub {
	hub := &Hub{
		ns:                  make(map[uint]*User),
		us:                  make([]*User, 0),
		intersectionService: intersectionService,
		log:                 log,
	}

	return hub
}

func (h *Hub) Register(conn net.Conn) *User {
	user := &User{
		hub:  h,
		conn: conn,
	}

	h.mu.Lock()
	user.id = h.seq
	h.ns[user.id] = user
	h.us = append(h.us, user)

	h.seq++
	h.mu.Unlock()

	return user
}

func (h *Hub) Remove(user *User) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.ns[user.id]; !ok {
		return
	}
	delete(h.ns, user.id)

	// us is sorted by id, ids are assigned in increasing order
	i := sort.Search(len(h.us), func(i int) bool {
		return h.us[i].id >= user.id
	})

	newUs := make([]*User, len(h.us)-1)
	copy(newUs[:i], h.us[:i])
	copy(newUs[i:], h.us[i+1:])
	h.us = newUs
}

func (h *Hub) RemoveAllUser() {
	h.mu.RLock()
	users := make([]*User, len(h.us))
	copy(users, h.us)
	h.mu.RUnlock()

	for _, user := range users {
		user.conn.Close()
		h.Remove(user)
	}
}

func (h *Hub) NumberOfUsers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.us)
}
