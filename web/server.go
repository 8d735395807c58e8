// Package web serves the browser canvas frontend for the tree editor: an
// embedded static page plus a WebSocket JSON-RPC channel that mutates one
// shared in-memory diagram. RPCs are serialized under a single lock, the
// server-side stand-in for the widget's UI event loop.
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/EphraimMeiri/sentence-trees/tree"
)

//go:embed static/*
var staticFS embed.FS

// Server owns the diagram and exposes it to browser clients.
type Server struct {
	log      *zap.Logger
	router   chi.Router
	upgrader websocket.Upgrader

	mu      sync.Mutex // guards diagram; one RPC mutates at a time
	diagram *tree.Diagram

	clientsMu sync.Mutex
	clients   map[string]*wsClient
}

type wsClient struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex // serializes writes to conn
}

type rpcRequest struct {
	ID     any             `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

type rpcResponse struct {
	ID     any       `json:"id"`
	Result any       `json:"result,omitempty"`
	Error  *rpcError `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	codeUnknownMethod = -32601
	codeBadParams     = -32602
	codeEditorError   = -32000 // the two user-facing editor failures
)

// NewServer creates a web server around the given diagram.
func NewServer(d *tree.Diagram, log *zap.Logger) *Server {
	s := &Server{
		log:     log,
		diagram: d,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[string]*wsClient),
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestLogger(log))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.HandleFunc("/ws", s.handleWebSocket)
	sub, err := fs.Sub(staticFS, "static")
	if err == nil {
		r.Handle("/*", http.FileServer(http.FS(sub)))
	}
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	client := &wsClient{id: uuid.NewString(), conn: conn}
	s.clientsMu.Lock()
	s.clients[client.id] = client
	s.clientsMu.Unlock()
	s.log.Info("client connected", zap.String("client", client.id))

	defer func() {
		conn.Close()
		s.clientsMu.Lock()
		delete(s.clients, client.id)
		s.clientsMu.Unlock()
		s.log.Info("client disconnected", zap.String("client", client.id))
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var req rpcRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			continue
		}
		resp, mutated := s.handleRPC(req)
		data, _ := json.Marshal(resp)
		client.mu.Lock()
		_ = conn.WriteMessage(websocket.TextMessage, data)
		client.mu.Unlock()
		if mutated {
			s.broadcastState(client.id)
		}
	}
}

// handleRPC dispatches one request. The second return reports whether the
// diagram changed, so other clients get a refreshed snapshot.
func (s *Server) handleRPC(req rpcRequest) (rpcResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch req.Method {
	case "state":
		return s.ok(req, nil), false
	case "tokenize":
		return s.rpcTokenize(req)
	case "resize":
		return s.rpcResize(req)
	case "toggleSelect":
		return s.rpcToggleSelect(req)
	case "clearSelection":
		s.diagram.ClearSelection()
		return s.ok(req, nil), true
	case "addParent":
		return s.rpcAddParent(req)
	case "clickHandle":
		return s.rpcClickHandle(req)
	case "setLabel":
		return s.rpcSetLabel(req)
	case "setTag":
		return s.rpcSetTag(req)
	case "deleteEdge":
		return s.rpcDeleteEdge(req)
	case "moveNode":
		return s.rpcMoveNode(req)
	case "setControl":
		return s.rpcSetControl(req)
	default:
		return rpcResponse{
			ID:    req.ID,
			Error: &rpcError{Code: codeUnknownMethod, Message: fmt.Sprintf("unknown method: %s", req.Method)},
		}, false
	}
}

// ok wraps the current diagram snapshot in a success response; extra is
// merged in for methods that return more than the state.
func (s *Server) ok(req rpcRequest, extra map[string]any) rpcResponse {
	result := map[string]any{"state": snapshot(s.diagram)}
	for k, v := range extra {
		result[k] = v
	}
	return rpcResponse{ID: req.ID, Result: result}
}

func (s *Server) fail(req rpcRequest, code int, err error) rpcResponse {
	return rpcResponse{ID: req.ID, Error: &rpcError{Code: code, Message: err.Error()}}
}

func (s *Server) rpcTokenize(req rpcRequest) (rpcResponse, bool) {
	var p struct {
		Sentence string `json:"sentence"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return s.fail(req, codeBadParams, err), false
	}
	if err := s.diagram.Tokenize(p.Sentence); err != nil {
		return s.fail(req, codeEditorError, err), false
	}
	return s.ok(req, nil), true
}

func (s *Server) rpcResize(req rpcRequest) (rpcResponse, bool) {
	var p struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return s.fail(req, codeBadParams, err), false
	}
	s.diagram.Resize(p.Width, p.Height)
	return s.ok(req, nil), true
}

func (s *Server) rpcToggleSelect(req rpcRequest) (rpcResponse, bool) {
	var p struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return s.fail(req, codeBadParams, err), false
	}
	s.diagram.ToggleSelect(p.ID)
	return s.ok(req, nil), true
}

func (s *Server) rpcAddParent(req rpcRequest) (rpcResponse, bool) {
	parent, err := s.diagram.AddParent()
	if err != nil {
		return s.fail(req, codeEditorError, err), false
	}
	return s.ok(req, map[string]any{"parent": parent.ID}), true
}

func (s *Server) rpcClickHandle(req rpcRequest) (rpcResponse, bool) {
	var p struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return s.fail(req, codeBadParams, err), false
	}
	s.diagram.ClickHandle(p.ID)
	return s.ok(req, nil), true
}

func (s *Server) rpcSetLabel(req rpcRequest) (rpcResponse, bool) {
	var p struct {
		ID    int    `json:"id"`
		Label string `json:"label"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return s.fail(req, codeBadParams, err), false
	}
	s.diagram.SetLabel(p.ID, p.Label)
	return s.ok(req, nil), true
}

func (s *Server) rpcSetTag(req rpcRequest) (rpcResponse, bool) {
	var p struct {
		ID  int    `json:"id"`
		Tag string `json:"tag"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return s.fail(req, codeBadParams, err), false
	}
	s.diagram.SetTag(p.ID, tree.POS(p.Tag))
	return s.ok(req, nil), true
}

func (s *Server) rpcDeleteEdge(req rpcRequest) (rpcResponse, bool) {
	var p struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return s.fail(req, codeBadParams, err), false
	}
	s.diagram.DeleteEdge(p.ID)
	return s.ok(req, nil), true
}

func (s *Server) rpcMoveNode(req rpcRequest) (rpcResponse, bool) {
	var p struct {
		ID int     `json:"id"`
		X  float64 `json:"x"`
		Y  float64 `json:"y"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return s.fail(req, codeBadParams, err), false
	}
	s.diagram.MoveNode(p.ID, tree.Point{X: p.X, Y: p.Y})
	return s.ok(req, nil), true
}

func (s *Server) rpcSetControl(req rpcRequest) (rpcResponse, bool) {
	var p struct {
		ID string  `json:"id"`
		X  float64 `json:"x"`
		Y  float64 `json:"y"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return s.fail(req, codeBadParams, err), false
	}
	s.diagram.SetControl(p.ID, tree.Point{X: p.X, Y: p.Y})
	return s.ok(req, nil), true
}

// broadcastState pushes a state notification to every client except the one
// whose RPC caused the change (it already has the state in its response).
func (s *Server) broadcastState(except string) {
	s.mu.Lock()
	st := snapshot(s.diagram)
	s.mu.Unlock()

	msg, err := json.Marshal(map[string]any{
		"method": "state",
		"params": st,
	})
	if err != nil {
		return
	}

	s.clientsMu.Lock()
	clients := make([]*wsClient, 0, len(s.clients))
	for id, c := range s.clients {
		if id != except {
			clients = append(clients, c)
		}
	}
	s.clientsMu.Unlock()

	for _, c := range clients {
		c.mu.Lock()
		_ = c.conn.WriteMessage(websocket.TextMessage, msg)
		c.mu.Unlock()
	}
}
