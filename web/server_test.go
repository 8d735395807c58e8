package web

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/EphraimMeiri/sentence-trees/tree"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(tree.New(800, 600), zap.NewNop())
}

func call(t *testing.T, s *Server, method string, params any) (rpcResponse, bool) {
	t.Helper()
	req := rpcRequest{ID: 1, Method: method}
	if params != nil {
		raw, err := json.Marshal(params)
		require.NoError(t, err)
		req.Params = raw
	}
	return s.handleRPC(req)
}

// resultState re-decodes the snapshot from a response through JSON, the same
// path the browser sees.
func resultState(t *testing.T, resp rpcResponse) statePayload {
	t.Helper()
	require.Nil(t, resp.Error)
	raw, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	var result struct {
		State statePayload `json:"state"`
	}
	require.NoError(t, json.Unmarshal(raw, &result))
	return result.State
}

func TestRPCTokenize(t *testing.T) {
	s := newTestServer(t)
	resp, mutated := call(t, s, "tokenize", map[string]any{"sentence": "the cat sleeps"})
	assert.True(t, mutated)

	st := resultState(t, resp)
	assert.Len(t, st.Nodes, 4)
	assert.Empty(t, st.Edges)

	leaves := 0
	for _, n := range st.Nodes {
		if n.Leaf {
			leaves++
			assert.NotEmpty(t, n.Color)
		}
	}
	assert.Equal(t, 3, leaves)
}

func TestRPCTokenizeEmpty(t *testing.T) {
	s := newTestServer(t)
	resp, mutated := call(t, s, "tokenize", map[string]any{"sentence": "   "})
	assert.False(t, mutated)
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeEditorError, resp.Error.Code)
}

func TestRPCAddParentFlow(t *testing.T) {
	s := newTestServer(t)
	call(t, s, "tokenize", map[string]any{"sentence": "a b"})

	// Too few selected: error, nothing mutated.
	resp, mutated := call(t, s, "addParent", nil)
	assert.False(t, mutated)
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeEditorError, resp.Error.Code)

	call(t, s, "toggleSelect", map[string]any{"id": 0})
	call(t, s, "toggleSelect", map[string]any{"id": 1})
	resp, mutated = call(t, s, "addParent", nil)
	assert.True(t, mutated)

	st := resultState(t, resp)
	assert.Len(t, st.Nodes, 4)
	assert.Len(t, st.Edges, 2)
	assert.Empty(t, st.Selected)
}

func TestRPCLinkingAndEdges(t *testing.T) {
	s := newTestServer(t)
	call(t, s, "tokenize", map[string]any{"sentence": "a b"})

	resp, _ := call(t, s, "clickHandle", map[string]any{"id": 2}) // root
	st := resultState(t, resp)
	require.NotNil(t, st.Linking)
	assert.Equal(t, 2, *st.Linking)

	resp, _ = call(t, s, "clickHandle", map[string]any{"id": 0})
	st = resultState(t, resp)
	assert.Nil(t, st.Linking)
	require.Len(t, st.Edges, 1)
	edgeID := st.Edges[0].ID

	// Bend the curve, then delete the edge.
	resp, _ = call(t, s, "setControl", map[string]any{"id": edgeID, "x": 50.0, "y": 60.0})
	st = resultState(t, resp)
	assert.True(t, st.Edges[0].Bent)
	assert.Equal(t, 50.0, st.Edges[0].CX)

	resp, _ = call(t, s, "deleteEdge", map[string]any{"id": edgeID})
	st = resultState(t, resp)
	assert.Empty(t, st.Edges)
	assert.Len(t, st.Nodes, 3)
}

func TestRPCSetTag(t *testing.T) {
	s := newTestServer(t)
	call(t, s, "tokenize", map[string]any{"sentence": "cats sleep"})

	resp, _ := call(t, s, "setTag", map[string]any{"id": 0, "tag": "N"})
	st := resultState(t, resp)
	assert.Len(t, st.Nodes, 4)
	require.Len(t, st.Edges, 1)

	var np *nodePayload
	for i := range st.Nodes {
		if st.Nodes[i].Label == "NP" {
			np = &st.Nodes[i]
		}
	}
	require.NotNil(t, np, "no NP node in snapshot")
	assert.Equal(t, np.ID, st.Edges[0].Parent)
	assert.Equal(t, 0, st.Edges[0].Child)
}

func TestRPCMoveNodePins(t *testing.T) {
	s := newTestServer(t)
	call(t, s, "tokenize", map[string]any{"sentence": "a b"})

	resp, _ := call(t, s, "moveNode", map[string]any{"id": 0, "x": 111.0, "y": 222.0})
	st := resultState(t, resp)
	for _, n := range st.Nodes {
		if n.ID == 0 {
			assert.Equal(t, 111.0, n.X)
			assert.Equal(t, 222.0, n.Y)
			assert.True(t, n.Pinned)
		}
	}
}

func TestRPCUnknownMethod(t *testing.T) {
	s := newTestServer(t)
	resp, mutated := call(t, s, "explode", nil)
	assert.False(t, mutated)
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeUnknownMethod, resp.Error.Code)
}

func TestRPCBadParams(t *testing.T) {
	s := newTestServer(t)
	resp, mutated := s.handleRPC(rpcRequest{ID: 1, Method: "toggleSelect", Params: json.RawMessage(`{"id":"x"}`)})
	assert.False(t, mutated)
	require.NotNil(t, resp.Error)
	assert.Equal(t, codeBadParams, resp.Error.Code)
}
