package events

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/omniboxhq/omnibox/ent"
	"github.com/omniboxhq/omnibox/ent/conversation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSink struct {
	mu    sync.Mutex
	rooms []string
	data  [][]byte
}

func (s *captureSink) Deliver(room string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = append(s.rooms, room)
	s.data = append(s.data, data)
}

func (s *captureSink) Rooms() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.rooms))
	copy(out, s.rooms)
	return out
}

func envelopeBytes(t *testing.T, env Envelope) []byte {
	t.Helper()
	data, err := json.Marshal(env)
	require.NoError(t, err)
	return data
}

func TestBridge_SkipsOwnOrigin(t *testing.T) {
	sink := &captureSink{}
	b := &Bridge{sink: sink, instanceID: "pod-a"}

	b.handle(envelopeBytes(t, Envelope{
		Type: EventTypeMessageNew, Room: "org:1", Origin: "pod-a",
	}))
	b.handle(envelopeBytes(t, Envelope{
		Type: EventTypeMessageNew, Room: "org:1", Origin: "pod-b",
	}))

	assert.Equal(t, []string{"org:1"}, sink.Rooms())
}

func TestBridge_DropsMalformed(t *testing.T) {
	sink := &captureSink{}
	b := &Bridge{sink: sink, instanceID: "pod-a"}

	b.handle([]byte("not json"))
	b.handle(envelopeBytes(t, Envelope{Type: EventTypeMessageNew, Origin: "pod-b"})) // no room

	assert.Empty(t, sink.Rooms())
}

func TestRoomNames(t *testing.T) {
	assert.Equal(t, "org:o-1", OrgRoom("o-1"))
	assert.Equal(t, "user:u-1", UserRoom("u-1"))
	assert.Equal(t, "conv:c-1", ConversationRoom("c-1"))
}

func TestNewConversationPayload(t *testing.T) {
	agentID := "agent-1"
	last := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	conv := &ent.Conversation{
		ID:              "conv-1",
		OrganizationID:  "org-1",
		ChannelID:       "chan-1",
		ContactID:       "contact-1",
		Status:          conversation.StatusAssigned,
		AssignedAgentID: &agentID,
		LastMessageAt:   &last,
		CreatedAt:       last.Add(-time.Hour),
		UpdatedAt:       last,
	}

	p := NewConversationPayload(conv)
	assert.Equal(t, "conv-1", p.ConversationID)
	assert.Equal(t, "assigned", p.Status)
	require.NotNil(t, p.AssignedAgentID)
	assert.Equal(t, "agent-1", *p.AssignedAgentID)
	require.NotNil(t, p.LastMessageAt)
	assert.Equal(t, last.Format(time.RFC3339Nano), *p.LastMessageAt)

	// Unassigned pending conversations omit the optional fields.
	p = NewConversationPayload(&ent.Conversation{
		ID: "conv-2", Status: conversation.StatusPending,
		CreatedAt: last, UpdatedAt: last,
	})
	assert.Nil(t, p.AssignedAgentID)
	assert.Nil(t, p.LastMessageAt)
}
