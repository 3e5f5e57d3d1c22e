package entity

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Speaker string

const (
	SpeakerUser Speaker = "user"
	SpeakerBot  Speaker = "bot"
)

// DialogueNode is one vertex of the static conversation tree. The tree is
// defined once at process start and never mutated.
type DialogueNode struct {
	Id      string
	Label   string
	Message string
	Options []*DialogueNode
}

// IsTerminal reports whether the node has no further options to offer.
func (n *DialogueNode) IsTerminal() bool {
	return len(n.Options) == 0
}

// Option returns the immediate child with the given id, or nil.
func (n *DialogueNode) Option(id string) *DialogueNode {
	for _, opt := range n.Options {
		if opt.Id == id {
			return opt
		}
	}
	return nil
}

// OfferedOption is the id/label pair a bot entry presents to the user.
type OfferedOption struct {
	Id    string `json:"id"`
	Label string `json:"label"`
}

// TranscriptEntry is append-only; entries are never mutated after creation.
type TranscriptEntry struct {
	Speaker   Speaker         `json:"speaker"`
	Text      string          `json:"text"`
	Options   []OfferedOption `json:"options,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Conversation holds the traversal state for one chat session. All access
// goes through Mu; the generation counter invalidates delayed replies that
// were scheduled before a restart.
type Conversation struct {
	Mu sync.Mutex `json:"-"`

	Id            uuid.UUID         `json:"id"`
	CurrentNodeId string            `json:"current_node_id"`
	Path          []string          `json:"path"`
	Transcript    []TranscriptEntry `json:"transcript"`
	Generation    uint64            `json:"-"`
	AwaitingReply bool              `json:"-"`
}

// Depth is the number of user-speaker entries in the transcript. It is a
// reporting metric only; traversal depends solely on CurrentNodeId.
func (c *Conversation) Depth() int {
	n := 0
	for _, e := range c.Transcript {
		if e.Speaker == SpeakerUser {
			n++
		}
	}
	return n
}
