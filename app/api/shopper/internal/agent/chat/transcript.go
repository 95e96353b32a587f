package chat

import (
	"sync"
	"time"

	"SellerAgent/app/common/snowflake"
	"SellerAgent/app/dal/catalog"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Turn struct {
	ID        int64             `json:"id,string"`
	Role      Role              `json:"role"`
	Content   string            `json:"content"`
	Timestamp time.Time         `json:"timestamp"`
	Products  []catalog.Product `json:"attachedProducts,omitempty"`
}

// Transcript is the append-only turn log of one chat session.
type Transcript struct {
	mu    sync.Mutex
	turns []Turn
	now   func() time.Time
}

func NewTranscript() *Transcript {
	return &Transcript{now: time.Now}
}

func (t *Transcript) AppendUser(content string) Turn {
	return t.append(RoleUser, content, nil)
}

// AppendAssistant records a reply. Products are attached only when non-empty.
func (t *Transcript) AppendAssistant(content string, products []catalog.Product) Turn {
	var attached []catalog.Product
	if len(products) > 0 {
		attached = make([]catalog.Product, len(products))
		for i, p := range products {
			attached[i] = p.Clone()
		}
	}
	return t.append(RoleAssistant, content, attached)
}

func (t *Transcript) append(role Role, content string, products []catalog.Product) Turn {
	t.mu.Lock()
	defer t.mu.Unlock()

	turn := Turn{
		ID:        snowflake.Next(),
		Role:      role,
		Content:   content,
		Timestamp: t.now(),
		Products:  products,
	}
	t.turns = append(t.turns, turn)
	return turn
}

// Turns returns a copy of the transcript in submission order.
func (t *Transcript) Turns() []Turn {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.turns)
}

func (t *Transcript) Reset() {
	t.mu.Lock()
	t.turns = nil
	t.mu.Unlock()
}
