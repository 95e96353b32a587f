package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"SellerAgent/app/api/shopper/internal/agent/chat"
	"SellerAgent/app/api/shopper/internal/agent/normalize"
	"SellerAgent/app/api/shopper/internal/agent/scorer"
	"SellerAgent/app/dal/catalog"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/jsonx"
)

const historyWindow = 6

var ErrNoJSONReply = errors.New("model reply carries no json object")

const modelSystemPrompt = `You are an AI shopping assistant for an ecommerce storefront.
Your job is to recommend products based on the shopper's request.

Available products (JSON):
%s

Rules:
1. Always respond in a friendly, helpful manner.
2. Recommend 3-5 products that best match the request, using only the ids listed above.
3. Give a brief justification for the recommendations.
4. Reply with exactly one JSON object and nothing else:
{"response": "your natural language reply", "products": [product ids]}`

type modelReply struct {
	Response string            `json:"response"`
	Products []normalize.RawID `json:"products"`
}

type promptProduct struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

// ModelRecommender asks a chat model to pick products from the local catalog.
type ModelRecommender struct {
	store    *catalog.Store
	runnable compose.Runnable[Query, *Reply]
}

func NewModelRecommender(ctx context.Context, chatModel model.BaseChatModel, store *catalog.Store) (*ModelRecommender, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is required")
	}

	catalogJSON, err := promptCatalog(store)
	if err != nil {
		return nil, err
	}
	system := fmt.Sprintf(modelSystemPrompt, catalogJSON)

	m := &ModelRecommender{store: store}
	chain := compose.NewChain[Query, *Reply]()

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, q Query) ([]*schema.Message, error) {
		return buildMessages(system, q), nil
	}))

	chain.AppendChatModel(chatModel)

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, msg *schema.Message) (*Reply, error) {
		if msg == nil {
			return nil, fmt.Errorf("empty message")
		}
		return m.parseReply(msg.Content)
	}))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, err
	}
	m.runnable = runnable
	return m, nil
}

func (m *ModelRecommender) Recommend(ctx context.Context, q Query) (*Reply, error) {
	if m == nil || m.runnable == nil {
		return nil, fmt.Errorf("model recommender unavailable")
	}
	return m.runnable.Invoke(ctx, q)
}

func buildMessages(system string, q Query) []*schema.Message {
	history := q.History
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	msgs := make([]*schema.Message, 0, len(history)+2)
	msgs = append(msgs, schema.SystemMessage(system))
	for _, turn := range history {
		if turn.Role == chat.RoleAssistant {
			msgs = append(msgs, schema.AssistantMessage(turn.Content, nil))
		} else {
			msgs = append(msgs, schema.UserMessage(turn.Content))
		}
	}
	msgs = append(msgs, schema.UserMessage(q.Text))
	return msgs
}

// parseReply decodes the outermost {...} span of content and resolves the
// product ids against the catalog. Unknown and repeated ids are dropped.
func (m *ModelRecommender) parseReply(content string) (*Reply, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, ErrNoJSONReply
	}

	var out modelReply
	if err := jsonx.Unmarshal([]byte(content[start:end+1]), &out); err != nil {
		return nil, fmt.Errorf("decode model reply: %w", err)
	}
	message := strings.TrimSpace(out.Response)
	if message == "" {
		return nil, ErrEmptyReply
	}

	products := make([]catalog.Product, 0, len(out.Products))
	seen := make(map[catalog.ID]struct{}, len(out.Products))
	for _, raw := range out.Products {
		id := catalog.ID(strings.TrimSpace(string(raw)))
		if _, dup := seen[id]; dup {
			continue
		}
		p, ok := m.store.Lookup(id)
		if !ok {
			continue
		}
		seen[id] = struct{}{}
		products = append(products, p)
		if len(products) == scorer.MaxResults {
			break
		}
	}
	return &Reply{Message: message, Products: products}, nil
}

func promptCatalog(store *catalog.Store) (string, error) {
	all := store.All()
	items := make([]promptProduct, 0, len(all))
	for _, p := range all {
		items = append(items, promptProduct{
			ID:          p.ID.String(),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Category:    p.Category,
			Tags:        p.Tags,
		})
	}
	data, err := jsonx.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode catalog prompt: %w", err)
	}
	return string(data), nil
}
