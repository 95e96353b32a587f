package helper

import (
	"strconv"

	"SellerAgent/app/api/shopper/internal/agent/chat"
	"SellerAgent/app/api/shopper/internal/types"
	"SellerAgent/app/dal/catalog"
)

func ToProductItem(p catalog.Product) types.ProductItem {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return types.ProductItem{
		Id:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageUrl:    p.ImageURL,
		Category:    p.Category,
		Tags:        tags,
	}
}

func ToProductItems(products []catalog.Product) []types.ProductItem {
	items := make([]types.ProductItem, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductItem(p))
	}
	return items
}

func ToChatTurn(turn chat.Turn) types.ChatTurn {
	out := types.ChatTurn{
		Id:        strconv.FormatInt(turn.ID, 10),
		Role:      string(turn.Role),
		Content:   turn.Content,
		Timestamp: turn.Timestamp.UnixMilli(),
	}
	if len(turn.Products) > 0 {
		out.Products = ToProductItems(turn.Products)
	}
	return out
}

func ProductIDs(products []catalog.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID.String())
	}
	return ids
}
