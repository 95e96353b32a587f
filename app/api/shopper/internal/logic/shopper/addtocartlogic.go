// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package shopper

import (
	"context"
	"strings"

	"SellerAgent/app/api/shopper/internal/svc"
	"SellerAgent/app/api/shopper/internal/types"
	"SellerAgent/app/common/consts/errno"
	"SellerAgent/app/dal/catalog"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type AddToCartLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAddToCartLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AddToCartLogic {
	return &AddToCartLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AddToCartLogic) AddToCart(req *types.AddToCartRequest) (resp *types.AddToCartResponse, err error) {
	if req == nil || strings.TrimSpace(req.ProductId) == "" {
		return nil, errors.New(errno.InvalidParam, "product_id is required")
	}

	id := catalog.ID(strings.TrimSpace(req.ProductId))
	product, ok := l.svcCtx.Store.Lookup(id)
	if !ok {
		// the backend catalog may hold products the local snapshot lacks
		if l.svcCtx.Backend == nil {
			return nil, errors.New(errno.ProductNotFound, "product not found")
		}
		product = catalog.Product{ID: id}
	}

	if err := l.svcCtx.Cart.AddToCart(l.ctx, product, req.Quantity); err != nil {
		l.Errorw("add to cart failed",
			logx.Field("product_id", id.String()),
			logx.Field("err", err.Error()),
		)
		return &types.AddToCartResponse{
			StatusCode: errno.CartUnavailable,
			StatusMsg:  "cart unavailable",
			Added:      false,
		}, nil
	}

	resp = &types.AddToCartResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Added:      true,
	}
	return
}
