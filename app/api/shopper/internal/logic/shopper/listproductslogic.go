// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package shopper

import (
	"context"
	"strings"

	"SellerAgent/app/api/shopper/internal/agent/recommend"
	"SellerAgent/app/api/shopper/internal/logic/helper"
	"SellerAgent/app/api/shopper/internal/svc"
	"SellerAgent/app/api/shopper/internal/types"
	"SellerAgent/app/common/consts/errno"
	"SellerAgent/app/dal/catalog"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListProductsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListProductsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListProductsLogic {
	return &ListProductsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ListProducts serves the backend catalog when reachable and the local
// store otherwise.
func (l *ListProductsLogic) ListProducts(req *types.ListProductsRequest) (resp *types.ListProductsResponse, err error) {
	var filter catalog.Filter
	if req != nil {
		filter.Category = strings.TrimSpace(req.Category)
		filter.Search = strings.TrimSpace(req.Search)
	}

	products, source := l.fromBackend(filter)
	if products == nil {
		products, source = l.svcCtx.Store.Filter(filter), recommend.SourceLocal
	}

	resp = &types.ListProductsResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Products:   helper.ToProductItems(products),
		Source:     string(source),
	}
	return
}

func (l *ListProductsLogic) fromBackend(filter catalog.Filter) ([]catalog.Product, recommend.Source) {
	if l.svcCtx.Backend == nil {
		return nil, ""
	}

	fetch := func() (any, error) {
		return l.svcCtx.Backend.ListProducts(l.ctx, filter)
	}

	var (
		val any
		err error
	)
	if l.svcCtx.CatalogCache != nil {
		val, err = l.svcCtx.CatalogCache.Take(filter.Category+"|"+filter.Search, fetch)
	} else {
		val, err = fetch()
	}
	if err != nil {
		l.Errorw("list products from backend failed, serving local catalog", logx.Field("err", err.Error()))
		return nil, ""
	}

	products, _ := val.([]catalog.Product)
	if products == nil {
		products = []catalog.Product{}
	}
	return products, recommend.SourceRemote
}
