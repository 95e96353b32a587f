// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package shopper

import (
	"net/http"

	"SellerAgent/app/api/shopper/internal/logic/shopper"
	"SellerAgent/app/api/shopper/internal/svc"
	"SellerAgent/app/api/shopper/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func AddToCartHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AddToCartRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := shopper.NewAddToCartLogic(r.Context(), svcCtx)
		resp, err := l.AddToCart(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
