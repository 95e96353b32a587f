// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package shopper

import (
	"net/http"

	"SellerAgent/app/api/shopper/internal/logic/shopper"
	"SellerAgent/app/api/shopper/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func SessionHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := shopper.NewSessionLogic(r.Context(), svcCtx)
		resp, err := l.Session()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
