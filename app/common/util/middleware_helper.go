package util

import (
	"context"
	"net/http"

	"SellerAgent/app/common/consts/biz"
)

func SessionIdFromCtx(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(biz.SESSION_KEY).(string)
	return id, ok && id != ""
}

func InjectSessionId2Ctx(r *http.Request, sessionID string) {
	ctx := context.WithValue(r.Context(), biz.SESSION_KEY, sessionID)
	*r = *r.WithContext(ctx)
}
