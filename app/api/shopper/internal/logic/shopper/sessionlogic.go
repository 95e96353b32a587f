// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package shopper

import (
	"context"

	"SellerAgent/app/api/shopper/internal/svc"
	"SellerAgent/app/api/shopper/internal/types"
	"SellerAgent/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
)

type SessionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSessionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SessionLogic {
	return &SessionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SessionLogic) Session() (resp *types.SessionResponse, err error) {
	id := l.svcCtx.Sessions.GetOrCreateSession(l.ctx)
	resp = &types.SessionResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		SessionId:  id,
		Fallback:   l.svcCtx.Sessions.IsFallback(),
	}
	return
}
