// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package shopper

import (
	"context"

	"SellerAgent/app/api/shopper/internal/logic/helper"
	"SellerAgent/app/api/shopper/internal/svc"
	"SellerAgent/app/api/shopper/internal/types"
	"SellerAgent/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
)

type ConversationLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewConversationLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ConversationLogic {
	return &ConversationLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ConversationLogic) Conversation() (resp *types.ConversationResponse, err error) {
	turns := l.svcCtx.Transcript.Turns()
	out := make([]types.ChatTurn, 0, len(turns))
	for _, turn := range turns {
		out = append(out, helper.ToChatTurn(turn))
	}
	resp = &types.ConversationResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Turns:      out,
	}
	return
}

func (l *ConversationLogic) ResetConversation() (resp *types.ResetConversationResponse, err error) {
	n := l.svcCtx.Transcript.Len()
	l.svcCtx.Transcript.Reset()
	l.Infow("conversation reset", logx.Field("turns", n))
	resp = &types.ResetConversationResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
	}
	return
}
