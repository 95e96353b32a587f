// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package shopper

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"SellerAgent/app/api/shopper/internal/logic/helper"
	"SellerAgent/app/api/shopper/internal/mq"
	"SellerAgent/app/api/shopper/internal/svc"
	"SellerAgent/app/api/shopper/internal/types"
	"SellerAgent/app/common/consts/biz"
	"SellerAgent/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type RecommendLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRecommendLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RecommendLogic {
	return &RecommendLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RecommendLogic) Recommend(req *types.RecommendRequest) (resp *types.RecommendResponse, err error) {
	if req == nil {
		return nil, errors.New(errno.InvalidParam, "empty request")
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, errors.New(errno.InvalidParam, "query is required")
	}
	if utf8.RuneCountInString(query) > biz.MaxQueryLength {
		return nil, errors.New(errno.InvalidParam, "query is too long")
	}

	history := l.svcCtx.Transcript.Turns()
	l.svcCtx.Transcript.AppendUser(query)

	start := time.Now()
	res := l.svcCtx.Orchestrator.GetRecommendation(l.ctx, query, history...)
	l.Infow("recommendation answered",
		logx.Field("source", res.Source),
		logx.Field("products", len(res.Products)),
		logx.Field("took", time.Since(start).String()),
	)

	turn := l.svcCtx.Transcript.AppendAssistant(res.Message, res.Products)

	evt := mq.ChatTurnEvent{
		SessionID:  res.SessionID,
		TurnID:     turn.ID,
		Query:      query,
		Message:    res.Message,
		Source:     string(res.Source),
		ProductIDs: helper.ProductIDs(res.Products),
		Timestamp:  turn.Timestamp.UnixMilli(),
	}
	l.publish(evt)

	resp = &types.RecommendResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Message:    res.Message,
		Products:   helper.ToProductItems(res.Products),
		Source:     string(res.Source),
		SessionId:  res.SessionID,
	}
	return
}

// publish bounds the broker write so a slow broker cannot stall the reply.
func (l *RecommendLogic) publish(evt mq.ChatTurnEvent) {
	ctx, cancel := context.WithTimeout(l.ctx, biz.EventPublishTimeout)
	defer cancel()
	if err := l.svcCtx.Publisher.PublishChatTurnEvent(ctx, evt); err != nil {
		l.Errorw("publish chat turn event failed", logx.Field("err", err.Error()))
	}
}
