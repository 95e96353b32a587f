// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"context"
	"time"

	"SellerAgent/app/api/shopper/internal/agent/cart"
	"SellerAgent/app/api/shopper/internal/agent/chat"
	"SellerAgent/app/api/shopper/internal/agent/recommend"
	"SellerAgent/app/api/shopper/internal/agent/session"
	"SellerAgent/app/api/shopper/internal/config"
	"SellerAgent/app/api/shopper/internal/mq"
	"SellerAgent/app/api/shopper/internal/remote"
	"SellerAgent/app/common/consts/biz"
	"SellerAgent/app/common/middleware"
	"SellerAgent/app/common/snowflake"
	"SellerAgent/app/dal/catalog"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/zeromicro/go-zero/core/collection"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

const (
	ModeBackend = "backend"
	ModeModel   = "model"
	ModeLocal   = "local"
)

type ServiceContext struct {
	Config            config.Config
	SessionMiddleware rest.Middleware

	Store        *catalog.Store
	Backend      *remote.Client
	ChatModel    *ark.ChatModel
	Sessions     *session.Manager
	Orchestrator *recommend.Orchestrator
	Cart         *cart.Service
	Transcript   *chat.Transcript
	CatalogCache *collection.Cache
	Publisher    *mq.Publisher
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)
	if err := snowflake.SetNodeID(c.SnowflakeNode); err != nil {
		logx.Errorw("set snowflake node failed", logx.Field("err", err))
	}

	sc := &ServiceContext{
		Config:     c,
		Transcript: chat.NewTranscript(),
		Publisher:  mq.NewPublisher(c.KafkaConf),
	}

	var creator session.Creator
	var cartBackend cart.Backend
	if c.Backend.BaseURL != "" {
		sc.Backend = remote.NewClient(c.Backend.BaseURL)
		creator = sc.Backend
		cartBackend = sc.Backend
	}

	sc.Store = loadCatalog(c, sc.Backend)
	sc.Sessions = session.NewManager(creator)
	sc.SessionMiddleware = middleware.NewSessionMiddleware(sc.Sessions).Handle
	sc.Cart = cart.NewService(sc.Sessions, cartBackend)

	ttl := time.Duration(c.CatalogCacheSeconds) * time.Second
	if ttl <= 0 {
		ttl = biz.DefaultCatalogTTL
	}
	cache, err := collection.NewCache(ttl, collection.WithName("shopper-catalog"))
	if err != nil {
		logx.Errorw("init catalog cache failed", logx.Field("err", err))
	} else {
		sc.CatalogCache = cache
	}

	if c.ChatModel.Model != "" {
		cm, err := ark.NewChatModel(context.Background(), &ark.ChatModelConfig{
			BaseURL: c.ChatModel.BaseUrl,
			APIKey:  c.ChatModel.APIKey,
			Model:   c.ChatModel.Model,
		})
		if err != nil {
			logx.Errorw("init ark chat model failed", logx.Field("err", err))
		} else {
			sc.ChatModel = cm
			logx.Infow("ark chat model initialized")
		}
	}

	local := recommend.NewLocalRecommender(sc.Store, nil)
	sc.Orchestrator = recommend.NewOrchestrator(sc.Sessions, local, sc.primaryRecommender(),
		recommend.WithTimeout(remoteTimeout(c.Backend)),
		recommend.WithLocalDelay(
			time.Duration(c.Recommender.MinDelayMs)*time.Millisecond,
			time.Duration(c.Recommender.MaxDelayMs)*time.Millisecond,
		),
	)
	logx.Infow("recommender ready",
		logx.Field("mode", c.Recommender.Mode),
		logx.Field("remote", sc.Orchestrator.HasRemote()),
		logx.Field("catalog_size", sc.Store.Len()),
	)

	return sc
}

// primaryRecommender returns nil when the configured mode cannot be served,
// which leaves the orchestrator answering locally.
func (sc *ServiceContext) primaryRecommender() recommend.Recommender {
	switch sc.Config.Recommender.Mode {
	case ModeBackend:
		if sc.Backend != nil {
			return sc.Backend
		}
	case ModeModel:
		if sc.ChatModel == nil {
			break
		}
		m, err := recommend.NewModelRecommender(context.Background(), sc.ChatModel, sc.Store)
		if err != nil {
			logx.Errorw("init model recommender failed", logx.Field("err", err))
			break
		}
		return m
	}
	return nil
}

func loadCatalog(c config.Config, backend *remote.Client) *catalog.Store {
	if !c.Recommender.SeedFromRemote || backend == nil {
		return catalog.NewStore(catalog.Seed())
	}

	ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout(c.Backend))
	defer cancel()
	products, err := backend.ListProducts(ctx, catalog.Filter{})
	if err != nil || len(products) == 0 {
		logx.Errorw("seed catalog from backend failed, using local dataset",
			logx.Field("err", err),
			logx.Field("count", len(products)),
		)
		return catalog.NewStore(catalog.Seed())
	}
	return catalog.NewStore(products)
}

func remoteTimeout(c config.BackendConf) time.Duration {
	if c.TimeoutMs <= 0 {
		return biz.DefaultRemoteTimeout
	}
	return time.Duration(c.TimeoutMs) * time.Millisecond
}
