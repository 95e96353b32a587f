// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package main

import (
	"flag"
	"fmt"

	"SellerAgent/app/api/shopper/internal/config"
	"SellerAgent/app/api/shopper/internal/handler"
	"SellerAgent/app/api/shopper/internal/svc"
	"SellerAgent/app/common/response"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/zero-contrib/zrpc/registry/consul"
)

var configFile = flag.String("f", "etc/shopper-api.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	defer func() {
		if err := ctx.Publisher.Close(); err != nil {
			logx.Errorw("close kafka publisher failed", logx.Field("err", err))
		}
	}()

	handler.RegisterHandlers(server, ctx)
	httpx.SetErrorHandlerCtx(response.ErrorHandler)

	if c.Consul.Host != "" && c.Consul.Key != "" {
		addr := fmt.Sprintf("%s:%d", c.Host, c.Port)
		if err := consul.RegisterService(addr, c.Consul); err != nil {
			logx.Errorw("register service error", logx.Field("err", err))
			panic(err)
		}
	}

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
