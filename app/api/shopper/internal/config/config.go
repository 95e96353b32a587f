// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/zero-contrib/zrpc/registry/consul"
)

type Config struct {
	rest.RestConf

	Consul consul.Conf `json:",optional"`

	LogConf logx.LogConf

	Backend     BackendConf   `json:",optional"`
	ChatModel   ModelConf     `json:",optional"`
	Recommender RecommendConf `json:",optional"`
	KafkaConf   KafkaConf     `json:",optional"`

	SnowflakeNode       int64 `json:",default=1"`
	CatalogCacheSeconds int   `json:",default=30"`
}

type BackendConf struct {
	BaseURL   string `json:",optional"`
	TimeoutMs int64  `json:",default=5000"`
}

type ModelConf struct {
	BaseUrl string `json:",optional"`
	APIKey  string `json:",optional"`
	Model   string `json:",optional"`
}

type RecommendConf struct {
	// Mode selects the primary recommender: backend, model or local.
	Mode           string `json:",default=backend,options=backend|model|local"`
	MinDelayMs     int64  `json:",default=0"`
	MaxDelayMs     int64  `json:",default=0"`
	SeedFromRemote bool   `json:",optional"`
}

type KafkaConf struct {
	Broker    []string `json:",optional"`
	ChatTopic string   `json:",optional"`
}
