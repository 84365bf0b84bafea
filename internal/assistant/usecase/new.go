package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"expense-assistant/internal/assistant"
	"expense-assistant/pkg/log"
)

// CacheOptions sizes the completion cache. Size 0 disables it.
type CacheOptions struct {
	Size int
	TTL  time.Duration
}

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	l       log.Logger
	gateway assistant.Gateway
	cache   *expirable.LRU[string, assistant.Result]
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant UseCase implementation.
func New(l log.Logger, gateway assistant.Gateway, cacheOpt CacheOptions) *implUseCase {
	uc := &implUseCase{
		l:       l,
		gateway: gateway,
	}
	if cacheOpt.Size > 0 {
		uc.cache = expirable.NewLRU[string, assistant.Result](cacheOpt.Size, nil, cacheOpt.TTL)
	}
	return uc
}
