package mock

import (
	"context"

	"github.com/scrapeworks/prodex"
)

var _ prodex.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of prodex.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
