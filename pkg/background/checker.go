package background

import (
	"context"

	"github.com/giftchain/giftchain-go/pkg/confirm"
)

// statusChecker adapts the verify endpoint to the poller's interface.
type statusChecker struct {
	api API
}

// NewStatusChecker builds the confirm.StatusChecker for background
// mints. It is a separate constructor (rather than a Service method)
// so the poller can be wired before the service that uses it.
func NewStatusChecker(api API) (confirm.StatusChecker, error) {
	if api == nil {
		return nil, ErrNilAPI
	}
	return &statusChecker{api: api}, nil
}

func (c *statusChecker) CheckStatus(ctx context.Context, id string) (confirm.CheckResult, error) {
	resp, err := c.api.VerifyBackground(ctx, id)
	if err != nil {
		return confirm.CheckResult{}, err
	}
	return confirm.CheckResult{
		Status:          confirm.Status(resp.Status),
		BlockchainID:    resp.Background.BlockchainID,
		TransactionHash: resp.Background.TransactionHash,
	}, nil
}
