package panos

import (
	"context"
	"fmt"
	"time"
)

// WaitForJob polls a commit job until it finishes or the context is
// cancelled. The first poll happens immediately so short jobs return
// without waiting a full interval.
func (c *Client) WaitForJob(ctx context.Context, jobID string, interval time.Duration) (*JobStatus, error) {
	if interval <= 0 {
		interval = 5 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		status, err := c.CommitStatus(ctx, jobID)
		if err != nil {
			return nil, err
		}
		if status.Done() {
			if !status.Succeeded() {
				return status, fmt.Errorf("commit job %s finished with result %s", jobID, status.Result)
			}
			return status, nil
		}

		c.logger.Debug("commit in progress", "job", jobID, "progress", status.Progress)

		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case <-ticker.C:
		}
	}
}
