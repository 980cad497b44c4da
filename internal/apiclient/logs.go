package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"tally/internal/contract"
	"tally/internal/domain"
)

func (c *Client) CreateLog(ctx context.Context, goalID int64, date string, value int) (*domain.GoalLog, error) {
	var out contract.Log
	payload := contract.LogCreate{Date: date, Value: value}
	_, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/goals/%d/logs", goalID), payload, &out)
	if err != nil {
		return nil, err
	}
	return out.Domain(), nil
}

func (c *Client) UpdateLog(ctx context.Context, goalID, logID int64, value int) (*domain.GoalLog, error) {
	var out contract.Log
	path := fmt.Sprintf("/goals/%d/logs/%d", goalID, logID)
	_, err := c.do(ctx, http.MethodPatch, path, contract.LogUpdate{Value: value}, &out)
	if err != nil {
		return nil, err
	}
	return out.Domain(), nil
}

func (c *Client) DeleteLog(ctx context.Context, goalID, logID int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/goals/%d/logs/%d", goalID, logID), nil, nil)
	return err
}

// LogsInRange fetches logs with date inside the inclusive bounds; empty
// bounds are open-ended. FetchAll walks every page, which aggregating views
// rely on for correctness.
func (c *Client) LogsInRange(ctx context.Context, startDate, endDate string, policy FetchPolicy) ([]*domain.GoalLog, error) {
	var logs []*domain.GoalLog
	offset := 0
	for {
		q := url.Values{}
		if startDate != "" {
			q.Set("start_date", startDate)
		}
		if endDate != "" {
			q.Set("end_date", endDate)
		}
		q.Set("limit", fmt.Sprint(pageSize))
		q.Set("offset", fmt.Sprint(offset))

		var page contract.LogList
		if _, err := c.do(ctx, http.MethodGet, "/logs?"+q.Encode(), nil, &page); err != nil {
			return nil, err
		}
		for _, l := range page.Items {
			logs = append(logs, l.Domain())
		}
		offset += len(page.Items)
		if policy == FetchFirstPage || offset >= page.Total || len(page.Items) == 0 {
			return logs, nil
		}
	}
}
