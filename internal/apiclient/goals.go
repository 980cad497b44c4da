package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"tally/internal/contract"
	"tally/internal/domain"
)

func (c *Client) CreateGoal(ctx context.Context, name, goalType string) (*domain.Goal, error) {
	var out contract.Goal
	_, err := c.do(ctx, http.MethodPost, "/goals", contract.GoalCreate{Name: name, GoalType: goalType}, &out)
	if err != nil {
		return nil, err
	}
	return out.Domain(), nil
}

func (c *Client) GetGoal(ctx context.Context, id int64) (*domain.Goal, error) {
	var out contract.Goal
	_, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/goals/%d", id), nil, &out)
	if err != nil {
		return nil, err
	}
	return out.Domain(), nil
}

// ListGoals fetches goals under the given policy. FetchAll follows
// pagination until the server's reported total is reached.
func (c *Client) ListGoals(ctx context.Context, policy FetchPolicy) ([]*domain.Goal, error) {
	var goals []*domain.Goal
	offset := 0
	for {
		var page contract.GoalList
		path := "/goals?" + pageQuery(200, offset)
		if _, err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
			return nil, err
		}
		for _, g := range page.Items {
			goals = append(goals, g.Domain())
		}
		offset += len(page.Items)
		if policy == FetchFirstPage || offset >= page.Total || len(page.Items) == 0 {
			return goals, nil
		}
	}
}

func (c *Client) UpdateGoal(ctx context.Context, id int64, upd contract.GoalUpdate) (*domain.Goal, error) {
	var out contract.Goal
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/goals/%d", id), upd, &out)
	if err != nil {
		return nil, err
	}
	return out.Domain(), nil
}

func (c *Client) DeleteGoal(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/goals/%d", id), nil, nil)
	return err
}

func (c *Client) CreateRevision(ctx context.Context, goalID int64, targetValue int, validFrom string, validTo *string) (*domain.GoalRevision, error) {
	var out contract.Revision
	payload := contract.RevisionCreate{TargetValue: targetValue, ValidFrom: validFrom, ValidTo: validTo}
	_, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/goals/%d/revisions", goalID), payload, &out)
	if err != nil {
		return nil, err
	}
	return out.Domain(), nil
}

func (c *Client) ListRevisions(ctx context.Context, goalID int64) ([]*domain.GoalRevision, error) {
	var page contract.RevisionList
	_, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/goals/%d/revisions", goalID), nil, &page)
	if err != nil {
		return nil, err
	}
	revisions := make([]*domain.GoalRevision, 0, len(page.Items))
	for _, r := range page.Items {
		revisions = append(revisions, r.Domain())
	}
	return revisions, nil
}

func (c *Client) Heatmap(ctx context.Context, goalID int64, from, to string) (*contract.Heatmap, error) {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	var out contract.Heatmap
	path := fmt.Sprintf("/goals/%d/heatmap?%s", goalID, q.Encode())
	if _, err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
