package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"tally/internal/contract"
	"tally/internal/domain"
)

// StartSession asks the server to start a session. A 409 surfaces as
// ErrActiveSession; callers recover by adopting CurrentSession.
func (c *Client) StartSession(ctx context.Context, goalID *int64, durationSeconds int) (*domain.FocusSession, error) {
	if durationSeconds%60 != 0 {
		return nil, fmt.Errorf("%w: duration must be in 60 second steps", ErrInvalid)
	}
	var out contract.Session
	payload := contract.SessionCreate{DurationSeconds: durationSeconds, GoalID: goalID}
	_, err := c.do(ctx, http.MethodPost, "/focus/sessions", payload, &out)
	if err != nil {
		return nil, err
	}
	return out.Domain(), nil
}

// CurrentSession returns the active session, or nil when the server reports
// none (204).
func (c *Client) CurrentSession(ctx context.Context) (*domain.FocusSession, error) {
	var out contract.Session
	status, err := c.do(ctx, http.MethodGet, "/focus/sessions/current", nil, &out)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNoContent {
		return nil, nil
	}
	return out.Domain(), nil
}

func (c *Client) PauseSession(ctx context.Context, id int64) (*domain.FocusSession, error) {
	return c.sessionAction(ctx, id, "pause")
}

func (c *Client) ResumeSession(ctx context.Context, id int64) (*domain.FocusSession, error) {
	return c.sessionAction(ctx, id, "resume")
}

func (c *Client) CancelSession(ctx context.Context, id int64) (*domain.FocusSession, error) {
	return c.sessionAction(ctx, id, "cancel")
}

func (c *Client) CompleteSession(ctx context.Context, id int64) (*domain.FocusSession, error) {
	return c.sessionAction(ctx, id, "complete")
}

func (c *Client) sessionAction(ctx context.Context, id int64, action string) (*domain.FocusSession, error) {
	var out contract.Session
	path := fmt.Sprintf("/focus/sessions/%d/%s", id, action)
	_, err := c.do(ctx, http.MethodPost, path, nil, &out)
	if err != nil {
		return nil, err
	}
	return out.Domain(), nil
}

// ListSessions fetches one page of session history, newest first, along
// with the server's total.
func (c *Client) ListSessions(ctx context.Context, limit, offset int) ([]*domain.FocusSession, int, error) {
	var page contract.SessionList
	path := "/focus/sessions?" + pageQuery(limit, offset)
	if _, err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, 0, err
	}
	sessions := make([]*domain.FocusSession, 0, len(page.Items))
	for _, s := range page.Items {
		sessions = append(sessions, s.Domain())
	}
	return sessions, page.Total, nil
}
