package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"stemdex.dev/search/update/core"
)

type Client struct {
	log    *slog.Logger
	client http.Client
	url    string
}

func NewClient(url string, timeout time.Duration, log *slog.Logger) (*Client, error) {
	if url == "" {
		return nil, fmt.Errorf("empty base url specified")
	}
	return &Client{
		client: http.Client{Timeout: timeout},
		log:    log,
		url:    url,
	}, nil
}

type docResp struct {
	ID    int    `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

func (c Client) Get(ctx context.Context, id int) (core.FeedDoc, error) {

	u := fmt.Sprintf("%s/docs/%d", c.url, id)
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	resp, err := c.client.Do(req)
	if err != nil {
		return core.FeedDoc{}, err
	}

	defer func() {
		if e := resp.Body.Close(); e != nil {
			c.log.Debug("close body failed", "error", e)
		}
	}()

	// документ могли удалить из фида
	if resp.StatusCode == http.StatusNotFound {
		return core.FeedDoc{}, core.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return core.FeedDoc{}, fmt.Errorf("feed get %d: http %d", id, resp.StatusCode)
	}

	var dr docResp
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return core.FeedDoc{}, err
	}

	return core.FeedDoc{
		ID:    dr.ID,
		URL:   dr.URL,
		Title: strings.TrimSpace(dr.Title),
		Text:  strings.TrimSpace(dr.Text),
	}, nil
}

func (c Client) LastID(ctx context.Context) (int, error) {

	u := fmt.Sprintf("%s/docs/last", c.url)
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}

	defer func() {
		if e := resp.Body.Close(); e != nil {
			c.log.Debug("close body failed", "error", e)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("feed last id: http %d", resp.StatusCode)
	}

	var dr docResp
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return 0, err
	}
	if dr.ID <= 0 {
		return 0, errors.New("bad last id from feed")
	}
	return dr.ID, nil
}
