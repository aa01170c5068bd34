package hubstaff

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

const pageStartParam = "page_start_id"

// paginate follows the server's cursor until a page arrives without one.
// fetch performs one request, merges the page into the caller's accumulators,
// and returns the cursor found on it. The loop is bounded by maxPages so a
// server that never omits the cursor cannot stall the run forever.
func paginate(ctx context.Context, maxPages int, fetch func(ctx context.Context, pageStartID *int64) (*Pagination, error)) error {
	var cursor *int64
	for page := 1; ; page++ {
		if page > maxPages {
			return fmt.Errorf("pagination did not terminate after %d pages", maxPages)
		}
		next, err := fetch(ctx, cursor)
		if err != nil {
			return err
		}
		if next == nil {
			return nil
		}
		startID := next.NextPageStartID
		cursor = &startID
	}
}

// pageParams copies the fixed query parameters for an endpoint and applies
// the current cursor position.
func pageParams(fixed url.Values, pageStartID *int64) url.Values {
	params := url.Values{}
	for key, values := range fixed {
		params[key] = append([]string(nil), values...)
	}
	if pageStartID != nil {
		params.Set(pageStartParam, strconv.FormatInt(*pageStartID, 10))
	}
	return params
}
