package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrent_IdenticalRangeRequests verifies that the same read served
// concurrently always yields the same page: the store is a snapshot, so
// repeated identical requests are idempotent.
func TestConcurrent_IdenticalRangeRequests(t *testing.T) {
	ts := NewFixtureServer()

	const workers = 20
	results := make([][]byte, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(idx int) {
			defer wg.Done()
			resp := ts.RangeRequest("LHR", "JFK", "2024-06-01", "2024-06-10", "page-size=5")
			if resp.Code == http.StatusOK {
				results[idx] = resp.Body
			}
		}(i)
	}
	wg.Wait()

	require.NotNil(t, results[0])
	for i := 1; i < workers; i++ {
		require.NotNil(t, results[i], "worker %d got a non-200 response", i)
		assert.JSONEq(t, string(results[0]), string(results[i]),
			"worker %d saw a different page", i)
	}
}

// TestConcurrent_MixedSearches runs range and cheapest searches in parallel
// and verifies each response stays internally consistent.
func TestConcurrent_MixedSearches(t *testing.T) {
	ts := NewFixtureServer()

	const iterations = 10
	var wg sync.WaitGroup

	errs := make(chan string, iterations*2)

	for i := 0; i < iterations; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			resp := ts.RangeRequest("LHR", "JFK", "2024-06-01", "2024-06-30", "")
			if resp.Code != http.StatusOK {
				errs <- "range search failed"
				return
			}
			page, err := resp.ParsePage()
			if err != nil || page.TotalElements != 30 {
				errs <- "range search returned inconsistent totals"
			}
		}()

		go func() {
			defer wg.Done()
			resp := ts.CheapestRequest("LHR", "JFK", "BUSINESS", "")
			if resp.Code != http.StatusOK {
				errs <- "cheapest search failed"
				return
			}
			page, err := resp.ParsePage()
			if err != nil || page.TotalElements != 30 {
				errs <- "cheapest search returned inconsistent totals"
			}
		}()
	}

	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Error(msg)
	}
}

// TestConcurrent_PaginationDisjoint fetches all pages concurrently and then
// checks the union covers every flight exactly once.
func TestConcurrent_PaginationDisjoint(t *testing.T) {
	ts := NewFixtureServer()

	const pages = 6 // 30 flights, size 5
	bodies := make([][]byte, pages)

	var wg sync.WaitGroup
	wg.Add(pages)
	for n := 0; n < pages; n++ {
		go func(pageNum int) {
			defer wg.Done()
			resp := ts.CheapestRequest("LHR", "JFK", "ECONOMY",
				fmt.Sprintf("page-number=%d&page-size=5", pageNum))
			if resp.Code == http.StatusOK {
				bodies[pageNum] = resp.Body
			}
		}(n)
	}
	wg.Wait()

	seen := map[string]bool{}
	for n, body := range bodies {
		require.NotNil(t, body, "page %d failed", n)

		var page struct {
			Content []struct {
				ID string `json:"id"`
			} `json:"content"`
		}
		require.NoError(t, json.Unmarshal(body, &page))
		require.Len(t, page.Content, 5, "page %d", n)

		for _, f := range page.Content {
			assert.False(t, seen[f.ID], "flight %s on two pages", f.ID)
			seen[f.ID] = true
		}
	}
	assert.Len(t, seen, 30)
}
