package newsdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iWorld-y/news_triage/internal/search"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient("test-key")
	c.baseURL = srv.URL
	return c, srv
}

func TestSearchSinglePage(t *testing.T) {
	var gotQuery string
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		resp := apiResponse{
			Status: "success",
			Results: []apiResult{
				{Title: "t1", Link: "https://example.com/1", Description: "d1", PubDate: "2026-08-26"},
				{Title: "t2", Link: "https://example.com/2", Description: "d2", PubDate: "2026-08-25"},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	resp, err := c.Search(context.Background(), &search.Request{Keyword: "grc", MaxResults: 10})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if gotQuery != "grc" {
		t.Errorf("query q = %q, want grc", gotQuery)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("Search() returned %d results, want 2", len(resp.Results))
	}
	if resp.Results[0].URL != "https://example.com/1" || resp.Results[0].Description != "d1" {
		t.Errorf("Search() first result = %+v", resp.Results[0])
	}
}

func TestSearchPagination(t *testing.T) {
	var pages []string
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		pages = append(pages, page)

		resp := apiResponse{Status: "success"}
		switch page {
		case "":
			resp.Results = []apiResult{{Title: "t1", Link: "u1", Description: "d1"}}
			resp.NextPage = "cursor-2"
		case "cursor-2":
			resp.Results = []apiResult{{Title: "t2", Link: "u2", Description: "d2"}}
		default:
			t.Errorf("unexpected page cursor %q", page)
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	resp, err := c.Search(context.Background(), &search.Request{Keyword: "grc", MaxResults: 10})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(resp.Results) != 2 {
		t.Errorf("Search() returned %d results, want 2", len(resp.Results))
	}
	if len(pages) != 2 || pages[1] != "cursor-2" {
		t.Errorf("pages requested = %v, want two pages ending with cursor-2", pages)
	}
}

func TestSearchMaxResultsCap(t *testing.T) {
	requests := 0
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		resp := apiResponse{Status: "success", NextPage: fmt.Sprintf("cursor-%d", requests)}
		for i := 0; i < 10; i++ {
			resp.Results = append(resp.Results, apiResult{
				Title:       fmt.Sprintf("t%d", i),
				Link:        fmt.Sprintf("u%d", i),
				Description: "d",
			})
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	resp, err := c.Search(context.Background(), &search.Request{Keyword: "grc", MaxResults: 15})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(resp.Results) != 15 {
		t.Errorf("Search() returned %d results, want 15", len(resp.Results))
	}
	if requests != 2 {
		t.Errorf("requests = %d, want 2", requests)
	}
}

func TestSearchAPIError(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"status":"error","results":{"message":"invalid key"}}`)
	}))
	defer srv.Close()

	if _, err := c.Search(context.Background(), &search.Request{Keyword: "grc"}); err == nil {
		t.Error("Search() expected error for 401 response")
	}
}

func TestSearchNonSuccessStatus(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"error","results":{"message":"rate limited"}}`)
	}))
	defer srv.Close()

	if _, err := c.Search(context.Background(), &search.Request{Keyword: "grc"}); err == nil {
		t.Error("Search() expected error for non-success status")
	}
}

func TestSearchMissingAPIKey(t *testing.T) {
	c := NewClient("")
	if _, err := c.Search(context.Background(), &search.Request{Keyword: "grc"}); err == nil {
		t.Error("Search() expected error for missing api key")
	}
}
