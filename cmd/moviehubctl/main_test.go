package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yong/moviehub/pkg/client"
)

func execute(t *testing.T, srv *httptest.Server, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append(args, "--url", srv.URL))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestListAllPages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/movies", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"id,asc"}, r.URL.Query()["sort"])
		assert.Equal(t, "2", r.URL.Query().Get("size"))

		w.Header().Set("X-Total-Count", "3")
		switch r.URL.Query().Get("page") {
		case "0":
			w.Header().Set("Link", `</api/movies?page=1&size=2>; rel="next",</api/movies?page=1&size=2>; rel="last",</api/movies?page=0&size=2>; rel="first"`)
			_, _ = io.WriteString(w, `[{"id":1,"name":"A"},{"id":2,"name":"B"}]`)
		case "1":
			w.Header().Set("Link", `</api/movies?page=0&size=2>; rel="prev",</api/movies?page=1&size=2>; rel="last",</api/movies?page=0&size=2>; rel="first"`)
			_, _ = io.WriteString(w, `[{"id":3,"name":"C"}]`)
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	out, err := execute(t, srv, "", "movies", "list", "--all", "--size", "2")
	require.NoError(t, err)

	var result listOutput[client.Movie]
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 3, result.TotalItems)
	require.Len(t, result.Items, 3)
	assert.Equal(t, "C", *result.Items[2].Name)
}

func TestCreateFromStdin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/news", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Festival opens", body["headerline"])

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":7,"headerline":"Festival opens","url":"https://example.com"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	out, err := execute(t, srv, `{"headerline":"Festival opens","url":"https://example.com"}`, "news", "create", "--data", "-")
	require.NoError(t, err)

	var created client.News
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.Equal(t, int64(7), *created.ID)
}

func TestUpdateReportsServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/twitters/3", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := execute(t, srv, "", "twitters", "update", "--data", `{"id":3,"content":"x"}`)
	require.ErrorIs(t, err, client.ErrRequestFailed)
}

func TestAttach(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/movies/4", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"id":4,"name":"Playtime"}`)
	})
	mux.HandleFunc("PATCH /api/movies/4", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/merge-patch+json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var movie client.Movie
		assert.NoError(t, json.Unmarshal(body, &movie))
		assert.Equal(t, []byte("poster"), movie.Image)
		assert.Equal(t, "image/png", *movie.ImageContentType)

		_, _ = w.Write(body)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	file := filepath.Join(t.TempDir(), "poster.png")
	require.NoError(t, os.WriteFile(file, []byte("poster"), 0o600))

	out, err := execute(t, srv, "", "movies", "attach", "4", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, `"imageContentType": "image/png"`)
}

func TestDelete(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/news/2", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	out, err := execute(t, srv, "", "news", "delete", "2")
	require.NoError(t, err)
	assert.Equal(t, "deleted news 2\n", out)
}

func TestTwittersHaveNoAttach(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := execute(t, srv, "", "twitters", "attach", "1", "--file", "x")
	require.Error(t, err)
}

func TestDetectContentType(t *testing.T) {
	assert.Equal(t, "image/png", detectContentType("poster.png", nil))
	assert.Equal(t, "text/plain; charset=utf-8", detectContentType("notes", []byte("plain text")))
}
