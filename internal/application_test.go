package internal

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loro-backend/config"
)

func testApp(token, apiURL string) *App {
	return &App{config: &config.Scheme{
		HTTP:    &config.HTTP{Host: "127.0.0.1", Port: 0},
		GitHub:  &config.GitHub{Token: token, APIURL: apiURL},
		Tree:    &config.Tree{Strategy: "nested", MaxDepth: 8, MaxNodes: 100},
		Metrics: &config.Metrics{Enabled: true, Path: "/metrics"},
	}}
}

func fakeGitHub(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octocat/hello-world", func(rw http.ResponseWriter, r *http.Request) {
		_, _ = rw.Write([]byte(`{"name":"hello-world","full_name":"octocat/hello-world","owner":{"login":"octocat"}}`))
	})
	mux.HandleFunc("/repos/octocat/hello-world/contents", func(rw http.ResponseWriter, r *http.Request) {
		_, _ = rw.Write([]byte(`[{"name":"a","path":"a","type":"dir"}]`))
	})
	mux.HandleFunc("/repos/octocat/hello-world/contents/a", func(rw http.ResponseWriter, r *http.Request) {
		_, _ = rw.Write([]byte(`[{"name":"b.txt","path":"a/b.txt","type":"file"},{"name":"c","path":"a/c","type":"dir"}]`))
	})
	mux.HandleFunc("/repos/octocat/hello-world/contents/a/c", func(rw http.ResponseWriter, r *http.Request) {
		_, _ = rw.Write([]byte(`[{"name":"d.txt","path":"a/c/d.txt","type":"file"}]`))
	})
	mux.HandleFunc("/repos/octocat/limited", func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusForbidden)
		_, _ = rw.Write([]byte(`{"message":"API rate limit exceeded for 127.0.0.1."}`))
	})
	mux.HandleFunc("/graphql", func(rw http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer ghp_valid" {
			rw.WriteHeader(http.StatusUnauthorized)
			_, _ = rw.Write([]byte(`{"message":"Bad credentials"}`))
			return
		}
		_, _ = rw.Write([]byte(`{"data":{"viewer":{"login":"octocat"}}}`))
	})
	mux.HandleFunc("/", func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusNotFound)
		_, _ = rw.Write([]byte(`{"message":"Not Found"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestApp_InitRequiresToken(t *testing.T) {
	testCases := []struct {
		name      string
		token     string
		expectErr error
	}{
		{name: "missing", token: "", expectErr: config.ErrMissingToken},
		{name: "malformed", token: "ghp abc", expectErr: config.ErrMalformedToken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := testApp(tc.token, "")

			err := app.Init()
			assert.ErrorIs(t, err, tc.expectErr)
			assert.Nil(t, app.httpServer)
			assert.Nil(t, app.client)
			assert.NoError(t, app.Stop())
		})
	}
}

func TestApp_EndToEnd(t *testing.T) {
	upstream := fakeGitHub(t)

	app := testApp("ghp_valid", upstream.URL)
	require.NoError(t, app.Init())

	ts := httptest.NewServer(app.httpServer.Handler)
	defer ts.Close()

	testCases := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "metadata",
			path:       "/repo/octocat/hello-world",
			wantStatus: http.StatusOK,
		},
		{
			name:       "structure",
			path:       "/repo/octocat/hello-world/structure",
			wantStatus: http.StatusOK,
			wantBody: `[{"type":"directory","name":"a","children":[
				{"type":"file","name":"b.txt"},
				{"type":"directory","name":"c","children":[{"type":"file","name":"d.txt"}]}
			]}]`,
		},
		{
			name:       "not found",
			path:       "/repo/octocat/missing",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Repository not found"}`,
		},
		{
			name:       "rate limited",
			path:       "/repo/octocat/limited",
			wantStatus: http.StatusTooManyRequests,
			wantBody:   `{"error":"Rate limited by GitHub"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := http.Get(ts.URL + tc.path)
			require.NoError(t, err)
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, string(body))
			} else {
				assert.Contains(t, string(body), `"owner":"octocat"`)
				assert.Contains(t, string(body), `"name":"hello-world"`)
			}
		})
	}
}

func TestApp_VerifyToken(t *testing.T) {
	upstream := fakeGitHub(t)

	app := testApp("ghp_valid", upstream.URL)
	require.NoError(t, app.Init())
	assert.NoError(t, app.VerifyToken(context.Background()))

	app = testApp("ghp_revoked", upstream.URL)
	require.NoError(t, app.Init())
	assert.ErrorIs(t, app.VerifyToken(context.Background()), config.ErrMalformedToken)
}
