package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"devkwon.dev/internal/models"
	"devkwon.dev/internal/testutil"
)

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestIndexRendersPage(t *testing.T) {
	t.Parallel()

	at := time.Date(2031, time.January, 1, 0, 0, 0, 0, time.UTC)
	ts := testutil.NewServer(t, testutil.WithClock(testutil.FixedClock(at)))

	resp, body := get(t, ts.URL+"/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, "dev kwon portfolio", doc.Find("title").Text())
	require.Equal(t, "© 2031 dev. Built with Go.", strings.TrimSpace(doc.Find("footer").Text()))
	require.Equal(t, 2, doc.Find("#projects .pcard").Length())
}

func TestIndexIsStableForSameClock(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)
	ts := testutil.NewServer(t, testutil.WithClock(testutil.FixedClock(at)))

	_, first := get(t, ts.URL+"/")
	_, second := get(t, ts.URL+"/")
	require.Equal(t, string(first), string(second))
}

func TestListProjects(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	resp, body := get(t, ts.URL+"/api/projects")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var projects []models.Project
	require.NoError(t, json.Unmarshal(body, &projects))
	require.Len(t, projects, 2)
	require.Equal(t, "teacher-ai-chatbot", projects[0].ID)
	require.Equal(t, models.LinkPending, projects[0].Links[0].Kind)
}

func TestGetProject(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	resp, body := get(t, ts.URL+"/api/projects/portfolio-website")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var project models.Project
	require.NoError(t, json.Unmarshal(body, &project))
	require.Equal(t, "Portfolio Website", project.Title)

	resp, body = get(t, ts.URL+"/api/projects/nope")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.JSONEq(t, `{"error":"Project not found"}`, string(body))
}

func TestHealth(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	resp, body := get(t, ts.URL+"/api/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestStaticAssets(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	resp, body := get(t, ts.URL+"/static/app.css")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get("Content-Type"), "text/css")
	require.Contains(t, string(body), ".pcard")
	require.NotEmpty(t, resp.Header.Get("ETag"))

	resp, _ = get(t, ts.URL+"/static/missing.js")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
