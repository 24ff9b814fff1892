package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodiesEqualNormalisesNumbers(t *testing.T) {
	assert.True(t, bodiesEqual([]byte(`[{"id":1,"credits":4}]`), []byte(`[{"credits":4.0,"id":1}]`)))
	assert.False(t, bodiesEqual([]byte(`[{"id":1}]`), []byte(`[{"id":2}]`)))
	assert.False(t, bodiesEqual([]byte(`not json`), []byte(`{}`)))
}

func TestLoadTargets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "targets.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"targets":[{"method":"POST","path":"/students","body":{"name":"Ada"}}]}`), 0o600))

	targets, err := loadTargets(path)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.JSONEq(t, `{"name":"Ada"}`, string(targets[0].Body))

	require.NoError(t, os.WriteFile(path, []byte(`{"targets":[]}`), 0o600))
	_, err = loadTargets(path)
	assert.Error(t, err)
}

func TestCompareTargetSendsBody(t *testing.T) {
	var goBody, legacyBody []byte
	goSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		goBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1,"name":"Ada"}`))
	}))
	defer goSrv.Close()
	legacySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		legacyBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"name":"Ada","id":1}`))
	}))
	defer legacySrv.Close()

	tgt := target{Method: "post", Path: "students", Body: []byte(`{"name":"Ada"}`), Critical: true}
	comp := compareTarget(http.DefaultClient, goSrv.URL, legacySrv.URL, tgt)

	require.NoError(t, comp.Error)
	assert.True(t, comp.StatusMatch)
	assert.True(t, comp.BodyMatch)
	assert.JSONEq(t, `{"name":"Ada"}`, string(goBody))
	assert.JSONEq(t, `{"name":"Ada"}`, string(legacyBody))
}

func TestTallyAndReport(t *testing.T) {
	results := []comparison{
		{Target: target{Method: "GET", Path: "/students", Critical: true}, StatusMatch: true, BodyMatch: true},
		{Target: target{Name: "delete missing", Critical: true}, StatusMatch: false, BodyMatch: true},
		{Target: target{Name: "unenroll again"}, StatusMatch: true, BodyMatch: false},
	}

	breaking, optional := tally(results)
	assert.Equal(t, 1, breaking)
	assert.Equal(t, 1, optional)

	var buf bytes.Buffer
	printReport(&buf, results)
	assert.Contains(t, buf.String(), "[OK] GET /students")
	assert.Contains(t, buf.String(), "[DIFF] delete missing")
}

func TestDefaultBasesDoNotCollide(t *testing.T) {
	assert.NotEqual(t, defaultGoBase, defaultLegacyBase)
	assert.Equal(t, "http://localhost:5000", defaultLegacyBase)
}
