package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semhq/campaigner/pkg/binder"
)

type target struct {
	Topic   string   `form:"topic"`
	Custom  bool     `form:"custom_sender"`
	Count   int      `form:"count"`
	Ratio   float64  `form:"ratio"`
	Tags    []string `form:"tag"`
	Skipped string   `form:"-"`
}

func TestForm(t *testing.T) {
	t.Parallel()

	body := url.Values{
		"topic":         {"Spring launch"},
		"custom_sender": {"on"},
		"count":         {"3"},
		"ratio":         {"0.5"},
		"tag":           {"a", "b"},
		"Skipped":       {"x"},
	}.Encode()
	r := httptest.NewRequest(http.MethodPost, "/email/generate", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var got target
	require.NoError(t, binder.Form()(r, &got))

	assert.Equal(t, target{Topic: "Spring launch", Custom: true, Count: 3, Ratio: 0.5, Tags: []string{"a", "b"}}, got)
}

func TestForm_MissingKeysKeepDefaults(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	got := target{Topic: "keep"}
	require.NoError(t, binder.Form()(r, &got))
	assert.Equal(t, "keep", got.Topic)
	assert.False(t, got.Custom)
}

func TestQuery(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/?topic=q&count=7", nil)
	var got target
	require.NoError(t, binder.Query()(r, &got))
	assert.Equal(t, "q", got.Topic)
	assert.Equal(t, 7, got.Count)
}

func TestValues_Errors(t *testing.T) {
	t.Parallel()

	var got target
	require.ErrorIs(t, binder.Values(url.Values{}, got), binder.ErrInvalidTarget)
	require.ErrorIs(t, binder.Values(url.Values{}, (*target)(nil)), binder.ErrInvalidTarget)
	require.ErrorIs(t, binder.Values(url.Values{"count": {"x"}}, &got), binder.ErrParse)
	require.ErrorIs(t, binder.Values(url.Values{"custom_sender": {"maybe"}}, &got), binder.ErrParse)
}

func TestValues_CheckboxValues(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"on", "true", "1", "yes"} {
		var got target
		require.NoError(t, binder.Values(url.Values{"custom_sender": {raw}}, &got), raw)
		assert.True(t, got.Custom, raw)
	}
	for _, raw := range []string{"off", "false", "0", "no"} {
		got := target{Custom: true}
		require.NoError(t, binder.Values(url.Values{"custom_sender": {raw}}, &got), raw)
		assert.False(t, got.Custom, raw)
	}
}
