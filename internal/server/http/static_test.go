package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func getRootWith(t *testing.T, srv *httptest.Server, ua, query string) *http.Response {
	t.Helper()
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/"+query, nil)
	require.NoError(t, err)
	if ua != "" {
		req.Header.Set("User-Agent", ua)
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRootRedirectPicksView(t *testing.T) {
	srv := httptest.NewServer(NewRouter(NewHandler(), ".", "."))
	t.Cleanup(srv.Close)

	// 手机 UA 去手机端
	resp := getRootWith(t, srv, "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0)", "")
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/web_mobile/", resp.Header.Get("Location"))

	// 桌面 UA 去桌面端
	resp = getRootWith(t, srv, "Mozilla/5.0 (X11; Linux x86_64)", "")
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/web/", resp.Header.Get("Location"))

	// 显式 view 参数盖过 UA，并记进 cookie
	resp = getRootWith(t, srv, "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0)", "?view=pc")
	require.Equal(t, "/web/", resp.Header.Get("Location"))
	var remembered string
	for _, c := range resp.Cookies() {
		if c.Name == viewCookieName {
			remembered = c.Value
		}
	}
	require.Equal(t, "web", remembered)
}

func TestCanonicalView(t *testing.T) {
	for in, want := range map[string]string{
		"web":        "web",
		"Desktop":    "web",
		" pc ":       "web",
		"mobile":     "mobile",
		"M":          "mobile",
		"web_mobile": "mobile",
		"tv":         "",
		"":           "",
	} {
		require.Equal(t, want, canonicalView(in), "input %q", in)
	}
}
