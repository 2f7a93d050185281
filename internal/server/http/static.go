package httpserver

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

const viewCookieName = "xiangqi_view"

// registerStaticRoutes 挂静态资源：
// - /web/*        -> 桌面端页面
// - /web_mobile/* -> 手机端页面
// - /             -> 按 view 参数 / cookie / User-Agent 自动跳转
func registerStaticRoutes(r chi.Router, desktopDir, mobileDir string) {
	if mobileDir == "" {
		mobileDir = desktopDir
	}

	r.Handle("/web/*", http.StripPrefix("/web/", http.FileServer(http.Dir(desktopDir))))
	r.Handle("/web_mobile/*", http.StripPrefix("/web_mobile/", http.FileServer(http.Dir(mobileDir))))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		target := "/web/"
		if resolveView(w, req) == "mobile" {
			target = "/web_mobile/"
		}
		w.Header().Set("Vary", "User-Agent, Cookie")
		http.Redirect(w, req, target, http.StatusFound)
	})
	r.Get("/web", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/web/", http.StatusFound)
	})
	r.Get("/web_mobile", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/web_mobile/", http.StatusFound)
	})
}

// resolveView 决定发去哪个端，返回 "web" 或 "mobile"。
// 优先级：URL 参数 > cookie > User-Agent 猜测；显式给过参数就记进 cookie。
func resolveView(w http.ResponseWriter, r *http.Request) string {
	if v := canonicalView(r.URL.Query().Get("view")); v != "" {
		http.SetCookie(w, &http.Cookie{
			Name:     viewCookieName,
			Value:    v,
			Path:     "/",
			MaxAge:   30 * 24 * 60 * 60,
			SameSite: http.SameSiteLaxMode,
		})
		return v
	}
	if c, err := r.Cookie(viewCookieName); err == nil {
		if v := canonicalView(c.Value); v != "" {
			return v
		}
	}
	if uaLooksMobile(r.UserAgent()) {
		return "mobile"
	}
	return "web"
}

// canonicalView 把用户乱写的别名归一成 "web"/"mobile"，认不出返回空串。
func canonicalView(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "web", "desktop", "pc":
		return "web"
	case "mobile", "m", "phone", "web_mobile":
		return "mobile"
	}
	return ""
}

var mobileUAMarkers = []string{
	"android", "iphone", "ipad", "ipod", "mobile", "windows phone", "harmony",
}

func uaLooksMobile(ua string) bool {
	ua = strings.ToLower(ua)
	for _, marker := range mobileUAMarkers {
		if strings.Contains(ua, marker) {
			return true
		}
	}
	return false
}
