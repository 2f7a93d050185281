package main

import (
	"flag"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	httpserver "github.com/lx719679895/chinese-chess-trae/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 不阻塞，不关心错误（服务器环境可能没图形界面）
}

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	webDir := flag.String("web", "./web", "directory with desktop index.html / js / svg")
	mobileDir := flag.String("web-mobile", "", "directory with mobile assets (defaults to -web)")
	noBrowser := flag.Bool("no-browser", false, "do not open the default browser")
	flag.Parse()

	h := httpserver.NewHandler()
	router := httpserver.NewRouter(h, *webDir, *mobileDir)

	log.Printf("listening on %s, serving static from %s", *addr, *webDir)

	// 稍等一下再开浏览器，免得服务器还没起来
	if !*noBrowser {
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr)
		}()
	}

	if err := http.ListenAndServe(*addr, router); err != nil {
		log.Fatal(err)
	}
}
