package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/daodao97/xgo/utils"
	"github.com/daodao97/xgo/xapp"
	"github.com/daodao97/xgo/xdb"
	"github.com/daodao97/xgo/xlog"
	"github.com/daodao97/xgo/xrequest"

	"github.com/NguyenLeDuy2k7/Chatbot-AI/internal/api"
	"github.com/NguyenLeDuy2k7/Chatbot-AI/internal/conf"
	"github.com/NguyenLeDuy2k7/Chatbot-AI/internal/dao"
	"github.com/NguyenLeDuy2k7/Chatbot-AI/internal/pkg/xllm"
)

var Version string

func init() {
	if !utils.IsGoRun() {
		xlog.SetLogger(xlog.StdoutJson(xlog.WithLevel(slog.LevelInfo)))
	}
}

func main() {
	app := xapp.NewApp().
		AddStartup(
			conf.InitConf,
			func() error {
				xrequest.SetRequestDebug(conf.Get().Debug)
				return dao.Bootstrap(conf.Get().Database)
			},
			func() error {
				return xdb.Inits(conf.Get().Database)
			},
		).
		AfterStarted(func() {
			xlog.Debug("version", xlog.String("version", Version))
		}).
		AddServer(xapp.NewHttp(xapp.Args.Bind, h))

	if err := app.Run(); err != nil {
		fmt.Printf("Application error: %v\n", err)
	}
}

func h() http.Handler {
	cfg := conf.Get()

	llm := xllm.NewOpenAI(
		xllm.WithAPIUrl(cfg.LLM.ApiUrl),
		xllm.WithAPIKey(cfg.LLM.ApiKey),
		xllm.WithModel(cfg.LLM.Model),
		xllm.WithTimeout(cfg.LLM.Timeout()),
	)
	handler := api.NewHandler(dao.NewConversationStore(), llm, cfg.LLM.SystemPrompt)

	e := xapp.NewGin()
	e.LoadHTMLGlob("assets/*.html")

	api.SetupRouter(e, handler)
	return e.Handler()
}
