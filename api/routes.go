package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/shan3520/smartspend/internal/handlers/v1/insights"
	"github.com/shan3520/smartspend/internal/handlers/v1/statement"
	"github.com/shan3520/smartspend/internal/handlers/v1/status"
	"github.com/shan3520/smartspend/internal/logging"
	"github.com/shan3520/smartspend/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("smartspend", "1.0.0"))
	humaAPI.UseMiddleware(logging.HumaMiddleware(r.Logger))

	statement.NewUploadStatementHandler(r.Service.Statement).Register(humaAPI)
	statement.NewPreviewStatementHandler(r.Service.Statement).Register(humaAPI)
	insights.NewSubscriptionsHandler(r.Service.Insights).Register(humaAPI)
	insights.NewOverspendingHandler(r.Service.Insights).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
