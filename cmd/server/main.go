// @title NewsBangla24 API
// @version 1.0
// @description 双语新闻门户后端：读者站点、记者工作台和后台管理
// @BasePath /api/v1
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsbangla24/portal/config"
	"newsbangla24/portal/internal/app"
	"newsbangla24/portal/internal/article"
	"newsbangla24/portal/internal/database"
	"newsbangla24/portal/internal/event"
	"newsbangla24/portal/internal/grpc"
	"newsbangla24/portal/internal/logging"
	"newsbangla24/portal/internal/route"
	"newsbangla24/portal/internal/seed"
	"newsbangla24/portal/internal/session"
	"newsbangla24/portal/pkg/email"
)

func main() {
	// 1. 加载配置
	config.MustLoad("config.yaml")
	cfg := config.Conf

	// 2. 初始化日志
	logging.InitLogger(cfg.Log.Level, cfg.Log.Format)

	// 3. 初始化数据库
	database.InitDatabase()
	defer database.Close()

	// 4. 组装依赖
	var opts []app.Option
	if database.Redis != nil {
		opts = append(opts, app.WithSessionStore(session.NewRedisStore(database.Redis)))
	}
	if cfg.Smtp.Enabled() {
		opts = append(opts, app.WithMailer(email.NewClient(&cfg.Smtp)))
	}
	if cfg.RabbitMQ.URL != "" {
		publisher, err := event.NewRabbitMQ(event.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, slog.Default())
		if err != nil {
			log.Fatalf("[rabbitmq] %v", err)
		}
		defer publisher.Close()
		opts = append(opts, app.WithEvents(publisher))
	}
	deps := app.New(cfg, database.GetDB(), opts...)
	defer deps.Hub.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. 演示数据
	if cfg.Seed.Enabled {
		if _, err := seed.Run(ctx, deps.DB, deps.Clock); err != nil {
			log.Fatalf("[seed] %v", err)
		}
	}

	// 6. 定时发布
	scheduler := article.NewScheduler(article.NewServiceFromDeps(deps), deps.Clock, cfg.Scheduler.Interval)
	go scheduler.Run(ctx)

	// 7. gRPC 健康检查
	var grpcServer *grpc.Server
	if cfg.GRPC.Port > 0 {
		var err error
		grpcServer, err = grpc.NewServer(cfg.GRPC.Port)
		if err != nil {
			log.Fatalf("[grpc] %v", err)
		}
		go func() {
			log.Printf("[grpc] listening on %s", grpcServer.GetAddr())
			if err := grpcServer.Start(); err != nil {
				slog.Error("grpc server stopped", "error", err)
			}
		}()
	}

	// 8. 启动 HTTP 服务
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      route.SetupRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Printf("[http] listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[http] %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown", "error", err)
	}
	if grpcServer != nil {
		grpcServer.Stop()
	}
}
