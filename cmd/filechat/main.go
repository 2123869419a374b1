package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/ashwinyue/filechat/internal/config"
	"github.com/ashwinyue/filechat/internal/handler"
	"github.com/ashwinyue/filechat/internal/llm"
	"github.com/ashwinyue/filechat/internal/logger"
	"github.com/ashwinyue/filechat/internal/repository"
	"github.com/ashwinyue/filechat/internal/router"
	"github.com/ashwinyue/filechat/internal/service/files"
)

func main() {
	// 加载配置
	configPath := os.Getenv("CONFIG_PATH")

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger.Init(cfg.App.Debug)

	// 设置 Gin 模式
	gin.SetMode(cfg.Server.Mode)

	// 初始化数据库，启动期有限次重试等待数据库就绪
	db, err := repository.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init database")
	}
	defer db.Close()

	log.Info().Str("dbname", cfg.Database.DBName).Msg("database connected")

	// 初始化 LLM 适配器
	ctx := context.Background()
	client, err := llm.New(ctx, cfg.AI.Provider, &cfg.AI)
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.AI.Provider).Msg("failed to init llm adapter")
	}

	fileClient, ok := client.(llm.FileClient)
	if !ok {
		log.Fatal().Str("provider", cfg.AI.Provider).Msg("configured provider does not support file upload")
	}

	// 初始化各层
	repos := repository.NewRepositories(db.DB)
	fileSvc := files.NewService(repos.File, repos.Conversation, fileClient)
	handlers := handler.NewHandlers(fileSvc)

	// 初始化路由
	r := router.SetupRouter(handlers)

	// 创建 HTTP 服务器
	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// 启动服务器
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// 优雅关闭
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
