package main

import (
	"context"
	"flag"
	"log"
	"os"

	"k8s.io/klog/v2"

	"github.com/srscatalog/backend/config"
	"github.com/srscatalog/backend/internal/eventbus"
	"github.com/srscatalog/backend/internal/handler"
	"github.com/srscatalog/backend/internal/pkg/database"
	"github.com/srscatalog/backend/internal/pkg/srsparser"
	"github.com/srscatalog/backend/internal/repository"
	"github.com/srscatalog/backend/internal/router"
	"github.com/srscatalog/backend/internal/service"
)

func main() {
	// 初始化 klog
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	klog.V(6).Info("服务启动中...")

	cfg := config.GetConfig()

	if err := os.MkdirAll(cfg.Data.Dir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// 初始化数据库
	handle, err := database.Open(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 初始化 Repository
	templateRepo := repository.NewTemplateRepository(handle)
	specRepo := repository.NewSpecificationRepository(handle)

	// 外部解析/语言处理服务客户端
	parserClient := srsparser.NewClient(cfg)
	validator := service.NewStructureValidator(parserClient)

	// 文档生命周期事件总线
	bus := eventbus.NewSpecEventBus()
	subscribeEventLog(bus)

	// 初始化 Service
	templateService := service.NewTemplateService(templateRepo, specRepo, validator)
	docService := service.NewDocumentService(specRepo, templateRepo, validator, parserClient, bus)
	keywordService := service.NewKeywordService(specRepo, parserClient)
	ingestService := service.NewIngestService(cfg, specRepo, templateRepo, parserClient)

	// 初始化 Handler
	templateHandler := handler.NewTemplateHandler(templateService)
	docHandler := handler.NewDocumentHandler(docService, keywordService)
	fileHandler := handler.NewFileHandler(ingestService)
	adminHandler := handler.NewAdminHandler(handle)

	// 设置路由
	r := router.Setup(cfg, docHandler, templateHandler, fileHandler, adminHandler)

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// subscribeEventLog 订阅文档生命周期事件并记录日志
func subscribeEventLog(bus *eventbus.SpecEventBus) {
	logEvent := func(ctx context.Context, event eventbus.SpecEvent) error {
		klog.V(6).Infof("文档事件: type=%s, id=%s, name=%s", event.Type, event.SpecID, event.Name)
		return nil
	}
	for _, eventType := range []eventbus.SpecEventType{
		eventbus.SpecEventCreated,
		eventbus.SpecEventStructureUpdated,
		eventbus.SpecEventKeywordsUpdated,
		eventbus.SpecEventDeleted,
	} {
		bus.Subscribe(eventType, logEvent)
	}
}
