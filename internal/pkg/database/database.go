package database

import (
	"fmt"
	"sync/atomic"

	"github.com/glebarez/sqlite"
	"github.com/srscatalog/backend/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func openDB(dbType, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch dbType {
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		// 使用 github.com/glebarez/sqlite 驱动
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.Template{}, &model.Specification{}); err != nil {
		return nil, err
	}
	return db, nil
}

// Handle 显式注入的数据库句柄。
// 重连通过 Reconnect 换入新连接，失败时旧连接继续服务，
// 不存在可被并发请求观察到的中间状态。
type Handle struct {
	db atomic.Pointer[gorm.DB]
}

// Open 建立连接并完成迁移，返回可注入各 Repository 的句柄
func Open(dbType, dsn string) (*Handle, error) {
	db, err := openDB(dbType, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	h := &Handle{}
	h.db.Store(db)
	return h, nil
}

// DB 返回当前连接
func (h *Handle) DB() *gorm.DB {
	return h.db.Load()
}

// Reconnect 建立新连接并完成迁移，成功后原子替换当前连接
func (h *Handle) Reconnect(dbType, dsn string) error {
	db, err := openDB(dbType, dsn)
	if err != nil {
		return fmt.Errorf("reconnect database: %w", err)
	}
	h.db.Store(db)
	return nil
}
