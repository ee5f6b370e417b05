// Package identity 持久化设备号 → 玩家序号，重启后同一设备沿用原序号。
// 写入在后台协程中批量进行，不阻塞服务器 Tick
package identity

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Record 一条设备身份
type Record struct {
	DeviceKey      string `gorm:"primaryKey;size:128"`
	PlayerSequence int32  `gorm:"uniqueIndex"`
	CreatedAt      time.Time
}

func (Record) TableName() string { return "device_identities" }

var ErrStoreClosed = errors.New("identity: store closed")

const (
	writeQueueSize = 1024
	writeBatchSize = 64
)

// Store GORM 存储，Save 非阻塞入队
type Store struct {
	db     *gorm.DB
	log    *zap.SugaredLogger
	writes chan Record
	done   chan struct{}

	mu     sync.Mutex
	closed bool
}

// OpenSQLite 打开（或创建）SQLite 文件并迁移表结构
func OpenSQLite(path string, log *zap.SugaredLogger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrate identities: %w", err)
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &Store{
		db:     db,
		log:    log,
		writes: make(chan Record, writeQueueSize),
		done:   make(chan struct{}),
	}
	go s.writer()
	return s, nil
}

// LoadAll 读取全部身份，启动时恢复会话表
func (s *Store) LoadAll() (map[string]int32, error) {
	var rows []Record
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load identities: %w", err)
	}
	out := make(map[string]int32, len(rows))
	for _, r := range rows {
		out[r.DeviceKey] = r.PlayerSequence
	}
	return out, nil
}

// Save 入队等待写入；队列满时丢弃并告警（内存表仍然有效）
func (s *Store) Save(deviceKey string, seq int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.writes <- Record{DeviceKey: deviceKey, PlayerSequence: seq, CreatedAt: time.Now()}:
	default:
		s.log.Warnw("identity write queue full, dropping", "device", deviceKey, "seq", seq)
	}
}

func (s *Store) writer() {
	defer close(s.done)
	batch := make([]Record, 0, writeBatchSize)
	for rec := range s.writes {
		batch = append(batch[:0], rec)
	drain:
		for len(batch) < writeBatchSize {
			select {
			case r, ok := <-s.writes:
				if !ok {
					break drain
				}
				batch = append(batch, r)
			default:
				break drain
			}
		}
		if err := s.flush(batch); err != nil {
			s.log.Errorw("identity write failed", "records", len(batch), "err", err)
		}
	}
}

func (s *Store) flush(batch []Record) error {
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&batch).Error
}

// Close 写完队列中剩余记录后关闭数据库
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrStoreClosed
	}
	s.closed = true
	close(s.writes)
	s.mu.Unlock()

	<-s.done
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
