package database

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Close đóng tất cả connections trong pool.
// Safe to call multiple times - subsequent calls sẽ là no-op
func (db *PostgresDB) Close() {
	if db.Pool == nil {
		return
	}

	log.Info().Msg("[DATABASE] Closing database connection pool...")
	db.Pool.Close()
	db.Pool = nil
}

// PoolStats là snapshot thống kê connection pool, trả về trong /health
type PoolStats struct {
	TotalConns         int32         `json:"total_connections"`
	IdleConns          int32         `json:"idle_connections"`
	AcquiredConns      int32         `json:"acquired_connections"`
	MaxConns           int32         `json:"max_connections"`
	AvgAcquireDuration time.Duration `json:"avg_acquire_duration_ns"`
}

// Stats trả về nil nếu pool chưa được khởi tạo
func (db *PostgresDB) Stats() *PoolStats {
	if db.Pool == nil {
		return nil
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		TotalConns:         raw.TotalConns(),
		IdleConns:          raw.IdleConns(),
		AcquiredConns:      raw.AcquiredConns(),
		MaxConns:           raw.MaxConns(),
		AvgAcquireDuration: calculateAvgDuration(raw.AcquireDuration(), raw.AcquireCount()),
	}
}

// calculateAvgDuration là helper để tính average acquire duration
func calculateAvgDuration(totalDuration time.Duration, count int64) time.Duration {
	if count == 0 {
		return 0
	}
	return totalDuration / time.Duration(count)
}
