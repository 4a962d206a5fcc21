package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/FirdavsNurmatov/guard-monitoring/internal/models"
)

func TestClassify_Boundaries(t *testing.T) {
	// NormalTime 15 мин, PassTime 5 мин
	tests := []struct {
		name    string
		elapsed time.Duration
		want    Status
	}{
		{"сильно раньше окна", 1 * time.Minute, StatusOnTime},
		{"ровно NormalTime", 15 * time.Minute, StatusOnTime},
		{"чуть позже NormalTime", 15*time.Minute + time.Second, StatusLate},
		{"ровно NormalTime+PassTime", 20 * time.Minute, StatusLate},
		{"чуть позже окна допуска", 20*time.Minute + time.Second, StatusMissed},
		{"много позже", 3 * time.Hour, StatusMissed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.elapsed, 15, 5))
		})
	}
}

func TestAtScan_FirstScanIsOnTime(t *testing.T) {
	cp := &models.Checkpoint{NormalTime: 15, PassTime: 5}

	// Первая отметка открывает маршрут, сравнивать не с чем
	got := AtScan(cp, nil, time.Now())
	assert.Equal(t, StatusOnTime, got)
}

func TestAtScan_AgainstPreviousLog(t *testing.T) {
	cp := &models.Checkpoint{NormalTime: 15, PassTime: 5}
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	previous := &models.ScanLog{CreatedAt: base}

	assert.Equal(t, StatusOnTime, AtScan(cp, previous, base.Add(10*time.Minute)))
	assert.Equal(t, StatusLate, AtScan(cp, previous, base.Add(18*time.Minute)))
	assert.Equal(t, StatusMissed, AtScan(cp, previous, base.Add(25*time.Minute)))
}

func TestCurrent_NoData(t *testing.T) {
	cp := &models.Checkpoint{NormalTime: 15, PassTime: 5}

	assert.Equal(t, StatusNoData, Current(cp, nil, time.Now()))
}

func TestCurrent_KeepsStampedStatusInsideWindow(t *testing.T) {
	cp := &models.Checkpoint{NormalTime: 15, PassTime: 5}
	now := time.Now()
	latest := &models.ScanLog{
		Status:    string(StatusLate),
		CreatedAt: now.Add(-10 * time.Minute),
	}

	// Пока окно не вышло, показывается статус, зафиксированный при отметке
	assert.Equal(t, StatusLate, Current(cp, latest, now))
}

func TestCurrent_DemotesToMissedByWallClock(t *testing.T) {
	cp := &models.Checkpoint{NormalTime: 15, PassTime: 5}
	now := time.Now()
	latest := &models.ScanLog{
		Status:    string(StatusOnTime),
		CreatedAt: now.Add(-30 * time.Minute),
	}

	// Новой отметки не было, точка ушла в MISSED чистым ходом времени
	assert.Equal(t, StatusMissed, Current(cp, latest, now))
}
