// Package status классифицирует контрольные точки по времени последней
// отметки охранника относительно настроенных окон NormalTime и PassTime.
package status

import (
	"time"

	"github.com/FirdavsNurmatov/guard-monitoring/internal/models"
)

// Status - операционный статус контрольной точки
type Status string

const (
	// StatusOnTime - отметка пришла в пределах NormalTime
	StatusOnTime Status = "ON_TIME"
	// StatusLate - отметка опоздала, но уложилась в NormalTime + PassTime
	StatusLate Status = "LATE"
	// StatusMissed - отметка вышла за NormalTime + PassTime либо не пришла вовсе
	StatusMissed Status = "MISSED"
	// StatusNoData - по точке нет ни одной отметки. Отдельное состояние:
	// "никогда не посещалась" не то же самое, что "посещалась слишком поздно".
	StatusNoData Status = "NO_DATA"
)

// Classify относит прошедшее время к одному из трех статусов.
// Граничные значения принадлежат более строгому (раннему) интервалу:
// ровно NormalTime - это ON_TIME, ровно NormalTime+PassTime - это LATE.
func Classify(elapsed time.Duration, normalTime, passTime int) Status {
	normal := time.Duration(normalTime) * time.Minute
	grace := normal + time.Duration(passTime)*time.Minute

	switch {
	case elapsed <= normal:
		return StatusOnTime
	case elapsed <= grace:
		return StatusLate
	default:
		return StatusMissed
	}
}

// AtScan вычисляет статус, который фиксируется в создаваемом логе.
// Базовая линия - предыдущая отметка той же точки; самая первая отметка
// открывает маршрут и считается ON_TIME.
func AtScan(cp *models.Checkpoint, previous *models.ScanLog, scannedAt time.Time) Status {
	if previous == nil {
		return StatusOnTime
	}
	return Classify(scannedAt.Sub(previous.CreatedAt), cp.NormalTime, cp.PassTime)
}

// Current возвращает отображаемый статус точки на момент now.
// Статус последнего лога понижается до MISSED, если с момента отметки
// прошло больше NormalTime+PassTime: точка переходит в MISSED чистым
// ходом времени, без нового события.
func Current(cp *models.Checkpoint, latest *models.ScanLog, now time.Time) Status {
	if latest == nil {
		return StatusNoData
	}
	if Classify(now.Sub(latest.CreatedAt), cp.NormalTime, cp.PassTime) == StatusMissed {
		return StatusMissed
	}
	return Status(latest.Status)
}
