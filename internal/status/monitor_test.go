package status

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"

	"github.com/FirdavsNurmatov/guard-monitoring/internal/models"
	relay_mocks "github.com/FirdavsNurmatov/guard-monitoring/internal/relay/mocks"
)

// stubStateSource отдает заранее заданный набор состояний
type stubStateSource struct {
	states []CheckpointState
	err    error
}

func (s *stubStateSource) LatestStates(_ context.Context) ([]CheckpointState, error) {
	return s.states, s.err
}

func newTestMonitor(t *testing.T, source StateSource) (*Monitor, *relay_mocks.MockEventPublisher) {
	ctrl := gomock.NewController(t)
	publisher := relay_mocks.NewMockEventPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewMonitor(source, publisher, logger, time.Minute), publisher
}

func TestSweep_PublishesInitialStatuses(t *testing.T) {
	cp := &models.Checkpoint{ID: uuid.New(), ObjectID: uuid.New(), NormalTime: 15, PassTime: 5}
	source := &stubStateSource{states: []CheckpointState{{Checkpoint: cp, Latest: nil}}}
	monitor, publisher := newTestMonitor(t, source)
	ctx := context.Background()

	// Первый проход: точка еще не встречалась, событие уходит
	publisher.EXPECT().
		Publish(ctx, EventStatusUpdate, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload any) error {
			update := payload.(StatusUpdate)
			if update.CheckpointID != cp.ID || update.Status != StatusNoData {
				t.Errorf("unexpected status update: %+v", update)
			}
			return nil
		}).
		Times(1)

	monitor.Sweep(ctx)
}

func TestSweep_SkipsUnchangedStatuses(t *testing.T) {
	cp := &models.Checkpoint{ID: uuid.New(), ObjectID: uuid.New(), NormalTime: 15, PassTime: 5}
	source := &stubStateSource{states: []CheckpointState{{Checkpoint: cp, Latest: nil}}}
	monitor, publisher := newTestMonitor(t, source)
	ctx := context.Background()

	// Статус не меняется между проходами — событие только одно
	publisher.EXPECT().Publish(ctx, EventStatusUpdate, gomock.Any()).Return(nil).Times(1)

	monitor.Sweep(ctx)
	monitor.Sweep(ctx)
}

func TestSweep_PublishesTransitionToMissed(t *testing.T) {
	cp := &models.Checkpoint{ID: uuid.New(), ObjectID: uuid.New(), NormalTime: 15, PassTime: 5}
	source := &stubStateSource{states: []CheckpointState{{
		Checkpoint: cp,
		Latest: &models.ScanLog{
			Status:    string(StatusOnTime),
			CreatedAt: time.Now().Add(-10 * time.Minute),
		},
	}}}
	monitor, publisher := newTestMonitor(t, source)
	ctx := context.Background()

	// Первый проход: точка в окне, фиксируется ON_TIME
	publisher.EXPECT().
		Publish(ctx, EventStatusUpdate, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload any) error {
			if got := payload.(StatusUpdate).Status; got != StatusOnTime {
				t.Errorf("expected ON_TIME, got %s", got)
			}
			return nil
		}).
		Times(1)
	monitor.Sweep(ctx)

	// Лог состарился за окно допуска — переход в MISSED без нового события отметки
	source.states[0].Latest.CreatedAt = time.Now().Add(-30 * time.Minute)
	publisher.EXPECT().
		Publish(ctx, EventStatusUpdate, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload any) error {
			if got := payload.(StatusUpdate).Status; got != StatusMissed {
				t.Errorf("expected MISSED, got %s", got)
			}
			return nil
		}).
		Times(1)
	monitor.Sweep(ctx)
}

func TestSweep_SourceErrorPublishesNothing(t *testing.T) {
	source := &stubStateSource{err: context.DeadlineExceeded}
	monitor, _ := newTestMonitor(t, source)

	// Мок без ожиданий сам провалит тест при любой публикации
	monitor.Sweep(context.Background())
}
