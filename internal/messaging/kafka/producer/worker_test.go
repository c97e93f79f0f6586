package producer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/luckycunningwolf/HRMS/internal/messaging/kafka"
	mock_kafka "github.com/luckycunningwolf/HRMS/internal/messaging/kafka/mock"
	"github.com/luckycunningwolf/HRMS/internal/messaging/kafka/producer"
)

func TestProcessOutboxEventsStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_kafka.NewMockOutboxRepository(ctrl)
	repo.EXPECT().
		ListPending(gomock.Any(), 50).
		Return([]kafka.OutboxEvent{}, nil).
		AnyTimes()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		producer.ProcessOutboxEvents(ctx, repo, nil, zap.NewNop(), 10*time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}

func TestProcessOutboxEventsSurvivesListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_kafka.NewMockOutboxRepository(ctrl)

	calls := make(chan struct{}, 8)
	repo.EXPECT().
		ListPending(gomock.Any(), 50).
		DoAndReturn(func(context.Context, int) ([]kafka.OutboxEvent, error) {
			select {
			case calls <- struct{}{}:
			default:
			}
			return nil, errors.New("db unavailable")
		}).
		MinTimes(2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		producer.ProcessOutboxEvents(ctx, repo, nil, zap.NewNop(), 5*time.Millisecond)
		close(done)
	}()

	// Wait for at least two polls so the error path provably does not kill
	// the loop, then stop the worker.
	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("worker stopped polling after an error")
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}
