package kafka_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/luckycunningwolf/HRMS/internal/messaging/kafka"
)

func validOutboxEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            uuid.NewString(),
		AggregateType: "employee",
		AggregateID:   uuid.NewString(),
		EventType:     "employee_created",
		Topic:         "hr.employee.lifecycle.v1",
		Payload:       []byte(`{"name":"Asha Rao"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestValidateOutboxEvent(t *testing.T) {
	assert.NoError(t, kafka.ValidateOutboxEvent(validOutboxEvent()))

	t.Run("missing id", func(t *testing.T) {
		e := validOutboxEvent()
		e.ID = ""
		assert.Error(t, kafka.ValidateOutboxEvent(e))
	})

	t.Run("missing topic", func(t *testing.T) {
		e := validOutboxEvent()
		e.Topic = ""
		assert.Error(t, kafka.ValidateOutboxEvent(e))
	})

	t.Run("empty payload", func(t *testing.T) {
		e := validOutboxEvent()
		e.Payload = nil
		assert.Error(t, kafka.ValidateOutboxEvent(e))
	})

	t.Run("unknown status", func(t *testing.T) {
		e := validOutboxEvent()
		e.Status = "queued"
		assert.Error(t, kafka.ValidateOutboxEvent(e))
	})
}
