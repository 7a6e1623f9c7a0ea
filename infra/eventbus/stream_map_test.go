package eventbus

import (
	"testing"

	"github.com/amirasaad/causehive/pkg/domain/events"
	"github.com/stretchr/testify/assert"
)

func TestStreamNames(t *testing.T) {
	et := events.EventTypeWithdrawalCompleted

	assert.Equal(t, "events:withdrawal:completed", streamNameFor(et))
	assert.Equal(t, "dlq:withdrawal:completed", dlqStreamName(et))
	assert.Equal(t, "group:withdrawal:completed", groupNameFor(et))
	assert.Equal(t, "consumer:withdrawal:completed", consumerNameFor(et))
	assert.Equal(t, "events:plain", streamNameFor(events.EventType("Plain")))
}

func TestTopicNames(t *testing.T) {
	et := events.EventTypeDonationCompleted

	assert.Equal(t, "causehive.events.donation.completed", topicNameFor("", et))
	assert.Equal(t, "hive.donation.completed", topicNameFor(" hive ", et))
	assert.Equal(t, "causehive.events.dlq.donation.completed", dlqTopicNameFor("", et))
}

func TestParseBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, parseBrokers(" a:9092, ,b:9092 "))
	assert.Empty(t, parseBrokers(""))
}
