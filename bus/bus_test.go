package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, sub *Subscription) *Message {
	t.Helper()
	select {
	case msg := <-sub.Channel():
		return msg
	default:
		t.Fatal("no message queued")
		return nil
	}
}

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New(4)
	sub := b.NewConnection("svc").Subscribe("reading/env")

	b.Publish(&Message{Topic: "reading/env", Payload: 1})
	b.Publish(&Message{Topic: "other", Payload: 2})

	msg := recv(t, sub)
	assert.Equal(t, "reading/env", msg.Topic)
	assert.Equal(t, 1, msg.Payload)
	select {
	case m := <-sub.Channel():
		t.Fatalf("unexpected message %+v", m)
	default:
	}
}

func TestRetainedReachesLateSubscriber(t *testing.T) {
	b := New(4)
	pub := b.NewConnection("config")
	pub.Publish(&Message{Topic: "config/monitor", Payload: "v1", Retained: true})
	pub.Publish(&Message{Topic: "config/monitor", Payload: "v2", Retained: true})

	sub := b.NewConnection("monitor").Subscribe("config/monitor")
	msg := recv(t, sub)
	assert.Equal(t, "v2", msg.Payload, "late subscriber sees the latest retained value")
	assert.True(t, msg.Retained)
}

func TestRetainedClearedByNilPayload(t *testing.T) {
	b := New(4)
	pub := b.NewConnection("config")
	pub.Publish(&Message{Topic: "config/monitor", Payload: "v1", Retained: true})
	pub.Publish(&Message{Topic: "config/monitor", Payload: nil, Retained: true})

	sub := b.NewConnection("monitor").Subscribe("config/monitor")
	select {
	case m := <-sub.Channel():
		t.Fatalf("cleared retained slot still delivered %+v", m)
	default:
	}
}

func TestFullQueueDropsOldest(t *testing.T) {
	b := New(2)
	sub := b.NewConnection("slow").Subscribe("reading/env")

	for i := 1; i <= 5; i++ {
		b.Publish(&Message{Topic: "reading/env", Payload: i})
	}

	require.Equal(t, 4, recv(t, sub).Payload)
	require.Equal(t, 5, recv(t, sub).Payload)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New(4)
	conn := b.NewConnection("svc")
	sub := conn.Subscribe("reading/env")
	sub.Unsubscribe()

	b.Publish(&Message{Topic: "reading/env", Payload: 1})

	_, open := <-sub.Channel()
	assert.False(t, open, "channel stays open after Unsubscribe")
}

func TestDisconnectClosesAllSubscriptions(t *testing.T) {
	b := New(4)
	conn := b.NewConnection("svc")
	s1 := conn.Subscribe("reading/env")
	s2 := conn.Subscribe("config/monitor")
	conn.Disconnect()

	for _, sub := range []*Subscription{s1, s2} {
		_, open := <-sub.Channel()
		assert.False(t, open, "topic %s", sub.Topic())
	}
}
