// Package bus is the in-process message bus the services talk over.
//
// Topics are flat strings ("reading/env", "config/monitor"). A message
// published with Retained set is stored and handed to late subscribers, so
// a service can come up after the config publisher and still see the
// current config. Delivery is asynchronous per subscription with a bounded
// queue: when a subscriber's queue is full the oldest message is dropped in
// favour of the new one, matching what a slow observer wants from a sensor
// feed.
package bus

import "sync"

type Message struct {
	Topic    string
	Payload  any
	Retained bool
}

type Subscription struct {
	topic string
	ch    chan *Message
	conn  *Connection
}

func (s *Subscription) Topic() string            { return s.topic }
func (s *Subscription) Channel() <-chan *Message { return s.ch }
func (s *Subscription) Unsubscribe()             { s.conn.Unsubscribe(s) }

type topicState struct {
	subs     []*Subscription
	retained *Message
}

type Bus struct {
	mu     sync.RWMutex
	topics map[string]*topicState
	qLen   int
}

// New creates a bus. queueLen bounds each subscription's delivery queue.
func New(queueLen int) *Bus {
	if queueLen <= 0 {
		queueLen = 8
	}
	return &Bus{
		topics: make(map[string]*topicState),
		qLen:   queueLen,
	}
}

// Publish delivers msg to every subscriber of its topic. Retained messages
// are stored (payload nil clears the slot).
func (b *Bus) Publish(msg *Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	st := b.topics[msg.Topic]
	if st == nil {
		if !msg.Retained {
			return
		}
		st = &topicState{}
		b.topics[msg.Topic] = st
	}

	for _, sub := range st.subs {
		select {
		case sub.ch <- msg:
		default:
			// Queue full: drop the oldest so the feed stays fresh.
			<-sub.ch
			sub.ch <- msg
		}
	}

	if msg.Retained {
		if msg.Payload == nil {
			st.retained = nil
			if len(st.subs) == 0 {
				delete(b.topics, msg.Topic)
			}
		} else {
			st.retained = msg
		}
	}
}

func (b *Bus) subscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	st := b.topics[sub.topic]
	if st == nil {
		st = &topicState{}
		b.topics[sub.topic] = st
	}
	st.subs = append(st.subs, sub)

	if st.retained != nil {
		select {
		case sub.ch <- st.retained:
		default:
		}
	}
}

func (b *Bus) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	st := b.topics[sub.topic]
	if st == nil {
		return
	}
	for i, s := range st.subs {
		if s == sub {
			st.subs = append(st.subs[:i], st.subs[i+1:]...)
			break
		}
	}
	if len(st.subs) == 0 && st.retained == nil {
		delete(b.topics, sub.topic)
	}
}

// Connection groups the subscriptions one service owns so Disconnect can
// release them all.
type Connection struct {
	bus  *Bus
	mu   sync.Mutex
	subs []*Subscription
	id   string
}

// NewConnection creates a connection bound to this bus. id names the owner
// in logs.
func (b *Bus) NewConnection(id string) *Connection {
	return &Connection{bus: b, id: id}
}

func (c *Connection) ID() string { return c.id }

func (c *Connection) Publish(msg *Message) {
	c.bus.Publish(msg)
}

func (c *Connection) Subscribe(topic string) *Subscription {
	sub := &Subscription{
		topic: topic,
		ch:    make(chan *Message, c.bus.qLen),
		conn:  c,
	}
	c.bus.subscribe(sub)
	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()
	return sub
}

func (c *Connection) Unsubscribe(sub *Subscription) {
	c.bus.unsubscribe(sub)
	c.mu.Lock()
	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	close(sub.ch)
}

// Disconnect closes every subscription owned by this connection.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()

	for _, sub := range subs {
		c.bus.unsubscribe(sub)
		close(sub.ch)
	}
}
