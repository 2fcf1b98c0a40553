package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"vaccine-village-go/pkg/events"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProcessor struct {
	err  error
	seen []events.ChatExchange
}

func (f *fakeProcessor) Process(_ context.Context, ev events.ChatExchange) error {
	f.seen = append(f.seen, ev)
	return f.err
}

type fakeAttempts struct {
	counts  map[string]int64
	cleared []string
	err     error
}

func (f *fakeAttempts) IncrAttempts(_ context.Context, id string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.counts[id]++
	return f.counts[id], nil
}

func (f *fakeAttempts) ClearAttempts(_ context.Context, id string) error {
	f.cleared = append(f.cleared, id)
	return nil
}

func message(t *testing.T, ev events.ChatExchange) kafka.Message {
	b, err := json.Marshal(ev)
	require.NoError(t, err)
	return kafka.Message{Value: b}
}

func TestHandleMessage_Success(t *testing.T) {
	p := &fakeProcessor{}
	a := &fakeAttempts{counts: map[string]int64{}}

	commit := handleMessage(context.Background(), message(t, events.ChatExchange{MessageID: "m1", Topic: "mmr"}), p, a)

	assert.True(t, commit)
	require.Len(t, p.seen, 1)
	assert.Equal(t, "mmr", p.seen[0].Topic)
	assert.Equal(t, []string{"m1"}, a.cleared)
}

func TestHandleMessage_Malformed(t *testing.T) {
	p := &fakeProcessor{}
	a := &fakeAttempts{counts: map[string]int64{}}

	assert.True(t, handleMessage(context.Background(), kafka.Message{Value: []byte("{not json")}, p, a))
	assert.True(t, handleMessage(context.Background(), kafka.Message{Value: []byte(`{"topic":"mmr"}`)}, p, a))
	assert.Empty(t, p.seen)
}

func TestHandleMessage_RetriesThenGivesUp(t *testing.T) {
	p := &fakeProcessor{err: errors.New("redis down")}
	a := &fakeAttempts{counts: map[string]int64{}}
	m := message(t, events.ChatExchange{MessageID: "m2"})

	assert.False(t, handleMessage(context.Background(), m, p, a))
	assert.False(t, handleMessage(context.Background(), m, p, a))
	assert.True(t, handleMessage(context.Background(), m, p, a))
	assert.Empty(t, a.cleared)
}

func TestHandleMessage_CounterUnavailable(t *testing.T) {
	p := &fakeProcessor{err: errors.New("boom")}
	a := &fakeAttempts{counts: map[string]int64{}, err: errors.New("no redis")}

	assert.False(t, handleMessage(context.Background(), message(t, events.ChatExchange{MessageID: "m3"}), p, a))
}

func TestBrokerList(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, brokerList(" a:9092, ,b:9092 "))
	assert.Nil(t, brokerList(""))
}
