package bot

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
	"github.com/vocdoni/neynar-go/api/hub"
)

type reply struct {
	fid     uint64
	hash    string
	content string
}

type testHub struct {
	mtx      sync.Mutex
	mentions []hub.Mention
	calls    []uint64
	replies  chan reply
}

func (h *testHub) CastsByMention(_ context.Context, since uint64) ([]hub.Mention, uint64, error) {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	h.calls = append(h.calls, since)
	var res []hub.Mention
	last := since
	for _, m := range h.mentions {
		if m.Timestamp > since {
			res = append(res, m)
			if m.Timestamp > last {
				last = m.Timestamp
			}
		}
	}
	if len(res) == 0 {
		return nil, since, hub.ErrNoNewCasts
	}
	return res, last, nil
}

func (h *testHub) Reply(_ context.Context, fid uint64, hash, content string) (string, error) {
	h.replies <- reply{fid, hash, content}
	return "0xreply", nil
}

func TestNew(t *testing.T) {
	c := qt.New(t)

	_, err := New(BotConfig{})
	c.Assert(err, qt.ErrorIs, ErrHubNotSet)

	b, err := New(BotConfig{Hub: &testHub{}, Since: 10})
	c.Assert(err, qt.IsNil)
	c.Assert(b.coolDown, qt.Equals, defaultCoolDown)
	c.Assert(b.LastCast(), qt.Equals, uint64(10))
	c.Assert(b.Start(context.Background()), qt.ErrorIs, ErrCallbackNotSet)
}

func TestBotReplies(t *testing.T) {
	c := qt.New(t)

	h := &testHub{
		mentions: []hub.Mention{
			{Author: 3, Content: "ping", Hash: "0x01", Timestamp: 100},
			{Author: 4, Content: "ignore me", Hash: "0x02", Timestamp: 110},
			{Author: 5, Content: "fail", Hash: "0x03", Timestamp: 120},
			{Author: 6, Content: "ping", Hash: "0x04", Timestamp: 130},
		},
		replies: make(chan reply, 10),
	}
	b, err := New(BotConfig{Hub: h, CoolDown: 10 * time.Millisecond, Since: 50})
	c.Assert(err, qt.IsNil)
	b.SetCallback(func(_ context.Context, m hub.Mention) (string, error) {
		switch m.Content {
		case "ping":
			return fmt.Sprintf("pong %d", m.Author), nil
		case "fail":
			return "", fmt.Errorf("callback failed")
		default:
			return "", nil
		}
	})
	c.Assert(b.Start(context.Background()), qt.IsNil)
	c.Assert(b.Start(context.Background()), qt.ErrorIs, ErrAlreadyStarted)

	var got []reply
	for len(got) < 2 {
		select {
		case r := <-h.replies:
			got = append(got, r)
		case <-time.After(5 * time.Second):
			c.Fatal("timeout waiting for replies")
		}
	}
	b.Stop()

	c.Assert(got, qt.CmpEquals(cmp.AllowUnexported(reply{})), []reply{
		{fid: 3, hash: "0x01", content: "pong 3"},
		{fid: 6, hash: "0x04", content: "pong 6"},
	})
	c.Assert(b.LastCast(), qt.Equals, uint64(130))
	// the mentions are requested once, later checks start from the newest
	h.mtx.Lock()
	defer h.mtx.Unlock()
	c.Assert(h.calls[0], qt.Equals, uint64(50))
	for _, since := range h.calls[1:] {
		c.Assert(since, qt.Equals, uint64(130))
	}
	c.Assert(h.replies, qt.HasLen, 0)
}

func TestBotRestart(t *testing.T) {
	c := qt.New(t)

	h := &testHub{replies: make(chan reply, 10)}
	b, err := New(BotConfig{Hub: h, CoolDown: 10 * time.Millisecond, Since: 50})
	c.Assert(err, qt.IsNil)
	b.SetCallback(func(context.Context, hub.Mention) (string, error) { return "pong", nil })

	c.Assert(b.Start(context.Background()), qt.IsNil)
	b.Stop()
	// stopping twice is a no-op
	b.Stop()

	h.mtx.Lock()
	h.mentions = []hub.Mention{{Author: 3, Content: "ping", Hash: "0x01", Timestamp: 100}}
	h.mtx.Unlock()

	c.Assert(b.Start(context.Background()), qt.IsNil)
	defer b.Stop()
	select {
	case r := <-h.replies:
		c.Assert(r, qt.Equals, reply{fid: 3, hash: "0x01", content: "pong"})
	case <-time.After(5 * time.Second):
		c.Fatal("timeout waiting for the reply after restarting")
	}
}
