// Package bot polls the casts that mention a Farcaster user and replies to
// them with the content returned by a callback.
package bot

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vocdoni/neynar-go/api/hub"
	"go.vocdoni.io/dvote/log"
)

const (
	// defaultCoolDown is the default time to wait between mention checks
	defaultCoolDown = time.Second * 10
)

// Hub is the subset of the hub client used by the bot.
type Hub interface {
	CastsByMention(ctx context.Context, since uint64) ([]hub.Mention, uint64, error)
	Reply(ctx context.Context, targetFID uint64, targetHash, content string) (string, error)
}

// MentionCallback handles a mention and returns the content of the reply. An
// empty reply skips replying.
type MentionCallback func(context.Context, hub.Mention) (string, error)

type BotConfig struct {
	Hub      Hub
	CoolDown time.Duration
	// Since is the unix timestamp of the last handled mention, older
	// mentions are ignored.
	Since uint64
}

type Bot struct {
	hub         Hub
	ctx         context.Context
	cancel      context.CancelFunc
	waiter      sync.WaitGroup
	mentions    chan hub.Mention
	coolDown    time.Duration
	lastCast    uint64
	callback    MentionCallback
	callbackMtx sync.Mutex
}

func New(config BotConfig) (*Bot, error) {
	if config.Hub == nil {
		return nil, ErrHubNotSet
	}
	if config.CoolDown == 0 {
		config.CoolDown = defaultCoolDown
	}
	log.Infow("initializing bot", "cooldown", config.CoolDown, "since", config.Since)
	return &Bot{
		hub:      config.Hub,
		mentions: make(chan hub.Mention),
		coolDown: config.CoolDown,
		lastCast: config.Since,
	}, nil
}

func (b *Bot) SetCallback(callback MentionCallback) {
	b.callbackMtx.Lock()
	defer b.callbackMtx.Unlock()
	b.callback = callback
}

// LastCast returns the unix timestamp of the newest mention received.
func (b *Bot) LastCast() uint64 {
	b.callbackMtx.Lock()
	defer b.callbackMtx.Unlock()
	return b.lastCast
}

// Start launches the polling and the reply routines. It fails if no callback
// is set or if the bot is already running.
func (b *Bot) Start(ctx context.Context) error {
	b.callbackMtx.Lock()
	defer b.callbackMtx.Unlock()
	if b.callback == nil {
		return ErrCallbackNotSet
	}
	if b.cancel != nil {
		return ErrAlreadyStarted
	}
	b.ctx, b.cancel = context.WithCancel(ctx)

	b.waiter.Add(1)
	go func() {
		defer b.waiter.Done()
		ticker := time.NewTicker(b.coolDown)
		defer ticker.Stop()
		for {
			b.poll()
			select {
			case <-b.ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	b.waiter.Add(1)
	go func() {
		defer b.waiter.Done()
		for {
			select {
			case <-b.ctx.Done():
				return
			case mention := <-b.mentions:
				b.handle(mention)
			}
		}
	}()
	return nil
}

// Stop cancels the bot routines and waits for them to end. The bot can be
// started again afterwards.
func (b *Bot) Stop() {
	b.callbackMtx.Lock()
	cancel := b.cancel
	b.callbackMtx.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	b.waiter.Wait()
	b.callbackMtx.Lock()
	b.cancel = nil
	b.callbackMtx.Unlock()
}

func (b *Bot) poll() {
	since := b.LastCast()
	log.Debugw("checking for new casts", "last-cast", since)
	mentions, lastCast, err := b.hub.CastsByMention(b.ctx, since)
	if err != nil {
		if errors.Is(err, hub.ErrNoNewCasts) {
			log.Debugw("no new casts", "last-cast", since)
		} else if b.ctx.Err() == nil {
			log.Errorf("error retrieving new casts: %s", err)
		}
		return
	}
	b.callbackMtx.Lock()
	b.lastCast = lastCast
	b.callbackMtx.Unlock()
	for _, mention := range mentions {
		select {
		case <-b.ctx.Done():
			return
		case b.mentions <- mention:
		}
	}
}

func (b *Bot) handle(mention hub.Mention) {
	b.callbackMtx.Lock()
	cb := b.callback
	b.callbackMtx.Unlock()
	reply, err := cb(b.ctx, mention)
	if err != nil {
		log.Errorf("error executing callback: %s", err)
		return
	}
	if reply == "" {
		return
	}
	hash, err := b.hub.Reply(b.ctx, mention.Author, mention.Hash, reply)
	if err != nil {
		log.Errorf("error replying to cast %s: %s", mention.Hash, err)
		return
	}
	log.Infow("replied to mention", "author", mention.Author, "cast", mention.Hash, "reply", hash)
}
