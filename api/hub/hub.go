// Package hub implements a client of the Farcaster hub HTTP API hosted by
// Neynar. It lists the casts that mention the configured user and submits
// messages signed with the user's Ed25519 key.
package hub

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/vocdoni/neynar-go/api"
	"github.com/zeebo/blake3"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	farcasterEpoch           uint64 = 1609459200 // January 1, 2021 UTC
	ENDPOINT_CAST_BY_MENTION        = "castsByMention"
	ENDPOINT_SUBMIT_MESSAGE         = "submitMessage"
)

// maxMentionPages bounds the pages requested by a single CastsByMention.
const maxMentionPages = 100

// Config is the configuration of the hub client. Endpoint defaults to
// api.DefaultHubEndpoint and Network to NetworkMainnet.
type Config struct {
	Endpoint   string
	APIKey     string
	FID        uint64
	PrivateKey []byte
	Network    Network
	Logger     api.Logger
	HTTPClient api.HTTPClient
}

// Client is a Farcaster hub client acting on behalf of a single fid.
type Client struct {
	transport *api.Transport
	fid       uint64
	privKey   ed25519.PrivateKey
	network   Network
	now       func() time.Time
}

// Mention is a cast that mentions the user of the client.
type Mention struct {
	Author    uint64
	Content   string
	Hash      string
	ParentURL string
	// Timestamp is the unix time of the cast in seconds
	Timestamp uint64
}

// New returns a hub client for the configuration provided. The private key
// must be the 32 bytes Ed25519 seed of a signer registered for the fid.
func New(cfg Config) (*Client, error) {
	var errs []error
	if cfg.FID == 0 {
		errs = append(errs, ErrInvalidFID)
	}
	if len(cfg.PrivateKey) != ed25519.SeedSize {
		errs = append(errs, ErrInvalidPrivateKey)
	}
	transport, err := api.NewTransport(api.Config{
		APIKey:     cfg.APIKey,
		BasePath:   cfg.Endpoint,
		Logger:     cfg.Logger,
		HTTPClient: cfg.HTTPClient,
	}, api.DefaultHubEndpoint)
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if cfg.Network == 0 {
		cfg.Network = NetworkMainnet
	}
	return &Client{
		transport: transport,
		fid:       cfg.FID,
		privKey:   ed25519.NewKeyFromSeed(cfg.PrivateKey),
		network:   cfg.Network,
		now:       time.Now,
	}, nil
}

// FID returns the fid of the client user.
func (c *Client) FID() uint64 {
	return c.fid
}

// Signer returns the public key that signs the submitted messages.
func (c *Client) Signer() ed25519.PublicKey {
	return c.privKey.Public().(ed25519.PublicKey)
}

// CastsByMention returns the casts that mention the client user published
// after the unix timestamp provided, and the unix timestamp of the newest one.
// Every page of mentions returned by the hub is requested, up to
// maxMentionPages. If there are no new casts, it returns ErrNoNewCasts and the
// timestamp provided.
func (c *Client) CastsByMention(ctx context.Context, since uint64) ([]Mention, uint64, error) {
	fcSince := uint64(0)
	if since > farcasterEpoch {
		fcSince = since - farcasterEpoch
	}
	// follow the page token until the hub returns the last page
	var hubMessages []*HubMessage
	pageToken := ""
	for page := 0; page < maxMentionPages; page++ {
		query := api.NewQuery().Uint64("fid", c.fid)
		if pageToken != "" {
			query.String("pageToken", pageToken)
		}
		mentions := &HubMentionsResponse{}
		if err := c.transport.Do(ctx, &api.Request{
			Method: http.MethodGet,
			Path:   ENDPOINT_CAST_BY_MENTION,
			Query:  query,
		}, mentions); err != nil {
			return nil, since, err
		}
		hubMessages = append(hubMessages, mentions.Messages...)
		if mentions.NextPageToken == "" || mentions.NextPageToken == pageToken {
			break
		}
		pageToken = mentions.NextPageToken
	}
	// filter messages and calculate the last timestamp
	lastTimestamp := uint64(0)
	messages := []Mention{}
	for _, m := range hubMessages {
		if m == nil || m.Data == nil {
			continue
		}
		isMention := m.Data.Type == MESSAGE_TYPE_CAST_ADD && m.Data.CastAddBody != nil && m.Data.CastAddBody.Text != ""
		if !isMention || m.Data.Timestamp <= fcSince {
			continue
		}
		messages = append(messages, Mention{
			Author:    m.Data.From,
			Content:   m.Data.CastAddBody.Text,
			Hash:      m.HexHash,
			ParentURL: m.Data.CastAddBody.ParentURL,
			Timestamp: m.Data.Timestamp + farcasterEpoch,
		})
		if m.Data.Timestamp > lastTimestamp {
			lastTimestamp = m.Data.Timestamp
		}
	}
	if len(messages) == 0 {
		return nil, since, ErrNoNewCasts
	}
	return messages, lastTimestamp + farcasterEpoch, nil
}

// SubmitCast publishes a new cast and returns its hash.
func (c *Client) SubmitCast(ctx context.Context, cast *CastAdd) (string, error) {
	body, err := encodeCastAddBody(cast)
	if err != nil {
		return "", err
	}
	return c.submit(ctx, MessageTypeCastAdd, fieldDataCastAddBody, body)
}

// Reply publishes a cast in reply to the target cast and returns its hash.
func (c *Client) Reply(ctx context.Context, targetFID uint64, targetHash, content string) (string, error) {
	return c.SubmitCast(ctx, &CastAdd{
		Text:       content,
		ParentCast: &CastID{FID: targetFID, Hash: targetHash},
	})
}

// SubmitCastRemove removes a cast of the client user.
func (c *Client) SubmitCastRemove(ctx context.Context, targetHash string) (string, error) {
	body, err := encodeCastRemoveBody(targetHash)
	if err != nil {
		return "", err
	}
	return c.submit(ctx, MessageTypeCastRemove, fieldDataCastRemoveBody, body)
}

// SubmitReaction adds a like or a recast to the target.
func (c *Client) SubmitReaction(ctx context.Context, reaction ReactionType, target ReactionTarget) (string, error) {
	return c.react(ctx, MessageTypeReactionAdd, reaction, target)
}

// SubmitReactionRemove removes a like or a recast from the target.
func (c *Client) SubmitReactionRemove(ctx context.Context, reaction ReactionType, target ReactionTarget) (string, error) {
	return c.react(ctx, MessageTypeReactionRemove, reaction, target)
}

func (c *Client) react(ctx context.Context, msgType MessageType, reaction ReactionType, target ReactionTarget) (string, error) {
	if target.Cast == nil && target.URL == "" {
		return "", ErrNoReactionTarget
	}
	body, err := encodeReactionBody(reaction, target)
	if err != nil {
		return "", err
	}
	return c.submit(ctx, msgType, fieldDataReactionBody, body)
}

// signMessage composes the message data with the client fid, the current
// timestamp and network, hashes it with blake3 and signs it. It returns the
// encoded message and its hash.
func (c *Client) signMessage(msgType MessageType, bodyField protowire.Number, body []byte) ([]byte, []byte) {
	timestamp := uint32(uint64(c.now().Unix()) - farcasterEpoch)
	dataBytes := encodeMessageData(msgType, c.fid, timestamp, c.network, bodyField, body)
	hasher := blake3.New()
	_, _ = hasher.Write(dataBytes)
	hash := hasher.Sum(nil)[:20]
	signature := ed25519.Sign(c.privKey, dataBytes)
	return encodeMessage(dataBytes, hash, signature, c.Signer()), hash
}

func (c *Client) submit(ctx context.Context, msgType MessageType, bodyField protowire.Number, body []byte) (string, error) {
	msg, hash := c.signMessage(msgType, bodyField, body)
	if err := c.transport.Do(ctx, &api.Request{
		Method:      http.MethodPost,
		Path:        ENDPOINT_SUBMIT_MESSAGE,
		RawBody:     msg,
		ContentType: "application/octet-stream",
	}, nil); err != nil {
		return "", err
	}
	hexHash := "0x" + hex.EncodeToString(hash)
	c.transport.Logger().Debugw("hub message submitted", "type", msgType, "hash", hexHash)
	return hexHash, nil
}
