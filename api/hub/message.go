package hub

import (
	"encoding/hex"
	"fmt"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"
)

const (
	MESSAGE_TYPE_CAST_ADD = "MESSAGE_TYPE_CAST_ADD"
)

// MessageType, ReactionType, Network, HashScheme and SignatureScheme values
// follow the Farcaster protobuf enums.
type MessageType uint64

const (
	MessageTypeCastAdd        MessageType = 1
	MessageTypeCastRemove     MessageType = 2
	MessageTypeReactionAdd    MessageType = 3
	MessageTypeReactionRemove MessageType = 4
)

type ReactionType uint64

const (
	ReactionTypeLike   ReactionType = 1
	ReactionTypeRecast ReactionType = 2
)

type Network uint64

const (
	NetworkMainnet Network = 1
	NetworkTestnet Network = 2
	NetworkDevnet  Network = 3
)

const (
	hashSchemeBlake3       = 1
	signatureSchemeEd25519 = 1
)

// field numbers of the Farcaster protobuf messages
const (
	fieldMessageData            protowire.Number = 1
	fieldMessageHash            protowire.Number = 2
	fieldMessageHashScheme      protowire.Number = 3
	fieldMessageSignature       protowire.Number = 4
	fieldMessageSignatureScheme protowire.Number = 5
	fieldMessageSigner          protowire.Number = 6
	fieldMessageDataBytes       protowire.Number = 7

	fieldDataType           protowire.Number = 1
	fieldDataFID            protowire.Number = 2
	fieldDataTimestamp      protowire.Number = 3
	fieldDataNetwork        protowire.Number = 4
	fieldDataCastAddBody    protowire.Number = 5
	fieldDataCastRemoveBody protowire.Number = 6
	fieldDataReactionBody   protowire.Number = 7

	fieldCastAddMentions          protowire.Number = 2
	fieldCastAddParentCastID      protowire.Number = 3
	fieldCastAddText              protowire.Number = 4
	fieldCastAddMentionsPositions protowire.Number = 5
	fieldCastAddEmbeds            protowire.Number = 6
	fieldCastAddParentURL         protowire.Number = 7

	fieldCastRemoveTargetHash protowire.Number = 1

	fieldReactionType         protowire.Number = 1
	fieldReactionTargetCastID protowire.Number = 2
	fieldReactionTargetURL    protowire.Number = 3

	fieldEmbedURL    protowire.Number = 1
	fieldEmbedCastID protowire.Number = 2

	fieldCastIDFID  protowire.Number = 1
	fieldCastIDHash protowire.Number = 2
)

// CastID references a cast by its author fid and hex encoded hash.
type CastID struct {
	FID  uint64
	Hash string
}

// Embed is an url or a cast embedded in a new cast.
type Embed struct {
	URL  string
	Cast *CastID
}

// CastAdd is the content of a new cast. Either ParentCast or ParentURL can be
// set to publish a reply.
type CastAdd struct {
	Text              string
	Mentions          []uint64
	MentionsPositions []uint32
	Embeds            []Embed
	ParentCast        *CastID
	ParentURL         string
}

// ReactionTarget is the target of a reaction, a cast or an url.
type ReactionTarget struct {
	Cast *CastID
	URL  string
}

// decodeHash decodes an hex encoded hash, with or without 0x prefix.
func decodeHash(hash string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(hash, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingHash, err)
	}
	return b, nil
}

func appendVarintField(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendBytesField(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func encodeCastID(id *CastID) ([]byte, error) {
	hash, err := decodeHash(id.Hash)
	if err != nil {
		return nil, err
	}
	b := appendVarintField(nil, fieldCastIDFID, id.FID)
	return appendBytesField(b, fieldCastIDHash, hash), nil
}

func encodeEmbed(e Embed) ([]byte, error) {
	if e.Cast == nil {
		return appendBytesField(nil, fieldEmbedURL, []byte(e.URL)), nil
	}
	castID, err := encodeCastID(e.Cast)
	if err != nil {
		return nil, err
	}
	return appendBytesField(nil, fieldEmbedCastID, castID), nil
}

func encodeCastAddBody(c *CastAdd) ([]byte, error) {
	var b []byte
	if len(c.Mentions) > 0 {
		var packed []byte
		for _, m := range c.Mentions {
			packed = protowire.AppendVarint(packed, m)
		}
		b = appendBytesField(b, fieldCastAddMentions, packed)
	}
	if c.ParentCast != nil {
		parent, err := encodeCastID(c.ParentCast)
		if err != nil {
			return nil, err
		}
		b = appendBytesField(b, fieldCastAddParentCastID, parent)
	}
	b = appendBytesField(b, fieldCastAddText, []byte(c.Text))
	if len(c.MentionsPositions) > 0 {
		var packed []byte
		for _, p := range c.MentionsPositions {
			packed = protowire.AppendVarint(packed, uint64(p))
		}
		b = appendBytesField(b, fieldCastAddMentionsPositions, packed)
	}
	for _, e := range c.Embeds {
		embed, err := encodeEmbed(e)
		if err != nil {
			return nil, err
		}
		b = appendBytesField(b, fieldCastAddEmbeds, embed)
	}
	return appendBytesField(b, fieldCastAddParentURL, []byte(c.ParentURL)), nil
}

func encodeCastRemoveBody(targetHash string) ([]byte, error) {
	hash, err := decodeHash(targetHash)
	if err != nil {
		return nil, err
	}
	return appendBytesField(nil, fieldCastRemoveTargetHash, hash), nil
}

func encodeReactionBody(reaction ReactionType, target ReactionTarget) ([]byte, error) {
	b := appendVarintField(nil, fieldReactionType, uint64(reaction))
	if target.Cast == nil {
		return appendBytesField(b, fieldReactionTargetURL, []byte(target.URL)), nil
	}
	castID, err := encodeCastID(target.Cast)
	if err != nil {
		return nil, err
	}
	return appendBytesField(b, fieldReactionTargetCastID, castID), nil
}

// encodeMessageData composes the MessageData with the body provided under the
// body field number.
func encodeMessageData(msgType MessageType, fid uint64, timestamp uint32, network Network,
	bodyField protowire.Number, body []byte,
) []byte {
	b := appendVarintField(nil, fieldDataType, uint64(msgType))
	b = appendVarintField(b, fieldDataFID, fid)
	b = appendVarintField(b, fieldDataTimestamp, uint64(timestamp))
	b = appendVarintField(b, fieldDataNetwork, uint64(network))
	// an empty body is still a set oneof field
	b = protowire.AppendTag(b, bodyField, protowire.BytesType)
	return protowire.AppendBytes(b, body)
}

// encodeMessage composes the signed Message envelope.
func encodeMessage(dataBytes, hash, signature, signer []byte) []byte {
	b := appendBytesField(nil, fieldMessageData, dataBytes)
	b = appendBytesField(b, fieldMessageHash, hash)
	b = appendVarintField(b, fieldMessageHashScheme, hashSchemeBlake3)
	b = appendBytesField(b, fieldMessageSignature, signature)
	b = appendVarintField(b, fieldMessageSignatureScheme, signatureSchemeEd25519)
	b = appendBytesField(b, fieldMessageSigner, signer)
	return appendBytesField(b, fieldMessageDataBytes, dataBytes)
}

type HubParentCast struct {
	FID  uint64 `json:"fid"`
	Hash string `json:"hash"`
}

type HubCastAddBody struct {
	Text       string         `json:"text"`
	ParentURL  string         `json:"parentUrl"`
	ParentCast *HubParentCast `json:"parentCastId,omitempty"`
}

type HubMessageData struct {
	Type        string          `json:"type"`
	From        uint64          `json:"fid"`
	Timestamp   uint64          `json:"timestamp"`
	CastAddBody *HubCastAddBody `json:"castAddBody,omitempty"`
}

type HubMessage struct {
	Data    *HubMessageData `json:"data"`
	HexHash string          `json:"hash"`
}

type HubMentionsResponse struct {
	Messages      []*HubMessage `json:"messages"`
	NextPageToken string        `json:"nextPageToken"`
}
