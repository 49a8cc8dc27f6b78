package hub

import "fmt"

var (
	ErrInvalidFID        = fmt.Errorf("invalid fid")
	ErrInvalidPrivateKey = fmt.Errorf("invalid private key, it must be an ed25519 seed")
	ErrNoNewCasts        = fmt.Errorf("no new casts")
	ErrDecodingHash      = fmt.Errorf("error decoding hash")
	ErrNoReactionTarget  = fmt.Errorf("no reaction target")
)
