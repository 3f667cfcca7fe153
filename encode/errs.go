package encode

import (
	"errors"

	"github.com/ciacob/go-shard/shard"
)

var (
	// ErrDecode marks truncated, corrupt or malformed input. The decode
	// target's prior state is untouched when it is returned.
	ErrDecode = errors.New("decode error")

	// ErrValue marks a content value outside the supported set; nothing is
	// written for the failed call.
	ErrValue = shard.ErrValue
)
