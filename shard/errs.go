package shard

import "errors"

// ErrValue marks a content value outside the supported tagged-variant set
// {null, bool, int64, float64, string}. Such a value can be stored but not
// serialized; codecs surface this error without writing anything.
var ErrValue = errors.New("unsupported content value")
