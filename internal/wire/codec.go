package wire

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrUnknownTag is returned by Decode when the tag on a received message
// does not correspond to any variant this binary knows about (spec.md §4.1:
// "unknown tags on the reply are an error").
var ErrUnknownTag = errors.New("wire: unknown tag")

// ErrEmptyFrame is returned when decoding a zero-length frame (spec.md §4.2:
// "empty frame" is a distinct backend-socket error).
var ErrEmptyFrame = errors.New("wire: empty frame")

// EncodeCommand serializes a Command with msgpack, the schema-evolving
// tagged-union encoding described in spec.md §4.1 (positional-by-tag,
// protobuf-shaped, here realized with MessagePack's struct-as-map encoding
// rather than a hand-authored protoc-generated codec — see SPEC_FULL.md's
// Domain Stack section).
func EncodeCommand(cmd Command) ([]byte, error) {
	if cmd.Tag == TagUnknown {
		return nil, fmt.Errorf("wire: encode command: %w", ErrUnknownTag)
	}
	b, err := msgpack.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("wire: encode command (tag %d): %w", cmd.Tag, err)
	}
	return b, nil
}

// DecodeCommand deserializes a Command previously produced by EncodeCommand.
func DecodeCommand(b []byte) (Command, error) {
	if len(b) == 0 {
		return Command{}, ErrEmptyFrame
	}
	var cmd Command
	if err := msgpack.Unmarshal(b, &cmd); err != nil {
		return Command{}, fmt.Errorf("wire: decode command: %w", err)
	}
	if cmd.Tag == TagUnknown || cmd.Tag > TagCallbackContinue {
		return Command{}, fmt.Errorf("wire: decode command: %w", ErrUnknownTag)
	}
	return cmd, nil
}

// EncodeReturn serializes a Return.
func EncodeReturn(ret Return) ([]byte, error) {
	if ret.Tag == RetUnknown {
		return nil, fmt.Errorf("wire: encode return: %w", ErrUnknownTag)
	}
	b, err := msgpack.Marshal(ret)
	if err != nil {
		return nil, fmt.Errorf("wire: encode return (tag %d): %w", ret.Tag, err)
	}
	return b, nil
}

// DecodeReturn deserializes a Return previously produced by EncodeReturn.
func DecodeReturn(b []byte) (Return, error) {
	if len(b) == 0 {
		return Return{}, ErrEmptyFrame
	}
	var ret Return
	if err := msgpack.Unmarshal(b, &ret); err != nil {
		return Return{}, fmt.Errorf("wire: decode return: %w", err)
	}
	if ret.Tag == RetUnknown || ret.Tag > RetLog {
		return Return{}, fmt.Errorf("wire: decode return: %w", ErrUnknownTag)
	}
	return ret, nil
}

// EncodeHandshakeReply serializes a HandshakeReply. Used by backend test
// doubles that stand in for a real subprocess in dispatcher tests; a real
// backend implementation encodes its handshake the same way.
func EncodeHandshakeReply(hs HandshakeReply) ([]byte, error) {
	b, err := msgpack.Marshal(hs)
	if err != nil {
		return nil, fmt.Errorf("wire: encode handshake: %w", err)
	}
	return b, nil
}

// DecodeHandshakeReply deserializes the one message a backend may send
// unsolicited (spec.md §4.4, §6).
func DecodeHandshakeReply(b []byte) (HandshakeReply, error) {
	if len(b) == 0 {
		return HandshakeReply{}, ErrEmptyFrame
	}
	var hs HandshakeReply
	if err := msgpack.Unmarshal(b, &hs); err != nil {
		return HandshakeReply{}, fmt.Errorf("wire: decode handshake: %w", err)
	}
	return hs, nil
}
