package actor

import (
	"fmt"
	"strings"
)

// Kind names a class of actor. Every durable entity in the system is
// owned by exactly one actor instance of one of these kinds.
type Kind string

const (
	// KindIdentity actors are keyed by username and own the user record
	KindIdentity Kind = "identity"
	// KindCredential actors are keyed by user id and own password
	// material and token grants
	KindCredential Kind = "credential"
	// KindGame actors are keyed by game id and own canonical game state
	KindGame Kind = "game"
)

// Key addresses a single actor instance. A key doubles as the actor's
// durable storage namespace and, for credential actors, is embedded in
// issued tokens so a token carries its own routing address.
type Key string

// KeyFor derives the actor key for an entity. The derivation is pure:
// the same kind and id always yield the same key, so any holder of an
// entity id can route to its actor without a lookup table.
func KeyFor(kind Kind, id string) Key {
	return Key(string(kind) + "/" + id)
}

// ParseKey splits a key back into its kind and entity id
func ParseKey(s string) (Kind, string, error) {
	kind, id, ok := strings.Cut(s, "/")
	if !ok || kind == "" || id == "" {
		return "", "", fmt.Errorf("malformed actor key %q", s)
	}
	switch Kind(kind) {
	case KindIdentity, KindCredential, KindGame:
		return Kind(kind), id, nil
	default:
		return "", "", fmt.Errorf("unknown actor kind %q", kind)
	}
}

// Kind returns the key's actor kind, or "" if the key is malformed
func (k Key) Kind() Kind {
	kind, _, err := ParseKey(string(k))
	if err != nil {
		return ""
	}
	return kind
}

// ID returns the key's entity id, or "" if the key is malformed
func (k Key) ID() string {
	_, id, err := ParseKey(string(k))
	if err != nil {
		return ""
	}
	return id
}
