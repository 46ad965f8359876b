package identity

import (
	"context"
	"strings"
)

type signersKey struct{}

// WithSigners attaches the identities that proved control of their
// credentials for the current call.
func WithSigners(ctx context.Context, identities ...string) context.Context {
	set := make(map[string]struct{}, len(identities))
	for existing := range signersFrom(ctx) {
		set[existing] = struct{}{}
	}
	for _, id := range identities {
		id = strings.TrimSpace(id)
		if id != "" {
			set[id] = struct{}{}
		}
	}
	return context.WithValue(ctx, signersKey{}, set)
}

func signersFrom(ctx context.Context) map[string]struct{} {
	set, _ := ctx.Value(signersKey{}).(map[string]struct{})
	return set
}

// Signers lists the identities attached to ctx in no particular order.
func Signers(ctx context.Context) []string {
	set := signersFrom(ctx)
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

// ContextSignerVerifier authorizes exactly the signers attached to the
// request context.
type ContextSignerVerifier struct{}

func NewContextSignerVerifier() ContextSignerVerifier {
	return ContextSignerVerifier{}
}

func (ContextSignerVerifier) IsAuthorizedSigner(ctx context.Context, identity string) bool {
	if identity == "" {
		return false
	}
	_, ok := signersFrom(ctx)[identity]
	return ok
}
