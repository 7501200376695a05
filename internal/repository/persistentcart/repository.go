package persistentcart

import "context"

// Repository clears the out-of-band persistent-cart marker kept for a
// session key. The marker lets a returning shopper restore their cart; once
// the session is deleted the marker must go with it.
type Repository interface {
	Clear(ctx context.Context, sessionKey string) error
}
