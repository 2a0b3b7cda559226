package app

import (
	"fmt"

	"github.com/example/playersync/internal/core/playerid"
)

// DefaultIdentityResolver maps handles that already are canonical platform
// IDs. Hosts with their own identity scheme inject a different resolver.
func DefaultIdentityResolver(handle string) (string, error) {
	if !playerid.Valid(handle) {
		return "", fmt.Errorf("handle %q is not a valid player id", handle)
	}
	return handle, nil
}
