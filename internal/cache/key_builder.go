package cache

import (
	"fmt"
	"strings"

	"chronotense/internal/catalog"
)

// ContentKey identifies one (level, options) combination.
type ContentKey struct {
	Level        catalog.Level
	Modals       bool
	Conditionals bool
}

func BuildContentKey(level catalog.Level, modals, conditionals bool) ContentKey {
	return ContentKey{Level: level, Modals: modals, Conditionals: conditionals}
}

// String converts the structured key into the final string used in Redis/map.
func (k ContentKey) String() string {
	// content:<LEVEL>:<m|->:<c|->
	return fmt.Sprintf("content:%s:%s:%s", k.Level, flag(k.Modals, "m"), flag(k.Conditionals, "c"))
}

func flag(on bool, mark string) string {
	if on {
		return mark
	}
	return "-"
}

// ParseContentKey is the inverse of ContentKey.String.
func ParseContentKey(key string) (ContentKey, bool) {
	parts := strings.Split(key, ":")
	if len(parts) != 4 || parts[0] != "content" {
		return ContentKey{}, false
	}

	level := catalog.Level(parts[1])
	if !level.Valid() {
		return ContentKey{}, false
	}

	modals, ok := parseFlag(parts[2], "m")
	if !ok {
		return ContentKey{}, false
	}
	conditionals, ok := parseFlag(parts[3], "c")
	if !ok {
		return ContentKey{}, false
	}

	return ContentKey{Level: level, Modals: modals, Conditionals: conditionals}, true
}

func parseFlag(s, mark string) (bool, bool) {
	switch s {
	case mark:
		return true, true
	case "-":
		return false, true
	default:
		return false, false
	}
}
