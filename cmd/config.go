package main

import (
	"fmt"
	"time"
)

type Config struct {
	BufferSize                int           `env:"BUFFER_SIZE,default=256"`
	ConnectionBufferSize      int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	ModerationCharReplacement string        `env:"MODERATION_CHARACTER_REPLACEMENT,default=*"`
	RestartInterval           time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	SessionTTL                time.Duration `env:"SESSION_TTL,default=1h"`
	EvictionInterval          time.Duration `env:"EVICTION_INTERVAL,default=5m"`
	StatsInterval             time.Duration `env:"STATS_INTERVAL,default=30s"`
	AuthTokenDuration         time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	JWTSecret                 string        `env:"JWT_SECRET,required=true"`
	BadgerFilepath            string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel                  string        `env:"LOG_LEVEL,default=info"`
	Host                      string        `env:"HOST,default=localhost"`
	Port                      int           `env:"PORT,default=8080"`
}

// CharacterRune converts the single-character replacement setting into a
// rune, rejecting multi-character values early.
func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"MODERATION_CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
