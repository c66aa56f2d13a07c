// Package config provides functionality for managing configuration options
// for the application using command-line flags, environment variables, and
// an optional JSON config file.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"
	"time"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string

	// DatabaseDSN holds the database connection string for the application.
	DatabaseDSN string

	// JWTSecret signs and verifies session tokens.
	JWTSecret string

	// ConferenceStart is the first instant at which a talk may be
	// scheduled (inclusive), RFC 3339.
	ConferenceStart string

	// ConferenceEnd is the last instant at which a talk may be scheduled
	// (inclusive), RFC 3339.
	ConferenceEnd string

	// Rooms is the comma-separated set of valid room codes.
	Rooms string

	// RatingMin and RatingMax bound the talk and speaker ratings. Zero
	// always remains valid and means "unrated".
	RatingMin int
	RatingMax int

	// Config is the path to the Config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values. The default
// window and rooms match the PyCon schedule the service was written for.
func init() {
	flag.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.JWTSecret, "s", "", "secret key for session tokens")
	flag.StringVar(&options.ConferenceStart, "start", "2014-04-09T00:00:00Z", "first valid talk time (RFC 3339, inclusive)")
	flag.StringVar(&options.ConferenceEnd, "end", "2014-04-17T23:59:59Z", "last valid talk time (RFC 3339, inclusive)")
	flag.StringVar(&options.Rooms, "rooms", "517D,517C,517AB,520,710A", "comma-separated valid room codes")
	flag.IntVar(&options.RatingMin, "rating-min", 1, "lowest accepted rating (0 always means unrated)")
	flag.IntVar(&options.RatingMax, "rating-max", 5, "highest accepted rating")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It returns a pointer to the Options struct containing
// the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		options.JWTSecret = secret
	}

	return options
}

// Window returns the configured scheduling window. Both ends are inclusive.
func (o *Options) Window() (start, end time.Time, err error) {
	start, err = time.Parse(time.RFC3339, o.ConferenceStart)
	if err != nil {
		return start, end, err
	}
	end, err = time.Parse(time.RFC3339, o.ConferenceEnd)
	return start, end, err
}

// RoomCodes returns the configured room codes as a slice.
func (o *Options) RoomCodes() []string {
	parts := strings.Split(o.Rooms, ",")
	rooms := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			rooms = append(rooms, p)
		}
	}
	return rooms
}
