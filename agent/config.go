package agent

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"boardai/tuple"

	"github.com/spf13/cast"
	"golang.org/x/exp/rand"
)

var (
	ErrInvalidName    = errors.New("invalid name")
	ErrInvalidRole    = errors.New("invalid role")
	ErrUnknownType    = errors.New("unknown agent type")
	ErrMalformedValue = errors.New("malformed value")
)

// reservedNameChars may not appear in an agent name.
const reservedNameChars = "[]():; "

// Config is the typed form of an agent's key=value argument string.
type Config struct {
	Name          string
	Role          string
	Type          string
	Seed          uint64
	Seeded        bool
	Init          []int
	Patterns      []tuple.Pattern
	Load          string
	Save          string
	Alpha         float64
	Simulation    int
	Timeout       time.Duration
	Exploration   float64
	CheckInterval int

	props map[string]string
}

// ParseArgs splits whitespace separated key=value pairs. Keys without '='
// map to themselves and later pairs override earlier ones.
func ParseArgs(args string) map[string]string {
	props := map[string]string{}
	for _, pair := range strings.Fields(args) {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			value = pair
		}
		props[key] = value
	}
	return props
}

// NewConfig parses args on top of "name=unknown role=unknown".
func NewConfig(args string) (Config, error) {
	c := Config{
		Type:  "random",
		Alpha: tuple.DefaultAlpha,
		props: map[string]string{},
	}
	for key, value := range ParseArgs("name=unknown role=unknown " + args) {
		if err := c.set(key, value); err != nil {
			return Config{}, err
		}
	}
	return c, nil
}

// Property returns the raw value of key.
func (c Config) Property(key string) (string, bool) {
	value, ok := c.props[key]
	return value, ok
}

// Notify applies a single key=value message.
func (c *Config) Notify(msg string) error {
	key, value, found := strings.Cut(msg, "=")
	if !found {
		value = msg
	}
	return c.set(key, value)
}

func (c *Config) set(key, value string) error {
	malformed := func(err error) error {
		return fmt.Errorf("%w: %s=%s: %v", ErrMalformedValue, key, value, err)
	}

	switch key {
	case "name":
		if strings.ContainsAny(value, reservedNameChars) {
			return fmt.Errorf("%w: %q", ErrInvalidName, value)
		}
		c.Name = value
	case "role":
		c.Role = value
	case "type":
		c.Type = value
	case "seed":
		seed, err := wholeNumber(value)
		if err != nil {
			return malformed(err)
		}
		c.Seed, c.Seeded = uint64(seed), true
	case "init":
		sizes, err := parseSizes(value)
		if err != nil {
			return malformed(err)
		}
		c.Init = sizes
	case "patterns":
		patterns, err := parsePatterns(value)
		if err != nil {
			return malformed(err)
		}
		c.Patterns = patterns
	case "load":
		c.Load = value
	case "save":
		c.Save = value
	case "alpha":
		alpha, err := cast.ToFloat64E(value)
		if err != nil {
			return malformed(err)
		}
		c.Alpha = alpha
	case "simulation":
		n, err := wholeNumber(value)
		if err != nil {
			return malformed(err)
		}
		c.Simulation = int(n)
	case "timeout":
		ms, err := wholeNumber(value)
		if err != nil {
			return malformed(err)
		}
		c.Timeout = time.Duration(ms) * time.Millisecond
	case "c":
		exploration, err := cast.ToFloat64E(value)
		if err != nil {
			return malformed(err)
		}
		c.Exploration = exploration
	case "check":
		n, err := wholeNumber(value)
		if err != nil {
			return malformed(err)
		}
		c.CheckInterval = int(n)
	}
	c.props[key] = value
	return nil
}

// wholeNumber coerces value to an integer, rejecting fractions that cast
// would otherwise truncate.
func wholeNumber(value string) (int64, error) {
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, err
	}
	if math.Trunc(f) != f {
		return 0, fmt.Errorf("%s is not a whole number", value)
	}
	return cast.ToInt64E(value)
}

// parseSizes reads table sizes from a list where every non-digit separates.
func parseSizes(value string) ([]int, error) {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r < '0' || r > '9'
	})
	sizes := make([]int, 0, len(fields))
	for _, field := range fields {
		size, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

// parsePatterns reads patterns separated by '/' with comma separated cells,
// e.g. "0,1,2,3,4,5/4,5,6,7,8,9".
func parsePatterns(value string) ([]tuple.Pattern, error) {
	var patterns []tuple.Pattern
	for _, group := range strings.Split(value, "/") {
		if group == "" {
			continue
		}
		cells, err := cast.ToIntSliceE(strings.Split(group, ","))
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, tuple.Pattern(cells))
	}
	if len(patterns) == 0 {
		return nil, errors.New("no patterns")
	}
	return patterns, nil
}

func (c Config) rng() *rand.Rand {
	seed := c.Seed
	if !c.Seeded {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
