package aiusage

import (
	"errors"
	"time"
)

// ErrInsufficientTokens is returned when a client has used up today's generations.
var ErrInsufficientTokens = errors.New("insufficient tokens")

// DefaultTokens is the number of generations granted per client per day.
const DefaultTokens = 20

// keyTTL outlives the day so a counter survives until its date has passed.
const keyTTL = 48 * time.Hour
