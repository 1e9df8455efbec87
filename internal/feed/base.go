// Define an interface for feed sources
// Keep the pipeline independent of the wire format

package feed

import (
	"context"
	"time"
)

// Entry is one syndicated item, as published.
type Entry struct {
	Title     string
	Link      string
	Published time.Time
	Summary   string
}

// Fetcher defines the interface every feed source implements
type Fetcher interface {
	//Fetch retrieves and parses the feed at url, in feed order
	Fetch(ctx context.Context, url string) ([]Entry, error)

	//Name is the source name used in logs
	Name() string
}
