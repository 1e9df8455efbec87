package filter

import (
	"regexp"
	"strings"

	"go-sarkari-tracker/internal/feed"
	"go-sarkari-tracker/internal/models"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

const lastDateMarker = "Last Date"

var lastDateRegex = regexp.MustCompile(`\d{1,2}[-/]\d{1,2}[-/](?:\d{4}|\d{2})`)

type Classifier struct {
	wb      []string
	central []string
}

// NewClassifier lower-cases the keyword lists once. Empty lists are allowed.
func NewClassifier(wb, central []string) *Classifier {
	return &Classifier{
		wb:      lowerAll(wb),
		central: lowerAll(central),
	}
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, k := range in {
		if k == "" {
			continue
		}
		out = append(out, strings.ToLower(k))
	}
	return out
}

// Classify buckets a title by plain substring match. WB wins over central.
func (c *Classifier) Classify(title string) models.Category {
	text := normalizeText(title)

	for _, kw := range c.wb {
		if strings.Contains(text, kw) {
			return models.CategoryWB
		}
	}
	for _, kw := range c.central {
		if strings.Contains(text, kw) {
			return models.CategoryCentral
		}
	}
	return models.CategoryOther
}

// ToJob turns a raw feed entry into a history record first seen on today.
func (c *Classifier) ToJob(e feed.Entry, today string) models.Job {
	title := CleanTitle(e.Title)
	return models.Job{
		Title:    title,
		Link:     strings.TrimSpace(e.Link),
		Category: c.Classify(title),
		LastDate: ExtractLastDate(e.Summary),
		AddedOn:  today,
		IsNew:    true,
	}
}

// CleanTitle drops the "Last Date ..." tail the feed appends to titles.
func CleanTitle(title string) string {
	if i := strings.Index(title, lastDateMarker); i >= 0 {
		title = title[:i]
	}
	return strings.TrimSpace(title)
}

// ExtractLastDate returns the first dd-mm-yy(yy) looking date in the summary.
func ExtractLastDate(summary string) string {
	if m := lastDateRegex.FindString(plainText(summary)); m != "" {
		return m
	}
	return models.NoLastDate
}

// plainText strips markup so dates split across tags still read as one run.
func plainText(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return doc.Text()
}

func normalizeText(str string) string {
	return strings.ToLower(norm.NFKC.String(str))
}
