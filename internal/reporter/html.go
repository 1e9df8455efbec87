package reporter

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"go-sarkari-tracker/internal/filter"
	"go-sarkari-tracker/internal/models"
	"go-sarkari-tracker/utils"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

// TimestampLayout renders e.g. "25 February 2026, 09:30 AM IST".
const TimestampLayout = "02 January 2006, 03:04 PM MST"

// EmptyPlaceholder is shown for a category without jobs.
const EmptyPlaceholder = "No jobs found in this category."

const DefaultPageTitle = "WB & Central Job Alerts"

var sectionMeta = map[models.Category]struct {
	heading string
	class   string
}{
	models.CategoryWB:      {heading: "🟢 WEST BENGAL GOVT JOBS", class: "wb"},
	models.CategoryCentral: {heading: "🔵 CENTRAL GOVT JOBS", class: "central"},
	models.CategoryOther:   {heading: "⚪ OTHER JOBS", class: "other"},
}

type HTMLRenderer struct {
	loc   *time.Location
	title string
}

func NewHTMLRenderer(loc *time.Location, title string) *HTMLRenderer {
	if loc == nil {
		loc = time.UTC
	}
	if title == "" {
		title = DefaultPageTitle
	}
	return &HTMLRenderer{loc: loc, title: title}
}

type pageData struct {
	Title       string
	GeneratedAt string
	Placeholder string
	Sections    []section
}

type section struct {
	Category models.Category
	Heading  string
	Class    string
	Jobs     []jobView
}

type jobView struct {
	Title    string
	Link     string
	LastDate string
	IsNew    bool
}

// Render writes the page for jobs as of now. It has no other inputs, so the
// same history and instant always give the same bytes.
func (r *HTMLRenderer) Render(w io.Writer, jobs []models.Job, now time.Time) error {
	now = now.In(r.loc)
	today := filter.Today(now, r.loc)

	data := pageData{
		Title:       r.title,
		GeneratedAt: now.Format(TimestampLayout),
		Placeholder: EmptyPlaceholder,
	}

	parts := Partition(jobs)
	for _, cat := range models.Categories {
		meta := sectionMeta[cat]
		sec := section{Category: cat, Heading: meta.heading, Class: meta.class}
		for _, job := range parts[cat] {
			sec.Jobs = append(sec.Jobs, jobView{
				Title:    job.Title,
				Link:     job.Link,
				LastDate: job.LastDate,
				IsNew:    job.IsNewOn(today),
			})
		}
		data.Sections = append(data.Sections, sec)
	}

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// WriteFile renders into memory first so a template error never truncates
// the previous page.
func (r *HTMLRenderer) WriteFile(path string, jobs []models.Job, now time.Time) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, jobs, now); err != nil {
		return err
	}
	if err := utils.WriteFileAtomic(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}

// Partition groups jobs by category keeping history order. Unknown
// categories fall into OTHER.
func Partition(jobs []models.Job) map[models.Category][]models.Job {
	out := make(map[models.Category][]models.Job, len(models.Categories))
	for _, job := range jobs {
		cat := job.Category
		if _, ok := sectionMeta[cat]; !ok {
			cat = models.CategoryOther
		}
		out[cat] = append(out[cat], job)
	}
	return out
}
