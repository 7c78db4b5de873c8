package reconciler

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/giantswarm/dbterra/internal/diff"
)

const changePadding = "      "

// Renderer prints plans for humans.
type Renderer struct {
	w     io.Writer
	color bool
}

// RenderOption configures a Renderer.
type RenderOption func(*Renderer)

// WithColor turns ANSI colors on or off. Colors are on by default.
func WithColor(enabled bool) RenderOption {
	return func(r *Renderer) {
		r.color = enabled
	}
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer, opts ...RenderOption) *Renderer {
	r := &Renderer{w: w, color: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render prints p to w with colors.
func (p *Plan) Render(w io.Writer) error {
	return NewRenderer(w).Render(p)
}

// Render prints every project of p. Jobs without changes are omitted, and
// the field changes of deletes are not listed.
func (r *Renderer) Render(p *Plan) error {
	for _, project := range p.Projects {
		if err := r.renderProject(project); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderProject(project ProjectPlan) error {
	if _, err := fmt.Fprintf(r.w, "%s (%d):\n\n", project.Key, project.ProjectID); err != nil {
		return err
	}
	for _, job := range sortedByName(project.Jobs) {
		if !job.HasChanges() {
			continue
		}
		if err := r.renderJob(job); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderJob(job JobPlan) error {
	var err error
	switch a := job.Action.(type) {
	case Create:
		_, err = fmt.Fprintf(r.w, "%s    %q (Computed)\n", r.paint(text.FgGreen, "+"), a.Desired.Name)
		if err == nil {
			err = r.renderChanges(job.Changes)
		}
	case Update:
		_, err = fmt.Fprintf(r.w, "%s  %q (%s)\n", r.paint(text.FgYellow, "+/-"), a.Remote.Name, idString(a.Remote.ID))
		if err == nil {
			err = r.renderChanges(job.Changes)
		}
	case Delete:
		_, err = fmt.Fprintf(r.w, "%s    %q (%s)\n", r.paint(text.FgRed, "-"), a.Remote.Name, idString(a.Remote.ID))
	}
	return err
}

func (r *Renderer) renderChanges(changes []diff.Change) error {
	for _, c := range changes {
		if c.Kind == diff.Unchanged || suppressed(c.Path) {
			continue
		}

		var line string
		switch c.Kind {
		case diff.Added:
			line = r.paint(text.FgGreen, fmt.Sprintf("+ %s %s", c.Path, c.New))
		case diff.Removed:
			line = r.paint(text.FgRed, fmt.Sprintf("- %s %s", c.Path, c.Old))
		case diff.Modified:
			line = r.paint(text.FgYellow, fmt.Sprintf("~ %s %s -> %s", c.Path, c.Old, c.New))
		}
		if _, err := fmt.Fprintln(r.w, changePadding+line); err != nil {
			return err
		}
	}
	return nil
}

// suppressed reports whether a change path is hidden from the printed plan.
// The top-level cron and the time rule always follow schedule.date.cron, so
// only that one is shown. Suppressed changes still count as changes.
func suppressed(path string) bool {
	return path == "schedule.cron" || strings.Contains(path, "schedule.time")
}

func (r *Renderer) paint(color text.Color, s string) string {
	if !r.color {
		return s
	}
	return color.Sprint(s)
}

func idString(id *int64) string {
	if id == nil {
		return "unknown"
	}
	return fmt.Sprintf("%d", *id)
}

func sortedByName(plans []JobPlan) []JobPlan {
	sorted := append([]JobPlan(nil), plans...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name() < sorted[j].Name()
	})
	return sorted
}
