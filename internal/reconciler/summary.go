package reconciler

import (
	"strconv"
)

// ProjectSummary counts the planned changes of one project.
type ProjectSummary struct {
	Key       string `json:"project" yaml:"project"`
	ProjectID int64  `json:"projectId" yaml:"projectId"`
	Create    int    `json:"create" yaml:"create"`
	Update    int    `json:"update" yaml:"update"`
	Delete    int    `json:"delete" yaml:"delete"`
	Unchanged int    `json:"unchanged" yaml:"unchanged"`
}

// Summary counts the planned changes of a plan per project.
type Summary struct {
	Projects []ProjectSummary `json:"projects" yaml:"projects"`
}

// Summary counts the jobs of p by planned operation. Jobs without changes
// are counted as unchanged whatever their action.
func (p *Plan) Summary() Summary {
	s := Summary{Projects: make([]ProjectSummary, 0, len(p.Projects))}
	for _, project := range p.Projects {
		ps := ProjectSummary{Key: project.Key, ProjectID: project.ProjectID}
		for _, job := range project.Jobs {
			if !job.HasChanges() {
				ps.Unchanged++
				continue
			}
			switch job.Action.(type) {
			case Create:
				ps.Create++
			case Update:
				ps.Update++
			case Delete:
				ps.Delete++
			}
		}
		s.Projects = append(s.Projects, ps)
	}
	return s
}

// Total adds up all projects.
func (s Summary) Total() ProjectSummary {
	total := ProjectSummary{Key: "TOTAL"}
	for _, ps := range s.Projects {
		total.Create += ps.Create
		total.Update += ps.Update
		total.Delete += ps.Delete
		total.Unchanged += ps.Unchanged
	}
	return total
}

// Headers returns the column names of the summary table.
func (s Summary) Headers() []string {
	return []string{"PROJECT", "ID", "CREATE", "UPDATE", "DELETE", "UNCHANGED"}
}

// Rows returns one table row per project followed by a total row.
func (s Summary) Rows() [][]string {
	rows := make([][]string, 0, len(s.Projects)+1)
	for _, ps := range s.Projects {
		rows = append(rows, summaryRow(ps, strconv.FormatInt(ps.ProjectID, 10)))
	}
	return append(rows, summaryRow(s.Total(), ""))
}

func summaryRow(ps ProjectSummary, id string) []string {
	return []string{
		ps.Key,
		id,
		strconv.Itoa(ps.Create),
		strconv.Itoa(ps.Update),
		strconv.Itoa(ps.Delete),
		strconv.Itoa(ps.Unchanged),
	}
}
