package reconciler

import (
	"github.com/giantswarm/dbterra/internal/diff"
)

// Document is the machine readable form of a plan, as printed by
// `plan -o json` and `plan -o yaml`.
type Document struct {
	HasChanges bool              `json:"hasChanges" yaml:"hasChanges"`
	Projects   []ProjectDocument `json:"projects" yaml:"projects"`
	Summary    ProjectSummary    `json:"summary" yaml:"summary"`
}

// ProjectDocument lists the jobs of one project.
type ProjectDocument struct {
	Key       string        `json:"project" yaml:"project"`
	ProjectID int64         `json:"projectId" yaml:"projectId"`
	Jobs      []JobDocument `json:"jobs" yaml:"jobs"`
}

// JobDocument describes the planned action for one job. Changes hold only
// the differing paths, including those hidden from the human readable plan.
// Deletes carry no changes.
type JobDocument struct {
	Name       string          `json:"name" yaml:"name"`
	Operation  ChangeOperation `json:"operation" yaml:"operation"`
	ID         *int64          `json:"id,omitempty" yaml:"id,omitempty"`
	HasChanges bool            `json:"hasChanges" yaml:"hasChanges"`
	Changes    []diff.Change   `json:"changes,omitempty" yaml:"changes,omitempty"`
}

// Document converts p into its machine readable form.
func (p *Plan) Document() Document {
	doc := Document{
		HasChanges: p.HasChanges(),
		Projects:   make([]ProjectDocument, 0, len(p.Projects)),
		Summary:    p.Summary().Total(),
	}

	for _, project := range p.Projects {
		pd := ProjectDocument{
			Key:       project.Key,
			ProjectID: project.ProjectID,
			Jobs:      make([]JobDocument, 0, len(project.Jobs)),
		}
		for _, job := range sortedByName(project.Jobs) {
			jd := JobDocument{
				Name:       job.Name(),
				Operation:  job.Action.Operation(),
				HasChanges: job.HasChanges(),
			}
			switch a := job.Action.(type) {
			case Update:
				jd.ID = a.Remote.ID
			case Delete:
				jd.ID = a.Remote.ID
				pd.Jobs = append(pd.Jobs, jd)
				continue
			}
			for _, c := range job.Changes {
				if c.Kind != diff.Unchanged {
					jd.Changes = append(jd.Changes, c)
				}
			}
			pd.Jobs = append(pd.Jobs, jd)
		}
		doc.Projects = append(doc.Projects, pd)
	}

	return doc
}
