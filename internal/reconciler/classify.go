package reconciler

import (
	"github.com/giantswarm/dbterra/internal/jobs"
	"github.com/giantswarm/dbterra/pkg/logging"
)

// Classify matches projected desired jobs against remote jobs by name.
//
// A name only in projected becomes a Create, a name only in remote becomes a
// Delete, and a name in both becomes an Update of the merged job. Names are
// expected to be unique on each side; on a duplicate the later job wins and
// the remote job it replaces is logged as a warning.
func Classify(projected, remote []jobs.Job) map[string]Action {
	remoteByName := make(map[string]jobs.Job, len(remote))
	for _, r := range remote {
		if dropped, ok := remoteByName[r.Name]; ok {
			logging.Warn("Plan", "Remote job %q (%s) is shadowed by job %s with the same name and will not be reconciled",
				r.Name, idString(dropped.ID), idString(r.ID))
		}
		remoteByName[r.Name] = r
	}

	actions := make(map[string]Action, len(projected)+len(remote))
	for _, p := range projected {
		if r, ok := remoteByName[p.Name]; ok {
			actions[p.Name] = Update{Merged: jobs.Merge(p, r), Remote: r}
			continue
		}
		actions[p.Name] = Create{Desired: p}
	}

	for name, r := range remoteByName {
		if _, ok := actions[name]; !ok {
			actions[name] = Delete{Remote: r}
		}
	}

	return actions
}
