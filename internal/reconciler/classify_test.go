package reconciler

import (
	"bytes"
	"io"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/dbterra/internal/jobs"
	"github.com/giantswarm/dbterra/pkg/logging"
)

func named(names ...string) []jobs.Job {
	result := make([]jobs.Job, 0, len(names))
	for i, name := range names {
		id := int64(i + 1)
		result = append(result, jobs.Job{ID: &id, Name: name})
	}
	return result
}

func unnamedIDs(js []jobs.Job) []jobs.Job {
	for i := range js {
		js[i].ID = nil
	}
	return js
}

func TestClassify_Partition(t *testing.T) {
	tests := []struct {
		name    string
		desired []string
		remote  []string
		creates []string
		updates []string
		deletes []string
	}{
		{name: "empty", creates: nil},
		{name: "all new", desired: []string{"A", "B"}, creates: []string{"A", "B"}},
		{name: "all gone", remote: []string{"A", "B"}, deletes: []string{"A", "B"}},
		{name: "all matched", desired: []string{"A", "B"}, remote: []string{"B", "A"}, updates: []string{"A", "B"}},
		{
			name:    "mixed",
			desired: []string{"Daily Run", "Hourly", "New"},
			remote:  []string{"Hourly", "Legacy", "Daily Run"},
			creates: []string{"New"},
			updates: []string{"Daily Run", "Hourly"},
			deletes: []string{"Legacy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions := Classify(unnamedIDs(named(tt.desired...)), named(tt.remote...))

			var creates, updates, deletes []string
			for name, action := range actions {
				assert.Equal(t, name, action.JobName())
				switch action.(type) {
				case Create:
					creates = append(creates, name)
				case Update:
					updates = append(updates, name)
				case Delete:
					deletes = append(deletes, name)
				}
			}
			sort.Strings(creates)
			sort.Strings(updates)
			sort.Strings(deletes)

			assert.Equal(t, tt.creates, creates)
			assert.Equal(t, tt.updates, updates)
			assert.Equal(t, tt.deletes, deletes)
			assert.Len(t, actions, len(tt.creates)+len(tt.updates)+len(tt.deletes))
		})
	}
}

func TestClassify_UpdateCarriesMergedJob(t *testing.T) {
	desired := unnamedIDs(named("Nightly"))
	desired[0].Settings.Threads = 8
	remote := named("Nightly")
	remote[0].ID = int64Ptr(42)
	remote[0].Settings.Threads = 4

	actions := Classify(desired, remote)
	update, ok := actions["Nightly"].(Update)
	require.True(t, ok)

	assert.Equal(t, int64Ptr(42), update.Merged.ID)
	assert.Equal(t, int64(8), update.Merged.Settings.Threads)
	assert.Equal(t, int64(4), update.Remote.Settings.Threads)
	assert.Equal(t, OperationUpdate, update.Operation())
}

func int64Ptr(v int64) *int64 { return &v }

func TestClassify_DuplicateRemoteNameKeepsLaterJob(t *testing.T) {
	var logs bytes.Buffer
	logging.InitForCLI(logging.LevelWarn, &logs)
	t.Cleanup(func() { logging.InitForCLI(logging.LevelInfo, io.Discard) })

	first, second := int64(11), int64(12)
	remote := []jobs.Job{
		{ID: &first, Name: "Daily Run"},
		{ID: &second, Name: "Daily Run"},
	}

	actions := Classify(nil, remote)

	require.Len(t, actions, 1)
	del, ok := actions["Daily Run"].(Delete)
	require.True(t, ok)
	assert.Equal(t, &second, del.Remote.ID)

	out := logs.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "subsystem=Plan")
	assert.Contains(t, out, `Remote job \"Daily Run\" (11) is shadowed by job 12`)
}

func TestClassify_UniqueRemoteNamesDoNotWarn(t *testing.T) {
	var logs bytes.Buffer
	logging.InitForCLI(logging.LevelWarn, &logs)
	t.Cleanup(func() { logging.InitForCLI(logging.LevelInfo, io.Discard) })

	Classify(named("Daily Run"), named("Daily Run", "Hourly"))

	assert.Empty(t, logs.String())
}
