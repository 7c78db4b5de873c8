package jobs

// Merge builds the update payload for a desired job that already exists
// remotely. The remote id is kept, and when the desired job has no schedule
// trigger the remote schedule is kept verbatim. Every other field comes from
// desired.
func Merge(desired, remote Job) Job {
	merged := desired.Clone()
	merged.ID = clonePtr(remote.ID)
	if !merged.Triggers.Schedule {
		merged.Schedule = remote.Schedule.Clone()
	}
	return merged
}
