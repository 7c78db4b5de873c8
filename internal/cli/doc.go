// Package cli holds the terminal plumbing shared by the dbterra commands:
// the common flag set, selection of the job store a run works against,
// the apply confirmation prompt, progress spinners, and classification of
// connection failures into errors that tell the user what to check.
//
// Commands in cmd/ stay thin and delegate to this package so that every
// command reports errors and progress the same way.
package cli
