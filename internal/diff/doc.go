// Package diff computes path-addressed structural differences between two
// JSON documents.
//
// Records are first converted into a Value tree through their JSON encoding
// (FromJSON, FromRecord). Diff then walks both trees together: object keys in
// ascending order, array elements by index. Every leaf position yields exactly
// one Change, and a position's path is its key and index segments joined with
// dots, for example "schedule.date.cron" or "execute_steps.0".
//
// A position that was null before and holds a value afterwards is reported as
// Added rather than Modified. DiffAsCreate goes further and reports every
// modification as an addition, for previews of records that do not exist yet.
package diff
