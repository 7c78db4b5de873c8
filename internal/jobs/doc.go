// Package jobs defines the canonical dbt Cloud job record and the two pure
// transformations that produce it: projecting a desired job declared in
// dbt_cloud.yml into the canonical shape, and merging a projected job with
// the job that already exists remotely.
//
// The canonical record mirrors the dbt Cloud v2 API job payload. Desired and
// remote jobs are both normalized into it before they are compared, so every
// field that participates in a diff has exactly one encoding.
//
// # Schedules
//
// dbt Cloud stores a schedule three times: as a top-level cron expression,
// as a "custom_cron" date rule and as an "every_hour" time rule. NewCronSchedule
// is the only constructor and always writes all three from one expression.
// Jobs without a declared schedule still carry DefaultCron with the schedule
// trigger switched off; Merge keeps the remote schedule for those jobs so the
// placeholder never overwrites a schedule configured in the UI.
package jobs
