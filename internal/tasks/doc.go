// Package tasks runs multi-step jobs over the repositories with progress reporting.
//
// # Seeding
//
// [Seeder.Run] replaces the contents of the database with sample data for manual testing:
//
//  1. Clears articles, authors and magazines
//  2. Creates the fixture authors and magazines
//  3. Gives the i-th author three articles in the i-th magazine, so every magazine has a contributing author
//  4. Adds a configurable number of articles with random author, magazine, title and content
//
// Random choices come from a seeded generator, so a given fixture and seed always produce the same rows.
// Failures in the random phase are counted and logged rather than aborting the run.
//
// # Progress Reporting
//
// Operations accept an optional channel of [ProgressUpdate] values. Sends use select with default, so a slow or
// absent reader never blocks the task.
package tasks
