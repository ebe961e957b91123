// Package models defines the core domain models for the wellness portal.
//
// # Entities
//
//   - User: a registered account, either a patient or a provider. Patients may be
//     linked to a single provider via ProviderID; that provider is the only one
//     permitted to view the patient's aggregated data.
//   - Goal: a daily numeric target/progress record (steps, water, sleep, active time).
//   - Reminder: a dated task with a pending/completed/missed lifecycle.
//   - AuditEntry: an append-only record of a sensitive action.
//   - PublicContent, HealthTip: read-only informational content.
//
// # Design Principles
//
//  1. Relationships use ID strings, never pointers, to avoid circular references.
//  2. The password hash never leaves the process: User carries it with `json:"-"`
//     and every API response uses the SafeUser projection.
//  3. Day-granularity dates (Goal.Date, Reminder.DueDate) are plain YYYY-MM-DD
//     strings, which compare and sort correctly as text.
//  4. Partial updates go through explicit update structs with whitelisted fields
//     so identity fields can never be overwritten by a request body.
package models
