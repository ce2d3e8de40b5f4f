// Package acl translates between the board's wire format and domain types.
//
// Board DTOs stay unexported here. HTTP statuses, the JSON error envelope and
// client-level failures ([clients.ErrCircuitOpen],
// [clients.ErrMaxRetriesExceeded]) all come out as domain errors:
//
//   - 404 → [domain.ErrNotFound]
//   - 409 → [domain.ErrConflict]
//   - 400/422 → [domain.ErrValidation]
//   - 5xx, 429 and transport failures → [domain.ErrUnavailable]
package acl
