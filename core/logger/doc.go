// Package logger provides slog attribute helpers shared across the module.
//
// Helpers follow the empty-Attr pattern: a nil error or empty value yields an
// attribute slog silently drops, so call sites never need nil checks:
//
//	log.Warn("authentication failed", logger.Error(err), logger.TokenID(id))
//
// Token values and signing keys are never logged; TokenID carries only the
// jti, which is safe to correlate with the revocation store.
package logger
