package audit

import "time"

// Event is an immutable, append-only record of one admin action taken
// through the console.
//
// Invariants:
// - Events are never updated or deleted.
// - Actor and IP capture are best-effort; do not block admin flows on audit
//   failures.
//
// Storage (Postgres): table console_audit_events, INSERT-only.

type Event struct {
	ID string `json:"id" db:"id"`

	// Action is the business category, e.g. "topup.approve".
	Action Action `json:"action" db:"action"`

	// ActorUsername is the admin whose session performed the action.
	ActorUsername string `json:"actor_username" db:"actor_username"`

	// IPAddress should capture the original client IP when available.
	IPAddress string `json:"ip_address,omitempty" db:"ip_address"`

	// Resource and ResourceID identify the row acted upon
	// ("user", "topup", "voice-purchase", ...). ResourceID is zero for
	// collection-level actions such as cleanup runs.
	Resource   string `json:"resource" db:"resource"`
	ResourceID int64  `json:"resource_id,omitempty" db:"resource_id"`

	// Message is a short human-readable description for internal ops,
	// typically the upstream's own response message.
	Message string `json:"message,omitempty" db:"message"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Action string

const (
	ActionLogin        Action = "auth.login"
	ActionLogout       Action = "auth.logout"
	ActionUserUpdate   Action = "user.update"
	ActionUserEnable   Action = "user.enable"
	ActionUserDisable  Action = "user.disable"
	ActionUserDelete   Action = "user.delete"
	ActionVoiceCreate  Action = "voice-type.create"
	ActionVoiceUpdate  Action = "voice-type.update"
	ActionVoiceDelete  Action = "voice-type.delete"
	ActionPkgCreate    Action = "package.create"
	ActionPkgUpdate    Action = "package.update"
	ActionPkgDelete    Action = "package.delete"
	ActionVPApprove    Action = "voice-purchase.approve"
	ActionVPReject     Action = "voice-purchase.reject"
	ActionVPDelete     Action = "voice-purchase.delete"
	ActionTopUpApprove Action = "topup.approve"
	ActionTopUpReject  Action = "topup.reject"
	ActionTopUpDelete  Action = "topup.delete"
	ActionCallDelete   Action = "call-history.delete"
	ActionCleanupRun   Action = "voice-cleanup.run"
)
