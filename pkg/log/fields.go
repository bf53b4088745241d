package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"

	// Actor: the client-supplied authorId of a mutation.
	FieldActorID = "actor_id"

	// Entities
	FieldUserID    = "user_id"
	FieldPostID    = "post_id"
	FieldCommentID = "comment_id"
	FieldTargetID  = "target_id"

	// Service
	FieldService = "service"

	// SQL
	FieldSQL  = "sql"
	FieldRows = "rows"

	// Log type (for audit log)
	FieldLogType = "log_type"
	LogTypeAudit = "audit"
)
