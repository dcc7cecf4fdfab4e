package constant

type AuditAction string

const (
	AuditActionInbound   AuditAction = "INBOUND"
	AuditActionOutbound  AuditAction = "OUTBOUND"
	AuditActionTransfer  AuditAction = "TRANSFER"
	AuditActionStocktake AuditAction = "STOCKTAKE"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
)

type contextKey string

const PrincipalKey contextKey = "principal"

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
