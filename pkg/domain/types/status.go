package types

// Enum wire values match the values persisted by the quality database.

// NCStatus represents the status of a non-conformity
type NCStatus string

const (
	NCStatusOpen       NCStatus = "ouverte"
	NCStatusInProgress NCStatus = "en_cours"
	NCStatusResolved   NCStatus = "resolue"
	NCStatusClosed     NCStatus = "cloturee"
	NCStatusRejected   NCStatus = "rejetee"
)

// String returns the string representation of the status
func (s NCStatus) String() string {
	return string(s)
}

// IsValid checks if the status is valid
func (s NCStatus) IsValid() bool {
	switch s {
	case NCStatusOpen, NCStatusInProgress, NCStatusResolved, NCStatusClosed, NCStatusRejected:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the non-conformity still awaits treatment
func (s NCStatus) IsOpen() bool {
	return s == NCStatusOpen || s == NCStatusInProgress
}

// AllNCStatuses returns every non-conformity status in display order
func AllNCStatuses() []NCStatus {
	return []NCStatus{NCStatusOpen, NCStatusInProgress, NCStatusResolved, NCStatusClosed, NCStatusRejected}
}

// OpenNCStatuses returns the statuses counted as open
func OpenNCStatuses() []NCStatus {
	return []NCStatus{NCStatusOpen, NCStatusInProgress}
}

// NCPriority represents the priority of a non-conformity
type NCPriority string

const (
	NCPriorityLow      NCPriority = "basse"
	NCPriorityMedium   NCPriority = "moyenne"
	NCPriorityHigh     NCPriority = "haute"
	NCPriorityCritical NCPriority = "critique"
)

// String returns the string representation of the priority
func (p NCPriority) String() string {
	return string(p)
}

// IsValid checks if the priority is valid
func (p NCPriority) IsValid() bool {
	switch p {
	case NCPriorityLow, NCPriorityMedium, NCPriorityHigh, NCPriorityCritical:
		return true
	default:
		return false
	}
}

// AllNCPriorities returns every priority from lowest to highest
func AllNCPriorities() []NCPriority {
	return []NCPriority{NCPriorityLow, NCPriorityMedium, NCPriorityHigh, NCPriorityCritical}
}

// AuditType represents the kind of audit
type AuditType string

const (
	AuditTypeInternal AuditType = "interne"
	AuditTypeExternal AuditType = "externe"
	AuditTypeSupplier AuditType = "fournisseur"
	AuditTypeClient   AuditType = "client"
)

// String returns the string representation of the type
func (t AuditType) String() string {
	return string(t)
}

// IsValid checks if the audit type is valid
func (t AuditType) IsValid() bool {
	switch t {
	case AuditTypeInternal, AuditTypeExternal, AuditTypeSupplier, AuditTypeClient:
		return true
	default:
		return false
	}
}

// AllAuditTypes returns every audit type in display order
func AllAuditTypes() []AuditType {
	return []AuditType{AuditTypeInternal, AuditTypeExternal, AuditTypeSupplier, AuditTypeClient}
}

// AuditStatus represents the status of an audit
type AuditStatus string

const (
	AuditStatusPlanned    AuditStatus = "planifie"
	AuditStatusInProgress AuditStatus = "en_cours"
	AuditStatusDone       AuditStatus = "termine"
	AuditStatusPostponed  AuditStatus = "reporte"
)

// String returns the string representation of the status
func (s AuditStatus) String() string {
	return string(s)
}

// IsValid checks if the audit status is valid
func (s AuditStatus) IsValid() bool {
	switch s {
	case AuditStatusPlanned, AuditStatusInProgress, AuditStatusDone, AuditStatusPostponed:
		return true
	default:
		return false
	}
}

// ActionStatus represents the status of a CAPA action
type ActionStatus string

const (
	ActionStatusPlanned     ActionStatus = "planifiee"
	ActionStatusInProgress  ActionStatus = "en_cours"
	ActionStatusDone        ActionStatus = "terminee"
	ActionStatusVerified    ActionStatus = "verifiee"
	ActionStatusIneffective ActionStatus = "inefficace"
)

// String returns the string representation of the status
func (s ActionStatus) String() string {
	return string(s)
}

// IsValid checks if the action status is valid
func (s ActionStatus) IsValid() bool {
	switch s {
	case ActionStatusPlanned, ActionStatusInProgress, ActionStatusDone, ActionStatusVerified, ActionStatusIneffective:
		return true
	default:
		return false
	}
}

// IsActive reports whether the action is still being carried out
func (s ActionStatus) IsActive() bool {
	return s == ActionStatusPlanned || s == ActionStatusInProgress
}

// AllActionStatuses returns every action status in display order
func AllActionStatuses() []ActionStatus {
	return []ActionStatus{ActionStatusPlanned, ActionStatusInProgress, ActionStatusDone, ActionStatusVerified, ActionStatusIneffective}
}

// ActionType represents the kind of CAPA action
type ActionType string

const (
	ActionTypeCorrective  ActionType = "corrective"
	ActionTypePreventive  ActionType = "preventive"
	ActionTypeImprovement ActionType = "amelioration"
)

// String returns the string representation of the type
func (t ActionType) String() string {
	return string(t)
}

// IsValid checks if the action type is valid
func (t ActionType) IsValid() bool {
	switch t {
	case ActionTypeCorrective, ActionTypePreventive, ActionTypeImprovement:
		return true
	default:
		return false
	}
}
