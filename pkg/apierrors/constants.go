package apierrors

const (
	CategoryInvalidRequest        = "invalid_request"
	CategoryNotFound              = "not_found"
	CategoryDependencyUnavailable = "dependency_unavailable"
	CategoryMalformedUpstream     = "malformed_upstream_response"
	CategoryInternal              = "internal"
)

const (
	MsgInvalidID                = "invalidID"
	MsgInvalidTaskPayload       = "invalidTaskPayload"
	MsgInvalidProjectPayload    = "invalidProjectPayload"
	MsgInvalidOwnerPayload      = "invalidOwnerPayload"
	MsgInvalidRecurrencePayload = "invalidRecurrencePayload"

	MsgTaskNotFound       = "taskNotFound"
	MsgProjectNotFound    = "projectNotFound"
	MsgRecurrenceNotFound = "recurrenceNotFound"

	MsgDependencyUnavailable = "dependencyUnavailable"
	MsgMalformedUpstream     = "malformedUpstreamResponse"

	MsgFailListTask         = "errorListTask"
	MsgFailGetTask          = "failGetTask"
	MsgFailListSubtasks     = "failListSubtasks"
	MsgFailCreateTask       = "failCreateTask"
	MsgFailUpdateTask       = "failUpdateTask"
	MsgFailDeleteTask       = "failDeleteTask"
	MsgFailListProject      = "errorListProject"
	MsgFailGetProject       = "failGetProject"
	MsgFailCreateProject    = "failCreateProject"
	MsgFailUpdateProject    = "failUpdateProject"
	MsgFailDeleteProject    = "failDeleteProject"
	MsgFailCollaborators    = "failUpdateCollaborators"
	MsgFailChangeOwner      = "failChangeOwner"
	MsgFailGetRecurrence    = "failGetRecurrence"
	MsgFailListRecurrence   = "errorListRecurrence"
	MsgFailCreateRecurrence = "failCreateRecurrence"
	MsgFailUpdateRecurrence = "failUpdateRecurrence"
	MsgFailDeleteRecurrence = "failDeleteRecurrence"
)
