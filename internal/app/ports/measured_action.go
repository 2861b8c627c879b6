package ports

type MeasuredActionLabel string
type MeasuredActionResult string

const (
	MALabelAction                 MeasuredActionLabel  = "action"
	MALabelPrincipal              MeasuredActionLabel  = "principal"
	MALabelResult                 MeasuredActionLabel  = "result"
	MAResultSuccess               MeasuredActionResult = "success"
	MAResultFailure               MeasuredActionResult = "failure"
	MAResultUnauthorizedApiClient MeasuredActionResult = "api-client-unauthorized"
	MAResultNotFound              MeasuredActionResult = "not-found"
	MAResultForbidden             MeasuredActionResult = "forbidden"
	MAResultInvalid               MeasuredActionResult = "invalid"
	MAResultConflict              MeasuredActionResult = "conflict"
)

type MeasuredAction interface {
	Done(result MeasuredActionResult) MeasuredAction
	Duration() float64
	Labels() map[MeasuredActionLabel]string
}

type ActionMetrics interface {
	OnActionDone(ma MeasuredAction)
}
