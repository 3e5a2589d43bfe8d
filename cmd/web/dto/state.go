package dto

// ViewState 는 데이터 화면의 상태다. API 호출이 끝나기 전에는 Loading,
// 이후 Ready, Empty(글 없는 피드), Error 중 하나가 된다.
type ViewState int

const (
	StateLoading ViewState = iota
	StateReady
	StateEmpty
	StateError
)

func (s ViewState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateEmpty:
		return "empty"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// SubmitState 는 작성 폼 상태다. Idle → Submitting → Success | Failure
type SubmitState int

const (
	SubmitIdle SubmitState = iota
	SubmitSubmitting
	SubmitSuccess
	SubmitFailure
)

func (s SubmitState) String() string {
	switch s {
	case SubmitIdle:
		return "idle"
	case SubmitSubmitting:
		return "submitting"
	case SubmitSuccess:
		return "success"
	case SubmitFailure:
		return "failure"
	default:
		return "unknown"
	}
}
