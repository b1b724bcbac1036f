package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusSeated    Status = "seated"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusSeated, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// ActiveStatuses are the statuses that hold seats and count toward capacity.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed, StatusSeated}

func (s Status) IsActive() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusSeated:
		return true
	default:
		return false
	}
}

type Source string

const (
	SourcePhone   Source = "phone"
	SourceChat    Source = "chat"
	SourceWebsite Source = "website"
	SourceWalkIn  Source = "walk_in"
	SourceManual  Source = "manual"
	SourceAI      Source = "ai"
)

func (s Source) String() string {
	return string(s)
}

func (s Source) IsValid() bool {
	switch s {
	case SourcePhone, SourceChat, SourceWebsite, SourceWalkIn, SourceManual, SourceAI:
		return true
	default:
		return false
	}
}
