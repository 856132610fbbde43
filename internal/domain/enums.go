package domain

// SuspiciousWordStatus represents the moderation lifecycle of a suspicious word.
type SuspiciousWordStatus string

const (
	SuspiciousWordStatusPending  SuspiciousWordStatus = "PENDING"
	SuspiciousWordStatusAdded    SuspiciousWordStatus = "ADDED"
	SuspiciousWordStatusDeclined SuspiciousWordStatus = "DECLINED"
)

func (s SuspiciousWordStatus) String() string { return string(s) }

func (s SuspiciousWordStatus) IsValid() bool {
	switch s {
	case SuspiciousWordStatusPending, SuspiciousWordStatusAdded, SuspiciousWordStatusDeclined:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s SuspiciousWordStatus) IsTerminal() bool {
	return s == SuspiciousWordStatusAdded || s == SuspiciousWordStatusDeclined
}
