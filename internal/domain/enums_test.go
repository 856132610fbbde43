package domain

import "testing"

func TestSuspiciousWordStatus_IsValid(t *testing.T) {
	t.Parallel()

	valid := []SuspiciousWordStatus{
		SuspiciousWordStatusPending,
		SuspiciousWordStatusAdded,
		SuspiciousWordStatusDeclined,
	}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}

	if SuspiciousWordStatus("REJECTED").IsValid() {
		t.Error("unknown status should be invalid")
	}
	if SuspiciousWordStatus("").IsValid() {
		t.Error("empty status should be invalid")
	}
}

func TestSuspiciousWordStatus_IsTerminal(t *testing.T) {
	t.Parallel()

	if SuspiciousWordStatusPending.IsTerminal() {
		t.Error("PENDING must not be terminal")
	}
	if !SuspiciousWordStatusAdded.IsTerminal() {
		t.Error("ADDED must be terminal")
	}
	if !SuspiciousWordStatusDeclined.IsTerminal() {
		t.Error("DECLINED must be terminal")
	}
}

func TestSuspiciousWord_CanTransition(t *testing.T) {
	t.Parallel()

	w := SuspiciousWord{Status: SuspiciousWordStatusPending}
	if !w.CanTransition() {
		t.Error("PENDING word must allow transitions")
	}

	for _, s := range []SuspiciousWordStatus{SuspiciousWordStatusAdded, SuspiciousWordStatusDeclined} {
		w.Status = s
		if w.CanTransition() {
			t.Errorf("%s word must not allow transitions", s)
		}
	}
}
