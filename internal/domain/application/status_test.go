package application

import (
	"reflect"
	"testing"
)

func TestValidateTransition_FullTable(t *testing.T) {
	all := []Status{
		StatusDraft, StatusSubmitted, StatusUnderReview, StatusApproved,
		StatusRejected, StatusWithdrawn, StatusDisbursed,
	}
	want := map[Status][]Status{
		StatusDraft:       {StatusSubmitted, StatusWithdrawn},
		StatusSubmitted:   {StatusUnderReview, StatusWithdrawn},
		StatusUnderReview: {StatusApproved, StatusRejected, StatusWithdrawn},
		StatusApproved:    {StatusDisbursed, StatusWithdrawn},
		StatusRejected:    {StatusSubmitted, StatusWithdrawn},
		StatusWithdrawn:   {},
		StatusDisbursed:   {},
	}

	for _, cur := range all {
		allowedSet := map[Status]bool{}
		for _, s := range want[cur] {
			allowedSet[s] = true
		}
		for _, req := range all {
			valid, allowed := ValidateTransition(cur, req)
			if valid != allowedSet[req] {
				t.Errorf("ValidateTransition(%s, %s) = %v, want %v", cur, req, valid, allowedSet[req])
			}
			// allowed set is always returned, valid or not
			if !reflect.DeepEqual(allowed, want[cur]) {
				t.Errorf("allowed for %s = %v, want %v", cur, allowed, want[cur])
			}
		}
	}
}

func TestIsTerminalStatus_EmptyOutgoingSetOnly(t *testing.T) {
	terminals := map[Status]bool{StatusWithdrawn: true, StatusDisbursed: true}
	for s := range transitions {
		if got := IsTerminalStatus(s); got != terminals[s] {
			t.Errorf("IsTerminalStatus(%s) = %v, want %v", s, got, terminals[s])
		}
	}
	if IsTerminalStatus(Status("bogus")) {
		t.Error("unknown status must not be terminal")
	}
}

func TestAllowedTransitions_ReturnsCopy(t *testing.T) {
	got := AllowedTransitions(StatusDraft)
	got[0] = Status("mutated")
	if again := AllowedTransitions(StatusDraft); again[0] != StatusSubmitted {
		t.Fatal("AllowedTransitions leaked the internal table")
	}
}

func TestIsValidStatus(t *testing.T) {
	if !IsValidStatus(StatusUnderReview) {
		t.Error("under_review should be valid")
	}
	if IsValidStatus(Status("offer_letter_signed")) {
		t.Error("offer stage values must not be core statuses")
	}
}
