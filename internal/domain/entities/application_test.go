package entities

import "testing"

func TestApplicationStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to ApplicationStatus
		want     bool
	}{
		{ApplicationStatusIncomplete, ApplicationStatusSubmitted, true},
		{ApplicationStatusIncomplete, ApplicationStatusDeclined, true},
		{ApplicationStatusIncomplete, ApplicationStatusRemoved, true},
		{ApplicationStatusSubmitted, ApplicationStatusDeclined, true},
		{ApplicationStatusSubmitted, ApplicationStatusRemoved, true},
		{ApplicationStatusSubmitted, ApplicationStatusSubmitted, false},
		{ApplicationStatusSubmitted, ApplicationStatusIncomplete, false},
		{ApplicationStatusDeclined, ApplicationStatusSubmitted, false},
		{ApplicationStatusDeclined, ApplicationStatusIncomplete, false},
		{ApplicationStatusRemoved, ApplicationStatusSubmitted, false},
		{ApplicationStatusRemoved, ApplicationStatusIncomplete, false},
		// A later admin action overwrites an earlier one, last write wins
		{ApplicationStatusDeclined, ApplicationStatusRemoved, true},
		{ApplicationStatusRemoved, ApplicationStatusDeclined, true},
		{ApplicationStatusDeclined, ApplicationStatusDeclined, true},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestApplicationStatus_IsTerminal(t *testing.T) {
	if ApplicationStatusIncomplete.IsTerminal() || ApplicationStatusSubmitted.IsTerminal() {
		t.Error("open statuses must not be terminal")
	}
	if !ApplicationStatusDeclined.IsTerminal() || !ApplicationStatusRemoved.IsTerminal() {
		t.Error("declined and removed must be terminal")
	}
}

func TestApplicationAction_TargetStatus(t *testing.T) {
	if s, ok := ApplicationActionDecline.TargetStatus(); !ok || s != ApplicationStatusDeclined {
		t.Errorf("decline target = %s, %v", s, ok)
	}
	if s, ok := ApplicationActionRemove.TargetStatus(); !ok || s != ApplicationStatusRemoved {
		t.Errorf("remove target = %s, %v", s, ok)
	}
	if _, ok := ApplicationAction("archive").TargetStatus(); ok {
		t.Error("unknown action must have no target")
	}
}

func TestResolveReason(t *testing.T) {
	// Every fixed reason stands on its own
	for _, r := range ActionReasons {
		if r == ReasonOther {
			continue
		}
		got, ok := ResolveReason(r, "")
		if !ok || got != string(r) {
			t.Errorf("ResolveReason(%q) = %q, %v", r, got, ok)
		}
		// Custom text on a fixed reason is ignored
		got, ok = ResolveReason(r, "extra detail")
		if !ok || got != string(r) {
			t.Errorf("ResolveReason(%q, custom) = %q, %v", r, got, ok)
		}
	}

	// "Other" requires custom text
	if _, ok := ResolveReason(ReasonOther, ""); ok {
		t.Error(`"Other" with no text must be rejected`)
	}
	got, ok := ResolveReason(ReasonOther, "Merchant moved out of state")
	if !ok || got != "Merchant moved out of state" {
		t.Errorf("ResolveReason(Other, text) = %q, %v", got, ok)
	}

	// Unknown selections are rejected outright
	if _, ok := ResolveReason(ActionReason("Because"), "text"); ok {
		t.Error("unknown reason must be rejected")
	}
}
