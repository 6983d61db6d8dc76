package logging_test

import (
	"testing"

	"github.com/INTO-CPS-Association/unifmu-sub001/internal/logging"
)

func TestBlacklistDefaultAllowsEverything(t *testing.T) {
	f := logging.NewBlacklist()
	if !f.Enabled(logging.CategoryLogEvents) {
		t.Error("empty blacklist should allow every category")
	}
}

func TestWhitelistDefaultDeniesEverything(t *testing.T) {
	// spec.md scenario 5: "Start with logging_on=false (Whitelist ∅); a log
	// event for logEvents must not invoke the callback."
	f := logging.NewWhitelist()
	if f.Enabled(logging.CategoryLogEvents) {
		t.Error("empty whitelist should deny every category")
	}
}

func TestBlacklistDisableThenEnable(t *testing.T) {
	f := logging.NewBlacklist()
	f.Disable(logging.CategoryLogEvents)
	if f.Enabled(logging.CategoryLogEvents) {
		t.Error("disabled category should not be enabled in a blacklist")
	}

	f.Enable(logging.CategoryLogEvents)
	if !f.Enabled(logging.CategoryLogEvents) {
		t.Error("re-enabled category should be enabled again")
	}
}

func TestSetDebugLoggingEmptyTogglesAll(t *testing.T) {
	// spec.md §4.5: "if categories is empty, on toggles all".
	f := logging.NewWhitelist()
	f.SetDebugLogging(nil, true)
	if !f.Enabled(logging.CategoryLogEvents) || !f.Enabled(logging.NewCategory("logCustom")) {
		t.Error("SetDebugLogging(nil, true) should enable every category")
	}

	f.SetDebugLogging(nil, false)
	if f.Enabled(logging.CategoryLogEvents) {
		t.Error("SetDebugLogging(nil, false) should disable every category")
	}
}

func TestSetDebugLoggingSpecificCategories(t *testing.T) {
	// spec.md scenario 5: "SetDebugLogging(["logEvents"], true) then the same
	// event invokes the callback exactly once" — here, just the filter half.
	f := logging.NewWhitelist()
	f.SetDebugLogging([]logging.Category{logging.CategoryLogEvents}, true)

	if !f.Enabled(logging.CategoryLogEvents) {
		t.Error("logEvents should now be enabled")
	}
	if f.Enabled(logging.CategoryLogStatusWarning) {
		t.Error("logStatusWarning was never enabled, should remain disabled")
	}
}

// TestBlacklistWhitelistLaw checks the invariant from spec.md §3 directly:
//
//	enabled(c) iff (variant=Blacklist ∧ c∉set) ∨ (variant=Whitelist ∧ c∈set)
func TestBlacklistWhitelistLaw(t *testing.T) {
	cat := logging.NewCategory("logCustom")

	bl := logging.NewBlacklist()
	bl.Disable(cat)
	if bl.Enabled(cat) {
		t.Error("blacklist with category in set should report disabled")
	}

	wl := logging.NewWhitelist()
	wl.Enable(cat)
	if !wl.Enabled(cat) {
		t.Error("whitelist with category in set should report enabled")
	}
}
