package process

// Notes:
// - KillTree: we only call it with PIDs that cannot match a live process.
//   Real kills are exercised when a Builder closes its browser.
// - PID 0 and negative PIDs must be no-ops: kill(-0) would target our own
//   process group.

import "testing"

func TestKillTree_IgnoresNonPositivePID(t *testing.T) {
	t.Parallel()

	for _, pid := range []int{0, -1, -12345} {
		KillTree(pid)
	}
}

func TestKillTree_UnknownPID(t *testing.T) {
	t.Parallel()

	KillTree(999999999)
}
