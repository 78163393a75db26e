package control

import "testing"

func TestMetricsRegistry_SetAndSnapshot(t *testing.T) {
	mr := NewMetricsRegistry()
	mr.Set("active_workers", 3)

	snap := mr.GetSnapshot()
	if snap["active_workers"] != 3 {
		t.Fatalf("want 3, got %v", snap["active_workers"])
	}

	// snapshot is a copy
	snap["active_workers"] = 99
	if v := mr.GetSnapshot()["active_workers"]; v != 3 {
		t.Fatalf("mutating snapshot must not affect registry, got %v", v)
	}
}

func TestDebugProbes_RegisterAndDump(t *testing.T) {
	dp := NewDebugProbes()
	dp.RegisterProbe("queue_size", func() any { return 7 })

	out := dp.DumpState()
	if out["queue_size"] != 7 {
		t.Fatalf("want 7, got %v", out["queue_size"])
	}
}
