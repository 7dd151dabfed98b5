package threadpool

import "testing"

func TestStaticPoolPackageAssignment(t *testing.T) {
	p := NewStaticPool(4, 2)
	if p.ActiveThreads() != 4 {
		t.Fatalf("ActiveThreads() = %d, want 4", p.ActiveThreads())
	}
	wantPkg := []int{0, 1, 0, 1}
	for tid, want := range wantPkg {
		if got := p.Package(tid); got != want {
			t.Errorf("Package(%d) = %d, want %d", tid, got, want)
		}
	}
}

func TestStaticPoolLeaders(t *testing.T) {
	p := NewStaticPool(4, 2)
	wantLeader := []bool{true, true, false, false}
	for tid, want := range wantLeader {
		if got := p.IsLeader(tid); got != want {
			t.Errorf("IsLeader(%d) = %v, want %v", tid, got, want)
		}
		if p.IsLeaderSelf(tid) != p.IsLeader(tid) {
			t.Errorf("IsLeaderSelf(%d) disagrees with IsLeader", tid)
		}
	}
}

func TestNewStaticPoolClampsInvalidInputs(t *testing.T) {
	p := NewStaticPool(0, 0)
	if p.ActiveThreads() < 1 || p.packages < 1 {
		t.Fatal("expected invalid inputs to be clamped to at least 1")
	}

	p2 := NewStaticPool(2, 5)
	if p2.packages > p2.ActiveThreads() {
		t.Fatal("expected packages to be clamped to no more than threads")
	}
}
