package vector

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"
)

func TestEmplaceBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec.vector")
	defer teardown()
	//
	v := New[string]()
	slot, err := v.EmplaceBack(func() (string, error) { return "built", nil })
	if err != nil {
		t.Fatalf("emplace failed: %v", err)
	}
	if *slot != "built" || v.Len() != 1 {
		t.Errorf("emplaced element not in place: %q, len %d", *slot, v.Len())
	}
	if _, err = v.EmplaceBack(nil); err != nil { // nil ctor default-constructs
		t.Fatalf("default emplace failed: %v", err)
	}
	if v.Get(1) != "" {
		t.Errorf("expected default-constructed element, have %q", v.Get(1))
	}
}

func TestEmplaceAtEveryPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec.vector")
	defer teardown()
	//
	for at := 0; at <= 4; at++ {
		v := New[int]()
		mustPush(t, &v, 0, 1, 2, 3)
		it, err := v.Emplace(v.Begin().Advance(at), func() (int, error) { return 99, nil })
		if err != nil {
			t.Fatalf("emplace at %d failed: %v", at, err)
		}
		if it.Value() != 99 {
			t.Errorf("emplace at %d: iterator points at %d", at, it.Value())
		}
		base := []int{0, 1, 2, 3}
		want := append([]int{}, base[:at]...)
		want = append(want, 99)
		want = append(want, base[at:]...)
		if diff := cmp.Diff(want, elements(&v)); diff != "" {
			t.Errorf("emplace at %d wrong result (-want +have):\n%s", at, diff)
		}
	}
}

func TestInsertIsInverseOfErase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec.vector")
	defer teardown()
	//
	v := New[int]()
	mustPush(t, &v, 10, 11, 12, 13, 14)
	before := elements(&v)
	for at := 0; at < v.Len(); at++ {
		if _, err := v.Insert(v.Begin().Advance(at), 77); err != nil {
			t.Fatalf("insert at %d failed: %v", at, err)
		}
		if _, err := v.Erase(v.Begin().Advance(at)); err != nil {
			t.Fatalf("erase at %d failed: %v", at, err)
		}
		if diff := cmp.Diff(before, elements(&v)); diff != "" {
			t.Fatalf("insert+erase at %d not an identity (-want +have):\n%s", at, diff)
		}
	}
}

func TestInsertWithoutSpareCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec.vector")
	defer teardown()
	//
	v := New[int]()
	mustPush(t, &v, 1, 2, 3, 4) // size == capacity == 4
	if v.Len() != v.Cap() {
		t.Fatalf("test needs a full vector, have size %d capacity %d", v.Len(), v.Cap())
	}
	it, err := v.Insert(v.Begin().Advance(2), 99)
	if err != nil {
		t.Fatalf("relocating insert failed: %v", err)
	}
	if v.Cap() != 8 {
		t.Errorf("expected doubled capacity 8, have %d", v.Cap())
	}
	if it.Value() != 99 {
		t.Errorf("iterator points at %d", it.Value())
	}
	if diff := cmp.Diff([]int{1, 2, 99, 3, 4}, elements(&v)); diff != "" {
		t.Fatalf("relocating insert wrong result (-want +have):\n%s", diff)
	}
}

func TestEraseReturnsSuccessor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec.vector")
	defer teardown()
	//
	v := New[int]()
	mustPush(t, &v, 1, 2, 3)
	it, err := v.Erase(v.Begin())
	if err != nil {
		t.Fatalf("erase failed: %v", err)
	}
	if it.Value() != 2 {
		t.Errorf("expected iterator at successor 2, have %d", it.Value())
	}
	// erasing the last element yields End()
	it, err = v.Erase(v.End().Advance(-1))
	if err != nil {
		t.Fatalf("erase failed: %v", err)
	}
	if !it.Eq(v.End()) {
		t.Errorf("expected End() after erasing the last element")
	}
}

func TestIteratorWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec.vector")
	defer teardown()
	//
	v := New[int]()
	mustPush(t, &v, 3, 1, 4, 1, 5)
	var walked []int
	for it := v.Begin(); !it.Eq(v.End()); it = it.Next() {
		walked = append(walked, it.Value())
	}
	if diff := cmp.Diff([]int{3, 1, 4, 1, 5}, walked); diff != "" {
		t.Fatalf("iterator walk wrong (-want +have):\n%s", diff)
	}
	// restartable
	count := 0
	for it := v.Begin(); !it.Eq(v.End()); it = it.Next() {
		count++
	}
	if count != v.Len() {
		t.Errorf("second walk visited %d of %d elements", count, v.Len())
	}
}

func TestInsertAtEndEqualsPushBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec.vector")
	defer teardown()
	//
	v := New[int]()
	mustPush(t, &v, 1, 2)
	it, err := v.Insert(v.End(), 3)
	if err != nil {
		t.Fatalf("insert at End failed: %v", err)
	}
	if it.Index() != 2 || it.Value() != 3 {
		t.Errorf("insert at End misplaced: index %d value %d", it.Index(), it.Value())
	}
	if diff := cmp.Diff([]int{1, 2, 3}, elements(&v)); diff != "" {
		t.Fatalf("wrong result (-want +have):\n%s", diff)
	}
}

// --- Print vector ----------------------------------------------------------

func printVec[T any](v *Vector[T]) string {
	header := fmt.Sprintf("\nVector(len=%d, cap=%d)\n", v.Len(), v.Cap())
	printer := tp.New()
	live := printer.AddBranch(fmt.Sprintf("live 0…%d", v.Len()-1))
	v.Each(func(i int, val T) {
		live.AddNode(fmt.Sprintf("[%d] %v", i, val))
	})
	if v.Cap() > v.Len() {
		printer.AddNode(fmt.Sprintf("raw  %d…%d", v.Len(), v.Cap()-1))
	}
	return header + printer.String() + "\n"
}

func TestPrintVec(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vec.vector")
	defer teardown()
	//
	v := New[int]()
	mustPush(t, &v, 1, 2, 3)
	t.Logf(printVec(&v))
}
