package algorithms

import (
	"errors"
	"testing"

	"github.com/san-kum/algoviz/internal/step"
)

func TestRegistryGenerate(t *testing.T) {
	r := NewRegistry()

	run, err := r.Generate(IDBinarySearch, Input{Values: []int{1, 3, 5}, Target: 5})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if run.ID == "" {
		t.Error("expected run id")
	}
	if run.Kind != step.KindSearch {
		t.Errorf("expected search kind, got %s", run.Kind)
	}
	if run.Target == nil || *run.Target != 5 {
		t.Errorf("expected target 5, got %v", run.Target)
	}

	again, err := r.Generate(IDBinarySearch, Input{Values: []int{1, 3, 5}, Target: 5})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if again.ID == run.ID {
		t.Error("expected a new run id per generation")
	}
}

func TestRegistrySortHasNoTarget(t *testing.T) {
	r := NewRegistry()
	run, err := r.Generate(IDMergeSort, Input{Values: []int{2, 1}})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if run.Target != nil {
		t.Errorf("expected no target, got %d", *run.Target)
	}
	if run.Kind != step.KindSort {
		t.Errorf("expected sort kind, got %s", run.Kind)
	}
}

func TestRegistryErrors(t *testing.T) {
	r := NewRegistry()

	if _, err := r.GetGenerator("quick-sort"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
	if _, err := r.GetGenerator(IDDFS); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented, got %v", err)
	}
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry()

	if len(r.List()) != len(Catalog) {
		t.Errorf("expected %d entries, got %d", len(Catalog), len(r.List()))
	}

	ids := r.Implemented()
	if len(ids) != 3 {
		t.Fatalf("expected 3 implemented algorithms, got %v", ids)
	}
	if ids[0] != IDBubbleSort {
		t.Errorf("expected catalog order, got %v", ids)
	}
}
