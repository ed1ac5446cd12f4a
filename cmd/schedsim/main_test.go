package main

import (
	"errors"
	"path/filepath"
	"testing"

	"os-scheduling-simulator/internal/schedulers"
)

func TestRunQuantumFlag(t *testing.T) {
	workloadPath := filepath.Join("..", "..", "testdata", "workload.yaml")
	zero, three := 0, 3

	tests := []struct {
		name    string
		quantum *int
		want    error
	}{
		{"flag not given uses the file", nil, nil},
		{"explicit quantum", &three, nil},
		{"explicit zero is rejected", &zero, schedulers.ErrInvalidQuantum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(workloadPath, "rr", tt.quantum, "", false)
			if !errors.Is(err, tt.want) {
				t.Errorf("run() err = %v, want %v", err, tt.want)
			}
		})
	}
}
