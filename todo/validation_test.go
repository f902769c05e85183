package todo

import (
	"errors"
	"testing"
)

func TestValidateDependency(t *testing.T) {
	cases := []struct {
		name    string
		dep     Dependency
		wantErr error
	}{
		{
			name: "valid edge",
			dep:  Dependency{TodoID: "abc12345", DependsOnID: "def67890"},
		},
		{
			name:    "self dependency",
			dep:     Dependency{TodoID: "abc12345", DependsOnID: "abc12345"},
			wantErr: ErrSelfDependency,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDependency(&tc.dep)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("expected valid dependency, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	if err := ValidateDependency(&Dependency{DependsOnID: "def67890"}); err == nil {
		t.Error("expected error for empty todo_id")
	}
	if err := ValidateDependency(&Dependency{TodoID: "abc12345"}); err == nil {
		t.Error("expected error for empty depends_on_id")
	}
}
