package discovery

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeGoFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestParser_FindSuite(t *testing.T) {
	parser := NewParser()
	tmpDir := t.TempDir()

	testFile := writeGoFile(t, tmpDir, "user_suite.go", `package accounts

//minunit:suite Users

//minunit:beforeclass
func openDB() error { return nil }

//minunit:afterclass
func closeDB() {}

//minunit:before
func seed() {}

//minunit:test
func createUser() error { return nil }

// helper is not a test
func helper() {}

// deleteUser removes a user.
//
//minunit:test
func deleteUser() {}

//minunit:test
func updateUser() error { return nil }
`)

	t.Run("finds marked functions", func(t *testing.T) {
		plan, err := parser.FindSuite(testFile)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan == nil {
			t.Fatal("expected a plan")
		}

		if plan.Name != "Users" {
			t.Errorf("expected suite name Users, got %s", plan.Name)
		}
		if plan.Package != "accounts" {
			t.Errorf("expected package accounts, got %s", plan.Package)
		}
		if plan.BeforeClass == nil || plan.BeforeClass.Name != "openDB" || !plan.BeforeClass.ReturnsError {
			t.Errorf("unexpected beforeclass: %+v", plan.BeforeClass)
		}
		if plan.AfterClass == nil || plan.AfterClass.Name != "closeDB" || plan.AfterClass.ReturnsError {
			t.Errorf("unexpected afterclass: %+v", plan.AfterClass)
		}
		if plan.Before == nil || plan.Before.Name != "seed" {
			t.Errorf("unexpected before: %+v", plan.Before)
		}
		if plan.After != nil {
			t.Errorf("expected no after hook, got %+v", plan.After)
		}

		// Declaration order, not alphabetical
		expected := []string{"createUser", "deleteUser", "updateUser"}
		if len(plan.Tests) != len(expected) {
			t.Fatalf("expected %d tests, got %d: %+v", len(expected), len(plan.Tests), plan.Tests)
		}
		for i, name := range expected {
			if plan.Tests[i].Name != name {
				t.Errorf("expected test %d to be %s, got %s", i, name, plan.Tests[i].Name)
			}
		}
		if len(plan.Hooks()) != 3 {
			t.Errorf("expected 3 hooks, got %d", len(plan.Hooks()))
		}
	})

	t.Run("unmarked file has no plan", func(t *testing.T) {
		path := writeGoFile(t, tmpDir, "plain.go", "package accounts\n\nfunc helper() {}\n")
		plan, err := parser.FindSuite(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan != nil {
			t.Errorf("expected nil plan, got %+v", plan)
		}
	})

	t.Run("suite name defaults to file stem", func(t *testing.T) {
		path := writeGoFile(t, tmpDir, "orders.go", "package accounts\n\n//minunit:after\nfunc cleanup() {}\n")
		plan, err := parser.FindSuite(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if plan.Name != "orders" {
			t.Errorf("expected orders, got %s", plan.Name)
		}
		if len(plan.Tests) != 0 {
			t.Errorf("expected no tests, got %d", len(plan.Tests))
		}
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := parser.FindSuite("/non/existent/file.go")
		if err == nil {
			t.Error("expected error for non-existent file")
		}
	})
}

func TestParser_FindSuite_Errors(t *testing.T) {
	parser := NewParser()
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "duplicate hook",
			content: "package x\n\n//minunit:before\nfunc a() {}\n\n//minunit:before\nfunc b() {}\n",
			wantErr: "already declared by a",
		},
		{
			name:    "arguments",
			content: "package x\n\n//minunit:test\nfunc a(n int) {}\n",
			wantErr: "must take no arguments",
		},
		{
			name:    "wrong result",
			content: "package x\n\n//minunit:test\nfunc a() int { return 0 }\n",
			wantErr: "must return nothing or a single error",
		},
		{
			name:    "method",
			content: "package x\n\ntype T struct{}\n\n//minunit:test\nfunc (T) a() {}\n",
			wantErr: "must not be a method",
		},
		{
			name:    "unknown marker",
			content: "package x\n\n//minunit:beforeall\nfunc a() {}\n",
			wantErr: "unknown marker",
		},
		{
			name:    "unnamed suite",
			content: "package x\n\n//minunit:suite\n",
			wantErr: "needs a name",
		},
		{
			name:    "syntax error",
			content: "package x\n\nfunc {\n",
			wantErr: "error parsing file",
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeGoFile(t, tmpDir, filepath.Base(t.Name())+string(rune('a'+i))+".go", tt.content)
			_, err := parser.FindSuite(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParser_FindSuites(t *testing.T) {
	parser := NewParser()
	tmpDir := t.TempDir()

	a := writeGoFile(t, tmpDir, "a.go", "package x\n\n//minunit:test\nfunc t1() {}\n")
	b := writeGoFile(t, tmpDir, "b.go", "package x\n\nfunc helper() {}\n")
	c := writeGoFile(t, tmpDir, "c.go", "package x\n\n//minunit:test\nfunc t2() {}\n")

	plans, err := parser.FindSuites([]string{a, b, c})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plans) != 2 || plans[0].Name != "a" || plans[1].Name != "c" {
		t.Errorf("unexpected plans: %+v", plans)
	}
}
