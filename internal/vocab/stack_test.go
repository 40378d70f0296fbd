package vocab

import (
	"reflect"
	"testing"
)

func TestCategorizeBuckets(t *testing.T) {
	text := "We build Python services with Django, deployed on AWS with Docker and PostgreSQL."
	stack := Categorize(text)

	if !reflect.DeepEqual(stack.Languages, []string{"Python"}) {
		t.Fatalf("languages = %v", stack.Languages)
	}
	if !reflect.DeepEqual(stack.Frameworks, []string{"Django"}) {
		t.Fatalf("frameworks = %v", stack.Frameworks)
	}
	if !reflect.DeepEqual(stack.Tools, []string{"AWS", "Docker", "Postgresql"}) {
		t.Fatalf("tools = %v", stack.Tools)
	}
}

func TestCategorizeCasingRules(t *testing.T) {
	stack := Categorize("sql, html and css pages served from linux with git")

	if !reflect.DeepEqual(stack.Languages, []string{"SQL", "HTML", "CSS"}) {
		t.Fatalf("languages = %v", stack.Languages)
	}
	if !reflect.DeepEqual(stack.Tools, []string{"GIT", "Linux"}) {
		t.Fatalf("tools = %v", stack.Tools)
	}
}

func TestCategorizeDottedFrameworksKeepCase(t *testing.T) {
	stack := Categorize("node.js APIs and next.js frontends on a .NET backend")

	if !reflect.DeepEqual(stack.Frameworks, []string{"node.js", "next.js", ".net"}) {
		t.Fatalf("frameworks = %v", stack.Frameworks)
	}
}

func TestCategorizeSymbolLanguages(t *testing.T) {
	stack := Categorize("C++ and C# on Windows")
	if !reflect.DeepEqual(stack.Languages, []string{"C++", "C#"}) {
		t.Fatalf("languages = %v", stack.Languages)
	}
}

func TestCategorizeEmptyText(t *testing.T) {
	stack := Categorize("")
	if len(stack.Languages) != 0 || len(stack.Frameworks) != 0 || len(stack.Tools) != 0 {
		t.Fatalf("expected empty stack, got %+v", stack)
	}
	// Empty slices, not nil, so JSON renders [] rather than null.
	if stack.Languages == nil || stack.Frameworks == nil || stack.Tools == nil {
		t.Fatal("expected non-nil slices")
	}
}
