package extract

import (
	"reflect"
	"testing"
)

func TestParseContact(t *testing.T) {
	text := "Jane Doe\njane.doe@example.com\n+1 415 555 0100\nSkills: python, kubernetes, figma"

	contact := ParseContact(text)
	if contact.Name != "Jane Doe" {
		t.Fatalf("name: got %q", contact.Name)
	}
	if contact.Email != "jane.doe@example.com" {
		t.Fatalf("email: got %q", contact.Email)
	}
	if contact.Phone == "" {
		t.Fatalf("expected phone to be detected")
	}
	want := []string{"python", "figma", "kubernetes"}
	if !reflect.DeepEqual(contact.Skills, want) {
		t.Fatalf("skills: got %v, want %v", contact.Skills, want)
	}
}

func TestParseContactEmptyText(t *testing.T) {
	contact := ParseContact("")
	if contact.Name != "" || contact.Email != "" || contact.Phone != "" {
		t.Fatalf("expected empty contact, got %+v", contact)
	}
	if len(contact.Skills) != 0 {
		t.Fatalf("expected no skills, got %v", contact.Skills)
	}
}

func TestParseContactNoSignals(t *testing.T) {
	contact := ParseContact("unstructured body of prose with no details")
	if contact.Email != "" || contact.Phone != "" {
		t.Fatalf("expected no contact fields, got %+v", contact)
	}
}

func TestDetectSkillsVocabularyOrder(t *testing.T) {
	skills := DetectSkills("Kubernetes and Python on Linux")
	want := []string{"python", "kubernetes", "linux"}
	if !reflect.DeepEqual(skills, want) {
		t.Fatalf("got %v, want %v", skills, want)
	}
}
