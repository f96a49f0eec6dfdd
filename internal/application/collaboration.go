package application

import (
	"regexp"
	"strings"

	"github.com/todoflow/todoflow/internal/domain"
)

// emailPattern requires non-whitespace around exactly one @ and a dot in
// the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// NormalizeTags trims, lowercases, drops empties, and deduplicates while
// preserving first-seen order.
func NormalizeTags(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		tag := strings.ToLower(strings.TrimSpace(v))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// NormalizeEmails normalizes and deduplicates a collaborator list. Any
// entry that fails the email pattern rejects the whole list.
func NormalizeEmails(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, v := range in {
		email := strings.ToLower(strings.TrimSpace(v))
		if email == "" {
			continue
		}
		if !ValidEmail(email) {
			return nil, &domain.InvalidEmailError{Email: v}
		}
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		out = append(out, email)
	}
	return out, nil
}

// AddTag appends the normalized tag, preserving insertion order. Empty and
// already-present tags are a no-op.
func AddTag(task domain.Task, raw string) domain.Task {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if tag == "" {
		return task
	}
	for _, existing := range task.Tags {
		if existing == tag {
			return task
		}
	}
	out := task.Clone()
	out.Tags = append(out.Tags, tag)
	return out
}

// RemoveTag removes an exact match; absent tags are a no-op.
func RemoveTag(task domain.Task, tag string) domain.Task {
	out := task.Clone()
	kept := out.Tags[:0]
	for _, existing := range out.Tags {
		if existing != tag {
			kept = append(kept, existing)
		}
	}
	out.Tags = kept
	return out
}

// AddCollaborator validates and appends a collaborator email. The two
// failure kinds are distinguishable: *domain.InvalidEmailError for a
// malformed address, *domain.DuplicateCollaboratorError when the address is
// already on the task.
func AddCollaborator(task domain.Task, rawEmail string) (domain.Task, error) {
	email := strings.ToLower(strings.TrimSpace(rawEmail))
	if !ValidEmail(email) {
		return task, &domain.InvalidEmailError{Email: rawEmail}
	}
	for _, existing := range task.SharedWith {
		if existing == email {
			return task, &domain.DuplicateCollaboratorError{Email: email}
		}
	}
	out := task.Clone()
	out.SharedWith = append(out.SharedWith, email)
	return out, nil
}

// RemoveCollaborator removes an exact (already-lowercased) match; absent
// addresses are a no-op.
func RemoveCollaborator(task domain.Task, email string) domain.Task {
	out := task.Clone()
	kept := out.SharedWith[:0]
	for _, existing := range out.SharedWith {
		if existing != email {
			kept = append(kept, existing)
		}
	}
	out.SharedWith = kept
	return out
}
