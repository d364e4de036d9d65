package store

import "strings"

// RepositoryNotFoundError reports a lookup for an unknown repository ID.
type RepositoryNotFoundError struct {
	ID string
}

func (e RepositoryNotFoundError) Error() string {
	return e.ID + ": repository not found"
}

// GroupNotFoundError reports a lookup for an unknown group name.
type GroupNotFoundError struct {
	Name string
}

func (e GroupNotFoundError) Error() string {
	return e.Name + ": group not found"
}

// RelationNotFoundError reports a missing membership edge.
type RelationNotFoundError struct {
	RepositoryID string
	GroupName    string
}

func (e RelationNotFoundError) Error() string {
	return e.RepositoryID + ": relation not found for group " + e.GroupName
}

// RepositoryExistsError reports a registration against a taken ID.
type RepositoryExistsError struct {
	ID string
}

func (e RepositoryExistsError) Error() string {
	return e.ID + ": repository already exists"
}

// GroupExistsError reports a registration against a taken group name.
type GroupExistsError struct {
	Name string
}

func (e GroupExistsError) Error() string {
	return e.Name + ": group already exists"
}

// GroupNotEmptyError blocks deleting a group that still has relations.
type GroupNotEmptyError struct {
	Name string
}

func (e GroupNotEmptyError) Error() string {
	return e.Name + ": group is not empty"
}

// AmbiguousNameError reports a flat-namespace lookup that matched both a
// repository and a group.
type AmbiguousNameError struct {
	Name string
}

func (e AmbiguousNameError) Error() string {
	return e.Name + ": repository and group both exist"
}

// UnknownNameError reports a flat-namespace lookup that matched nothing.
type UnknownNameError struct {
	Name string
}

func (e UnknownNameError) Error() string {
	return e.Name + ": no repository or group found"
}

// RenameTargetError reports a rename whose target name is already taken.
type RenameTargetError struct {
	Name string
}

func (e RenameTargetError) Error() string {
	return e.Name + ": the target name is occupied"
}

// Errors aggregates per-item failures from multi-target operations so the
// caller sees every failure in one report.
type Errors []error

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

// Unwrap supports errors.Is and errors.As over every aggregated error.
func (e Errors) Unwrap() []error {
	return e
}

// Collect folds a failure list into nil, the single failure, or an aggregate.
func Collect(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return Errors(errs)
	}
}
