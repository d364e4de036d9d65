// Package cli implements the command-line interface.
package cli

import (
	"errors"

	"github.com/aidanlsb/heron/internal/catalog"
	"github.com/aidanlsb/heron/internal/store"
)

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// Catalog errors
	ErrRepositoryNotFound = "REPOSITORY_NOT_FOUND"
	ErrRepositoryExists   = "REPOSITORY_EXISTS"
	ErrGroupNotFound      = "GROUP_NOT_FOUND"
	ErrGroupExists        = "GROUP_EXISTS"
	ErrGroupNotEmpty      = "GROUP_NOT_EMPTY"
	ErrRelationNotFound   = "RELATION_NOT_FOUND"
	ErrNameAmbiguous      = "NAME_AMBIGUOUS"
	ErrNameUnknown        = "NAME_UNKNOWN"
	ErrRenameConflict     = "RENAME_CONFLICT"

	// File errors
	ErrPathNotFound   = "PATH_NOT_FOUND"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Config errors
	ErrConfigInvalid = "CONFIG_INVALID"
	ErrAliasNotFound = "ALIAS_NOT_FOUND"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// Subprocess errors
	ErrCommandFailed = "COMMAND_FAILED"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// errorCode maps a catalog or store error to its stable code. Aggregate
// errors report the code of their first member.
func errorCode(err error) string {
	var agg store.Errors
	if errors.As(err, &agg) && len(agg) > 0 {
		return errorCode(agg[0])
	}
	switch {
	case errors.As(err, &store.RepositoryNotFoundError{}):
		return ErrRepositoryNotFound
	case errors.As(err, &store.RepositoryExistsError{}):
		return ErrRepositoryExists
	case errors.As(err, &store.GroupNotFoundError{}):
		return ErrGroupNotFound
	case errors.As(err, &store.GroupExistsError{}):
		return ErrGroupExists
	case errors.As(err, &store.GroupNotEmptyError{}):
		return ErrGroupNotEmpty
	case errors.As(err, &store.RelationNotFoundError{}):
		return ErrRelationNotFound
	case errors.As(err, &store.AmbiguousNameError{}):
		return ErrNameAmbiguous
	case errors.As(err, &store.UnknownNameError{}):
		return ErrNameUnknown
	case errors.As(err, &store.RenameTargetError{}):
		return ErrRenameConflict
	case errors.As(err, &catalog.PathNotFoundError{}):
		return ErrPathNotFound
	default:
		return ErrInternal
	}
}

// handleCatalogError reports err with the code derived from its type.
func handleCatalogError(err error) error {
	return handleError(errorCode(err), err, "")
}
