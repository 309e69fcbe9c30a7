// Package errors provides the classified error primitives used across docsconfig.
//
// A ClassifiedError carries a category (config, validation, not_found, ...),
// a severity and structured context. The CLI adapter maps categories to
// process exit codes.
//
// Example usage:
//
//	err := errors.NewError(errors.CategoryNotFound, "theme options provider not registered").
//		WithContext("provider", name).
//		Build()
package errors
