/*
Package errors provides semantic error types for TableStore operations.

The package defines sentinel errors that can be matched with errors.Is,
and rich error types that carry context about the failure:

	_, err := repo.FindByID(ctx, id)
	if errors.IsNotFound(err) {
	    // handle missing product
	}

Lifecycle failures follow the startup-fatal / shutdown-best-effort split:

  - ActivationTimeoutError: a created table never reached ACTIVE within the
    polling budget. Fatal to the table being initialized.
  - InitializationError: wraps any create/verify failure with the table
    name; aborts application startup.

Teardown failures are deliberately not represented here: table deletion is
best-effort and is only ever logged, never returned to the caller.
*/
package errors
