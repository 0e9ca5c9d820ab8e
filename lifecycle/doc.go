/*
Package lifecycle manages the DynamoDB tables backing registered schemas.

The Manager runs exactly twice in a process lifetime:

  - Initialize, after configuration is loaded and before the application
    accepts requests. For every schema in the registry it probes table
    existence, creates absent tables, and polls each new table until
    DynamoDB reports it ACTIVE. Any failure aborts startup with an
    InitializationError naming the table — a missing table is a
    correctness violation, not a degraded mode.
  - Shutdown, during orderly termination. When destructive operations are
    enabled every managed table is re-checked and deleted; failures are
    logged and the remaining deletions still run. With the flag off (the
    default) no remote call is made.

Activation polling is a bounded synchronous wait: up to 60 status checks
two seconds apart by default (about two minutes worst case), returning as
soon as ACTIVE is observed. Transient status-check errors consume attempts
from the same budget. The wait honors context cancellation so a process
interrupted mid-startup aborts promptly.

Pre-existing tables are trusted as usable: they are tracked in the managed
set but neither re-created nor re-polled. The manager performs no schema
diffing or migration of existing tables.
*/
package lifecycle
