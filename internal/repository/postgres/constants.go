package postgres

import (
	"fmt"
	"time"
)

const (
	poolHealthCheckPeriod = time.Minute
	poolMaxConnLifetime   = time.Hour
	poolMaxConnIdleTime   = 30 * time.Minute
	dbPingTimeout         = 5 * time.Second

	errFailedParseDatabaseConfigFmt  = "failed to parse database config: %w"
	errFailedCreateConnectionPoolFmt = "failed to create connection pool: %w"
	errFailedPingDatabaseFmt         = "failed to ping database: %w"
	errFailedEnsureSchemaFmt         = "failed to ensure schema: %w"

	errFailedStartTransactionFmt  = "failed to start transaction: %w"
	errFailedCommitTransactionFmt = "failed to commit transaction: %w"

	errFailedCreateUserFmt = "failed to create user: %w"
	errFailedGetUserFmt    = "failed to get user: %w"
	errFailedListUsersFmt  = "failed to list users: %w"
	errFailedScanUserFmt   = "failed to scan user: %w"
	errIterateUsersFmt     = "error iterating users: %w"
	errFailedUpdateUserFmt = "failed to update user: %w"
	errFailedDeleteUserFmt = "failed to delete user: %w"
	errFailedCountUsersFmt = "failed to count users: %w"

	errFailedCreateTaskFmt  = "failed to create task: %w"
	errFailedGetTaskFmt     = "failed to get task: %w"
	errFailedListTasksFmt   = "failed to list tasks: %w"
	errFailedScanTaskFmt    = "failed to scan task: %w"
	errIterateTasksFmt      = "error iterating tasks: %w"
	errFailedUpdateTaskFmt  = "failed to update task: %w"
	errFailedDeleteTaskFmt  = "failed to delete task: %w"
	errFailedCountTasksFmt  = "failed to count tasks: %w"
	errFailedSyncTaskSeqFmt = "failed to sync task id sequence: %w"
)

var (
	errFailedCommitTransaction    = func(err error) error { return fmt.Errorf(errFailedCommitTransactionFmt, err) }
	errFailedCountTasks           = func(err error) error { return fmt.Errorf(errFailedCountTasksFmt, err) }
	errFailedCountUsers           = func(err error) error { return fmt.Errorf(errFailedCountUsersFmt, err) }
	errFailedCreateConnectionPool = func(err error) error { return fmt.Errorf(errFailedCreateConnectionPoolFmt, err) }
	errFailedCreateTask           = func(err error) error { return fmt.Errorf(errFailedCreateTaskFmt, err) }
	errFailedCreateUser           = func(err error) error { return fmt.Errorf(errFailedCreateUserFmt, err) }
	errFailedDeleteTask           = func(err error) error { return fmt.Errorf(errFailedDeleteTaskFmt, err) }
	errFailedDeleteUser           = func(err error) error { return fmt.Errorf(errFailedDeleteUserFmt, err) }
	errFailedEnsureSchema         = func(err error) error { return fmt.Errorf(errFailedEnsureSchemaFmt, err) }
	errFailedGetTask              = func(err error) error { return fmt.Errorf(errFailedGetTaskFmt, err) }
	errFailedGetUser              = func(err error) error { return fmt.Errorf(errFailedGetUserFmt, err) }
	errFailedListTasks            = func(err error) error { return fmt.Errorf(errFailedListTasksFmt, err) }
	errFailedListUsers            = func(err error) error { return fmt.Errorf(errFailedListUsersFmt, err) }
	errFailedParseDatabaseConfig  = func(err error) error { return fmt.Errorf(errFailedParseDatabaseConfigFmt, err) }
	errFailedPingDatabase         = func(err error) error { return fmt.Errorf(errFailedPingDatabaseFmt, err) }
	errFailedScanTask             = func(err error) error { return fmt.Errorf(errFailedScanTaskFmt, err) }
	errFailedScanUser             = func(err error) error { return fmt.Errorf(errFailedScanUserFmt, err) }
	errFailedStartTransaction     = func(err error) error { return fmt.Errorf(errFailedStartTransactionFmt, err) }
	errFailedSyncTaskSeq          = func(err error) error { return fmt.Errorf(errFailedSyncTaskSeqFmt, err) }
	errFailedUpdateTask           = func(err error) error { return fmt.Errorf(errFailedUpdateTaskFmt, err) }
	errFailedUpdateUser           = func(err error) error { return fmt.Errorf(errFailedUpdateUserFmt, err) }
	errIterateTasks               = func(err error) error { return fmt.Errorf(errIterateTasksFmt, err) }
	errIterateUsers               = func(err error) error { return fmt.Errorf(errIterateUsersFmt, err) }
)
